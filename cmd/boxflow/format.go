package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/ryanuber/columnize"
)

// DataFormatter renders data for machine consumption.
type DataFormatter interface {
	TransformData(any) (string, error)
}

// DataFormat returns the formatter for format ("json" or "template").
func DataFormat(format, tmpl string) (DataFormatter, error) {
	switch format {
	case "json":
		if tmpl != "" {
			return nil, fmt.Errorf("json format does not support template option")
		}
		return &JSONFormat{}, nil
	case "template":
		return &TemplateFormat{tmpl: tmpl}, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// JSONFormat formats data as indented JSON.
type JSONFormat struct{}

// TransformData returns data as JSON.
func (p *JSONFormat) TransformData(data any) (string, error) {
	out, err := json.MarshalIndent(&data, "", "    ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// TemplateFormat formats data with a Go template. Sprig functions are available.
type TemplateFormat struct {
	tmpl string
}

// TransformData returns data rendered through the template.
func (p *TemplateFormat) TransformData(data any) (string, error) {
	if p.tmpl == "" {
		return "", fmt.Errorf("template needs to be specified the golang templates")
	}

	t, err := template.New("format").Funcs(sprig.TxtFuncMap()).Parse(p.tmpl)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := t.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// formatList takes a set of strings and formats them into properly
// aligned output, replacing any blank fields with a placeholder
// for awk-ability.
func formatList(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	return columnize.Format(in, columnConf)
}
