package debug

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "BOXFLOW_DEBUG"

// FromEnv returns a trace-level logger writing to the file named by EnvVar,
// or a null logger when it is unset. The returned close function is never nil.
func FromEnv(name string) (hclog.Logger, func() error, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return hclog.NewNullLogger(), func() error { return nil }, nil
	}
	return Open(path, name)
}

// Open creates a trace-level logger appending to the file at path, creating
// its directory if needed.
func Open(path, name string) (hclog.Logger, func() error, error) {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.Trace,
		Output:     f,
		TimeFormat: "15:04:05.000",
	})
	return logger, f.Close, nil
}
