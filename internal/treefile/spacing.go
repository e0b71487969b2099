package treefile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxflow/internal/layout"
)

// Spacing is a padding or margin value: empty, or 1, 2 or 4 non-negative
// integers in top/right/bottom/left order.
type Spacing []int

// UnmarshalYAML accepts a scalar or a sequence of integers.
func (s *Spacing) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var n int
		if err := value.Decode(&n); err != nil {
			return err
		}
		*s = Spacing{n}
		return nil
	case yaml.SequenceNode:
		var list []int
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("line %d: spacing must be an integer or a list of integers", value.Line)
	}
}

// Edges converts s to layout edges.
func (s Spacing) Edges() (layout.Edges, error) {
	for _, v := range s {
		if v < 0 {
			return layout.Edges{}, fmt.Errorf("values must not be negative, got %v", []int(s))
		}
	}
	switch len(s) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(s[0]), nil
	case 2:
		return layout.EdgeSymmetric(s[0], s[1]), nil
	case 4:
		return layout.EdgeTRBL(s[0], s[1], s[2], s[3]), nil
	default:
		return layout.Edges{}, fmt.Errorf("expected 1, 2 or 4 values, got %d", len(s))
	}
}
