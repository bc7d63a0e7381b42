package plan

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Strings is a list of clause values. In YAML it can be written as a single string or
// as a sequence of strings.
type Strings []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Strings) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*s = nil
			return nil
		}

		*s = Strings{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}

		*s = items
		return nil
	default:
		return errors.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// Last returns the last value, or an empty string.
func (s Strings) Last() string {
	if len(s) == 0 {
		return ""
	}

	return s[len(s)-1]
}

// Modes is an optional keyword clause with optional modes, such as BEGIN. In YAML it
// is written as a boolean (`begin: true`), a single mode (`begin: IMMEDIATE`) or a list
// of modes.
type Modes struct {
	Set    bool
	Values []string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Modes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.ShortTag() {
		case "!!null":
			*m = Modes{}
		case "!!bool":
			var set bool
			if err := value.Decode(&set); err != nil {
				return err
			}

			*m = Modes{Set: set}
		default:
			*m = Modes{Set: true, Values: []string{value.Value}}
		}

		return nil
	case yaml.SequenceNode:
		var values []string
		if err := value.Decode(&values); err != nil {
			return err
		}

		*m = Modes{Set: true, Values: values}
		return nil
	default:
		return errors.Errorf("line %d: expected a boolean, a string or a list of strings", value.Line)
	}
}
