package graphql

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-kit/log"
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Options controls compilation.
type Options struct {
	// Types holds per-type overrides keyed by declared type name.
	Types map[string]TypeConfig
	// Logger receives debug lines for skipped fields, members and
	// declarations. Defaults to a no-op logger.
	Logger log.Logger
}

// TypeConfig is the override for one declared type.
type TypeConfig struct {
	Identifier IdentifierSetting
}

// IdentifierSetting selects the identifier field of a type. The zero value
// leaves the choice to inference (first ID field wins).
type IdentifierSetting struct {
	set  bool
	name string
}

// IdentifierField forces name to be the identifier field. An empty name is
// the same as NoIdentifier; config files reject it.
func IdentifierField(name string) IdentifierSetting {
	return IdentifierSetting{set: true, name: name}
}

// NoIdentifier disables identifier inference; ID fields become strings.
func NoIdentifier() IdentifierSetting { return IdentifierSetting{set: true} }

// IsSet reports whether an override was given.
func (s IdentifierSetting) IsSet() bool { return s.set }

// Disabled reports an explicit "no identifier" override.
func (s IdentifierSetting) Disabled() bool { return s.set && s.name == "" }

// Field returns the configured field name.
func (s IdentifierSetting) Field() (string, bool) { return s.name, s.set && s.name != "" }

// allows reports whether a field called name may become the identifier.
func (s IdentifierSetting) allows(name string) bool {
	if !s.set {
		return true
	}
	return s.name != "" && s.name == name
}

func (s IdentifierSetting) String() string {
	switch {
	case !s.set:
		return "auto"
	case s.name == "":
		return "none"
	}
	return s.name
}

// UnmarshalYAML reads `identifier: <name>` and `identifier: null`. yaml.v3
// does not invoke unmarshalers for null nodes, so the mapping is inspected
// here.
func (c *TypeConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: type config must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		switch k.Value {
		case "identifier":
			if v.ShortTag() == "!!null" {
				c.Identifier = NoIdentifier()
				continue
			}
			var name string
			if err := v.Decode(&name); err != nil {
				return fmt.Errorf("line %d: identifier: %w", v.Line, err)
			}
			if name == "" {
				return fmt.Errorf("line %d: identifier: empty field name, use null to disable", v.Line)
			}
			c.Identifier = IdentifierField(name)
		default:
			return fmt.Errorf("line %d: unknown type config key %q", k.Line, k.Value)
		}
	}
	return nil
}

// UnmarshalJSON reads {"identifier": "<name>"} and {"identifier": null}.
func (c *TypeConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]j.RawMessage
	if err := j.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		switch k {
		case "identifier":
			if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				c.Identifier = NoIdentifier()
				continue
			}
			var name string
			if err := j.Unmarshal(v, &name); err != nil {
				return fmt.Errorf("identifier: %w", err)
			}
			if name == "" {
				return errors.New("identifier: empty field name, use null to disable")
			}
			c.Identifier = IdentifierField(name)
		default:
			return fmt.Errorf("unknown type config key %q", k)
		}
	}
	return nil
}

// MarshalJSON writes the setting back in the form UnmarshalJSON accepts.
func (c TypeConfig) MarshalJSON() ([]byte, error) {
	switch {
	case !c.Identifier.set:
		return []byte("{}"), nil
	case c.Identifier.name == "":
		return []byte(`{"identifier":null}`), nil
	}
	return j.Marshal(map[string]string{"identifier": c.Identifier.name})
}

// Diag carries non-fatal warnings produced during compilation.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
