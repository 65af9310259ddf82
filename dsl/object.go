package dsl

import (
	j "github.com/goccy/go-json"
)

// Object is an instance created by a ModelType.
type Object struct {
	model  *ModelType
	values map[string]any
}

// Model returns the model that created o.
func (o *Object) Model() *ModelType { return o.model }

// Get returns the parsed value of a declared field.
func (o *Object) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Identifier returns the identifier value when the model declares one.
func (o *Object) Identifier() (string, bool) {
	if o.model.identifier == "" {
		return "", false
	}
	s, ok := o.values[o.model.identifier].(string)
	return s, ok
}

// Snapshot converts o, and every nested instance, back to plain values.
func (o *Object) Snapshot() map[string]any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = snapshotValue(v)
	}
	return out
}

// MarshalJSON encodes the snapshot.
func (o *Object) MarshalJSON() ([]byte, error) { return j.Marshal(o.Snapshot()) }

func snapshotValue(v any) any {
	switch t := v.(type) {
	case *Object:
		return t.Snapshot()
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = snapshotValue(t[i])
		}
		return out
	default:
		return v
	}
}
