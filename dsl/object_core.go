package dsl

import (
	"context"
	"reflect"
	"sort"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/i18n"
	js "github.com/reoring/gqlskema/jsonschema"
)

// ModelType is a named record descriptor. Unknown keys are rejected,
// non-nullable fields are required and missing nullable fields are filled
// with nil.
type ModelType struct {
	name       string
	fields     []Field
	index      map[string]int
	identifier string
	sealed     bool
}

var _ gqlskema.Descriptor = (*ModelType)(nil)

func (m *ModelType) Name() string        { return m.name }
func (m *ModelType) Kind() gqlskema.Kind { return gqlskema.KindModel }

// Built reports whether the model finished construction.
func (m *ModelType) Built() bool { return m.sealed }

// Fields returns the fields in declaration order.
func (m *ModelType) Fields() []Field { return append([]Field(nil), m.fields...) }

// Field returns the descriptor of the named field.
func (m *ModelType) Field(name string) (gqlskema.Descriptor, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.fields[i].Type, true
}

// IdentifierField returns the name of the identifier field, or "".
func (m *ModelType) IdentifierField() string { return m.identifier }

func (m *ModelType) Parse(ctx context.Context, v any) (any, error) {
	if o, ok := v.(*Object); ok {
		if o.model == m {
			return o, nil
		}
		return nil, invalidType(m.name)
	}
	src, ok := asStringMap(v)
	if !ok {
		return nil, invalidType(m.name)
	}
	values := make(map[string]any, len(m.fields))
	iss := m.collectKnown(ctx, src, values)
	iss = gqlskema.AppendIssues(iss, m.collectUnknown(src)...)
	if len(iss) > 0 {
		return nil, iss
	}
	return &Object{model: m, values: values}, nil
}

// collectKnown parses declared fields in declaration order.
func (m *ModelType) collectKnown(ctx context.Context, src map[string]any, out map[string]any) gqlskema.Issues {
	var iss gqlskema.Issues
	for _, f := range m.fields {
		val, exists := src[f.Name]
		if !exists {
			if IsNullable(f.Type) {
				out[f.Name] = nil
				continue
			}
			iss = gqlskema.AppendIssues(iss, gqlskema.Issue{
				Path:    "/" + f.Name,
				Code:    gqlskema.CodeRequired,
				Message: i18n.T(gqlskema.CodeRequired, nil),
				Hint:    "required property missing",
			})
			continue
		}
		parsed, err := f.Type.Parse(ctx, val)
		if err != nil {
			iss = gqlskema.AppendIssues(iss, gqlskema.Rebase("/"+f.Name, err)...)
			continue
		}
		out[f.Name] = parsed
	}
	return iss
}

// collectUnknown reports undeclared keys in key-sorted order.
func (m *ModelType) collectUnknown(src map[string]any) gqlskema.Issues {
	var uks []string
	for k := range src {
		if _, known := m.index[k]; !known {
			uks = append(uks, k)
		}
	}
	sort.Strings(uks)
	var iss gqlskema.Issues
	for _, k := range uks {
		iss = gqlskema.AppendIssues(iss, gqlskema.Issue{Path: "/" + k, Code: gqlskema.CodeUnknownKey, Message: i18n.T(gqlskema.CodeUnknownKey, nil)})
	}
	return iss
}

func (m *ModelType) Validate(ctx context.Context, v any) error { return validateVia(ctx, m, v) }

func (m *ModelType) JSONSchema(defs js.Definitions) (*js.Schema, error) {
	if _, ok := defs[m.name]; ok {
		return js.RefTo(m.name), nil
	}
	// register first so recursive references resolve to $ref
	s := &js.Schema{}
	defs[m.name] = s
	props := make(map[string]*js.Schema, len(m.fields))
	var req []string
	for _, f := range m.fields {
		ps, err := f.Type.JSONSchema(defs)
		if err != nil {
			return nil, err
		}
		props[f.Name] = ps
		if !IsNullable(f.Type) {
			req = append(req, f.Name)
		}
	}
	*s = js.Schema{Title: m.name, Type: "object", Properties: props, Required: req, AdditionalProperties: false}
	return js.RefTo(m.name), nil
}

// asStringMap accepts map[string]any and other string-keyed maps.
func asStringMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
