package dsl

import (
	"context"
	"strings"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/i18n"
	js "github.com/reoring/gqlskema/jsonschema"
)

// UnionType accepts a value matching any one of its alternative models. No
// discriminator is needed: an instance of a member model is accepted as-is,
// raw data selects the first alternative that parses.
type UnionType struct {
	name         string
	alternatives []*ModelType
}

// UnionBuilder assembles a UnionType. Like ModelBuilder, the handle exists
// before its alternatives are known.
type UnionBuilder struct{ u *UnionType }

// Union creates a builder for a union. An empty name yields a printed
// name of the form "(A | B)".
func Union(name string) *UnionBuilder { return &UnionBuilder{u: &UnionType{name: name}} }

// Type returns the union handle.
func (b *UnionBuilder) Type() *UnionType { return b.u }

// Alternative appends a member model.
func (b *UnionBuilder) Alternative(m *ModelType) *UnionBuilder {
	b.u.alternatives = append(b.u.alternatives, m)
	return b
}

// Build returns the union.
func (b *UnionBuilder) Build() *UnionType { return b.u }

var _ gqlskema.Descriptor = (*UnionType)(nil)

func (u *UnionType) Name() string {
	if u.name != "" {
		return u.name
	}
	names := make([]string, len(u.alternatives))
	for i, m := range u.alternatives {
		names[i] = m.Name()
	}
	return "(" + strings.Join(names, " | ") + ")"
}

func (u *UnionType) Kind() gqlskema.Kind { return gqlskema.KindUnion }

// Alternatives returns the member models in declaration order.
func (u *UnionType) Alternatives() []*ModelType { return append([]*ModelType(nil), u.alternatives...) }

func (u *UnionType) Parse(ctx context.Context, v any) (any, error) {
	if o, ok := v.(*Object); ok {
		for _, m := range u.alternatives {
			if o.model == m {
				return o, nil
			}
		}
		return nil, u.noMatch()
	}
	for _, m := range u.alternatives {
		if out, err := m.Parse(ctx, v); err == nil {
			return out, nil
		}
	}
	return nil, u.noMatch()
}

func (u *UnionType) noMatch() error {
	names := make([]string, len(u.alternatives))
	for i, m := range u.alternatives {
		names[i] = m.Name()
	}
	return gqlskema.Issues{{
		Path:    "/",
		Code:    gqlskema.CodeUnionNoMatch,
		Message: i18n.T(gqlskema.CodeUnionNoMatch, nil),
		Hint:    "expected one of " + strings.Join(names, ", "),
	}}
}

func (u *UnionType) Validate(ctx context.Context, v any) error { return validateVia(ctx, u, v) }

func (u *UnionType) JSONSchema(defs js.Definitions) (*js.Schema, error) {
	if u.name != "" {
		if _, ok := defs[u.name]; ok {
			return js.RefTo(u.name), nil
		}
		defs[u.name] = &js.Schema{}
	}
	out := &js.Schema{Title: u.name}
	out.AnyOf = make([]*js.Schema, 0, len(u.alternatives))
	for _, m := range u.alternatives {
		ms, err := m.JSONSchema(defs)
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, ms)
	}
	if u.name == "" {
		return out, nil
	}
	*defs[u.name] = *out
	return js.RefTo(u.name), nil
}
