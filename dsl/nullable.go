package dsl

import (
	"context"

	gqlskema "github.com/reoring/gqlskema"
	js "github.com/reoring/gqlskema/jsonschema"
)

// Nullable wraps d to accept nil. When the input value is nil, parsing
// succeeds and returns nil; anything else is delegated to d.
func Nullable(d gqlskema.Descriptor) gqlskema.Wrapper { return &nullableType{elem: d} }

type nullableType struct{ elem gqlskema.Descriptor }

func (n *nullableType) Name() string              { return "(" + n.elem.Name() + " | null)" }
func (n *nullableType) Kind() gqlskema.Kind       { return gqlskema.KindNullable }
func (n *nullableType) Elem() gqlskema.Descriptor { return n.elem }

func (n *nullableType) Parse(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.elem.Parse(ctx, v)
}

func (n *nullableType) Validate(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return n.elem.Validate(ctx, v)
}

func (n *nullableType) JSONSchema(defs js.Definitions) (*js.Schema, error) {
	es, err := n.elem.JSONSchema(defs)
	if err != nil {
		return nil, err
	}
	return &js.Schema{AnyOf: []*js.Schema{es, js.Null()}}, nil
}

// IsNullable reports whether d admits nil at its top level.
func IsNullable(d gqlskema.Descriptor) bool {
	switch d.Kind() {
	case gqlskema.KindNullable, gqlskema.KindOpaque:
		return true
	}
	return false
}
