package dsl

import (
	"context"
	"reflect"
	"strconv"

	gqlskema "github.com/reoring/gqlskema"
	js "github.com/reoring/gqlskema/jsonschema"
)

// Array returns a homogeneous list descriptor over elem.
func Array(elem gqlskema.Descriptor) gqlskema.Wrapper { return &arrayType{elem: elem} }

type arrayType struct{ elem gqlskema.Descriptor }

func (a *arrayType) Name() string              { return a.elem.Name() + "[]" }
func (a *arrayType) Kind() gqlskema.Kind       { return gqlskema.KindArray }
func (a *arrayType) Elem() gqlskema.Descriptor { return a.elem }

// Parse accepts []any and any other Go slice; the result is always []any.
func (a *arrayType) Parse(ctx context.Context, v any) (any, error) {
	items, ok := asSlice(v)
	if !ok {
		return nil, invalidType("array")
	}
	out := make([]any, 0, len(items))
	var iss gqlskema.Issues
	for i, it := range items {
		ev, err := a.elem.Parse(ctx, it)
		if err != nil {
			iss = gqlskema.AppendIssues(iss, gqlskema.Rebase("/"+strconv.Itoa(i), err)...)
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a *arrayType) Validate(ctx context.Context, v any) error { return validateVia(ctx, a, v) }

func (a *arrayType) JSONSchema(defs js.Definitions) (*js.Schema, error) {
	es, err := a.elem.JSONSchema(defs)
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: es}, nil
}

// asSlice returns the elements of v when v is a slice or array.
func asSlice(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
