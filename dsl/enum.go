package dsl

import (
	"context"
	"strings"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/i18n"
	js "github.com/reoring/gqlskema/jsonschema"
)

// EnumType is a closed set of strings. Members are represented by their
// string value.
type EnumType struct {
	name   string
	values []string
	set    map[string]struct{}
}

// Enumeration returns an enum descriptor accepting exactly values.
func Enumeration(name string, values ...string) *EnumType {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return &EnumType{name: name, values: append([]string(nil), values...), set: set}
}

var _ gqlskema.Descriptor = (*EnumType)(nil)

func (e *EnumType) Name() string        { return e.name }
func (e *EnumType) Kind() gqlskema.Kind { return gqlskema.KindEnum }

// Values returns the members in declaration order.
func (e *EnumType) Values() []string { return append([]string(nil), e.values...) }

func (e *EnumType) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalidType(e.name)
	}
	if _, ok := e.set[s]; !ok {
		return nil, gqlskema.Issues{{
			Path:    "/",
			Code:    gqlskema.CodeInvalidEnum,
			Message: i18n.T(gqlskema.CodeInvalidEnum, nil),
			Hint:    "expected one of " + strings.Join(e.values, ", "),
		}}
	}
	return s, nil
}

func (e *EnumType) Validate(ctx context.Context, v any) error { return validateVia(ctx, e, v) }

func (e *EnumType) JSONSchema(defs js.Definitions) (*js.Schema, error) {
	if _, ok := defs[e.name]; !ok {
		vals := make([]any, len(e.values))
		for i, v := range e.values {
			vals[i] = v
		}
		defs[e.name] = &js.Schema{Title: e.name, Type: "string", Enum: vals}
	}
	return js.RefTo(e.name), nil
}
