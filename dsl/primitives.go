package dsl

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/i18n"
	js "github.com/reoring/gqlskema/jsonschema"
)

// String returns the string primitive.
func String() gqlskema.Descriptor { return stringType{} }

// Number returns the number primitive. It accepts every Go numeric kind and
// json.Number.
func Number() gqlskema.Descriptor { return numberType{} }

// Boolean returns the boolean primitive.
func Boolean() gqlskema.Descriptor { return booleanType{} }

// Identifier returns the identifier descriptor: a string that acts as the
// lookup key of its model within a collection.
func Identifier() gqlskema.Descriptor { return identifierType{} }

// Frozen returns the opaque descriptor. Any value, including nil, passes
// through unchecked.
func Frozen() gqlskema.Descriptor { return frozenType{} }

// invalidType builds the single-issue error used by every leaf type.
func invalidType(expected string) error {
	return gqlskema.Issues{{
		Path:    "/",
		Code:    gqlskema.CodeInvalidType,
		Message: i18n.T(gqlskema.CodeInvalidType, map[string]string{"expected": expected}),
		Hint:    "expected " + expected,
	}}
}

func validateVia(ctx context.Context, d gqlskema.Descriptor, v any) error {
	_, err := d.Parse(ctx, v)
	return err
}

type stringType struct{}

func (stringType) Name() string        { return "string" }
func (stringType) Kind() gqlskema.Kind { return gqlskema.KindPrimitive }

func (stringType) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalidType("string")
	}
	return s, nil
}

func (t stringType) Validate(ctx context.Context, v any) error { return validateVia(ctx, t, v) }

func (stringType) JSONSchema(js.Definitions) (*js.Schema, error) {
	return &js.Schema{Type: "string"}, nil
}

type numberType struct{}

func (numberType) Name() string        { return "number" }
func (numberType) Kind() gqlskema.Kind { return gqlskema.KindPrimitive }

func (numberType) Parse(ctx context.Context, v any) (any, error) {
	switch n := v.(type) {
	case json.Number:
		if _, err := strconv.ParseFloat(string(n), 64); err != nil {
			return nil, invalidType("number")
		}
		return n, nil
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return n, nil
	}
	// named numeric types (type Celsius float64)
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return v, nil
		}
	}
	return nil, invalidType("number")
}

func (t numberType) Validate(ctx context.Context, v any) error { return validateVia(ctx, t, v) }

func (numberType) JSONSchema(js.Definitions) (*js.Schema, error) {
	return &js.Schema{Type: "number"}, nil
}

type booleanType struct{}

func (booleanType) Name() string        { return "boolean" }
func (booleanType) Kind() gqlskema.Kind { return gqlskema.KindPrimitive }

func (booleanType) Parse(ctx context.Context, v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, invalidType("boolean")
	}
	return b, nil
}

func (t booleanType) Validate(ctx context.Context, v any) error { return validateVia(ctx, t, v) }

func (booleanType) JSONSchema(js.Definitions) (*js.Schema, error) {
	return &js.Schema{Type: "boolean"}, nil
}

type identifierType struct{}

func (identifierType) Name() string        { return "identifier" }
func (identifierType) Kind() gqlskema.Kind { return gqlskema.KindIdentifier }

func (identifierType) Parse(ctx context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, invalidType("identifier")
	}
	return s, nil
}

func (t identifierType) Validate(ctx context.Context, v any) error { return validateVia(ctx, t, v) }

func (identifierType) JSONSchema(js.Definitions) (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "identifier"}, nil
}

type frozenType struct{}

func (frozenType) Name() string                                  { return "frozen" }
func (frozenType) Kind() gqlskema.Kind                           { return gqlskema.KindOpaque }
func (frozenType) Parse(ctx context.Context, v any) (any, error) { return v, nil }
func (frozenType) Validate(ctx context.Context, v any) error     { return nil }

func (frozenType) JSONSchema(js.Definitions) (*js.Schema, error) { return &js.Schema{}, nil }
