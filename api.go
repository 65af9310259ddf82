package gqlskema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/gqlskema/i18n"
	eng "github.com/reoring/gqlskema/internal/engine"
	js "github.com/reoring/gqlskema/jsonschema"
)

// Descriptor is a compiled, runtime-checkable type. Implementations live in
// the dsl package; the graphql package produces them from schema
// declarations.
type Descriptor interface {
	// Name is the printable type name, e.g. "string", "(string | null)[]" or
	// a declared model name.
	Name() string
	Kind() Kind
	// Parse converts v into an instance of the descriptor. It returns Issues
	// when v does not conform.
	Parse(ctx context.Context, v any) (any, error)
	// Validate reports whether v conforms without keeping the result.
	Validate(ctx context.Context, v any) error
	// JSONSchema projects the descriptor. Named descriptors register into
	// defs and return a $ref.
	JSONSchema(defs js.Definitions) (*js.Schema, error)
}

// Wrapper is implemented by descriptors that wrap a single inner descriptor
// (nullable, array).
type Wrapper interface {
	Descriptor
	Elem() Descriptor
}

// Create constructs an instance of d from v. Violations are reported as a
// *ConversionError.
func Create(ctx context.Context, d Descriptor, v any) (any, error) {
	if d == nil {
		return nil, errors.New("gqlskema: nil descriptor")
	}
	out, err := d.Parse(ctx, v)
	if err != nil {
		iss, ok := AsIssues(err)
		if !ok {
			iss = Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
		}
		return nil, &ConversionError{Type: d.Name(), Value: v, Issues: iss}
	}
	return out, nil
}

// SafeCreate is Create returning (nil, false) on failure.
func SafeCreate(ctx context.Context, d Descriptor, v any) (any, bool) {
	out, err := Create(ctx, d, v)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Is returns true if v conforms to d.
func Is(ctx context.Context, d Descriptor, v any) bool {
	return d.Validate(ctx, v) == nil
}

// ParseJSON decodes data (numbers kept as json.Number) and creates an
// instance of d from the decoded value.
func ParseJSON(ctx context.Context, d Descriptor, data []byte) (any, error) {
	v, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return Create(ctx, d, v)
}

// DecodeJSON decodes a single JSON value from r into generic Go values.
// Repeated object keys are rejected with duplicate_key issues.
func DecodeJSON(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("invalid JSON: %v", err), Cause: err}}
	}
	dups, err := eng.FindDuplicateKeys(data)
	if err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("invalid JSON: %v", err), Cause: err}}
	}
	if len(dups) > 0 {
		iss := make(Issues, 0, len(dups))
		for _, d := range dups {
			iss = append(iss, Issue{Path: d.Pointer(), Code: CodeDuplicateKey, Message: i18n.T(CodeDuplicateKey, nil), Hint: "key '" + d.Key + "' duplicated"})
		}
		return nil, iss
	}
	return v, nil
}

// ExportJSONSchema projects d into a standalone JSON Schema document. Named
// types are emitted under $defs.
func ExportJSONSchema(d Descriptor) (*js.Schema, error) {
	defs := js.Definitions{}
	s, err := d.JSONSchema(defs)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return s, nil
	}
	out := *s
	out.Defs = defs
	return &out, nil
}

// ExportJSONSchemas projects a set of named descriptors into one document
// whose $defs holds every reachable named type.
func ExportJSONSchemas(types map[string]Descriptor) (*js.Schema, error) {
	defs := js.Definitions{}
	for _, d := range types {
		if _, err := d.JSONSchema(defs); err != nil {
			return nil, fmt.Errorf("json schema for %s: %w", d.Name(), err)
		}
	}
	return &js.Schema{Defs: defs}, nil
}
