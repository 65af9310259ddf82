// Package gqlskema compiles GraphQL schema definitions into runtime-checked
// type descriptors.
//
// - Descriptor is the runtime contract: Name/Kind/Parse/Validate/JSONSchema
// - A stable error model via Issues (JSON Pointer, code, message)
// - ConversionError and SyntaxError are detectable with errors.Is against
//   ErrConversion and ErrSyntax
//
// Design policy:
// - Keep only public contracts in the root package.
// - Place runtime types under dsl/, the schema compiler under graphql/,
//   configuration loading under config/ and the CLI under cmd/gqlskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	types, diag, err := graphql.Compile(sdl, graphql.Options{})
//	v, err := gqlskema.Create(ctx, types["User"], map[string]any{"id": "u1"})
//	v, err = gqlskema.ParseJSON(ctx, types["User"], data)
package gqlskema
