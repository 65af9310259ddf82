// Package graphql compiles GraphQL schema definitions (SDL) into gqlskema
// descriptors.
//
// Mapping
//   - type/input/interface -> dsl.ModelType named after the declaration
//   - enum -> dsl.EnumType, union -> dsl.UnionType over member models
//   - custom scalar -> dsl.Frozen()
//   - String -> string, Int/Float -> number, Boolean -> boolean
//   - ID -> identifier for the first eligible field of a type, string otherwise
//
// Modifiers compose per position: `[String]` becomes
// "((string | null)[] | null)" and `[String!]!` becomes "string[]".
//
// Implemented interfaces are merged into the implementing model: interface
// fields first, own fields win on collision. An identifier on the
// implementing type suppresses the interface's identifier.
//
// Compilation order is inputs, objects, unions, enums. Interfaces and
// scalars appear in the result only when reached from those passes.
// Arguments, directives and default values are ignored.
//
// Example
//
//	types, diag, err := graphql.Compile(`type Test { foo: ID! bar: ID }`, graphql.Options{
//	    Types: map[string]graphql.TypeConfig{
//	        "Test": {Identifier: graphql.IdentifierField("bar")},
//	    },
//	})
//	test, _ := types.Model("Test") // foo: string, bar: identifier
package graphql
