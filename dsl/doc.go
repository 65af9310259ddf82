// Package dsl provides the runtime type system targeted by the schema
// compiler. Every constructor returns a gqlskema.Descriptor.
//
// Overview
//   - Leaves: String()/Number()/Boolean(), Identifier() for lookup keys and
//     Frozen() for opaque values.
//   - Wrappers: Nullable(d) and Array(d). Names compose the same way the
//     schema modifiers do, e.g. Nullable(Array(Nullable(String()))) prints
//     as "((string | null)[] | null)".
//   - Models: Model(name) returns a builder whose Type() handle can be
//     referenced before Build, so self and mutual recursion work. Mixin()
//     merges interface fields first; own fields win on collision.
//   - Enumeration(name, values...) and Union(name) for closed sets and
//     alternatives over models.
//   - NewCollection(model) stores instances keyed by their identifier field.
//
// File layout (roles)
//   - primitives.go: leaf descriptors and shared helpers.
//   - nullable.go/array.go: wrappers.
//   - object_builder.go: ModelBuilder, Mixin merge and Compose.
//   - object_core.go: ModelType Parse/Validate/JSONSchema.
//   - object.go: *Object instances and Snapshot.
//   - enum.go/union.go/collection.go: the remaining descriptors.
//
// Example
//
//	user := g.Model("User")
//	user.Field("id", g.Identifier()).
//	    Field("name", g.String()).
//	    Field("friends", g.Nullable(g.Array(user.Type())))
//	m := user.MustBuild()
//	v, err := gqlskema.Create(ctx, m, map[string]any{"id": "u1", "name": "alice"})
//
// Models reject unknown keys (additionalProperties=false in JSON Schema).
// Missing nullable fields are filled with nil; missing non-nullable fields
// are reported as "required".
package dsl
