package dsl

import (
	"fmt"

	gqlskema "github.com/reoring/gqlskema"
)

// Field is one named member of a model, kept in declaration order.
type Field struct {
	Name string
	Type gqlskema.Descriptor
}

// ModelBuilder assembles a ModelType. The handle returned by Type exists from
// the start, so descriptors under construction may already reference it
// (self and mutual recursion); it becomes usable once Build succeeds.
type ModelBuilder struct {
	m      *ModelType
	mixins [][]Field
	own    []Field
}

// Model creates a builder for a named model.
func Model(name string) *ModelBuilder {
	return &ModelBuilder{m: &ModelType{name: name}}
}

// Type returns the model handle. Its fields are empty until Build.
func (b *ModelBuilder) Type() *ModelType { return b.m }

// Field registers an own field. Registering the same name twice keeps the
// first position and the last descriptor.
func (b *ModelBuilder) Field(name string, d gqlskema.Descriptor) *ModelBuilder {
	b.own = append(b.own, Field{Name: name, Type: d})
	return b
}

// Mixin registers fields contributed by another model (an interface). Mixins
// are merged before own fields, in registration order.
func (b *ModelBuilder) Mixin(fields ...Field) *ModelBuilder {
	b.mixins = append(b.mixins, fields)
	return b
}

// Build merges mixins and own fields, resolves the identifier field and
// seals the model. It fails when more than one field carries identifier
// semantics or when the model was already built.
func (b *ModelBuilder) Build() (*ModelType, error) {
	m := b.m
	if m.sealed {
		return nil, fmt.Errorf("dsl: model %s already built", m.name)
	}
	var merged []Field
	index := map[string]int{}
	put := func(f Field) {
		if f.Type == nil {
			return
		}
		if i, ok := index[f.Name]; ok {
			merged[i].Type = f.Type
			return
		}
		index[f.Name] = len(merged)
		merged = append(merged, f)
	}
	for _, fs := range b.mixins {
		for _, f := range fs {
			put(f)
		}
	}
	for _, f := range b.own {
		put(f)
	}
	ident := ""
	for _, f := range merged {
		if f.Type.Kind() != gqlskema.KindIdentifier {
			continue
		}
		if ident != "" {
			return nil, fmt.Errorf("dsl: model %s declares more than one identifier (%s, %s)", m.name, ident, f.Name)
		}
		ident = f.Name
	}
	m.fields = merged
	m.index = index
	m.identifier = ident
	m.sealed = true
	return m, nil
}

// MustBuild is Build that panics on error.
func (b *ModelBuilder) MustBuild() *ModelType {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// Compose merges models into a new model called name. Earlier models are
// treated as mixins of the last one: their fields come first and the last
// model's fields win on collision.
func Compose(name string, models ...*ModelType) (*ModelType, error) {
	b := Model(name)
	for i, m := range models {
		if i == len(models)-1 {
			for _, f := range m.fields {
				b.Field(f.Name, f.Type)
			}
			continue
		}
		b.Mixin(m.Fields()...)
	}
	return b.Build()
}
