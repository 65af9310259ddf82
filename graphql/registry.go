package graphql

import (
	"fmt"
	"sort"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/dsl"
)

// registry maps declared names to descriptors for one compilation. Entries
// are written once, before the descriptor's members are resolved, so
// re-entrant lookups find the in-progress handle.
type registry struct {
	entries map[string]gqlskema.Descriptor
	order   []string
}

func newRegistry() *registry {
	return &registry{entries: map[string]gqlskema.Descriptor{}}
}

func (r *registry) get(name string) (gqlskema.Descriptor, bool) {
	d, ok := r.entries[name]
	return d, ok
}

func (r *registry) set(name string, d gqlskema.Descriptor) {
	if _, dup := r.entries[name]; dup {
		panic(fmt.Sprintf("graphql: %s registered twice", name))
	}
	r.entries[name] = d
	r.order = append(r.order, name)
}

func (r *registry) len() int { return len(r.entries) }

// registered lists names in registration order.
func (r *registry) registered() []string { return append([]string(nil), r.order...) }

func (r *registry) types() Types {
	out := make(Types, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// Types is the result of a compilation: every reached declaration by name.
type Types map[string]gqlskema.Descriptor

// Names returns the declared names in sorted order.
func (t Types) Names() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Model returns the named model.
func (t Types) Model(name string) (*dsl.ModelType, bool) {
	m, ok := t[name].(*dsl.ModelType)
	return m, ok
}

// Enum returns the named enumeration.
func (t Types) Enum(name string) (*dsl.EnumType, bool) {
	e, ok := t[name].(*dsl.EnumType)
	return e, ok
}

// Union returns the named union.
func (t Types) Union(name string) (*dsl.UnionType, bool) {
	u, ok := t[name].(*dsl.UnionType)
	return u, ok
}
