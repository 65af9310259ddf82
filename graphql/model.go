package graphql

import (
	"fmt"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/dsl"
	"github.com/reoring/gqlskema/internal/decl"
)

// model compiles an object, input or interface declaration. The handle is
// registered before any field is resolved.
func (c *compiler) model(d *decl.Declaration) *dsl.ModelType {
	if got, ok := c.reg.get(d.Name); ok {
		m, _ := got.(*dsl.ModelType)
		return m
	}
	b := dsl.Model(d.Name)
	c.reg.set(d.Name, b.Type())

	override := c.opts.Types[d.Name].Identifier
	own, hasID := c.fields(d, override)
	mixed := map[string]struct{}{}
	for _, name := range d.Interfaces {
		id, ok := c.doc.Lookup(name)
		if !ok || id.Kind != decl.KindInterface {
			c.skip(d.Name, "", "implemented "+name+" is not an interface")
			continue
		}
		// the interface is reachable through its implementors
		c.model(id)
		mf, _ := c.fields(id, c.mixinSetting(hasID, override, id.Name))
		// a field shared by several interfaces keeps its first definition
		kept := mf[:0]
		for _, f := range mf {
			if _, dup := mixed[f.Name]; dup {
				continue
			}
			mixed[f.Name] = struct{}{}
			if f.Type.Kind() == gqlskema.KindIdentifier {
				hasID = true
			}
			kept = append(kept, f)
		}
		b.Mixin(kept...)
	}
	for _, f := range own {
		b.Field(f.Name, f.Type)
	}
	m, err := b.Build()
	if err != nil {
		c.fail(fmt.Errorf("graphql: %s: %w", d.Name, err))
		return b.Type()
	}
	if name, ok := override.Field(); ok && m.IdentifierField() != name {
		c.warnOnce("identifier not applied", d.Name, name, "configured identifier is not a scalar ID field")
	}
	return m
}

// mixinSetting picks the identifier setting used when an interface's fields
// are merged into an implementing type. An identifier already present on the
// implementing type suppresses the interface's.
func (c *compiler) mixinSetting(hasID bool, override IdentifierSetting, iface string) IdentifierSetting {
	switch {
	case hasID:
		return NoIdentifier()
	case override.IsSet():
		return override
	}
	return c.opts.Types[iface].Identifier
}

// fields resolves d's own fields in declaration order. The first directly
// ID-typed field allowed by setting becomes the identifier; other ID fields
// fall back to strings.
func (c *compiler) fields(d *decl.Declaration, setting IdentifierSetting) ([]dsl.Field, bool) {
	out := make([]dsl.Field, 0, len(d.Fields))
	hasID := false
	for _, f := range d.Fields {
		if f.Ref == decl.RefIdentifier && !f.IsList() {
			if !hasID && setting.allows(f.Name) {
				out = append(out, dsl.Field{Name: f.Name, Type: dsl.Identifier()})
				hasID = true
				continue
			}
			t, _ := c.resolveField(d.Name, f)
			out = append(out, dsl.Field{Name: f.Name, Type: t})
			continue
		}
		t, ok := c.resolveField(d.Name, f)
		if !ok {
			continue
		}
		out = append(out, dsl.Field{Name: f.Name, Type: t})
	}
	return out, hasID
}
