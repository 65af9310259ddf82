package graphql

import (
	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/dsl"
	"github.com/reoring/gqlskema/internal/decl"
)

// resolveField builds the descriptor of a field from its base type and its
// modifiers. It reports false when the referenced type is unknown.
//
// Wrapping runs from the innermost items outwards: each list level first
// admits null for its items unless they are non-null, then becomes an
// array; the field itself is made nullable last.
func (c *compiler) resolveField(owner string, f decl.Field) (gqlskema.Descriptor, bool) {
	t, ok := c.base(owner, f)
	if !ok {
		return nil, false
	}
	for i := f.ListDepth(); i >= 1; i-- {
		if !f.NonNull[i] {
			t = dsl.Nullable(t)
		}
		t = dsl.Array(t)
	}
	if !f.Required() {
		t = dsl.Nullable(t)
	}
	return t, true
}

func (c *compiler) base(owner string, f decl.Field) (gqlskema.Descriptor, bool) {
	switch f.Ref {
	case decl.RefPrimitive:
		return primitive(f.TypeName), true
	case decl.RefIdentifier:
		// identifier semantics are assigned by the model builder only
		return dsl.String(), true
	case decl.RefScalar:
		return c.scalar(f.TypeName), true
	case decl.RefObject, decl.RefInput, decl.RefInterface:
		d, _ := c.doc.Lookup(f.TypeName)
		return c.model(d), true
	case decl.RefUnion:
		d, _ := c.doc.Lookup(f.TypeName)
		return c.union(d), true
	case decl.RefEnum:
		d, _ := c.doc.Lookup(f.TypeName)
		return c.enum(d), true
	case decl.RefUnknown:
	}
	c.skip(owner, f.Name, "unknown type "+f.TypeName)
	return nil, false
}

func primitive(name string) gqlskema.Descriptor {
	switch name {
	case "Int", "Float":
		return dsl.Number()
	case "Boolean":
		return dsl.Boolean()
	}
	return dsl.String()
}

func (c *compiler) scalar(name string) gqlskema.Descriptor {
	if got, ok := c.reg.get(name); ok {
		return got
	}
	d := dsl.Frozen()
	c.reg.set(name, d)
	return d
}

func (c *compiler) enum(d *decl.Declaration) *dsl.EnumType {
	if got, ok := c.reg.get(d.Name); ok {
		e, _ := got.(*dsl.EnumType)
		return e
	}
	e := dsl.Enumeration(d.Name, d.Values...)
	c.reg.set(d.Name, e)
	return e
}

// union registers the handle before its members so a member model that
// refers back to the union terminates.
func (c *compiler) union(d *decl.Declaration) *dsl.UnionType {
	if got, ok := c.reg.get(d.Name); ok {
		u, _ := got.(*dsl.UnionType)
		return u
	}
	b := dsl.Union(d.Name)
	c.reg.set(d.Name, b.Type())
	for _, name := range d.Members {
		md, ok := c.doc.Lookup(name)
		if !ok || md.Kind != decl.KindObject {
			c.skip(d.Name, "", "member "+name+" is not an object type")
			continue
		}
		b.Alternative(c.model(md))
	}
	return b.Build()
}
