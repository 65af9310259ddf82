package dsl

import (
	"context"
	"fmt"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/i18n"
)

// Collection stores instances of one model keyed by their identifier.
// Identifiers are unique within a collection.
type Collection struct {
	model *ModelType
	items map[string]*Object
	order []string
}

// NewCollection returns an empty collection for m. The model must declare an
// identifier field.
func NewCollection(m *ModelType) (*Collection, error) {
	if m == nil {
		return nil, fmt.Errorf("dsl: nil model")
	}
	if m.IdentifierField() == "" {
		return nil, fmt.Errorf("dsl: model %s has no identifier field", m.Name())
	}
	return &Collection{model: m, items: map[string]*Object{}}, nil
}

// Model returns the element model.
func (c *Collection) Model() *ModelType { return c.model }

// Put creates an instance from v and stores it under its identifier,
// replacing any instance with the same identifier.
func (c *Collection) Put(ctx context.Context, v any) (*Object, error) {
	o, id, err := c.create(ctx, v)
	if err != nil {
		return nil, err
	}
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = o
	return o, nil
}

// Add is Put that fails with duplicate_key when the identifier is taken.
func (c *Collection) Add(ctx context.Context, v any) (*Object, error) {
	o, id, err := c.create(ctx, v)
	if err != nil {
		return nil, err
	}
	if _, ok := c.items[id]; ok {
		return nil, gqlskema.Issues{{
			Path:    "/" + c.model.IdentifierField(),
			Code:    gqlskema.CodeDuplicateKey,
			Message: i18n.T(gqlskema.CodeDuplicateKey, nil),
			Hint:    "identifier " + id + " already present",
		}}
	}
	c.order = append(c.order, id)
	c.items[id] = o
	return o, nil
}

func (c *Collection) create(ctx context.Context, v any) (*Object, string, error) {
	out, err := gqlskema.Create(ctx, c.model, v)
	if err != nil {
		return nil, "", err
	}
	o := out.(*Object)
	id, ok := o.Identifier()
	if !ok {
		return nil, "", fmt.Errorf("dsl: %s instance has no identifier value", c.model.Name())
	}
	return o, id, nil
}

// Get looks an instance up by identifier.
func (c *Collection) Get(id string) (*Object, bool) {
	o, ok := c.items[id]
	return o, ok
}

// Delete removes an instance and reports whether it existed.
func (c *Collection) Delete(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored instances.
func (c *Collection) Len() int { return len(c.items) }

// Keys returns identifiers in insertion order.
func (c *Collection) Keys() []string { return append([]string(nil), c.order...) }
