package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Defs holds named definitions at the document root.
	Defs Definitions `json:"$defs,omitempty"`
}

// Definitions collects named schemas while a descriptor graph is projected.
// Named descriptors register themselves here and are referenced via $ref, so
// cyclic graphs terminate.
type Definitions map[string]*Schema

// RefTo returns a schema that references the named definition.
func RefTo(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Null is the schema accepting only JSON null.
func Null() *Schema { return &Schema{Type: "null"} }
