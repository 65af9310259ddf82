// Package decl defines the closed declaration model consumed by the schema
// compiler. This package is internal and not part of the public API.
package decl

// Kind identifies a declaration category.
type Kind int

const (
	KindObject Kind = iota
	KindInterface
	KindInputObject
	KindUnion
	KindEnum
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "type"
	case KindInterface:
		return "interface"
	case KindInputObject:
		return "input"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindScalar:
		return "scalar"
	}
	return "unknown"
}

// RefKind classifies what a field's named type refers to.
type RefKind int

const (
	RefUnknown    RefKind = iota
	RefPrimitive          // String, Int, Float, Boolean
	RefIdentifier         // ID
	RefObject
	RefInput
	RefInterface
	RefUnion
	RefEnum
	RefScalar
)

func (r RefKind) String() string {
	switch r {
	case RefPrimitive:
		return "primitive"
	case RefIdentifier:
		return "identifier"
	case RefObject:
		return "object"
	case RefInput:
		return "input"
	case RefInterface:
		return "interface"
	case RefUnion:
		return "union"
	case RefEnum:
		return "enum"
	case RefScalar:
		return "scalar"
	}
	return "unknown"
}

// Declaration is one named schema definition. Only the members relevant to
// Kind are populated.
type Declaration struct {
	Kind       Kind
	Name       string
	Fields     []Field  // object, interface, input
	Interfaces []string // object, interface
	Members    []string // union
	Values     []string // enum
}

// Field is a field declaration with its type modifiers flattened.
// NonNull[0] is the non-null flag of the field itself, NonNull[i] the flag
// of the items at list level i. A plain `foo: T` has len(NonNull) == 1.
type Field struct {
	Name     string
	TypeName string
	Ref      RefKind
	NonNull  []bool
}

// ListDepth returns the number of list wrappers.
func (f Field) ListDepth() int {
	if len(f.NonNull) == 0 {
		return 0
	}
	return len(f.NonNull) - 1
}

// IsList reports whether the field is a list at any depth.
func (f Field) IsList() bool { return f.ListDepth() > 0 }

// Required reports whether the field itself is non-null.
func (f Field) Required() bool { return len(f.NonNull) > 0 && f.NonNull[0] }

// ListRequired reports whether the outermost list is non-null.
func (f Field) ListRequired() bool { return f.IsList() && f.NonNull[0] }

// ElemRequired reports whether the innermost items are non-null.
func (f Field) ElemRequired() bool { return f.IsList() && f.NonNull[len(f.NonNull)-1] }

// Builtin names resolved without a declaration.
var builtins = map[string]RefKind{
	"String":  RefPrimitive,
	"Int":     RefPrimitive,
	"Float":   RefPrimitive,
	"Boolean": RefPrimitive,
	"ID":      RefIdentifier,
}

// IsBuiltin reports whether name is a builtin scalar.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// Document groups declarations by category, each in declaration order.
type Document struct {
	Inputs     []*Declaration
	Objects    []*Declaration
	Interfaces []*Declaration
	Unions     []*Declaration
	Enums      []*Declaration
	Scalars    []*Declaration

	byName map[string]*Declaration
}

// NewDocument returns an empty document.
func NewDocument() *Document { return &Document{byName: map[string]*Declaration{}} }

// Add registers d. It returns false when the name is already taken.
func (doc *Document) Add(d *Declaration) bool {
	if _, dup := doc.byName[d.Name]; dup {
		return false
	}
	doc.byName[d.Name] = d
	switch d.Kind {
	case KindObject:
		doc.Objects = append(doc.Objects, d)
	case KindInterface:
		doc.Interfaces = append(doc.Interfaces, d)
	case KindInputObject:
		doc.Inputs = append(doc.Inputs, d)
	case KindUnion:
		doc.Unions = append(doc.Unions, d)
	case KindEnum:
		doc.Enums = append(doc.Enums, d)
	case KindScalar:
		doc.Scalars = append(doc.Scalars, d)
	}
	return true
}

// Lookup returns the declaration called name.
func (doc *Document) Lookup(name string) (*Declaration, bool) {
	d, ok := doc.byName[name]
	return d, ok
}

// Len returns the number of declarations.
func (doc *Document) Len() int { return len(doc.byName) }

// RefOf classifies a referenced type name against builtins and the
// document's declarations.
func (doc *Document) RefOf(name string) RefKind {
	if r, ok := builtins[name]; ok {
		return r
	}
	d, ok := doc.byName[name]
	if !ok {
		return RefUnknown
	}
	switch d.Kind {
	case KindObject:
		return RefObject
	case KindInterface:
		return RefInterface
	case KindInputObject:
		return RefInput
	case KindUnion:
		return RefUnion
	case KindEnum:
		return RefEnum
	case KindScalar:
		return RefScalar
	}
	return RefUnknown
}
