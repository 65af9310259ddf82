package gqlskema

// Kind identifies the variant of a Descriptor.
type Kind int

const (
	KindPrimitive  Kind = iota // string, number, boolean
	KindIdentifier             // lookup-key string field
	KindOpaque                 // unchecked passthrough (custom scalars)
	KindNullable               // wraps another descriptor and admits null
	KindArray                  // homogeneous list
	KindModel                  // named record
	KindEnum                   // closed string set
	KindUnion                  // alternatives over models
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindIdentifier:
		return "identifier"
	case KindOpaque:
		return "opaque"
	case KindNullable:
		return "nullable"
	case KindArray:
		return "array"
	case KindModel:
		return "model"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	}
	return "unknown"
}
