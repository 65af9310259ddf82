package decl

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// FromAST converts a parsed schema document. Type extensions are merged into
// their base declaration. Definitions that cannot be represented are skipped
// and reported in the returned warnings.
func FromAST(src *ast.SchemaDocument) (*Document, []string) {
	doc := NewDocument()
	var warns []string
	if src == nil {
		return doc, nil
	}
	for _, def := range src.Definitions {
		if IsBuiltin(def.Name) {
			warns = append(warns, fmt.Sprintf("%s: builtin scalar cannot be redeclared", def.Name))
			continue
		}
		d, ok := convert(def, &warns)
		if !ok {
			warns = append(warns, fmt.Sprintf("%s: unsupported definition kind %q", def.Name, def.Kind))
			continue
		}
		if !doc.Add(d) {
			warns = append(warns, fmt.Sprintf("%s: duplicate declaration ignored", def.Name))
		}
	}
	for _, ext := range src.Extensions {
		base, ok := doc.Lookup(ext.Name)
		if !ok {
			warns = append(warns, fmt.Sprintf("%s: extension without base declaration", ext.Name))
			continue
		}
		e, ok := convert(ext, &warns)
		if !ok || e.Kind != base.Kind {
			warns = append(warns, fmt.Sprintf("%s: extension kind %q does not match %s", ext.Name, ext.Kind, base.Kind))
			continue
		}
		merge(base, e)
	}
	// classify references once every declaration is known
	for _, d := range doc.byName {
		for i := range d.Fields {
			d.Fields[i].Ref = doc.RefOf(d.Fields[i].TypeName)
		}
	}
	return doc, warns
}

func convert(def *ast.Definition, warns *[]string) (*Declaration, bool) {
	d := &Declaration{Name: def.Name}
	switch def.Kind {
	case ast.Object:
		d.Kind = KindObject
		d.Fields = convertFields(def, warns)
		d.Interfaces = append([]string(nil), def.Interfaces...)
	case ast.Interface:
		d.Kind = KindInterface
		d.Fields = convertFields(def, warns)
		d.Interfaces = append([]string(nil), def.Interfaces...)
	case ast.InputObject:
		d.Kind = KindInputObject
		d.Fields = convertFields(def, warns)
	case ast.Union:
		d.Kind = KindUnion
		d.Members = append([]string(nil), def.Types...)
	case ast.Enum:
		d.Kind = KindEnum
		for _, v := range def.EnumValues {
			d.Values = append(d.Values, v.Name)
		}
	case ast.Scalar:
		d.Kind = KindScalar
	default:
		return nil, false
	}
	return d, true
}

func convertFields(def *ast.Definition, warns *[]string) []Field {
	out := make([]Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		if fd.Type == nil {
			*warns = append(*warns, fmt.Sprintf("%s.%s: field without type", def.Name, fd.Name))
			continue
		}
		name, nonNull := flatten(fd.Type)
		out = append(out, Field{Name: fd.Name, TypeName: name, NonNull: nonNull})
	}
	return out
}

// flatten walks list wrappers from the outside in.
func flatten(t *ast.Type) (string, []bool) {
	var nonNull []bool
	for t.Elem != nil {
		nonNull = append(nonNull, t.NonNull)
		t = t.Elem
	}
	return t.NamedType, append(nonNull, t.NonNull)
}

func merge(base, ext *Declaration) {
	base.Fields = append(base.Fields, ext.Fields...)
	base.Interfaces = appendUnique(base.Interfaces, ext.Interfaces...)
	base.Members = appendUnique(base.Members, ext.Members...)
	base.Values = appendUnique(base.Values, ext.Values...)
}

func appendUnique(dst []string, more ...string) []string {
	for _, s := range more {
		dup := false
		for _, have := range dst {
			if have == s {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}
