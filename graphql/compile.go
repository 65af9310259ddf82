package graphql

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	gqlskema "github.com/reoring/gqlskema"
	"github.com/reoring/gqlskema/internal/decl"
)

// Compile turns schema definitions into descriptors. source is SDL text
// (string or []byte), an *ast.Source, or an already parsed
// *ast.SchemaDocument. Malformed text yields a *gqlskema.SyntaxError before
// any type is compiled. References to unknown types are dropped and
// reported through Diag.
func Compile(source any, opts Options) (Types, Diag, error) {
	d := &simpleDiag{}
	var doc *ast.SchemaDocument
	switch t := source.(type) {
	case string:
		return compileSource(&ast.Source{Name: "schema.graphql", Input: t}, opts, d)
	case []byte:
		return compileSource(&ast.Source{Name: "schema.graphql", Input: string(t)}, opts, d)
	case *ast.Source:
		if t == nil {
			return nil, d, errors.New("graphql: nil source")
		}
		return compileSource(t, opts, d)
	case *ast.SchemaDocument:
		if t == nil {
			return nil, d, errors.New("graphql: nil document")
		}
		doc = t
	default:
		return nil, d, fmt.Errorf("graphql: unsupported source type %T", source)
	}
	return compileDocument(doc, opts, d)
}

// CompileFile reads and compiles an SDL file.
func CompileFile(path string, opts Options) (Types, Diag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simpleDiag{}, fmt.Errorf("graphql: reading schema: %w", err)
	}
	return compileSource(&ast.Source{Name: path, Input: string(data)}, opts, &simpleDiag{})
}

func compileSource(src *ast.Source, opts Options, d *simpleDiag) (Types, Diag, error) {
	doc, err := parser.ParseSchema(src)
	if err != nil {
		return nil, d, syntaxError(src, err)
	}
	if isEmpty(doc) {
		return nil, d, &gqlskema.SyntaxError{Source: src.Name, Line: 1, Column: 1, Msg: "Unexpected <EOF>"}
	}
	return compileDocument(doc, opts, d)
}

func isEmpty(doc *ast.SchemaDocument) bool {
	return len(doc.Definitions) == 0 && len(doc.Extensions) == 0 &&
		len(doc.Schema) == 0 && len(doc.SchemaExtension) == 0 && len(doc.Directives) == 0
}

func syntaxError(src *ast.Source, err error) error {
	se := &gqlskema.SyntaxError{Source: src.Name, Msg: err.Error(), Cause: err}
	var gerr *gqlerror.Error
	if errors.As(err, &gerr) {
		se.Msg = gerr.Message
		if len(gerr.Locations) > 0 {
			se.Line = gerr.Locations[0].Line
			se.Column = gerr.Locations[0].Column
		}
	}
	return se
}

// compiler holds the state of one compilation.
type compiler struct {
	doc    *decl.Document
	opts   Options
	reg    *registry
	diag   *simpleDiag
	logger log.Logger
	warned map[string]struct{}
	err    error
}

func compileDocument(doc *ast.SchemaDocument, opts Options, d *simpleDiag) (Types, Diag, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	dd, warns := decl.FromAST(doc)
	c := &compiler{
		doc:    dd,
		opts:   opts,
		reg:    newRegistry(),
		diag:   d,
		logger: logger,
		warned: map[string]struct{}{},
	}
	for _, w := range warns {
		d.warnf("%s", w)
		level.Debug(logger).Log("msg", "declaration skipped", "reason", w)
	}
	c.run()
	if c.err != nil {
		return nil, d, c.err
	}
	level.Debug(logger).Log("msg", "schema compiled", "declarations", dd.Len(), "types", c.reg.len(), "warnings", len(d.ws))
	level.Debug(logger).Log("msg", "registration order", "names", strings.Join(c.reg.registered(), ","))
	return c.reg.types(), d, nil
}

// run walks the categories in a fixed order. Interfaces and scalars are
// compiled on demand while these passes resolve fields.
func (c *compiler) run() {
	for _, d := range c.doc.Inputs {
		c.model(d)
	}
	for _, d := range c.doc.Objects {
		c.model(d)
	}
	for _, d := range c.doc.Unions {
		c.union(d)
	}
	for _, d := range c.doc.Enums {
		c.enum(d)
	}
}

func (c *compiler) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *compiler) skip(typ, field, reason string) {
	c.warnOnce("skipped", typ, field, reason)
}

// warnOnce records a warning and a debug line. Interface fields are
// resolved once per implementor, so repeats are collapsed.
func (c *compiler) warnOnce(msg, typ, field, reason string) {
	key := typ + "." + field + ": " + reason
	if _, seen := c.warned[key]; seen {
		return
	}
	c.warned[key] = struct{}{}
	if field == "" {
		c.diag.warnf("%s: %s", typ, reason)
	} else {
		c.diag.warnf("%s.%s: %s", typ, field, reason)
	}
	level.Debug(c.logger).Log("msg", msg, "type", typ, "field", field, "reason", reason)
}
