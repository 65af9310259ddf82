package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	gqlskema "github.com/reoring/gqlskema"
	g "github.com/reoring/gqlskema/dsl"
)

func TestStringDescriptor_Basic(t *testing.T) {
	s := g.String()
	ctx := context.Background()

	v, err := s.Parse(ctx, "hello")
	if err != nil || v != "hello" {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}

	_, err = s.Parse(ctx, 1)
	if err == nil {
		t.Fatalf("expected error for invalid type")
	}
	if iss, ok := gqlskema.AsIssues(err); ok {
		if len(iss) == 0 || iss[0].Code != gqlskema.CodeInvalidType {
			t.Fatalf("expected invalid_type, got %v", iss)
		}
	} else {
		t.Fatalf("expected Issues error, got %v", err)
	}
}

func TestNumberDescriptor_AcceptsNumericKinds(t *testing.T) {
	type celsius float64
	n := g.Number()
	ctx := context.Background()

	for _, in := range []any{1, int64(2), uint8(3), 1.5, float32(2.5), json.Number("42.1"), celsius(20)} {
		if _, err := n.Parse(ctx, in); err != nil {
			t.Fatalf("%T(%v): unexpected err: %v", in, in, err)
		}
	}
	for _, in := range []any{"1", json.Number("abc"), nil, true} {
		if _, err := n.Parse(ctx, in); err == nil {
			t.Fatalf("%T(%v): expected error", in, in)
		}
	}
}

func TestBooleanDescriptor_Basic(t *testing.T) {
	b := g.Boolean()
	ctx := context.Background()

	v, err := b.Parse(ctx, true)
	if err != nil || v != true {
		t.Fatalf("parse ok expected, got v=%v err=%v", v, err)
	}
	if _, err := b.Parse(ctx, "true"); err == nil {
		t.Fatalf("expected error for string input")
	}
}

func TestIdentifierAndFrozen(t *testing.T) {
	ctx := context.Background()

	id := g.Identifier()
	if id.Name() != "identifier" || id.Kind() != gqlskema.KindIdentifier {
		t.Fatalf("unexpected identifier descriptor: %s/%s", id.Name(), id.Kind())
	}
	if _, err := id.Parse(ctx, 10); err == nil {
		t.Fatalf("identifier must reject numbers")
	}

	fr := g.Frozen()
	if fr.Name() != "frozen" || fr.Kind() != gqlskema.KindOpaque {
		t.Fatalf("unexpected frozen descriptor: %s/%s", fr.Name(), fr.Kind())
	}
	for _, in := range []any{nil, "x", map[string]any{"a": []any{1}}} {
		if !gqlskema.Is(ctx, fr, in) {
			t.Fatalf("frozen must accept %v", in)
		}
	}
	if !g.IsNullable(fr) {
		t.Fatalf("frozen admits nil")
	}
}

func TestWrapperNames(t *testing.T) {
	s := g.String()
	got := map[string]string{
		"[String]":     g.Nullable(g.Array(g.Nullable(s))).Name(),
		"[String!]":    g.Nullable(g.Array(s)).Name(),
		"[String]!":    g.Array(g.Nullable(s)).Name(),
		"[String!]!":   g.Array(s).Name(),
		"[[String!]]!": g.Array(g.Nullable(g.Array(s))).Name(),
	}
	want := map[string]string{
		"[String]":     "((string | null)[] | null)",
		"[String!]":    "(string[] | null)",
		"[String]!":    "(string | null)[]",
		"[String!]!":   "string[]",
		"[[String!]]!": "(string[] | null)[]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestArray_ParseAndIssuePaths(t *testing.T) {
	ctx := context.Background()
	a := g.Array(g.String())

	v, err := a.Parse(ctx, []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff([]any{"a", "b"}, v); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}

	_, err = a.Parse(ctx, []any{"a", 1, "c", false})
	iss, ok := gqlskema.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", err)
	}
	if iss[0].Path != "/1" || iss[1].Path != "/3" {
		t.Fatalf("unexpected paths: %s %s", iss[0].Path, iss[1].Path)
	}

	if _, err := a.Parse(ctx, "nope"); err == nil {
		t.Fatalf("expected invalid_type for non-slice")
	}
	if _, err := a.Parse(ctx, nil); err == nil {
		t.Fatalf("array without nullable wrapper must reject nil")
	}
}

func TestNullable_AcceptsNil(t *testing.T) {
	ctx := context.Background()
	n := g.Nullable(g.Number())

	v, err := n.Parse(ctx, nil)
	if err != nil || v != nil {
		t.Fatalf("nil expected, got v=%v err=%v", v, err)
	}
	if _, err := n.Parse(ctx, "x"); err == nil {
		t.Fatalf("inner type still applies")
	}
	if n.Elem().Name() != "number" {
		t.Fatalf("unexpected elem: %s", n.Elem().Name())
	}
}
