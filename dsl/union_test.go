package dsl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	gqlskema "github.com/reoring/gqlskema"
	g "github.com/reoring/gqlskema/dsl"
)

func TestEnumeration(t *testing.T) {
	ctx := context.Background()
	e := g.Enumeration("TestEnum", "FOO", "BAR")

	if e.Name() != "TestEnum" {
		t.Fatalf("unexpected name: %s", e.Name())
	}
	v, err := gqlskema.Create(ctx, e, "FOO")
	if err != nil || v != "FOO" {
		t.Fatalf("FOO expected, got v=%v err=%v", v, err)
	}

	_, err = gqlskema.Create(ctx, e, "BOO")
	if !errors.Is(err, gqlskema.ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
	iss, _ := gqlskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != gqlskema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", iss)
	}
	if diff := cmp.Diff([]string{"FOO", "BAR"}, e.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func fooBar(t *testing.T) (*g.ModelType, *g.ModelType, *g.UnionType) {
	t.Helper()
	foo := g.Model("Foo").Field("foo", g.Nullable(g.String())).MustBuild()
	bar := g.Model("Bar").Field("bar", g.Nullable(g.String())).MustBuild()
	u := g.Union("FooBar").Alternative(foo).Alternative(bar).Build()
	return foo, bar, u
}

func TestUnion_ShapeSelectsAlternative(t *testing.T) {
	ctx := context.Background()
	foo, bar, u := fooBar(t)

	v, err := u.Parse(ctx, map[string]any{"foo": "foo"})
	if err != nil || v.(*g.Object).Model() != foo {
		t.Fatalf("expected Foo instance, got %v err=%v", v, err)
	}
	v, err = u.Parse(ctx, map[string]any{"bar": "bar"})
	if err != nil || v.(*g.Object).Model() != bar {
		t.Fatalf("expected Bar instance, got %v err=%v", v, err)
	}

	_, err = u.Parse(ctx, map[string]any{"baz": 1})
	iss, _ := gqlskema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != gqlskema.CodeUnionNoMatch {
		t.Fatalf("expected union_no_match, got %v", err)
	}
}

func TestUnion_AcceptsMemberInstance(t *testing.T) {
	ctx := context.Background()
	_, bar, u := fooBar(t)
	other := g.Model("Other").Field("bar", g.Nullable(g.String())).MustBuild()

	inst, _ := gqlskema.Create(ctx, bar, map[string]any{"bar": "bar"})
	v, err := u.Parse(ctx, inst)
	if err != nil || v != inst {
		t.Fatalf("member instance must pass through, got %v err=%v", v, err)
	}

	foreign, _ := gqlskema.Create(ctx, other, map[string]any{"bar": "bar"})
	if _, err := u.Parse(ctx, foreign); err == nil {
		t.Fatalf("instance of a non-member model must be rejected")
	}
}

func TestUnion_InsideModel(t *testing.T) {
	ctx := context.Background()
	foo, _, u := fooBar(t)
	test := g.Model("Test").Field("baz", g.Nullable(u)).MustBuild()

	fooInst, _ := gqlskema.Create(ctx, foo, map[string]any{"foo": "foo"})
	v, err := gqlskema.Create(ctx, test, map[string]any{"baz": fooInst})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"baz": map[string]any{"foo": "foo"}}
	if diff := cmp.Diff(want, v.(*g.Object).Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestUnion_Names(t *testing.T) {
	foo, bar, u := fooBar(t)
	if u.Name() != "FooBar" {
		t.Fatalf("unexpected name: %s", u.Name())
	}
	anon := g.Union("").Alternative(foo).Alternative(bar).Build()
	if anon.Name() != "(Foo | Bar)" {
		t.Fatalf("unexpected anonymous name: %s", anon.Name())
	}
	if len(u.Alternatives()) != 2 {
		t.Fatalf("expected 2 alternatives")
	}
}

func TestUnionAndEnum_JSONSchemaDefs(t *testing.T) {
	_, _, u := fooBar(t)
	e := g.Enumeration("Color", "RED", "GREEN")
	test := g.Model("Test").Field("u", u).Field("c", g.Nullable(e)).MustBuild()

	s, err := gqlskema.ExportJSONSchema(test)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, name := range []string{"Test", "FooBar", "Foo", "Bar", "Color"} {
		if s.Defs[name] == nil {
			t.Fatalf("missing $defs/%s", name)
		}
	}
	if len(s.Defs["FooBar"].AnyOf) != 2 {
		t.Fatalf("union must list its alternatives: %#v", s.Defs["FooBar"])
	}
	if diff := cmp.Diff([]any{"RED", "GREEN"}, s.Defs["Color"].Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}
