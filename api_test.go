package gqlskema_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gqlskema "github.com/reoring/gqlskema"
	g "github.com/reoring/gqlskema/dsl"
)

func testModel() *g.ModelType {
	return g.Model("User").
		Field("id", g.Identifier()).
		Field("age", g.Nullable(g.Number())).
		Field("tags", g.Nullable(g.Array(g.String()))).
		MustBuild()
}

func TestCreate_SafeCreate_Is(t *testing.T) {
	ctx := context.Background()
	m := testModel()

	if _, err := gqlskema.Create(ctx, m, map[string]any{"id": "u1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := gqlskema.SafeCreate(ctx, m, map[string]any{"id": 1}); ok {
		t.Fatalf("SafeCreate must fail for invalid id")
	}
	if !gqlskema.Is(ctx, m, map[string]any{"id": "u1", "tags": []string{"a"}}) {
		t.Fatalf("Is must accept a valid value")
	}
	if _, err := gqlskema.Create(ctx, nil, "x"); err == nil {
		t.Fatalf("nil descriptor must fail")
	}
}

func TestConversionError(t *testing.T) {
	ctx := context.Background()
	_, err := gqlskema.Create(ctx, testModel(), map[string]any{"age": "old", "zzz": true})
	if err == nil {
		t.Fatalf("expected error")
	}
	var ce *gqlskema.ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConversionError, got %T", err)
	}
	if ce.Type != "User" || !errors.Is(err, gqlskema.ErrConversion) || errors.Is(err, gqlskema.ErrSyntax) {
		t.Fatalf("unexpected conversion error: %#v", ce)
	}
	codes := map[string]string{}
	for _, it := range ce.Issues {
		codes[it.Path] = it.Code
	}
	want := map[string]string{"/id": gqlskema.CodeRequired, "/age": gqlskema.CodeInvalidType, "/zzz": gqlskema.CodeUnknownKey}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(err.Error(), "Error while converting `map[") || !strings.Contains(err.Error(), "to `User`") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestParseJSON(t *testing.T) {
	ctx := context.Background()
	m := testModel()

	v, err := gqlskema.ParseJSON(ctx, m, []byte(`{"id":"u1","age":12345678901234567890,"tags":["a"]}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	age, _ := v.(*g.Object).Get("age")
	if age != json.Number("12345678901234567890") {
		t.Fatalf("numbers must keep precision, got %#v", age)
	}

	_, err = gqlskema.ParseJSON(ctx, m, []byte(`{"id":`))
	iss, ok := gqlskema.AsIssues(err)
	if !ok || iss[0].Code != gqlskema.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseJSON_DuplicateKeys(t *testing.T) {
	ctx := context.Background()
	_, err := gqlskema.ParseJSON(ctx, testModel(), []byte(`{"id":"u1","tags":["a"],"id":"u2"}`))
	iss, ok := gqlskema.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != gqlskema.CodeDuplicateKey || iss[0].Path != "/id" {
		t.Fatalf("expected duplicate_key at /id, got %v", err)
	}
}

func TestIssues_ErrorAndRebase(t *testing.T) {
	iss := gqlskema.Issues{
		{Path: "/", Code: "a"},
		{Path: "/x", Code: "b"},
		{Path: "y", Code: "c"},
		{Path: "/z", Code: "d"},
	}
	if got := iss.Error(); got != "a at /; b at /x; c at y; ... (total 4)" {
		t.Fatalf("unexpected summary: %s", got)
	}
	var paths []string
	for _, it := range gqlskema.Rebase("/f", iss) {
		paths = append(paths, it.Path)
	}
	if diff := cmp.Diff([]string{"/f", "/f/x", "/f/y", "/f/z"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	plain := gqlskema.Rebase("/f", errors.New("boom"))
	if len(plain) != 1 || plain[0].Code != gqlskema.CodeParseError || plain[0].Path != "/f" {
		t.Fatalf("unexpected rebase of plain error: %v", plain)
	}
	if gqlskema.Rebase("/f", nil) != nil {
		t.Fatalf("nil error must rebase to nil")
	}
}

func TestSyntaxError(t *testing.T) {
	cause := errors.New("lexer")
	err := error(&gqlskema.SyntaxError{Source: "s.graphql", Line: 2, Column: 5, Msg: "Expected Name, found <EOF>", Cause: cause})
	if err.Error() != "Syntax Error: Expected Name, found <EOF> (s.graphql:2:5)" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, gqlskema.ErrSyntax) || !errors.Is(err, cause) {
		t.Fatalf("errors.Is must match the sentinel and the cause")
	}
	noLoc := &gqlskema.SyntaxError{Msg: "x"}
	if noLoc.Error() != "Syntax Error: x" {
		t.Fatalf("unexpected message: %s", noLoc.Error())
	}
}

func TestExportJSONSchema_Leaf(t *testing.T) {
	s, err := gqlskema.ExportJSONSchema(g.Nullable(g.String()))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.AnyOf) != 2 || s.AnyOf[0].Type != "string" || s.AnyOf[1].Type != "null" || s.Defs != nil {
		t.Fatalf("unexpected schema: %#v", s)
	}
}
