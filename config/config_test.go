package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/gqlskema/config"
	"github.com/reoring/gqlskema/graphql"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "gqlskema.yaml", `
types:
  Test:
    identifier: bar
  Audit:
    identifier: null
`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name, ok := c.Types["Test"].Identifier.Field(); !ok || name != "bar" {
		t.Fatalf("expected bar, got %v", c.Types["Test"].Identifier)
	}
	if !c.Types["Audit"].Identifier.Disabled() {
		t.Fatalf("expected disabled identifier for Audit")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "gqlskema.json", `{"types":{"Test":{"identifier":"bar"}}}`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Types["Test"].Identifier.String() != "bar" {
		t.Fatalf("expected bar, got %v", c.Types["Test"].Identifier)
	}
}

func TestLoad_UnknownExtensionFallsBack(t *testing.T) {
	path := writeFile(t, "gqlskema.conf", `{"types":{"Test":{"identifier":null}}}`)
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Types["Test"].Identifier.Disabled() {
		t.Fatalf("expected disabled identifier")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected read error")
	}
	path := writeFile(t, "bad.yaml", "types:\n  Test:\n    identifer: bar\n")
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestConfig_OptionsDriveCompilation(t *testing.T) {
	path := writeFile(t, "gqlskema.yml", "types:\n  Test:\n    identifier: bar\n")
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	types, _, err := graphql.Compile(`type Test { foo: ID! bar: ID }`, c.Options(nil))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	m, _ := types.Model("Test")
	if m.IdentifierField() != "bar" {
		t.Fatalf("expected bar identifier, got %q", m.IdentifierField())
	}
}
