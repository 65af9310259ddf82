package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_enum", nil); msg == "invalid_enum" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("union_no_match", nil); msg == "value matches no union alternative" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_ExpectedAndUnknownCode(t *testing.T) {
	if got, want := T("invalid_type", map[string]string{"expected": "string"}), "invalid type (expected string)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes fall back to the code, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X-" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("required", nil); got != "X-required" {
		t.Fatalf("custom translator not used, got %q", got)
	}
}
