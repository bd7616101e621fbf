package i18n

import "testing"

func TestTranslator_DefaultAndGerman(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg != "required field missing" {
		t.Fatalf("unexpected english message %q", msg)
	}

	SetLanguage("de")
	if msg := T("required", map[string]string{"detail": "name"}); msg != "Pflichtfeld fehlt: name" {
		t.Fatalf("expected german message, got %q", msg)
	}

	// unknown languages fall back to en
	SetLanguage("ja")
	if msg := T("invalid_enum", nil); msg != "value not in the allowed set" {
		t.Fatalf("expected english fallback, got %q", msg)
	}

	SetLanguage("en")
}

func TestTranslator_EveryCodeTranslated(t *testing.T) {
	for code := range _dict["en"] {
		if _dict["de"][code] == "" {
			t.Fatalf("missing german message for %s", code)
		}
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes render as themselves, got %q", got)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if got := T("truncated", nil); got != "X:truncated" {
		t.Fatalf("custom translator not used, got %q", got)
	}
}
