package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message; "detail" is
// appended after the base message when present.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var _dict = map[string]map[string]string{
	"en": {
		"required":              "required field missing",
		"invalid_type":          "wrong type or format",
		"invalid_enum":          "value not in the allowed set",
		"mutual_exclusion":      "exactly one of the fields must be present",
		"cross_field_invariant": "fields are inconsistent",
		"unsupported_variant":   "variant not supported",
		"parse_error":           "parse error",
		"duplicate_key":         "duplicate key",
		"truncated":             "truncated",
	},
	"de": {
		"required":              "Pflichtfeld fehlt",
		"invalid_type":          "Typ oder Format ungültig",
		"invalid_enum":          "Wert nicht zulässig",
		"mutual_exclusion":      "genau eines der Felder muss vorhanden sein",
		"cross_field_invariant": "Felder widersprechen sich",
		"unsupported_variant":   "Variante wird nicht unterstützt",
		"parse_error":           "Syntaxfehler",
		"duplicate_key":         "Schlüssel doppelt vorhanden",
		"truncated":             "Eingabe abgeschnitten",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := _dict[t.lang][code]
	if !ok {
		msg = code
	}
	if d := data["detail"]; d != "" {
		msg += ": " + d
	}
	return msg
}

type holder struct{ tr Translator }

var current atomic.Value // holds holder

func init() { current.Store(holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"de").
// Unknown languages fall back to English.
func SetLanguage(lang string) {
	if _, ok := _dict[lang]; !ok {
		lang = "en"
	}
	current.Store(holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().(holder).tr.Message(code, data)
}
