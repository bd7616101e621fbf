package goparl

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// Predicates operate on decoded JSON values: map[string]any, []any, string,
// json.Number (or native Go numbers), bool and nil. None of them panics;
// ill-typed input yields false.

var (
	_intLiteralRe   = regexp.MustCompile(`^-?[0-9]+$`)
	_dateRe         = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	_dateTimeRe     = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}[+-][0-9]{2}:[0-9]{2}$`)
	_sha1Re         = regexp.MustCompile(`^[0-9a-f]{40}$`)
	_regionalCodeRe = regexp.MustCompile(`^[0-9]{12}$`)
)

// IsText reports whether v is a JSON string.
func IsText(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsInteger reports whether v is a JSON integer. For json.Number the literal
// decides: a literal with a fraction or exponent is a float.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		return _intLiteralRe.MatchString(string(n))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return !math.IsInf(n, 0) && n == math.Trunc(n)
	case float32:
		f := float64(n)
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	return false
}

// IsFloat reports whether v is a JSON number written with a fraction or an
// exponent. Native Go floats always qualify.
func IsFloat(v any) bool {
	switch n := v.(type) {
	case json.Number:
		if !strings.ContainsAny(string(n), ".eE") {
			return false
		}
		_, err := n.Float64()
		return err == nil
	case float64, float32:
		return true
	}
	return false
}

func isNumber(v any) bool { return IsInteger(v) || IsFloat(v) }

// IsBoolean reports whether v is a JSON boolean.
func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsList reports whether v is a JSON array.
func IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// IsListOfText reports whether v is a JSON array whose elements are all
// strings. The empty array qualifies.
func IsListOfText(v any) bool {
	l, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range l {
		if !IsText(e) {
			return false
		}
	}
	return true
}

func matchText(re *regexp.Regexp, v any) bool {
	s, ok := v.(string)
	return ok && re.MatchString(s)
}

// IsDate reports whether v is a string of the form YYYY-MM-DD.
func IsDate(v any) bool { return matchText(_dateRe, v) }

// IsDateTime reports whether v is a string of the form
// YYYY-MM-DDTHH:MM:SS±HH:MM. A bare date, a "Z" suffix or fractional
// seconds do not qualify.
func IsDateTime(v any) bool { return matchText(_dateTimeRe, v) }

// IsURL reports whether v is a string starting with http:// or https://.
func IsURL(v any) bool {
	s, ok := v.(string)
	return ok && (strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"))
}

// IsEmail reports whether v is a string containing exactly one "@".
func IsEmail(v any) bool {
	s, ok := v.(string)
	return ok && strings.Count(s, "@") == 1
}

// IsPhoneNumber accepts any string; no number format is enforced.
func IsPhoneNumber(v any) bool { return IsText(v) }

// IsSHA1Checksum reports whether v is 40 lowercase hexadecimal characters.
func IsSHA1Checksum(v any) bool { return matchText(_sha1Re, v) }

// IsRegionalCode reports whether v is exactly 12 decimal digits (the German
// Regionalschlüssel).
func IsRegionalCode(v any) bool { return matchText(_regionalCodeRe, v) }
