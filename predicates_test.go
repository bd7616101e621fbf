package goparl_test

import (
	"encoding/json"
	"testing"

	"github.com/reoring/goparl"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		pred func(any) bool
		ok   []any
		bad  []any
	}{
		{"text", goparl.IsText, []any{"", "x"}, []any{nil, 1, []any{"x"}}},
		{"integer", goparl.IsInteger,
			[]any{json.Number("0"), json.Number("-12"), 3, int64(4), uint8(5), 2.0},
			[]any{json.Number("1.0"), json.Number("1e3"), 2.5, "1", true, nil}},
		{"float", goparl.IsFloat,
			[]any{json.Number("1.5"), json.Number("-2E-3"), json.Number("1.0"), 2.0, float32(1)},
			[]any{json.Number("1"), 1, "1.5", nil}},
		{"boolean", goparl.IsBoolean, []any{true, false}, []any{"true", 0, nil}},
		{"list", goparl.IsList, []any{[]any{}, []any{1, "a"}}, []any{[]string{"a"}, map[string]any{}, nil}},
		{"list of text", goparl.IsListOfText, []any{[]any{}, []any{"a", "b"}}, []any{[]any{"a", 1}, "a", nil}},
		{"date", goparl.IsDate, []any{"2013-01-04"}, []any{"2013-1-4", "04.01.2013", "2013-01-04T00:00:00+01:00", 20130104}},
		{"datetime", goparl.IsDateTime,
			[]any{"2012-08-16T14:05:27+02:00", "2012-08-16T14:05:27-05:00"},
			[]any{"2012-08-16T14:05:27Z", "2012-08-16T14:05:27.5+02:00", "2012-08-16 14:05:27+02:00", "2012-08-16"}},
		{"url", goparl.IsURL, []any{"http://x", "https://example.org/a?b"}, []any{"ftp://x", "www.example.org", "HTTP://x", nil}},
		{"email", goparl.IsEmail, []any{"a@b", "@", "max@mustermann.de"}, []any{"ab", "a@b@c", 1}},
		{"phone", goparl.IsPhoneNumber, []any{"", "+49 221 0"}, []any{4922100, nil}},
		{"sha1", goparl.IsSHA1Checksum, []any{"da39a3ee5e6b4b0d3255bfef95601890afd80709"}, []any{"DA39A3EE5E6B4B0D3255BFEF95601890AFD80709", "abc", nil}},
		{"regional code", goparl.IsRegionalCode, []any{"053150000000"}, []any{"05315000000", "0531500000000", "05315000000a", 53150000000}},
	}
	for _, tc := range cases {
		for _, v := range tc.ok {
			if !tc.pred(v) {
				t.Fatalf("%s: expected %#v to match", tc.name, v)
			}
		}
		for _, v := range tc.bad {
			if tc.pred(v) {
				t.Fatalf("%s: expected %#v not to match", tc.name, v)
			}
		}
	}
}
