package goparl

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes. Each entity-rule violation carries exactly one of these.
const (
	CodeRequired           = "required"
	CodeInvalidType        = "invalid_type"
	CodeInvalidEnum        = "invalid_enum"
	CodeMutualExclusion    = "mutual_exclusion"
	CodeCrossField         = "cross_field_invariant"
	CodeUnsupportedVariant = "unsupported_variant"

	// Decode-layer codes, produced before any entity rule runs.
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// ErrUnknownKind is returned when validation is requested for a kind outside
// the closed set of entity kinds.
var ErrUnknownKind = errors.New("goparl: unknown entity kind")

// ErrInvalidEnum is wrapped by the Parse* enumeration functions for
// unrecognized text.
var ErrInvalidEnum = errors.New("goparl: value not in enumeration")

// Issue represents a single violation.
type Issue struct {
	Path    string `json:"path"`           // JSON Pointer (for example: /organisations/0/start).
	Code    string `json:"code"`           // One of the codes listed above.
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"` // Expected type or format name, when known.
	// Params carries structured parameters (e.g., {"sum":1, "people":2}) for
	// i18n and reporting.
	Params map[string]any `json:"params,omitempty"`
}

func (i Issue) String() string {
	if i.Hint != "" {
		return fmt.Sprintf("%s: %s (%s, expected %s)", i.Path, i.Message, i.Code, i.Hint)
	}
	return fmt.Sprintf("%s: %s (%s)", i.Path, i.Message, i.Code)
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. required at /name
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ByCode returns the issues carrying the given code, in report order.
func (iss Issues) ByCode(code string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Code == code {
			out = append(out, it)
		}
	}
	return out
}

// At returns the issues reported at exactly the given JSON Pointer.
func (iss Issues) At(path string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Path == path {
			out = append(out, it)
		}
	}
	return out
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
