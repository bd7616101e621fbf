package goparl

// Report is the outcome of one validation call. Valid is true exactly when
// Violations is empty.
type Report struct {
	Kind       Kind   `json:"kind"`
	Valid      bool   `json:"valid"`
	Violations Issues `json:"violations"`
}

// Err returns the violations as an error, or nil for a valid report.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	return r.Violations
}

// Validate checks a decoded JSON value against the rule table of kind. Every
// field rule and constraint is evaluated; violations are reported in table
// order. The only error is ErrUnknownKind, for a kind outside the closed set.
func Validate(kind Kind, v any, opts ...Opt) (Report, error) {
	s, err := Rules(kind)
	if err != nil {
		return Report{}, err
	}
	c := &vctx{opt: lastOpt(opts)}
	s.object().check(c, Root(), v)
	return newReport(kind, c.issues), nil
}

func newReport(kind Kind, iss Issues) Report {
	if iss == nil {
		iss = Issues{}
	}
	return Report{Kind: kind, Valid: len(iss) == 0, Violations: iss}
}

// Is reports whether v is a valid document of kind.
func Is(kind Kind, v any) bool {
	r, err := Validate(kind, v)
	return err == nil && r.Valid
}
