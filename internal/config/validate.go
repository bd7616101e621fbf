package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/reoring/goparl"
	"github.com/reoring/goparl/examples"
)

// FieldError is a validation error for one manifest field.
type FieldError struct {
	// Field is the dotted path of the field (e.g., "cases[2].kind").
	Field   string
	Message string
}

func (e FieldError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// ValidationError collects every FieldError of a manifest.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "manifest validation failed: " + e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "manifest validation failed with %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(fe.Error())
	}
	return sb.String()
}

var _languages = []string{"en", "de"}

// Validate checks every field and returns a ValidationError listing all
// problems, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError
	if !slices.Contains(_languages, cfg.Language) {
		errs = append(errs, FieldError{"language", fmt.Sprintf("must be one of %s, got %q", strings.Join(_languages, ", "), cfg.Language)})
	}
	if _, err := ParseSeverity(cfg.DuplicateKeys); err != nil {
		errs = append(errs, FieldError{"duplicate_keys", err.Error()})
	}
	if cfg.MaxDepth < 0 {
		errs = append(errs, FieldError{"max_depth", "must not be negative"})
	}
	if cfg.MaxBytes < 0 {
		errs = append(errs, FieldError{"max_bytes", "must not be negative"})
	}
	for i, c := range cfg.Cases {
		field := fmt.Sprintf("cases[%d]", i)
		if c.File == "" {
			errs = append(errs, FieldError{field + ".file", "is required"})
			continue
		}
		if _, err := c.ResolveKind(); err != nil {
			errs = append(errs, FieldError{field + ".kind", err.Error()})
		}
	}
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// ResolveKind returns the case's kind, inferring it from the file name when
// Kind is empty.
func (c Case) ResolveKind() (goparl.Kind, error) {
	if c.Kind != "" {
		return goparl.ParseKind(c.Kind)
	}
	return examples.KindForFile(c.File)
}

// ParseSeverity maps ignore, warn and error to their goparl severities.
func ParseSeverity(s string) (goparl.Severity, error) {
	switch strings.ToLower(s) {
	case "ignore":
		return goparl.Ignore, nil
	case "warn":
		return goparl.Warn, nil
	case "error":
		return goparl.Error, nil
	}
	return 0, fmt.Errorf("must be one of ignore, warn, error, got %q", s)
}

// Options converts the manifest's decode settings. It assumes a validated
// manifest.
func (c *Config) Options() goparl.Opt {
	sev, _ := ParseSeverity(c.DuplicateKeys)
	return goparl.Opt{
		Strictness:     goparl.Strictness{OnDuplicateKey: sev},
		MaxDepth:       c.MaxDepth,
		MaxBytes:       c.MaxBytes,
		CheckDateOrder: c.CheckDateOrder,
	}
}
