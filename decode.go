package goparl

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	"github.com/reoring/goparl/i18n"
	eng "github.com/reoring/goparl/internal/engine"
	"github.com/reoring/goparl/internal/jsontok"
)

var _utf8BOM = []byte("\xEF\xBB\xBF")

// ValidateBytes decodes data as a single JSON document and validates it
// against kind. A leading UTF-8 byte order mark is skipped. Input that is not
// well-formed JSON, or that breaks the decode limits in opts, is returned as
// Issues carrying parse_error, duplicate_key or truncated.
func ValidateBytes(kind Kind, data []byte, opts ...Opt) (Report, error) {
	if _, err := Rules(kind); err != nil {
		return Report{}, err
	}
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Report{}, truncatedIssue(opt.MaxBytes)
	}
	data = bytes.TrimPrefix(data, _utf8BOM)
	// The token decoder does not check separators, so syntax is checked up
	// front.
	if !j.Valid(data) {
		msg := "invalid JSON"
		if len(bytes.TrimSpace(data)) == 0 {
			msg = "empty document"
		}
		return Report{}, Issues{decodeIssue("/", CodeParseError, msg, nil)}
	}
	return validateSource(kind, jsontok.NewBytes(data), opt)
}

// ValidateReader is ValidateBytes over a reader. With MaxBytes set, at most
// MaxBytes+1 bytes are read.
func ValidateReader(kind Kind, r io.Reader, opts ...Opt) (Report, error) {
	if _, err := Rules(kind); err != nil {
		return Report{}, err
	}
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("goparl: read document: %w", err)
	}
	return ValidateBytes(kind, data, opt)
}

func validateSource(kind Kind, src eng.TokenSource, opt Opt) (Report, error) {
	var warned Issues
	src = eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: dupStrictness(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink: func(si eng.SimpleIssue) {
			warned = append(warned, fromSimple(si))
		},
	})
	v, err := eng.DecodeDocument(src)
	if err != nil {
		return Report{}, decodeIssues(err)
	}
	r, err := Validate(kind, v, opt)
	if err != nil {
		return Report{}, err
	}
	if len(warned) > 0 {
		r = newReport(kind, append(warned, r.Violations...))
	}
	return r, nil
}

func dupStrictness(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

func fromSimple(si eng.SimpleIssue) Issue {
	return decodeIssue(si.Path, si.Code, si.Message, nil)
}

// decodeIssues maps decoder and enforcement failures to Issues.
func decodeIssues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{fromSimple(ie.SimpleIssue)}
	}
	msg := err.Error()
	switch {
	case errors.Is(err, io.EOF):
		msg = "empty document"
	case errors.Is(err, io.ErrUnexpectedEOF):
		msg = "unexpected end of document"
	case errors.Is(err, eng.ErrTrailingData):
		msg = "trailing data after document"
	}
	return Issues{decodeIssue("/", CodeParseError, msg, nil)}
}

// decodeIssue builds a localized decode-layer issue; detail is appended to
// the message untranslated.
func decodeIssue(path, code, detail string, params map[string]any) Issue {
	if path == "" {
		path = "/"
	}
	return Issue{
		Path:    path,
		Code:    code,
		Message: i18n.T(code, map[string]string{"detail": detail}),
		Params:  params,
	}
}

func truncatedIssue(limit int64) Issues {
	return Issues{decodeIssue("/", CodeTruncated, fmt.Sprintf("document exceeds %d bytes", limit), map[string]any{"max_bytes": limit})}
}
