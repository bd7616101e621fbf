package main

import (
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/goparl"
	"github.com/reoring/goparl/internal/config"
)

// result is the outcome for one file. Error is set when the file could not
// be read or its kind could not be determined.
type result struct {
	File       string        `json:"file"`
	Kind       string        `json:"kind,omitempty"`
	Valid      bool          `json:"valid"`
	Violations goparl.Issues `json:"violations,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (a *app) run(cases []config.Case, opt goparl.Opt, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
	results := make([]result, len(cases))
	var g errgroup.Group
	g.SetLimit(max(a.jobs, 1))
	for i, c := range cases {
		g.Go(func() error {
			results[i] = a.validateFile(c, opt)
			return nil
		})
	}
	_ = g.Wait()
	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}

	var err error
	if format == "json" {
		err = writeJSON(a.stdout, results)
	} else {
		err = writeText(a.stdout, results)
	}
	if err != nil {
		return err
	}
	a.log.Debug("run finished", "files", len(results), "failed", failed)
	if failed > 0 {
		return errViolations
	}
	return nil
}

func (a *app) validateFile(c config.Case, opt goparl.Opt) result {
	res := result{File: c.File}
	kind, err := c.ResolveKind()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Kind = kind.String()

	f, err := os.Open(c.File)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	a.log.Debug("validating", "file", c.File, "kind", res.Kind)
	rep, err := goparl.ValidateReader(kind, f, opt)
	if err != nil {
		if iss, ok := goparl.AsIssues(err); ok {
			res.Violations = iss
			return res
		}
		res.Error = err.Error()
		return res
	}
	res.Valid = rep.Valid
	res.Violations = rep.Violations
	return res
}

func writeText(w io.Writer, results []result) error {
	for _, r := range results {
		var err error
		switch {
		case r.Error != "":
			_, err = fmt.Fprintf(w, "ERROR %s: %s\n", r.File, r.Error)
		case r.Valid:
			_, err = fmt.Fprintf(w, "OK    %s (%s)\n", r.File, r.Kind)
		default:
			if _, err = fmt.Fprintf(w, "FAIL  %s (%s)\n", r.File, r.Kind); err != nil {
				return err
			}
			for _, v := range r.Violations {
				if _, err = fmt.Fprintf(w, "  %s\n", v); err != nil {
					return err
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := j.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
