package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/goparl"
	"github.com/reoring/goparl/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := config.Parse([]byte("cases:\n  - file: person_ex1.json\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "en" || cfg.DuplicateKeys != "warn" || cfg.MaxDepth != config.DefaultMaxDepth {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	opt := cfg.Options()
	if opt.Strictness.OnDuplicateKey != goparl.Warn {
		t.Fatalf("expected Warn duplicate policy, got %v", opt.Strictness.OnDuplicateKey)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Cases) != 0 {
		t.Fatalf("expected no cases, got %d", len(cfg.Cases))
	}
}

func TestParse_UnknownField(t *testing.T) {
	if _, err := config.Parse([]byte("langauge: de\n")); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	y := `
language: fr
duplicate_keys: sometimes
max_depth: -1
cases:
  - kind: person
  - file: notes.json
  - file: x.json
    kind: senate
`
	_, err := config.Parse([]byte(y))
	var ve config.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"language", "duplicate_keys", "max_depth", "cases[0].file", "cases[1].kind", "cases[2].kind"}
	if len(ve.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(ve.Errors), ve)
	}
	for i, f := range want {
		if ve.Errors[i].Field != f {
			t.Fatalf("error %d: expected field %s, got %s", i, f, ve.Errors[i].Field)
		}
	}
	if !strings.Contains(err.Error(), "6 errors") {
		t.Fatalf("unexpected message: %s", err)
	}
}

func TestParse_EnvOverride(t *testing.T) {
	t.Setenv("GOPARL_LANGUAGE", "de")
	t.Setenv("GOPARL_MAX_DEPTH", "8")
	cfg, err := config.Parse([]byte("language: en\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Language != "de" || cfg.MaxDepth != 8 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_ResolvesCaseFiles(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "goparl.yaml")
	y := "duplicate_keys: error\ncheck_date_order: true\ncases:\n  - file: examples/vote_ex1.json\n  - file: /abs/doc.json\n    kind: document\n"
	if err := os.WriteFile(p, []byte(y), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := cfg.Cases[0].File, filepath.Join(dir, "examples", "vote_ex1.json"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if cfg.Cases[1].File != "/abs/doc.json" {
		t.Fatalf("absolute path changed: %s", cfg.Cases[1].File)
	}
	k, err := cfg.Cases[0].ResolveKind()
	if err != nil || k != goparl.KindVote {
		t.Fatalf("expected vote, got %v (%v)", k, err)
	}
	opt := cfg.Options()
	if opt.Strictness.OnDuplicateKey != goparl.Error || !opt.CheckDateOrder {
		t.Fatalf("unexpected options: %+v", opt)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
