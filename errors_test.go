package goparl_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/reoring/goparl"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := goparl.Issues{
		{Path: "/a", Code: goparl.CodeRequired},
		{Path: "/b", Code: goparl.CodeInvalidType},
		{Path: "/c", Code: goparl.CodeRequired},
		{Path: "/d", Code: goparl.CodeInvalidEnum},
	}
	msg := iss.Error()
	if !strings.HasPrefix(msg, "required at /a; invalid_type at /b; required at /c") || !strings.Contains(msg, "total 4") {
		t.Fatalf("unexpected summary %q", msg)
	}
	if got := iss.ByCode(goparl.CodeRequired); len(got) != 2 || got[1].Path != "/c" {
		t.Fatalf("unexpected ByCode %v", got)
	}
	if got := iss.At("/d"); len(got) != 1 || got[0].Code != goparl.CodeInvalidEnum {
		t.Fatalf("unexpected At %v", got)
	}
	if goparl.Issues(nil).Error() != "" {
		t.Fatalf("empty issues render empty")
	}
}

func TestAsIssues_Wrapped(t *testing.T) {
	err := fmt.Errorf("context: %w", goparl.Issues{{Path: "/", Code: goparl.CodeParseError}})
	iss, ok := goparl.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected wrapped issues, got %v", err)
	}
	if _, ok := goparl.AsIssues(nil); ok {
		t.Fatalf("nil is not issues")
	}
}

func TestIssue_String(t *testing.T) {
	s := goparl.Issue{Path: "/sha1_checksum", Code: goparl.CodeInvalidType, Message: "wrong type or format", Hint: "sha1 checksum"}.String()
	if s != "/sha1_checksum: wrong type or format (invalid_type, expected sha1 checksum)" {
		t.Fatalf("unexpected %q", s)
	}
}

func TestPathRef(t *testing.T) {
	p := goparl.Root().Field("a/b").Index(2).Field("m~n")
	if got := p.Pointer(); got != "/a~1b/2/m~0n" {
		t.Fatalf("unexpected pointer %s", got)
	}
	if goparl.Root().String() != "/" {
		t.Fatalf("root must render as /")
	}
	base := goparl.Root().Field("x")
	a, b := base.Field("a"), base.Field("b")
	if a.Pointer() != "/x/a" || b.Pointer() != "/x/b" {
		t.Fatalf("derived paths must not alias: %s %s", a, b)
	}
}
