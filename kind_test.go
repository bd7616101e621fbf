package goparl_test

import (
	"errors"
	"testing"

	"github.com/reoring/goparl"
)

func TestParseKind(t *testing.T) {
	for _, k := range goparl.Kinds() {
		got, err := goparl.ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("round trip %s: got %v %v", k, got, err)
		}
	}
	for in, want := range map[string]goparl.Kind{"Person": goparl.KindPerson, "AGENDAITEM": goparl.KindAgendaItem, "agenda_item": goparl.KindAgendaItem} {
		if got, err := goparl.ParseKind(in); err != nil || got != want {
			t.Fatalf("%s: expected %s, got %v %v", in, want, got, err)
		}
	}
	if _, err := goparl.ParseKind("senate"); !errors.Is(err, goparl.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKind_Text(t *testing.T) {
	b, err := goparl.KindMeeting.MarshalText()
	if err != nil || string(b) != "meeting" {
		t.Fatalf("unexpected %q %v", b, err)
	}
	var k goparl.Kind
	if err := k.UnmarshalText([]byte("document")); err != nil || k != goparl.KindDocument {
		t.Fatalf("unexpected %v %v", k, err)
	}
	if goparl.Kind(0).Valid() || len(goparl.Kinds()) != 10 {
		t.Fatalf("closed set broken")
	}
}

func TestEnums(t *testing.T) {
	if v, err := goparl.ParseVoteChoice("ENTHALTUNG"); err != nil || v != goparl.VoteAbstain {
		t.Fatalf("unexpected %v %v", v, err)
	}
	if _, err := goparl.ParseVoteChoice("dafuer"); !errors.Is(err, goparl.ErrInvalidEnum) {
		t.Fatalf("enumerations are case sensitive, got %v", err)
	}
	if _, err := goparl.ParseSex("f"); err == nil {
		t.Fatalf("expected error for lowercase sex")
	}
	if v, err := goparl.ParseCreatorType("Organisation"); err != nil || v != goparl.CreatorType("Organisation") {
		t.Fatalf("unexpected %v %v", v, err)
	}
}

func TestEnumViolationParams(t *testing.T) {
	doc := minimal(goparl.KindPerson)
	doc["sex"] = 1
	r, _ := goparl.Validate(goparl.KindPerson, doc)
	if len(r.Violations) != 1 || r.Violations[0].Code != goparl.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", r.Violations)
	}
	allowed, _ := r.Violations[0].Params["allowed"].([]string)
	if len(allowed) != 3 || allowed[0] != "F" {
		t.Fatalf("unexpected allowed set %v", r.Violations[0].Params)
	}
}
