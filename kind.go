package goparl

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of OParl entity kinds.
type Kind int

const (
	KindBody Kind = iota + 1
	KindCommittee
	KindPerson
	KindOrganisation
	KindMeeting
	KindAgendaItem
	KindVote
	KindPaper
	KindDocument
	KindLocation
)

var _kindNames = map[Kind]string{
	KindBody:         "body",
	KindCommittee:    "committee",
	KindPerson:       "person",
	KindOrganisation: "organisation",
	KindMeeting:      "meeting",
	KindAgendaItem:   "agendaitem",
	KindVote:         "vote",
	KindPaper:        "paper",
	KindDocument:     "document",
	KindLocation:     "location",
}

// Kinds returns every entity kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindBody, KindCommittee, KindPerson, KindOrganisation, KindMeeting,
		KindAgendaItem, KindVote, KindPaper, KindDocument, KindLocation,
	}
}

// String returns the lower-case name used in example file names and on the
// command line.
func (k Kind) String() string {
	if n, ok := _kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known entity kinds.
func (k Kind) Valid() bool {
	_, ok := _kindNames[k]
	return ok
}

// ParseKind resolves a kind name case-insensitively. "agenda_item" is
// accepted as an alias of "agendaitem".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "agenda_item" {
		name = "agendaitem"
	}
	for k, n := range _kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
