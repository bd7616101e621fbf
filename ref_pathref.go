package goparl

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way. The zero value is
// the document root.
type PathRef struct {
	parts []string
}

// Root returns the PathRef of the document root.
func Root() PathRef { return PathRef{} }

// Field returns the path of the named member below p.
func (p PathRef) Field(name string) PathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string{}, p.parts...), esc)}
}

// Index returns the path of the i-th list element below p.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

// Pointer renders p as a JSON Pointer; the root renders as "/".
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p PathRef) String() string { return p.Pointer() }
