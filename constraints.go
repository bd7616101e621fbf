package goparl

import (
	"strings"

	"github.com/reoring/goparl/codec"
	js "github.com/reoring/goparl/jsonschema"
)

type exactlyOne struct{ names []string }

// ExactlyOne requires exactly one of the named fields to be present.
func ExactlyOne(names ...string) Constraint { return exactlyOne{names: names} }

func (r exactlyOne) apply(c *vctx, p PathRef, obj map[string]any) {
	var present []string
	for _, n := range r.names {
		if _, ok := obj[n]; ok {
			present = append(present, n)
		}
	}
	if len(present) == 1 {
		return
	}
	c.report(p, CodeMutualExclusion, "", strings.Join(r.names, ", "), map[string]any{
		"fields":  r.names,
		"present": present,
	})
}

func (r exactlyOne) project(s *js.Schema) {
	for _, n := range r.names {
		s.OneOf = append(s.OneOf, &js.Schema{Required: []string{n}})
	}
}

type countEquals struct{ count, list string }

// CountEquals requires the integer field count to equal the length of the
// list field list. It only applies when both fields are present and
// well-typed, so a missing or mistyped field is reported once by its own rule.
func CountEquals(count, list string) Constraint { return countEquals{count: count, list: list} }

func (r countEquals) apply(c *vctx, p PathRef, obj map[string]any) {
	n, ok := intValue(obj[r.count])
	if !ok {
		return
	}
	l, ok := obj[r.list].([]any)
	if !ok {
		return
	}
	if n != int64(len(l)) {
		c.report(p.Field(r.count), CodeCrossField, "", r.count+" != len("+r.list+")", map[string]any{
			r.count: n,
			r.list:  len(l),
		})
	}
}

func (countEquals) project(*js.Schema) {}

type nonEmpty struct{ name string }

// NonEmpty requires the list field name, when present as a list, to hold at
// least one element.
func NonEmpty(name string) Constraint { return nonEmpty{name: name} }

func (r nonEmpty) apply(c *vctx, p PathRef, obj map[string]any) {
	if l, ok := obj[r.name].([]any); ok && len(l) == 0 {
		c.report(p.Field(r.name), CodeCrossField, "", r.name+" must not be empty", map[string]any{"minItems": 1})
	}
}

func (r nonEmpty) project(s *js.Schema) {
	if prop, ok := s.Properties[r.name]; ok {
		prop.MinItems = js.Int(1)
	}
}

type dateOrder struct{ start, end string }

// DateOrder rejects a start after the end. Both fields may be dates or
// datetimes; a bare date counts as midnight UTC. It only runs with
// Opt.CheckDateOrder and when both fields are well-formed, so a malformed
// value is reported once by its field rule.
func DateOrder(start, end string) Constraint { return dateOrder{start: start, end: end} }

func (r dateOrder) apply(c *vctx, p PathRef, obj map[string]any) {
	if !c.opt.CheckDateOrder {
		return
	}
	s, ok1 := obj[r.start].(string)
	e, ok2 := obj[r.end].(string)
	if !ok1 || !ok2 || !isTimestamp(s) || !isTimestamp(e) {
		return
	}
	ts, err1 := codec.ParseDateOrDateTime(s)
	te, err2 := codec.ParseDateOrDateTime(e)
	if err1 != nil || err2 != nil {
		return
	}
	if ts.After(te) {
		c.report(p, CodeCrossField, "", r.start+" after "+r.end, map[string]any{r.start: s, r.end: e})
	}
}

func (dateOrder) project(*js.Schema) {}

func isTimestamp(s string) bool { return IsDate(s) || IsDateTime(s) }
