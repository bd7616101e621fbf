package goparl

import (
	"encoding/json"
	"math"

	"github.com/reoring/goparl/i18n"
	js "github.com/reoring/goparl/jsonschema"
)

// Check validates one JSON value at a path and knows its JSON Schema
// projection. Checks are stateless; per-call state lives in vctx.
type Check interface {
	check(c *vctx, p PathRef, v any)
	jsonSchema() *js.Schema
}

// Constraint is a cross-field rule evaluated on an object after its fields.
type Constraint interface {
	apply(c *vctx, p PathRef, obj map[string]any)
	// project adds what the rule can express in JSON Schema to s (which may be
	// nothing).
	project(s *js.Schema)
}

// Field describes one member of an object: its name, requiredness and the
// check the value must pass when present.
type Field struct {
	Name     string
	Required bool
	Check    Check
}

// Required declares a field that must be present and satisfy c.
func Required(name string, c Check) Field { return Field{Name: name, Required: true, Check: c} }

// Optional declares a field that, when present, must satisfy c.
func Optional(name string, c Check) Field { return Field{Name: name, Check: c} }

// vctx carries the options and collected issues of a single validation call.
type vctx struct {
	opt    Opt
	issues Issues
}

func (c *vctx) report(p PathRef, code, hint, detail string, params map[string]any) {
	var data map[string]string
	if detail != "" {
		data = map[string]string{"detail": detail}
	}
	c.issues = append(c.issues, Issue{
		Path:    p.Pointer(),
		Code:    code,
		Message: i18n.T(code, data),
		Hint:    hint,
		Params:  params,
	})
}

// ---- predicate checks ----

type predicateCheck struct {
	hint   string
	pred   func(any) bool
	schema func() *js.Schema
}

func (pc predicateCheck) check(c *vctx, p PathRef, v any) {
	if !pc.pred(v) {
		c.report(p, CodeInvalidType, pc.hint, "", nil)
	}
}

func (pc predicateCheck) jsonSchema() *js.Schema { return pc.schema() }

func typed(t string) func() *js.Schema {
	return func() *js.Schema { return &js.Schema{Type: t} }
}

func patterned(pattern string) func() *js.Schema {
	return func() *js.Schema { return &js.Schema{Type: "string", Pattern: pattern} }
}

func Text() Check    { return predicateCheck{"text", IsText, typed("string")} }
func Integer() Check { return predicateCheck{"integer", IsInteger, typed("integer")} }
func Float() Check   { return predicateCheck{"float", IsFloat, typed("number")} }
func Boolean() Check { return predicateCheck{"boolean", IsBoolean, typed("boolean")} }
func List() Check    { return predicateCheck{"list", IsList, typed("array")} }

func ListOfText() Check {
	return predicateCheck{"list of text", IsListOfText, func() *js.Schema {
		return &js.Schema{Type: "array", Items: &js.Schema{Type: "string"}}
	}}
}

func Date() Check     { return predicateCheck{"date", IsDate, patterned(_dateRe.String())} }
func DateTime() Check { return predicateCheck{"datetime", IsDateTime, patterned(_dateTimeRe.String())} }

// DateOrDateTime accepts either a date or a complete date-time.
func DateOrDateTime() Check {
	return predicateCheck{
		hint: "date or datetime",
		pred: func(v any) bool { return IsDate(v) || IsDateTime(v) },
		schema: func() *js.Schema {
			return &js.Schema{AnyOf: []*js.Schema{patterned(_dateRe.String())(), patterned(_dateTimeRe.String())()}}
		},
	}
}

func URL() Check          { return predicateCheck{"url", IsURL, patterned(`^https?://`)} }
func Email() Check        { return predicateCheck{"email", IsEmail, patterned(`^[^@]*@[^@]*$`)} }
func PhoneNumber() Check  { return predicateCheck{"phone number", IsPhoneNumber, typed("string")} }
func SHA1Checksum() Check { return predicateCheck{"sha1 checksum", IsSHA1Checksum, patterned(_sha1Re.String())} }
func RegionalCode() Check { return predicateCheck{"regional code", IsRegionalCode, patterned(_regionalCodeRe.String())} }

// ---- composite checks ----

type listOfCheck struct{ elem Check }

// ListOf requires a list and validates every element with elem at its index.
func ListOf(elem Check) Check { return listOfCheck{elem: elem} }

func (lc listOfCheck) check(c *vctx, p PathRef, v any) {
	l, ok := v.([]any)
	if !ok {
		c.report(p, CodeInvalidType, "list", "", nil)
		return
	}
	for i, e := range l {
		lc.elem.check(c, p.Index(i), e)
	}
}

func (lc listOfCheck) jsonSchema() *js.Schema {
	return &js.Schema{Type: "array", Items: lc.elem.jsonSchema()}
}

type objectCheck struct {
	fields      []Field
	constraints []Constraint
}

// Object validates a nested object against its own field table and
// constraints. Members not named in fields are ignored.
func Object(fields []Field, constraints ...Constraint) Check {
	return objectCheck{fields: fields, constraints: constraints}
}

func (oc objectCheck) check(c *vctx, p PathRef, v any) {
	obj, ok := v.(map[string]any)
	if !ok {
		c.report(p, CodeInvalidType, "object", "", nil)
		return
	}
	for _, f := range oc.fields {
		val, present := obj[f.Name]
		if !present {
			if f.Required {
				c.report(p.Field(f.Name), CodeRequired, "", f.Name, nil)
			}
			continue
		}
		f.Check.check(c, p.Field(f.Name), val)
	}
	for _, r := range oc.constraints {
		r.apply(c, p, obj)
	}
}

func (oc objectCheck) jsonSchema() *js.Schema {
	s := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(oc.fields))}
	for _, f := range oc.fields {
		s.Properties[f.Name] = f.Check.jsonSchema()
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	for _, r := range oc.constraints {
		r.project(s)
	}
	return s
}

// ---- enumerations ----

type enumCheck[T ~string] struct {
	hint   string
	parse  func(string) (T, error)
	values []T
}

func (ec enumCheck[T]) check(c *vctx, p PathRef, v any) {
	s, ok := v.(string)
	if ok {
		if _, err := ec.parse(s); err == nil {
			return
		}
	}
	c.report(p, CodeInvalidEnum, ec.hint, "", map[string]any{"allowed": ec.allowed(), "got": v})
}

func (ec enumCheck[T]) allowed() []string {
	out := make([]string, len(ec.values))
	for i, v := range ec.values {
		out[i] = string(v)
	}
	return out
}

func (ec enumCheck[T]) jsonSchema() *js.Schema {
	s := &js.Schema{Type: "string"}
	for _, v := range ec.values {
		s.Enum = append(s.Enum, string(v))
	}
	return s
}

// intValue extracts an integral value from a JSON number.
func intValue(v any) (int64, bool) {
	if !IsInteger(v) {
		return 0, false
	}
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		return int64(n), math.Abs(n) <= 1<<53
	case float32:
		return int64(n), math.Abs(float64(n)) <= 1<<24
	}
	return 0, false
}
