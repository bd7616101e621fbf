package goparl

import (
	js "github.com/reoring/goparl/jsonschema"
)

// JSONSchema projects the rule table of kind into a JSON Schema document.
// The projection never rejects a document Validate accepts; rules with no
// JSON Schema counterpart (count equality, date order, unsupported geometry
// variants) are left out, so it can be looser than Validate.
func JSONSchema(kind Kind) (*js.Schema, error) {
	s, err := Rules(kind)
	if err != nil {
		return nil, err
	}
	out := s.object().jsonSchema()
	out.Schema = js.Draft07
	out.Title = kind.String()
	return out, nil
}
