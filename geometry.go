package goparl

import (
	js "github.com/reoring/goparl/jsonschema"
)

// GeometryType is the closed set of GeoJSON geometry type tags.
type GeometryType string

const (
	GeometryPoint           GeometryType = "Point"
	GeometryMultiPoint      GeometryType = "MultiPoint"
	GeometryLineString      GeometryType = "LineString"
	GeometryMultiLineString GeometryType = "MultiLineString"
	GeometryPolygon         GeometryType = "Polygon"
	GeometryMultiPolygon    GeometryType = "MultiPolygon"
	GeometryCollection      GeometryType = "GeometryCollection"
)

var _geometryValues = []GeometryType{
	GeometryPoint, GeometryMultiPoint, GeometryLineString, GeometryMultiLineString,
	GeometryPolygon, GeometryMultiPolygon, GeometryCollection,
}

// ParseGeometryType resolves a type tag; unknown tags wrap ErrInvalidEnum.
func ParseGeometryType(s string) (GeometryType, error) { return parseEnum(s, _geometryValues) }

func geometryTypeNames() []string {
	out := make([]string, len(_geometryValues))
	for i, t := range _geometryValues {
		out[i] = string(t)
	}
	return out
}

// coordShape is the payload shape dictated by a geometry type.
type coordShape int

const (
	shapeUnsupported   coordShape = iota
	shapePosition                 // [x, y]
	shapePositions                // [[x, y], ...]
	shapePositionLists            // [[[x, y], ...], ...]
)

func (t GeometryType) shape() coordShape {
	switch t {
	case GeometryPoint:
		return shapePosition
	case GeometryLineString, GeometryMultiPoint:
		return shapePositions
	case GeometryPolygon, GeometryMultiLineString:
		return shapePositionLists
	default:
		// MultiPolygon, GeometryCollection
		return shapeUnsupported
	}
}

// Supported reports whether coordinates of this type are validated.
func (t GeometryType) Supported() bool { return t.shape() != shapeUnsupported }

type geometryCheck struct{}

// Geometry validates a GeoJSON geometry object: a type tag from the closed
// enumeration and coordinates whose nesting matches the tag.
func Geometry() Check { return geometryCheck{} }

func (geometryCheck) check(c *vctx, p PathRef, v any) {
	obj, ok := v.(map[string]any)
	if !ok {
		c.report(p, CodeInvalidType, "geometry object", "", nil)
		return
	}
	tp := p.Field("type")
	raw, present := obj["type"]
	if !present {
		c.report(tp, CodeRequired, "", "type", nil)
		return
	}
	s, _ := raw.(string)
	gt, err := ParseGeometryType(s)
	if err != nil {
		c.report(tp, CodeInvalidEnum, "geometry type", "", map[string]any{"allowed": geometryTypeNames(), "got": raw})
		return
	}
	shape := gt.shape()
	if shape == shapeUnsupported {
		c.report(tp, CodeUnsupportedVariant, "", string(gt), map[string]any{"type": string(gt)})
		return
	}
	cp := p.Field("coordinates")
	coords, present := obj["coordinates"]
	if !present {
		c.report(cp, CodeRequired, "", "coordinates", nil)
		return
	}
	switch shape {
	case shapePosition:
		checkPosition(c, cp, coords)
	case shapePositions:
		checkPositions(c, cp, coords)
	case shapePositionLists:
		l, ok := coords.([]any)
		if !ok {
			c.report(cp, CodeInvalidType, "list of position lists", "", nil)
			return
		}
		for i, e := range l {
			checkPositions(c, cp.Index(i), e)
		}
	}
}

func isPosition(v any) bool {
	l, ok := v.([]any)
	return ok && len(l) == 2 && isNumber(l[0]) && isNumber(l[1])
}

func checkPosition(c *vctx, p PathRef, v any) {
	if !isPosition(v) {
		c.report(p, CodeInvalidType, "position", "", nil)
	}
}

func checkPositions(c *vctx, p PathRef, v any) {
	l, ok := v.([]any)
	if !ok {
		c.report(p, CodeInvalidType, "list of positions", "", nil)
		return
	}
	for i, e := range l {
		checkPosition(c, p.Index(i), e)
	}
}

func (geometryCheck) jsonSchema() *js.Schema {
	position := func() *js.Schema {
		return &js.Schema{Type: "array", Items: &js.Schema{Type: "number"}, MinItems: js.Int(2), MaxItems: js.Int(2)}
	}
	positions := func() *js.Schema { return &js.Schema{Type: "array", Items: position()} }
	variant := func(coords func() *js.Schema, types ...GeometryType) *js.Schema {
		tag := &js.Schema{Type: "string"}
		for _, t := range types {
			tag.Enum = append(tag.Enum, string(t))
		}
		return &js.Schema{
			Type:       "object",
			Properties: map[string]*js.Schema{"type": tag, "coordinates": coords()},
			Required:   []string{"type", "coordinates"},
		}
	}
	return &js.Schema{AnyOf: []*js.Schema{
		variant(position, GeometryPoint),
		variant(positions, GeometryLineString, GeometryMultiPoint),
		variant(func() *js.Schema { return &js.Schema{Type: "array", Items: positions()} }, GeometryPolygon, GeometryMultiLineString),
	}}
}
