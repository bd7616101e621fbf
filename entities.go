package goparl

import "fmt"

// Schema is the rule table of one entity kind.
type Schema struct {
	Kind        Kind
	Fields      []Field
	Constraints []Constraint
}

func (s *Schema) object() Check { return Object(s.Fields, s.Constraints...) }

// Field returns the field rule with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields lists the names of the required fields in table order.
func (s *Schema) RequiredFields() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}

var _bodySchema = &Schema{
	Kind: KindBody,
	Fields: []Field{
		Required("id", Text()),
		Required("name", Text()),
		Optional("regionalschluessel", RegionalCode()),
		Optional("gnd_url", URL()),
		Optional("url", URL()),
		Optional("license_url", URL()),
		Optional("operator_contact", Text()),
	},
}

var _committeeSchema = &Schema{
	Kind: KindCommittee,
	Fields: []Field{
		Required("id", Text()),
		Required("body", Text()),
		Required("name", Text()),
		Required("last_modified", DateTime()),
		Optional("short_name", Text()),
	},
}

var _personSchema = &Schema{
	Kind: KindPerson,
	Fields: []Field{
		Required("id", Text()),
		Required("first_name", Text()),
		Required("last_name", Text()),
		Optional("academic_title", Text()),
		Optional("sex", SexEnum()),
		Optional("profession", Text()),
		Optional("email", Email()),
		Optional("phone", PhoneNumber()),
		Optional("fax", PhoneNumber()),
		Optional("address", Text()),
		Optional("last_modified", DateTime()),
		Optional("organisations", ListOf(OrganisationRelation())),
		Optional("committees", ListOf(CommitteeRelation())),
	},
}

var _organisationSchema = &Schema{
	Kind: KindOrganisation,
	Fields: []Field{
		Required("id", Text()),
		Required("body", Text()),
		Required("name", Text()),
		Required("last_modified", DateTime()),
	},
}

var _meetingSchema = &Schema{
	Kind: KindMeeting,
	Fields: []Field{
		Required("id", Text()),
		Required("start", DateOrDateTime()),
		Required("last_modified", DateTime()),
		Required("committees", ListOfText()),
		Required("people", ListOfText()),
		Optional("sequence_number", Integer()),
		Optional("end", DateOrDateTime()),
		Optional("address", Text()),
		Optional("invitation", Text()),
		Optional("result_minutes", Text()),
		Optional("verbatim_minutes", Text()),
		Optional("attachments", List()),
	},
	Constraints: []Constraint{NonEmpty("committees"), DateOrder("start", "end")},
}

var _agendaItemSchema = &Schema{
	Kind: KindAgendaItem,
	Fields: []Field{
		Required("identifier", Text()),
		Required("public", Boolean()),
		Required("title", Text()),
		Required("last_modified", DateTime()),
		Required("meeting", Text()),
		Optional("result", Text()),
		Optional("result_details", Text()),
		Optional("resolution_text", Text()),
		// Votings are not validated as votes: upstream examples attribute a
		// single voting to people and organisations at once.
		Optional("votings", List()),
		Optional("people_absent", ListOfText()),
	},
}

var _voteSchema = &Schema{
	Kind: KindVote,
	Fields: []Field{
		Required("sum", Integer()),
		Required("vote", VoteChoiceEnum()),
		Optional("people", ListOfText()),
		Optional("organisations", ListOfText()),
	},
	Constraints: []Constraint{
		ExactlyOne("people", "organisations"),
		CountEquals("sum", "people"),
	},
}

var _paperSchema = &Schema{
	Kind: KindPaper,
	Fields: []Field{
		Required("id", Text()),
		Required("date", Date()),
		Required("type", Text()),
		Required("last_modified", DateTime()),
		Required("main_document", Text()),
		Optional("attachments", ListOfText()),
		Optional("committees", ListOfText()),
		Optional("creators", ListOf(Object([]Field{
			Required("typ", CreatorTypeEnum()),
			Required("id", Text()),
		}))),
		// Point locations with lat/lon, distinct from Location.geometry.
		Optional("locations", ListOf(Object([]Field{
			Required("description", Text()),
			Required("lat", Float()),
			Required("lon", Float()),
		}))),
		Optional("related_papers", ListOfText()),
		Optional("consultations", ListOf(Object([]Field{
			Required("meeting", Text()),
			Required("agendaitem", Text()),
			Optional("role", Text()),
		}))),
	},
}

var _documentSchema = &Schema{
	Kind: KindDocument,
	Fields: []Field{
		Required("id", Text()),
		Required("name", Text()),
		Required("mime_type", Text()),
		Required("date", DateTime()),
		Required("last_modified", DateTime()),
		Required("sha1_checksum", SHA1Checksum()),
		Required("url", URL()),
		Required("text", Text()),
		Optional("master", Text()),
	},
}

var _locationSchema = &Schema{
	Kind: KindLocation,
	Fields: []Field{
		Required("last_modified", DateTime()),
		Optional("description", Text()),
		Optional("geometry", Geometry()),
	},
}

var _schemas = map[Kind]*Schema{
	KindBody:         _bodySchema,
	KindCommittee:    _committeeSchema,
	KindPerson:       _personSchema,
	KindOrganisation: _organisationSchema,
	KindMeeting:      _meetingSchema,
	KindAgendaItem:   _agendaItemSchema,
	KindVote:         _voteSchema,
	KindPaper:        _paperSchema,
	KindDocument:     _documentSchema,
	KindLocation:     _locationSchema,
}

// Rules returns the rule table of kind. The table is shared and must not be
// modified.
func Rules(kind Kind) (*Schema, error) {
	s, ok := _schemas[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return s, nil
}
