package goparl

// Relation validates a membership reference {id, start?, end?}. id is a
// required text; start and end, when present, are dates. With
// Opt.CheckDateOrder a start after the end is reported at the relation.
func Relation() Check {
	return Object([]Field{
		Required("id", Text()),
		Optional("start", Date()),
		Optional("end", Date()),
	}, DateOrder("start", "end"))
}

// OrganisationRelation is the relation shape of Person.organisations.
func OrganisationRelation() Check { return Relation() }

// CommitteeRelation is the relation shape of Person.committees.
func CommitteeRelation() Check { return Relation() }
