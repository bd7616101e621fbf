package goparl

import (
	"fmt"
	"slices"
)

// Sex is the closed set of values of Person.sex.
type Sex string

const (
	SexFemale Sex = "F"
	SexMale   Sex = "M"
	SexOther  Sex = "O"
)

// VoteChoice is the closed set of values of Vote.vote.
type VoteChoice string

const (
	VoteFor     VoteChoice = "DAFUER"
	VoteAgainst VoteChoice = "DAGEGEN"
	VoteAbstain VoteChoice = "ENTHALTUNG"
)

// CreatorType is the closed set of values of Paper.creators[].typ.
type CreatorType string

const (
	CreatorOrganisation CreatorType = "Organisation"
	CreatorPerson       CreatorType = "Person"
)

var (
	_sexValues     = []Sex{SexFemale, SexMale, SexOther}
	_voteValues    = []VoteChoice{VoteFor, VoteAgainst, VoteAbstain}
	_creatorValues = []CreatorType{CreatorOrganisation, CreatorPerson}
)

func parseEnum[T ~string](s string, values []T) (T, error) {
	if slices.Contains(values, T(s)) {
		return T(s), nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrInvalidEnum, s)
}

func ParseSex(s string) (Sex, error)                 { return parseEnum(s, _sexValues) }
func ParseVoteChoice(s string) (VoteChoice, error)   { return parseEnum(s, _voteValues) }
func ParseCreatorType(s string) (CreatorType, error) { return parseEnum(s, _creatorValues) }

func enumOf[T ~string](hint string, parse func(string) (T, error), values []T) Check {
	return enumCheck[T]{hint: hint, parse: parse, values: values}
}

func SexEnum() Check         { return enumOf("sex", ParseSex, _sexValues) }
func VoteChoiceEnum() Check  { return enumOf("vote", ParseVoteChoice, _voteValues) }
func CreatorTypeEnum() Check { return enumOf("creator type", ParseCreatorType, _creatorValues) }
