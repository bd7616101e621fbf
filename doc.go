// Package goparl validates OParl civic-data documents.
//
// It provides:
//
// - A predicate library for the primitive types and text formats OParl uses
// - Rule tables for the ten entity kinds (Body, Committee, Person, ...)
// - Validate, which collects every violation of a decoded document into a Report
// - ValidateBytes/ValidateReader, which decode JSON with duplicate-key, depth and size enforcement
// - JSONSchema, a draft-07 projection of each rule table
//
// Violations are Issues (JSON Pointer, code, message); Issues implements error.
// Messages are localized through the i18n package.
//
// Typical usage:
//
//	r, err := goparl.ValidateBytes(goparl.KindPerson, data)
//	if err != nil {
//		// unknown kind or malformed JSON
//	}
//	for _, v := range r.Violations {
//		fmt.Println(v)
//	}
package goparl
