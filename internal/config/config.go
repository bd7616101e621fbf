// Package config loads the goparl check manifest: the decode options and
// the list of example documents a `goparl check` run validates.
package config

// Config is the root of a goparl manifest.
type Config struct {
	// Language selects the violation message language ("en" or "de").
	Language string `yaml:"language"`

	// DuplicateKeys is the duplicate JSON key policy: ignore, warn or error.
	DuplicateKeys string `yaml:"duplicate_keys"`

	// MaxDepth limits JSON nesting. 0 disables the limit.
	MaxDepth int `yaml:"max_depth"`

	// MaxBytes limits the size of each document. 0 disables the limit.
	MaxBytes int64 `yaml:"max_bytes"`

	// CheckDateOrder rejects relation references and meetings whose start
	// lies after their end.
	CheckDateOrder bool `yaml:"check_date_order"`

	// Cases lists the documents to validate, in order.
	Cases []Case `yaml:"cases"`
}

// Case is one document to validate.
type Case struct {
	// File is the document path. Relative paths are resolved against the
	// manifest's directory by Load.
	File string `yaml:"file"`

	// Kind is the entity kind. When empty it is inferred from the file name.
	Kind string `yaml:"kind"`
}
