package config

// Default values applied to unset manifest fields.
const (
	DefaultLanguage      = "en"
	DefaultDuplicateKeys = "warn"
	DefaultMaxDepth      = 64
)

// ApplyDefaults fills unset fields. It does not touch Cases.
func ApplyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.DuplicateKeys == "" {
		cfg.DuplicateKeys = DefaultDuplicateKeys
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
}
