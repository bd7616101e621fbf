package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads the manifest at path, applies defaults and environment
// overrides, resolves case files against the manifest directory and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	base := filepath.Dir(path)
	for i := range cfg.Cases {
		if f := cfg.Cases[i].File; f != "" && !filepath.IsAbs(f) {
			cfg.Cases[i].File = filepath.Join(base, f)
		}
	}
	return cfg, nil
}

// Parse decodes a manifest from YAML bytes, applies defaults and environment
// overrides, and validates it. Case paths are left as written. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func unmarshalStrict(data []byte, out *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides lets GOPARL_LANGUAGE, GOPARL_DUPLICATE_KEYS and
// GOPARL_MAX_DEPTH override the manifest.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GOPARL_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("GOPARL_DUPLICATE_KEYS"); v != "" {
		cfg.DuplicateKeys = v
	}
	if v := os.Getenv("GOPARL_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxDepth = n
		}
	}
}
