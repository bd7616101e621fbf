package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/goparl"
	"github.com/reoring/goparl/examples"
	"github.com/reoring/goparl/i18n"
	"github.com/reoring/goparl/internal/config"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		kindName string
		format   string
		dup      string
		maxDepth int
		dates    bool
	)
	cmd := &cobra.Command{
		Use:   "validate [--kind K] FILE...",
		Short: "Validate OParl documents",
		Long: `Validate one or more OParl JSON documents. Without --kind the entity
kind is inferred from each file name (person_ex1.json is a person).

Example:
  goparl validate examples/person_ex1.json
  goparl validate --kind vote --format json ballot.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sev, err := config.ParseSeverity(dup)
			if err != nil {
				return fmt.Errorf("--duplicate-keys: %w", err)
			}
			opt := goparl.Opt{
				Strictness:     goparl.Strictness{OnDuplicateKey: sev},
				MaxDepth:       maxDepth,
				CheckDateOrder: dates,
			}
			var cases []config.Case
			for _, f := range args {
				cases = append(cases, config.Case{File: f, Kind: kindName})
			}
			return a.run(cases, opt, format)
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "entity kind for every file (default: inferred from the file name)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&dup, "duplicate-keys", "warn", "duplicate key policy: ignore, warn or error")
	cmd.Flags().IntVar(&maxDepth, "max-depth", config.DefaultMaxDepth, "maximum JSON nesting depth (0 disables)")
	cmd.Flags().BoolVar(&dates, "check-date-order", false, "reject relation references and meetings whose start lies after their end")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var (
		path   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every document listed in a manifest",
		Long: `Validate the documents listed in a goparl.yaml manifest with the
manifest's decode settings.

Example:
  goparl check --config goparl.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if a.lang == "" {
				i18n.SetLanguage(cfg.Language)
			}
			a.log.Debug("manifest loaded", "path", path, "cases", len(cfg.Cases))
			return a.run(cfg.Cases, cfg.Options(), format)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "goparl.yaml", "manifest path")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func (a *app) extractCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract example documents from a specification chapter",
		Long: `Write every fenced example block of an OParl specification markdown
chapter to DIR as name.ext.

Example:
  goparl extract --in chapter_02.md --out examples`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()
			exs, err := examples.Extract(f)
			if err != nil {
				return err
			}
			paths, err := examples.WriteDir(out, exs)
			for _, p := range paths {
				a.log.Debug("example written", "path", p)
			}
			if err != nil {
				return err
			}
			a.log.Info("examples extracted", "count", len(paths), "dir", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "specification markdown file")
	cmd.Flags().StringVar(&out, "out", "examples", "output directory")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (a *app) schemaCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "schema --kind K",
		Short: "Print the JSON Schema of an entity kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := goparl.ParseKind(kindName)
			if err != nil {
				return err
			}
			s, err := goparl.JSONSchema(k)
			if err != nil {
				return err
			}
			return writeJSON(a.stdout, s)
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "", "entity kind")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}
