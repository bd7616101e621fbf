package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/goparl/i18n"
)

var version = "0.1.0"

// errViolations marks a run that completed but found invalid documents.
var errViolations = errors.New("validation failed")

type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger

	verbose   bool
	logFormat string
	lang      string
	jobs      int // files validated in parallel
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "goparl",
		Short: "Validate OParl documents",
		Long: `goparl checks OParl civic-data documents (bodies, committees, people,
meetings, papers, ...) against the entity rules and reports every violation
with its JSON Pointer.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.stderr, a.logFormat, a.verbose)
			if err != nil {
				return err
			}
			a.log = logger
			if a.lang != "" {
				i18n.SetLanguage(a.lang)
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language: en or de")
	root.PersistentFlags().IntVarP(&a.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files validated in parallel")

	root.AddCommand(a.validateCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(a.extractCmd())
	root.AddCommand(a.schemaCmd())
	return root
}

// newLogger builds the stderr logger used by every subcommand.
func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
}
