package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"l10nlint/internal/checks"
	"l10nlint/internal/compare"
	"l10nlint/internal/config"
	"l10nlint/internal/entity"
	"l10nlint/internal/parser"
	"l10nlint/internal/report"
	"l10nlint/internal/textutil"
)

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>...",
		Short: "Parse localization files standalone and report syntax problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(args)
		},
	}
}

// runLint checks files for parse errors and duplicate keys without needing
// a reference locale or project config.
func runLint(files []string) error {
	cfg := config.Load()
	applyLogLevel(cfg)

	obs := report.NewConsole(os.Stdout)
	var total compare.Counts

	for _, path := range files {
		summary, err := lintFile(obs, path)
		if err != nil {
			return err
		}
		total = total.Add(summary.Counts)
	}
	obs.Total(compare.Summary{Counts: total})

	if total.Errors > 0 {
		return fmt.Errorf("%d syntax errors found", total.Errors)
	}
	return nil
}

func lintFile(obs compare.Observer, path string) (compare.Summary, error) {
	p, ok := parser.ForPath(path)
	if !ok {
		return compare.Summary{}, fmt.Errorf("no parser for %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return compare.Summary{}, fmt.Errorf("read %s: %w", path, err)
	}

	res := p.Parse(string(data), path)
	summary := compare.Summary{File: path}

	seen := make(map[string]bool)
	for _, e := range res.Entries {
		switch entry := e.(type) {
		case *entity.Entity:
			summary.Total++
			if seen[entry.Key] {
				summary.Duplicates++
				obs.Diagnostic(checks.Diagnostic{
					Key:      entry.Key,
					Position: entry.Pos(),
					Severity: checks.SevWarning,
					Code:     checks.CodeDuplicateKey,
					Message:  fmt.Sprintf("key %s defined more than once, first definition wins", entry.Key),
				})
			}
			seen[entry.Key] = true
		case *entity.Junk:
			summary.Errors++
			log.Debug().Str("raw", textutil.Truncate(entry.Raw, 60)).Msg("Unparseable span")
			obs.Diagnostic(checks.Diagnostic{
				Key:      entry.Key,
				Position: entry.Pos(),
				Severity: checks.SevError,
				Code:     checks.CodeParseError,
				Message:  entry.Reason,
			})
		}
	}

	obs.FileSummary(summary)
	return summary, nil
}
