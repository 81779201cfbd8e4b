package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"l10nlint/internal/checks"
	"l10nlint/internal/compare"
	"l10nlint/internal/config"
	"l10nlint/internal/entity"
	"l10nlint/internal/history"
	"l10nlint/internal/parser"
	"l10nlint/internal/paths"
	"l10nlint/internal/report"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <l10n.toml>",
		Short: "Compare every localized file in a project against its reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			record, _ := cmd.Flags().GetBool("record")
			return runCompare(args[0], jsonOut, record)
		},
	}
	cmd.Flags().Bool("json", false, "Emit a single JSON report instead of console output")
	cmd.Flags().Bool("record", false, "Record run summaries to the history database")
	return cmd
}

func runCompare(configPath string, jsonOut, record bool) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	applyLogLevel(cfg)

	project, err := paths.Load(configPath)
	if err != nil {
		return err
	}
	resolved, err := project.Resolve()
	if err != nil {
		return err
	}

	jobs, err := buildJobs(resolved)
	if err != nil {
		return err
	}

	var obs compare.Observer
	if jsonOut {
		obs = report.NewJSON(os.Stdout)
	} else {
		obs = report.NewConsole(os.Stdout)
	}
	collector := &summaryCollector{next: obs}

	runner := &compare.Runner{Workers: cfg.WorkerCount, Observer: collector}
	total := runner.Run(ctx, jobs)

	if record {
		if err := recordHistory(ctx, cfg, configPath, collector.files); err != nil {
			return err
		}
	}

	log.Info().
		Int("files", len(jobs)).
		Int("missing", total.Missing).
		Int("errors", total.Errors).
		Int("warnings", total.Warnings).
		Msg("Comparison finished")

	if total.Errors > 0 {
		return fmt.Errorf("%d errors found", total.Errors)
	}
	return nil
}

// buildJobs loads and parses every resolved file pair. Each reference file
// is parsed once and shared across the locales that compare against it.
func buildJobs(resolved []paths.Job) ([]compare.Job, error) {
	refCache := make(map[string]*entity.Resource)

	jobs := make([]compare.Job, 0, len(resolved))
	for _, rj := range resolved {
		p, ok := parser.ForFormat(rj.Format)
		if !ok {
			return nil, fmt.Errorf("no parser registered for format %q", rj.Format)
		}

		ref, cached := refCache[rj.ReferencePath]
		if !cached {
			var err error
			ref, err = loadResource(p, rj.ReferencePath)
			if err != nil {
				return nil, err
			}
			refCache[rj.ReferencePath] = ref
		}

		loc, err := loadResource(p, rj.LocalizedPath)
		if err != nil {
			return nil, err
		}

		suppressed := make([]checks.Code, 0, len(rj.Suppressed))
		for _, code := range rj.Suppressed {
			suppressed = append(suppressed, checks.Code(code))
		}

		jobs = append(jobs, compare.Job{
			Locale:        rj.Locale,
			Format:        string(rj.Format),
			ReferencePath: rj.ReferencePath,
			LocalizedPath: rj.LocalizedPath,
			Reference:     ref,
			Localized:     loc,
			Suppressed:    suppressed,
			PluralForms:   rj.PluralForms,
			Pseudo:        rj.Pseudo,
		})
	}
	return jobs, nil
}

// loadResource reads and parses one file. A file that does not exist is a
// nil resource, which the engine classifies as missing; any other read
// failure is an error, not a missing translation.
func loadResource(p parser.Parser, path string) (*entity.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.Parse(string(data), path), nil
}

func recordHistory(ctx context.Context, cfg *config.Config, project string, files []compare.Summary) error {
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("L10NLINT_DATABASE_URL not set, skipping history recording")
		return nil
	}

	store, err := history.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	return store.RecordRun(ctx, project, files)
}

// summaryCollector tees per-file summaries off the observer stream so they
// can be recorded after the run.
type summaryCollector struct {
	next  compare.Observer
	files []compare.Summary
}

func (c *summaryCollector) Diagnostic(d checks.Diagnostic) { c.next.Diagnostic(d) }

func (c *summaryCollector) FileSummary(s compare.Summary) {
	c.files = append(c.files, s)
	c.next.FileSummary(s)
}

func (c *summaryCollector) Total(s compare.Summary) { c.next.Total(s) }
