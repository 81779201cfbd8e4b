package cli

import (
	"errors"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"l10nlint/internal/config"
	"l10nlint/internal/history"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded comparison runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return runHistory(limit)
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of rows to show")
	return cmd
}

func runHistory(limit int) error {
	ctx, cancel := setupContext()
	defer cancel()

	cfg := config.Load()
	applyLogLevel(cfg)

	if cfg.DatabaseURL == "" {
		return errors.New("no history database configured, set L10NLINT_DATABASE_URL")
	}

	store, err := history.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Run At", "Project", "Locale", "Total", "Missing", "Errors", "Warnings"})
	for _, r := range runs {
		t.AppendRow(table.Row{
			r.RunAt.Format("2006-01-02 15:04:05"), r.Project, r.Locale,
			r.Counts.Total, r.Counts.Missing, r.Counts.Errors, r.Counts.Warnings,
		})
	}
	t.Render()
	return nil
}
