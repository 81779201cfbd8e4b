package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"l10nlint/internal/checks"
	"l10nlint/internal/compare"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	fileColor    = color.New(color.FgCyan, color.Bold)
)

// Console renders diagnostics as they stream in and a summary table at the
// end. Diagnostics are buffered per file: the engine emits a file's
// diagnostics before its summary, so the file header prints once.
type Console struct {
	out       io.Writer
	pending   []checks.Diagnostic
	summaries []compare.Summary
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Diagnostic(d checks.Diagnostic) {
	c.pending = append(c.pending, d)
}

func (c *Console) FileSummary(s compare.Summary) {
	c.summaries = append(c.summaries, s)
	if len(c.pending) == 0 {
		return
	}

	fmt.Fprintf(c.out, "%s\n", fileColor.Sprintf("%s (%s)", s.File, s.Locale))
	for _, d := range c.pending {
		sev := warningColor.Sprint(d.Severity)
		if d.Severity == checks.SevError {
			sev = errorColor.Sprint(d.Severity)
		}
		loc := ""
		if !d.Position.IsZero() {
			loc = d.Position.String()
		}
		if d.Key != "" {
			fmt.Fprintf(c.out, "  %-8s %-24s %s (%s) %s\n", loc, d.Code, d.Key, sev, d.Message)
		} else {
			fmt.Fprintf(c.out, "  %-8s %-24s (%s) %s\n", loc, d.Code, sev, d.Message)
		}
	}
	c.pending = nil
}

func (c *Console) Total(total compare.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"Locale", "File", "Total", "Missing", "Obsolete",
		"Changed", "Unchanged", "Errors", "Warnings", "Dupes",
	})
	for _, s := range c.summaries {
		t.AppendRow(table.Row{
			s.Locale, s.File, s.Total, s.Missing, s.Obsolete,
			s.Changed, s.Unchanged, s.Errors, s.Warnings, s.Duplicates,
		})
	}
	t.AppendFooter(table.Row{
		"", "total", total.Total, total.Missing, total.Obsolete,
		total.Changed, total.Unchanged, total.Errors, total.Warnings, total.Duplicates,
	})
	t.Render()
}
