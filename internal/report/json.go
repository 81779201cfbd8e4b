package report

import (
	"encoding/json"
	"fmt"
	"io"

	"l10nlint/internal/checks"
	"l10nlint/internal/compare"
)

// jsonDiagnostic is the wire shape of one finding.
type jsonDiagnostic struct {
	Key      string `json:"key,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

type jsonReport struct {
	Diagnostics []jsonDiagnostic  `json:"diagnostics"`
	Files       []compare.Summary `json:"files"`
	Total       compare.Counts    `json:"total"`
}

// JSON collects the whole run and writes a single document when the total
// arrives, so the output is valid JSON even when interleaved with logging.
type JSON struct {
	out    io.Writer
	report jsonReport
}

func NewJSON(out io.Writer) *JSON {
	return &JSON{out: out, report: jsonReport{Diagnostics: []jsonDiagnostic{}, Files: []compare.Summary{}}}
}

func (j *JSON) Diagnostic(d checks.Diagnostic) {
	j.report.Diagnostics = append(j.report.Diagnostics, jsonDiagnostic{
		Key:      d.Key,
		Line:     d.Position.Line,
		Column:   d.Position.Col,
		Severity: d.Severity.String(),
		Code:     string(d.Code),
		Message:  d.Message,
	})
}

func (j *JSON) FileSummary(s compare.Summary) {
	j.report.Files = append(j.report.Files, s)
}

func (j *JSON) Total(total compare.Summary) {
	j.report.Total = total.Counts
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(j.report); err != nil {
		fmt.Fprintf(j.out, `{"error": %q}`, err.Error())
	}
}
