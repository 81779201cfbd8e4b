package compare

import "l10nlint/internal/checks"

// Observer is the sink the engine emits results through, in emission order:
// diagnostics, then one Summary per file pair, then a final total. The
// engine knows nothing about output formatting.
type Observer interface {
	Diagnostic(d checks.Diagnostic)
	FileSummary(s Summary)
	Total(s Summary)
}

// NopObserver discards everything. Useful for tests and for callers that
// only want the returned Summary.
type NopObserver struct{}

func (NopObserver) Diagnostic(checks.Diagnostic) {}
func (NopObserver) FileSummary(Summary)          {}
func (NopObserver) Total(Summary)                {}
