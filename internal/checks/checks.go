package checks

import (
	"l10nlint/internal/entity"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Code is a stable machine-readable identifier for one kind of finding.
type Code string

// Codes produced by the check rules.
const (
	CodePrintfMismatch       Code = "printf-mismatch"
	CodeEmptyValue           Code = "empty-value"
	CodeSameAsReference      Code = "same-as-reference"
	CodeUnbalancedDelimiters Code = "unbalanced-delimiters"
	CodePluralForms          Code = "plural-forms"
	CodeUnknownReference     Code = "unknown-reference"
)

// Codes synthesized by the compare engine for classification events.
const (
	CodeMissing           Code = "missing"
	CodeMissingFile       Code = "missing-file"
	CodeObsolete          Code = "obsolete"
	CodeDuplicateKey      Code = "duplicate-key"
	CodeParseError        Code = "parse-error"
	CodeReferenceNotFound Code = "reference-not-found"
)

// Diagnostic is one reported finding. Key is empty for keyless findings
// (junk spans, missing reference files).
type Diagnostic struct {
	Key      string
	Position entity.Position
	Severity Severity
	Code     Code
	Message  string
}

// Context gives rules read-only access to both full resources and the
// locale parameters of the job. Rules never mutate it.
type Context struct {
	Reference *entity.Resource
	Localized *entity.Resource
	// Locale is the target locale code.
	Locale string
	// PluralForms is the plural-form count the target locale requires,
	// 0 when the caller supplied no rule for this locale.
	PluralForms int
	// Pseudo marks pseudo-locales, which legitimately mirror the
	// reference text.
	Pseudo bool
}

// Check inspects one (reference, localized) entity pair. Implementations
// are pure functions over their inputs and safe for concurrent use.
type Check interface {
	Code() Code
	Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic
}

// Capability flags gate rule families per format. Formats declare what
// their metadata carries instead of the registry inspecting grammar types.
type Capability uint8

const (
	CapPlaceholders Capability = 1 << iota
	CapReferences
	CapPlurals
)

// Registry holds the ordered check rules for one format.
type Registry struct {
	checks []Check
}

// NewRegistry builds a registry with the rule families enabled by the
// format's capabilities. Value-level rules apply to every format.
func NewRegistry(caps Capability) *Registry {
	r := &Registry{}
	if caps&CapPlaceholders != 0 {
		r.checks = append(r.checks, placeholderCheck{})
	}
	r.checks = append(r.checks,
		emptyValueCheck{},
		sameAsReferenceCheck{},
		delimiterCheck{},
	)
	if caps&CapPlurals != 0 {
		r.checks = append(r.checks, pluralFormsCheck{})
	}
	if caps&CapReferences != 0 {
		r.checks = append(r.checks, referenceCheck{})
	}
	return r
}

// ForFormat resolves the registry for a format identifier. Unknown formats
// get the value-level rules only.
func ForFormat(format string) *Registry {
	switch format {
	case "properties", "ini":
		return NewRegistry(CapPlaceholders)
	case "dtd":
		return NewRegistry(CapReferences)
	case "fluent":
		return NewRegistry(CapPlaceholders | CapReferences | CapPlurals)
	}
	return NewRegistry(0)
}

// Run applies every rule to the pair and concatenates the diagnostics in
// rule-registration order.
func (r *Registry) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	var out []Diagnostic
	for _, c := range r.checks {
		out = append(out, c.Run(ref, loc, ctx)...)
	}
	return out
}
