package checks

import (
	"fmt"
	"strings"

	"l10nlint/internal/entity"
)

// sameAsReferenceThreshold is the minimum reference length before an
// identical translation is considered suspicious. Short strings ("OK",
// brand names) are frequently identical on purpose.
const sameAsReferenceThreshold = 3

// emptyValueCheck flags translations that drop a non-empty reference value.
type emptyValueCheck struct{}

func (emptyValueCheck) Code() Code { return CodeEmptyValue }

func (emptyValueCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	if ref.Value == "" || strings.TrimSpace(loc.Value) != "" {
		return nil
	}
	return []Diagnostic{{
		Key:      loc.Key,
		Position: loc.Position,
		Severity: SevWarning,
		Code:     CodeEmptyValue,
		Message:  "translation is empty but the reference has a value",
	}}
}

// sameAsReferenceCheck flags likely-untranslated strings. Pseudo-locales
// are exempt: mirroring the reference is their job.
type sameAsReferenceCheck struct{}

func (sameAsReferenceCheck) Code() Code { return CodeSameAsReference }

func (sameAsReferenceCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	if ctx.Pseudo || loc.Value != ref.Value || len(ref.Value) <= sameAsReferenceThreshold {
		return nil
	}
	return []Diagnostic{{
		Key:      loc.Key,
		Position: loc.Position,
		Severity: SevWarning,
		Code:     CodeSameAsReference,
		Message:  "translation is identical to the reference",
	}}
}

// delimiterCheck reports unbalanced braces and quotes in the localized
// value. Translations often lose a closing delimiter when text is edited
// by hand.
type delimiterCheck struct{}

func (delimiterCheck) Code() Code { return CodeUnbalancedDelimiters }

func (delimiterCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	var out []Diagnostic

	depth := 0
	for _, r := range loc.Value {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth < 0 {
			break
		}
	}
	if depth != 0 {
		out = append(out, Diagnostic{
			Key:      loc.Key,
			Position: loc.Position,
			Severity: SevError,
			Code:     CodeUnbalancedDelimiters,
			Message:  "unbalanced braces in translation",
		})
	}

	if strings.Count(loc.Value, `"`)%2 != 0 {
		out = append(out, Diagnostic{
			Key:      loc.Key,
			Position: loc.Position,
			Severity: SevError,
			Code:     CodeUnbalancedDelimiters,
			Message:  fmt.Sprintf("odd number of %q characters in translation", '"'),
		})
	}

	return out
}
