package checks

import (
	"fmt"

	"l10nlint/internal/entity"
)

// pluralFormsCheck compares the plural variant count a value declares with
// the count the target locale requires. The required count is opaque lookup
// data supplied by the caller; locales without an entry are skipped.
type pluralFormsCheck struct{}

func (pluralFormsCheck) Code() Code { return CodePluralForms }

func (pluralFormsCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	if ctx.PluralForms == 0 || loc.Meta.PluralForms == 0 {
		return nil
	}
	if loc.Meta.PluralForms == ctx.PluralForms {
		return nil
	}
	return []Diagnostic{{
		Key:      loc.Key,
		Position: loc.Position,
		Severity: SevError,
		Code:     CodePluralForms,
		Message: fmt.Sprintf("%d plural forms declared, locale %s requires %d",
			loc.Meta.PluralForms, ctx.Locale, ctx.PluralForms),
	}}
}
