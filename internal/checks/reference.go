package checks

import (
	"fmt"

	"l10nlint/internal/entity"
)

// referenceCheck verifies that every identifier the localized value refers
// to resolves within the same localized resource. Dangling references render
// as raw markup or break the message at runtime.
type referenceCheck struct{}

func (referenceCheck) Code() Code { return CodeUnknownReference }

func (referenceCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	var out []Diagnostic
	seen := make(map[string]bool)
	for _, id := range loc.Meta.References {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, ok := ctx.Localized.Lookup(id); ok {
			continue
		}
		out = append(out, Diagnostic{
			Key:      loc.Key,
			Position: loc.Position,
			Severity: SevError,
			Code:     CodeUnknownReference,
			Message:  fmt.Sprintf("reference to unknown identifier %q", id),
		})
	}
	return out
}
