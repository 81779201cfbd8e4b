package checks

import (
	"fmt"
	"regexp"

	"l10nlint/internal/entity"
)

// placeholderCheck verifies that the localized value carries the same
// multiset of placeholders as the reference. Order is not compared:
// translators legitimately reorder words, and positional directives exist
// for exactly that purpose.
type placeholderCheck struct{}

func (placeholderCheck) Code() Code { return CodePrintfMismatch }

// printfNormalize strips flags, width and precision so that %1$S, %S and
// %-10S all count as the same directive type.
var printfNormalize = regexp.MustCompile(`^%(?:[1-9][0-9]*\$)?[-#+ 0]*[0-9]*(?:\.[0-9]+)?`)

func normalizePlaceholder(token string) string {
	if len(token) > 0 && token[0] == '%' {
		return "%" + printfNormalize.ReplaceAllString(token, "")
	}
	return token
}

func countPlaceholders(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[normalizePlaceholder(t)]++
	}
	return counts
}

func (placeholderCheck) Run(ref, loc *entity.Entity, ctx *Context) []Diagnostic {
	refCounts := countPlaceholders(ref.Meta.Placeholders)
	locCounts := countPlaceholders(loc.Meta.Placeholders)

	var out []Diagnostic

	// Walk the reference tokens in their original order so output order is
	// deterministic and follows the reference value.
	reported := make(map[string]bool)
	for _, t := range ref.Meta.Placeholders {
		key := normalizePlaceholder(t)
		if reported[key] {
			continue
		}
		reported[key] = true
		if locCounts[key] < refCounts[key] {
			out = append(out, Diagnostic{
				Key:      loc.Key,
				Position: loc.Position,
				Severity: SevError,
				Code:     CodePrintfMismatch,
				Message:  fmt.Sprintf("placeholder %s from the reference is missing in the translation", key),
			})
		}
	}

	reported = make(map[string]bool)
	for _, t := range loc.Meta.Placeholders {
		key := normalizePlaceholder(t)
		if reported[key] {
			continue
		}
		reported[key] = true
		if locCounts[key] > refCounts[key] {
			out = append(out, Diagnostic{
				Key:      loc.Key,
				Position: loc.Position,
				Severity: SevWarning,
				Code:     CodePrintfMismatch,
				Message:  fmt.Sprintf("translation has placeholder %s not present in the reference", key),
			})
		}
	}

	return out
}
