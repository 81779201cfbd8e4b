package compare

import (
	"fmt"

	"l10nlint/internal/checks"
	"l10nlint/internal/entity"
)

// Job is one independent file-pair comparison: a reference document against
// the localized document of one locale. Jobs are pure computations over
// immutable inputs, safe to run concurrently and cheap to discard.
type Job struct {
	Locale        string
	Format        string
	ReferencePath string
	LocalizedPath string
	// Reference is nil when the reference file could not be loaded, which
	// is fatal for this job only.
	Reference *entity.Resource
	// Localized is nil when the localized file does not exist.
	Localized *entity.Resource
	// Suppressed lists check codes excluded for this path before they can
	// affect status or counters.
	Suppressed []checks.Code
	// PluralForms is the plural-form count required by Locale, 0 if the
	// caller supplied no rule.
	PluralForms int
	// Pseudo marks pseudo-locales.
	Pseudo bool
}

// Result is the immutable outcome of one job.
type Result struct {
	Diagnostics []checks.Diagnostic
	Summary     Summary
}

// Compare reconciles one file pair and classifies every key. Output order
// is fixed: reference document order for matched, missing and junk keys,
// then localized document order for obsolete keys and stray junk, so
// re-running on identical input is byte-for-byte reproducible.
func Compare(job Job) Result {
	res := Result{Summary: Summary{Locale: job.Locale, File: job.LocalizedPath}}

	if job.Reference == nil {
		res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
			Severity: checks.SevError,
			Code:     checks.CodeReferenceNotFound,
			Message:  fmt.Sprintf("reference file %s not found", job.ReferencePath),
		})
		return res
	}

	if job.Localized == nil {
		for _, e := range job.Reference.Entities() {
			res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
				Key:      e.Key,
				Position: e.Position,
				Severity: checks.SevError,
				Code:     checks.CodeMissingFile,
				Message:  fmt.Sprintf("%s is missing entirely", job.LocalizedPath),
			})
			res.Summary.Missing++
			res.Summary.Total++
		}
		return res
	}

	suppressed := make(map[checks.Code]bool, len(job.Suppressed))
	for _, c := range job.Suppressed {
		suppressed[c] = true
	}

	// Key index over the localized document, first occurrence wins. Keyed
	// junk participates so broken entries still match their reference key;
	// keyless junk is reported in the final walk.
	index := make(map[string]entity.Entry)
	for _, en := range job.Localized.Entries {
		key := entryKey(en)
		if key == "" {
			continue
		}
		if _, dup := index[key]; dup {
			res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
				Key:      key,
				Position: en.Pos(),
				Severity: checks.SevWarning,
				Code:     checks.CodeDuplicateKey,
				Message:  fmt.Sprintf("key %q occurs more than once", key),
			})
			res.Summary.Duplicates++
			continue
		}
		index[key] = en
	}

	registry := checks.ForFormat(job.Format)
	ctx := &checks.Context{
		Reference:   job.Reference,
		Localized:   job.Localized,
		Locale:      job.Locale,
		PluralForms: job.PluralForms,
		Pseudo:      job.Pseudo,
	}

	// Reference-driven walk. This defines the canonical output order.
	consulted := make(map[string]bool)
	for _, en := range job.Reference.Entries {
		switch e := en.(type) {
		case *entity.Junk:
			res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
				Key:      e.Key,
				Position: e.Position,
				Severity: checks.SevError,
				Code:     checks.CodeParseError,
				Message:  e.Reason,
			})
			res.Summary.Errors++

		case *entity.Entity:
			if consulted[e.Key] {
				res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
					Key:      e.Key,
					Position: e.Position,
					Severity: checks.SevWarning,
					Code:     checks.CodeDuplicateKey,
					Message:  fmt.Sprintf("key %q occurs more than once in the reference", e.Key),
				})
				res.Summary.Duplicates++
				continue
			}
			consulted[e.Key] = true
			res.Summary.Total++

			loc, ok := index[e.Key]
			if !ok {
				res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
					Key:      e.Key,
					Position: e.Position,
					Severity: checks.SevError,
					Code:     checks.CodeMissing,
					Message:  "missing from the translation",
				})
				res.Summary.Missing++
				continue
			}

			switch l := loc.(type) {
			case *entity.Junk:
				res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
					Key:      l.Key,
					Position: l.Position,
					Severity: checks.SevError,
					Code:     checks.CodeParseError,
					Message:  l.Reason,
				})
				res.Summary.Errors++

			case *entity.Entity:
				var diags []checks.Diagnostic
				for _, d := range registry.Run(e, l, ctx) {
					if suppressed[d.Code] {
						continue
					}
					diags = append(diags, d)
				}
				res.Diagnostics = append(res.Diagnostics, diags...)

				switch statusFor(diags, e, l) {
				case StatusError:
					res.Summary.Errors++
				case StatusWarning:
					res.Summary.Warnings++
				case StatusUnchanged:
					res.Summary.Unchanged++
				case StatusChanged:
					res.Summary.Changed++
				}
			}
		}
	}

	// Whatever the reference never consulted is obsolete; stray junk in the
	// localized document surfaces here too, all in localized order.
	for _, en := range job.Localized.Entries {
		switch e := en.(type) {
		case *entity.Junk:
			if e.Key != "" && (consulted[e.Key] || index[e.Key] != en) {
				continue
			}
			res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
				Key:      e.Key,
				Position: e.Position,
				Severity: checks.SevError,
				Code:     checks.CodeParseError,
				Message:  e.Reason,
			})
			res.Summary.Errors++

		case *entity.Entity:
			if consulted[e.Key] || index[e.Key] != en {
				continue
			}
			res.Diagnostics = append(res.Diagnostics, checks.Diagnostic{
				Key:      e.Key,
				Position: e.Position,
				Severity: checks.SevWarning,
				Code:     checks.CodeObsolete,
				Message:  "not in the reference anymore",
			})
			res.Summary.Obsolete++
		}
	}

	return res
}

func entryKey(en entity.Entry) string {
	switch e := en.(type) {
	case *entity.Entity:
		return e.Key
	case *entity.Junk:
		return e.Key
	}
	return ""
}

// statusFor derives the per-key status from the surviving check
// diagnostics: any error wins, then any warning, then value identity
// decides between unchanged and changed.
func statusFor(diags []checks.Diagnostic, ref, loc *entity.Entity) Status {
	worst := StatusUnchanged
	for _, d := range diags {
		switch d.Severity {
		case checks.SevError:
			return StatusError
		case checks.SevWarning:
			worst = StatusWarning
		}
	}
	if worst == StatusWarning {
		return StatusWarning
	}
	if ref.Value == loc.Value {
		return StatusUnchanged
	}
	return StatusChanged
}
