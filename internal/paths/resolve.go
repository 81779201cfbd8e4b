package paths

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"l10nlint/internal/parser"
	"l10nlint/internal/textutil"
)

// Job is one resolved file pair: which reference to compare against which
// localized file, for which locale, with which checks suppressed.
type Job struct {
	ReferencePath string
	LocalizedPath string
	Locale        string
	Format        parser.Format
	Suppressed    []string
	PluralForms   int
	Pseudo        bool
}

// Resolve expands the configuration into an ordered list of jobs: path
// rules in config order, matched reference files sorted, locales in
// project order.
func (c *Config) Resolve() ([]Job, error) {
	locales := append(append([]string{}, c.Locales...), c.PseudoLocales...)

	var jobs []Job
	for _, rule := range c.Paths {
		refs, err := filepath.Glob(filepath.Join(c.root, rule.Reference))
		if err != nil {
			return nil, fmt.Errorf("bad reference pattern %q: %w", rule.Reference, err)
		}
		if len(refs) == 0 && !strings.ContainsAny(rule.Reference, "*?[") {
			// A literal path that does not exist still becomes a job, so
			// the engine can report the missing reference.
			refs = []string{filepath.Join(c.root, rule.Reference)}
		}
		sort.Strings(refs)

		ruleLocales := rule.Locales
		if len(ruleLocales) == 0 {
			ruleLocales = locales
		}

		for _, ref := range refs {
			p, ok := parser.ForPath(ref)
			if !ok {
				log.Warn().Str("path", ref).Msg("No parser for reference file, skipping")
				continue
			}

			rel, err := filepath.Rel(c.root, ref)
			if err != nil {
				return nil, fmt.Errorf("relativize %s: %w", ref, err)
			}
			wild := wildcardPart(rule.Reference, rel)

			for _, locale := range ruleLocales {
				l10nRel := strings.ReplaceAll(rule.L10n, "{locale}", locale)
				l10nRel = strings.Replace(l10nRel, "*", wild, 1)

				jobs = append(jobs, Job{
					ReferencePath: ref,
					LocalizedPath: filepath.Join(c.root, l10nRel),
					Locale:        locale,
					Format:        p.Format(),
					Suppressed:    c.suppressedFor(l10nRel),
					PluralForms:   c.PluralForms(locale),
					Pseudo:        c.IsPseudo(locale),
				})
			}
		}
	}

	log.Info().Int("jobs", len(jobs)).Int("locales", len(locales)).Msg("Resolved project config")
	return jobs, nil
}

// wildcardPart recovers the text a pattern's "*" matched in a path.
func wildcardPart(pattern, matched string) string {
	star := strings.Index(pattern, "*")
	if star < 0 {
		return ""
	}
	prefix := pattern[:star]
	suffix := pattern[star+1:]
	if !strings.HasPrefix(matched, prefix) || !strings.HasSuffix(matched, suffix) {
		return ""
	}
	return matched[len(prefix) : len(matched)-len(suffix)]
}

// suppressedFor collects the check codes of every filter whose path pattern
// matches the localized file.
func (c *Config) suppressedFor(rel string) []string {
	var out []string
	for _, f := range c.Filters {
		matched, err := filepath.Match(f.Path, rel)
		if err != nil || (!matched && f.Path != rel) {
			continue
		}
		out = append(out, f.Checks...)
	}
	return textutil.Uniq(out)
}
