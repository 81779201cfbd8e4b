package parser

import (
	"regexp"
	"strings"

	"l10nlint/internal/entity"
)

// FluentParser parses a structured message-resource syntax: messages of the
// form `id = pattern` with indented continuation lines, `-term` definitions,
// `{ $var }` placeables, `{ message-id }` references, and select expressions
// whose variants carry plural forms.
type FluentParser struct{}

func NewFluentParser() *FluentParser { return &FluentParser{} }

func (p *FluentParser) Format() Format { return FormatFluent }

func (p *FluentParser) CanParse(ext string) bool {
	return ext == ".ftl"
}

var (
	fluentMessage = regexp.MustCompile(`^(-?[a-zA-Z][a-zA-Z0-9_\-]*)\s*=\s*(.*)$`)
	// fluentIdent recognizes a lone identifier at the start of a line, which
	// is a message head missing its "=".
	fluentIdent = regexp.MustCompile(`^(-?[a-zA-Z][a-zA-Z0-9_\-]*)\s*$`)

	fluentVariable  = regexp.MustCompile(`\{\s*\$([a-zA-Z][a-zA-Z0-9_\-]*)`)
	fluentReference = regexp.MustCompile(`\{\s*(-?[a-zA-Z][a-zA-Z0-9_\-]*)\s*\}`)
	fluentVariant   = regexp.MustCompile(`(?m)^\s*\*?\[[^\]\n]+\]`)
)

// fluentMeta extracts placeables, references and plural variant counts from
// a message pattern.
func fluentMeta(value string) entity.Metadata {
	meta := entity.Metadata{}
	for _, m := range fluentVariable.FindAllStringSubmatch(value, -1) {
		meta.Placeholders = append(meta.Placeholders, "$"+m[1])
	}
	for _, m := range fluentReference.FindAllStringSubmatch(value, -1) {
		meta.References = append(meta.References, m[1])
	}
	if strings.Contains(value, "->") {
		meta.PluralForms = len(fluentVariant.FindAllString(value, -1))
	}
	return meta
}

func (p *FluentParser) Parse(text, path string) *entity.Resource {
	lines := strings.Split(text, "\n")

	var entries []entity.Entry

	for i := 0; i < len(lines); i++ {
		lineNum := i + 1
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			start := lineNum
			var comment []string
			for {
				comment = append(comment, strings.TrimLeft(lines[i], "# "))
				if i+1 >= len(lines) || !strings.HasPrefix(strings.TrimSpace(lines[i+1]), "#") {
					break
				}
				i++
			}
			entries = append(entries, &entity.Comment{
				Text:     strings.Join(comment, "\n"),
				Position: entity.Position{Line: start, Col: 1},
			})
			continue
		}

		// Continuation lines belong to a preceding message; one showing up
		// here has nothing to attach to.
		if line[0] == ' ' || line[0] == '\t' {
			entries = append(entries, &entity.Junk{
				Raw:      line,
				Position: entity.Position{Line: lineNum, Col: 1},
				Reason:   "continuation line without a message",
			})
			continue
		}

		if m := fluentMessage.FindStringSubmatch(line); m != nil {
			value := m[2]
			// Indented lines continue the pattern (multiline values,
			// attributes, select variants).
			for i+1 < len(lines) && isFluentContinuation(lines[i+1]) {
				i++
				value += "\n" + strings.TrimRight(lines[i], " \t")
			}
			entries = append(entries, &entity.Entity{
				Key:      m[1],
				Value:    strings.TrimSpace(value),
				Position: entity.Position{Line: lineNum, Col: 1},
				Meta:     fluentMeta(value),
			})
			continue
		}

		junk := &entity.Junk{
			Raw:      line,
			Position: entity.Position{Line: lineNum, Col: 1},
			Reason:   "unparseable entry",
		}
		if m := fluentIdent.FindStringSubmatch(line); m != nil {
			junk.Key = m[1]
			junk.Reason = `expected "=" after message identifier`
		}
		// Swallow the junk entry's continuation lines as well.
		for i+1 < len(lines) && isFluentContinuation(lines[i+1]) {
			i++
			junk.Raw += "\n" + lines[i]
		}
		entries = append(entries, junk)
	}

	return entity.NewResource(path, entries)
}

func isFluentContinuation(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return line[0] == ' ' || line[0] == '\t'
}
