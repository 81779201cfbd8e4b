package parser

import (
	"regexp"
	"strings"

	"l10nlint/internal/entity"
)

// PropertiesParser parses key=value properties files.
type PropertiesParser struct{}

func NewPropertiesParser() *PropertiesParser { return &PropertiesParser{} }

func (p *PropertiesParser) Format() Format { return FormatProperties }

func (p *PropertiesParser) CanParse(ext string) bool {
	return ext == ".properties"
}

// printfPattern matches printf-style directives, including positional forms
// like %1$S. %% is matched so it can be skipped as an escaped literal.
var printfPattern = regexp.MustCompile(`%(?:[1-9][0-9]*\$)?[-#+ 0]*[0-9]*(?:\.[0-9]+)?[sSdioxXeEfgGc]|%%`)

// extractPrintf returns the ordered printf directives found in a value.
func extractPrintf(value string) []string {
	var out []string
	for _, m := range printfPattern.FindAllString(value, -1) {
		if m == "%%" {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (p *PropertiesParser) Parse(text, path string) *entity.Resource {
	lines := strings.Split(text, "\n")

	var entries []entity.Entry

	// Pending junk lines are merged into a single Junk entry so one broken
	// block produces one diagnostic.
	junkStart := -1
	var junkLines []string
	flushJunk := func() {
		if junkStart < 0 {
			return
		}
		entries = append(entries, &entity.Junk{
			Raw:      strings.Join(junkLines, "\n"),
			Position: entity.Position{Line: junkStart, Col: 1},
			Reason:   "expected key-value separator",
		})
		junkStart = -1
		junkLines = nil
	}

	commentStart := -1
	var commentLines []string
	flushComment := func() {
		if commentStart < 0 {
			return
		}
		entries = append(entries, &entity.Comment{
			Text:     strings.Join(commentLines, "\n"),
			Position: entity.Position{Line: commentStart, Col: 1},
		})
		commentStart = -1
		commentLines = nil
	}

	for i := 0; i < len(lines); i++ {
		lineNum := i + 1
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushComment()
			flushJunk()
			continue
		}

		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			flushJunk()
			if commentStart < 0 {
				commentStart = lineNum
			}
			commentLines = append(commentLines, strings.TrimLeft(trimmed, "#! "))
			continue
		}

		sep := separatorIndex(trimmed)
		if sep <= 0 {
			flushComment()
			if junkStart < 0 {
				junkStart = lineNum
			}
			junkLines = append(junkLines, line)
			continue
		}

		flushComment()
		flushJunk()

		key := strings.TrimSpace(trimmed[:sep])
		value := strings.TrimLeft(trimmed[sep+1:], " \t")
		col := strings.Index(line, key) + 1

		// Backslash continuations extend the value onto following lines.
		for strings.HasSuffix(value, "\\") && !strings.HasSuffix(value, "\\\\") && i+1 < len(lines) {
			i++
			value = value[:len(value)-1] + strings.TrimLeft(lines[i], " \t")
		}

		entries = append(entries, &entity.Entity{
			Key:      key,
			Value:    value,
			Position: entity.Position{Line: lineNum, Col: col},
			Meta: entity.Metadata{
				Placeholders: extractPrintf(value),
			},
		})
	}
	flushComment()
	flushJunk()

	return entity.NewResource(path, entries)
}

// separatorIndex finds the first unescaped '=' or ':' in a line.
func separatorIndex(line string) int {
	escaped := false
	for i := 0; i < len(line); i++ {
		switch {
		case escaped:
			escaped = false
		case line[i] == '\\':
			escaped = true
		case line[i] == '=' || line[i] == ':':
			return i
		}
	}
	return -1
}
