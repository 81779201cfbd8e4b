package parser

import (
	"strings"

	"l10nlint/internal/entity"
)

// INIParser parses sectioned key=value files:
//
//	; initial comment
//	[section]
//	string=value
//
// Section names are folded into the keys ("section.string") so the flat
// key index stays unambiguous across sections.
type INIParser struct{}

func NewINIParser() *INIParser { return &INIParser{} }

func (p *INIParser) Format() Format { return FormatINI }

func (p *INIParser) CanParse(ext string) bool {
	return ext == ".ini"
}

func (p *INIParser) Parse(text, path string) *entity.Resource {
	lines := strings.Split(text, "\n")

	var entries []entity.Entry

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

	section := ""

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flushComment()
			flushJunk()
			continue
		}

		if strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			flushJunk()
			if commentStart < 0 {
				commentStart = lineNum
			}
			commentLines = append(commentLines, strings.TrimLeft(trimmed, ";# "))
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			flushComment()
			if !strings.HasSuffix(trimmed, "]") {
				if junkStart < 0 {
					junkStart = lineNum
				}
				junkLines = append(junkLines, line)
				continue
			}
			flushJunk()
			section = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			continue
		}

		sep := strings.Index(trimmed, "=")
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
		if section != "" {
			key = section + "." + key
		}
		value := strings.TrimSpace(trimmed[sep+1:])

		entries = append(entries, &entity.Entity{
			Key:      key,
			Value:    value,
			Position: entity.Position{Line: lineNum, Col: 1},
			Meta: entity.Metadata{
				Placeholders: extractPrintf(value),
			},
		})
	}
	flushComment()
	flushJunk()

	return entity.NewResource(path, entries)
}
