package parser

import (
	"regexp"
	"strings"

	"l10nlint/internal/entity"
)

// DTDParser parses markup entity files of the form
// <!ENTITY key "value">.
type DTDParser struct{}

func NewDTDParser() *DTDParser { return &DTDParser{} }

func (p *DTDParser) Format() Format { return FormatDTD }

func (p *DTDParser) CanParse(ext string) bool {
	return ext == ".dtd"
}

var (
	dtdWhitespace = regexp.MustCompile(`^[ \t\r\n]+`)
	dtdComment    = regexp.MustCompile(`(?s)^<!--(.*?)-->`)
	dtdEntity     = regexp.MustCompile(`^<!ENTITY\s+([A-Za-z][A-Za-z0-9._\-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
	// dtdEntityHead recognizes the start of a declaration whose body is
	// malformed, so the junk span can keep the key.
	dtdEntityHead = regexp.MustCompile(`^<!ENTITY\s+([A-Za-z][A-Za-z0-9._\-]*)`)

	// entityRef matches &name; references; character references (&#...;)
	// do not match and predefined XML entities are filtered out below.
	entityRef = regexp.MustCompile(`&([A-Za-z][A-Za-z0-9._\-]*);`)
)

var predefinedRefs = map[string]bool{
	"amp": true, "lt": true, "gt": true, "quot": true, "apos": true,
}

// extractEntityRefs returns the ordered entity references in a value.
func extractEntityRefs(value string) []string {
	var out []string
	for _, m := range entityRef.FindAllStringSubmatch(value, -1) {
		if predefinedRefs[m[1]] {
			continue
		}
		out = append(out, m[1])
	}
	return out
}

func (p *DTDParser) Parse(text, path string) *entity.Resource {
	li := newLineIndex(text)

	var entries []entity.Entry
	offset := 0

	for offset < len(text) {
		rest := text[offset:]

		if m := dtdWhitespace.FindString(rest); m != "" {
			offset += len(m)
			continue
		}

		if m := dtdComment.FindStringSubmatch(rest); m != nil {
			entries = append(entries, &entity.Comment{
				Text:     strings.TrimSpace(m[1]),
				Position: li.pos(offset),
			})
			offset += len(m[0])
			continue
		}

		if m := dtdEntity.FindStringSubmatch(rest); m != nil {
			value := m[2]
			if value == "" {
				value = m[3]
			}
			entries = append(entries, &entity.Entity{
				Key:      m[1],
				Value:    value,
				Position: li.pos(offset),
				Meta: entity.Metadata{
					References: extractEntityRefs(value),
				},
			})
			offset += len(m[0])
			continue
		}

		// Junk runs to the next declaration or comment start.
		end := len(text)
		if next := strings.Index(text[offset+1:], "<!"); next >= 0 {
			end = offset + 1 + next
		}
		junk := &entity.Junk{
			Raw:      strings.TrimRight(text[offset:end], " \t\r\n"),
			Position: li.pos(offset),
			Reason:   "unparseable markup",
		}
		if m := dtdEntityHead.FindStringSubmatch(rest); m != nil {
			junk.Key = m[1]
			junk.Reason = "malformed entity declaration"
		}
		entries = append(entries, junk)
		offset = end
	}

	return entity.NewResource(path, entries)
}
