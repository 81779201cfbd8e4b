package parser

import (
	"sort"
	"strings"

	"l10nlint/internal/entity"
)

// Format identifies a resource grammar.
type Format string

const (
	FormatProperties Format = "properties"
	FormatDTD        Format = "dtd"
	FormatFluent     Format = "fluent"
	FormatINI        Format = "ini"
)

// Parser turns raw text into the entity model for one grammar.
//
// Parse never fails: malformed spans become Junk entries with a reason and
// the position of the start of the unparseable region. Entry order follows
// the source document.
type Parser interface {
	// Format returns the grammar identifier.
	Format() Format
	// CanParse returns true if this parser handles the given file extension.
	CanParse(ext string) bool
	// Parse builds a Resource from raw text.
	Parse(text, path string) *entity.Resource
}

var parsers = []Parser{
	NewPropertiesParser(),
	NewDTDParser(),
	NewFluentParser(),
	NewINIParser(),
}

// ForPath selects a parser by file extension.
func ForPath(path string) (Parser, bool) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return nil, false
	}
	ext := strings.ToLower(path[idx:])
	for _, p := range parsers {
		if p.CanParse(ext) {
			return p, true
		}
	}
	return nil, false
}

// ForFormat selects a parser by grammar identifier.
func ForFormat(f Format) (Parser, bool) {
	for _, p := range parsers {
		if p.Format() == f {
			return p, true
		}
	}
	return nil, false
}

// lineIndex converts byte offsets into 1-based line/column positions.
type lineIndex struct {
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

func (li *lineIndex) pos(offset int) entity.Position {
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
	return entity.Position{
		Line: line,
		Col:  offset - li.starts[line-1] + 1,
	}
}
