package entity

import "fmt"

// Position is a 1-based line and column within a source document.
// The zero value marks entries synthesized for documents that do not exist.
type Position struct {
	Line int
	Col  int
}

func (p Position) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Metadata carries format-specific facts a parser attaches to an entity so
// that checks never need to know the source grammar.
type Metadata struct {
	// Placeholders is the ordered list of substitution tokens found in the
	// raw value (printf directives, fluent variables).
	Placeholders []string
	// PluralForms is the number of plural variants the value declares,
	// 0 when the value has no plural construct.
	PluralForms int
	// References is the ordered list of identifiers the value refers to
	// (markup entity references, fluent message/term references).
	References []string
}

// Entry is one item of a parsed Resource: an Entity, a Comment, or Junk.
type Entry interface {
	Pos() Position
}

// Entity is a single translatable key/value pair.
type Entity struct {
	Key      string
	Value    string
	Position Position
	Meta     Metadata
}

func (e *Entity) Pos() Position { return e.Position }

// Comment is carried through for association but never diffed.
type Comment struct {
	Text     string
	Position Position
}

func (c *Comment) Pos() Position { return c.Position }

// Junk is a span the parser could not interpret. It is never silently
// dropped. Key is set when the parser recognized an identifier before the
// entry turned out to be malformed, and empty otherwise.
type Junk struct {
	Raw      string
	Key      string
	Position Position
	Reason   string
}

func (j *Junk) Pos() Position { return j.Position }
