package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10nlint/internal/entity"
)

func TestPropertiesParseBasic(t *testing.T) {
	text := "# greeting strings\n" +
		"greeting=Hello %S\n" +
		"farewell = Goodbye\n"

	r := NewPropertiesParser().Parse(text, "app.properties")
	require.Len(t, r.Entries, 3)

	c, ok := r.Entries[0].(*entity.Comment)
	require.True(t, ok)
	assert.Equal(t, "greeting strings", c.Text)
	assert.Equal(t, 1, c.Position.Line)

	e, ok := r.Entries[1].(*entity.Entity)
	require.True(t, ok)
	assert.Equal(t, "greeting", e.Key)
	assert.Equal(t, "Hello %S", e.Value)
	assert.Equal(t, entity.Position{Line: 2, Col: 1}, e.Position)
	assert.Equal(t, []string{"%S"}, e.Meta.Placeholders)

	e, ok = r.Entries[2].(*entity.Entity)
	require.True(t, ok)
	assert.Equal(t, "farewell", e.Key)
	assert.Equal(t, "Goodbye", e.Value)
}

func TestPropertiesParseContinuation(t *testing.T) {
	text := "multi=first \\\n    second\nnext=x\n"

	r := NewPropertiesParser().Parse(text, "app.properties")

	e, ok := r.Lookup("multi")
	require.True(t, ok)
	assert.Equal(t, "first second", e.Value)

	_, ok = r.Lookup("next")
	assert.True(t, ok)
}

func TestPropertiesParseJunk(t *testing.T) {
	text := "ok=fine\nthis line has no separator\nneither does this\nalso=fine\n"

	r := NewPropertiesParser().Parse(text, "app.properties")
	require.Len(t, r.Entries, 3)

	j, ok := r.Entries[1].(*entity.Junk)
	require.True(t, ok)
	assert.Equal(t, 2, j.Position.Line)
	assert.Equal(t, "expected key-value separator", j.Reason)
	assert.Contains(t, j.Raw, "no separator")
	assert.Contains(t, j.Raw, "neither does this")

	_, ok = r.Lookup("also")
	assert.True(t, ok)
}

func TestPropertiesPlaceholders(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"plain text", nil},
		{"%S bookmarks", []string{"%S"}},
		{"%1$S of %2$S", []string{"%1$S", "%2$S"}},
		{"%d%% done", []string{"%d"}},
		{"%.2f seconds", []string{"%.2f"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractPrintf(tt.value), "value %q", tt.value)
	}
}

func TestPropertiesColonSeparator(t *testing.T) {
	r := NewPropertiesParser().Parse("key: value\n", "app.properties")
	e, ok := r.Lookup("key")
	require.True(t, ok)
	assert.Equal(t, "value", e.Value)
}
