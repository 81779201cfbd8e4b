package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"l10nlint/internal/parser"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeProject(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "l10n.toml"), config)
	writeFile(t, filepath.Join(dir, "en-US", "app.properties"), "a=x\n")
	writeFile(t, filepath.Join(dir, "en-US", "menu.properties"), "b=y\n")
	return dir
}

const basicConfig = `
basepath = "."
locales = ["fr", "de"]
pseudo_locales = ["x-test"]

[plurals]
fr = 2
ru = 3

[[paths]]
reference = "en-US/*.properties"
l10n = "{locale}/*.properties"

[[filters]]
path = "fr/menu.properties"
checks = ["same-as-reference"]
`

func TestLoadAndResolve(t *testing.T) {
	dir := writeProject(t, basicConfig)

	cfg, err := Load(filepath.Join(dir, "l10n.toml"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.PluralForms("fr"))
	assert.Equal(t, 0, cfg.PluralForms("de"))
	assert.True(t, cfg.IsPseudo("x-test"))
	assert.False(t, cfg.IsPseudo("fr"))

	jobs, err := cfg.Resolve()
	require.NoError(t, err)
	// 2 reference files x 3 locales (fr, de, x-test).
	require.Len(t, jobs, 6)

	// Sorted reference files, locales in project order.
	first := jobs[0]
	assert.Equal(t, filepath.Join(dir, "en-US", "app.properties"), first.ReferencePath)
	assert.Equal(t, filepath.Join(dir, "fr", "app.properties"), first.LocalizedPath)
	assert.Equal(t, "fr", first.Locale)
	assert.Equal(t, parser.FormatProperties, first.Format)
	assert.Equal(t, 2, first.PluralForms)
	assert.Empty(t, first.Suppressed)

	var menuFr *Job
	for i := range jobs {
		if jobs[i].Locale == "fr" && filepath.Base(jobs[i].LocalizedPath) == "menu.properties" {
			menuFr = &jobs[i]
		}
	}
	require.NotNil(t, menuFr)
	assert.Equal(t, []string{"same-as-reference"}, menuFr.Suppressed)

	var pseudo *Job
	for i := range jobs {
		if jobs[i].Locale == "x-test" {
			pseudo = &jobs[i]
			break
		}
	}
	require.NotNil(t, pseudo)
	assert.True(t, pseudo.Pseudo)
}

func TestResolveLiteralMissingReference(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "l10n.toml"), `
locales = ["fr"]

[[paths]]
reference = "en-US/gone.properties"
l10n = "{locale}/gone.properties"
`)

	cfg, err := Load(filepath.Join(dir, "l10n.toml"))
	require.NoError(t, err)

	jobs, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, filepath.Join(dir, "en-US", "gone.properties"), jobs[0].ReferencePath)
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "empty.toml"), `locales = ["fr"]`)
	_, err := Load(filepath.Join(dir, "empty.toml"))
	assert.ErrorContains(t, err, "no [[paths]]")

	writeFile(t, filepath.Join(dir, "badlocale.toml"), `
locales = ["no-such-locale-!!"]

[[paths]]
reference = "en-US/app.properties"
l10n = "{locale}/app.properties"
`)
	_, err = Load(filepath.Join(dir, "badlocale.toml"))
	assert.ErrorContains(t, err, "invalid locale")

	_, err = Load(filepath.Join(dir, "nonexistent.toml"))
	assert.Error(t, err)
}

func TestWildcardPart(t *testing.T) {
	assert.Equal(t, "app", wildcardPart("en-US/*.properties", "en-US/app.properties"))
	assert.Equal(t, "", wildcardPart("en-US/app.properties", "en-US/app.properties"))
}
