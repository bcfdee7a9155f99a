package rewrite

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacementsApply(t *testing.T) {
	t.Run("literal, not regex", func(t *testing.T) {
		r := Replacements{{Search: "a.b", Replace: "X"}}
		out, matched := r.Apply("a.b axb")
		assert.Equal(t, "X axb", out)
		assert.Equal(t, 1, matched)
	})

	t.Run("every occurrence", func(t *testing.T) {
		r := Replacements{{Search: "foo", Replace: "bar"}}
		out, _ := r.Apply("foo foo foo")
		assert.Equal(t, "bar bar bar", out)
	})

	t.Run("sequential order", func(t *testing.T) {
		// The escaped form must go first, otherwise the plain form would
		// eat half of it.
		r := Replacements{
			{Search: `Tipowerup\\Template`, Replace: `Acme\\Widgets`},
			{Search: `Tipowerup\Template`, Replace: `Acme\Widgets`},
		}
		out, matched := r.Apply(`"Tipowerup\\Template\\": "src/" use Tipowerup\Template;`)
		assert.Equal(t, `"Acme\\Widgets\\": "src/" use Acme\Widgets;`, out)
		assert.Equal(t, 2, matched)
	})

	t.Run("later pairs see earlier output", func(t *testing.T) {
		r := Replacements{{Search: "a", Replace: "b"}, {Search: "b", Replace: "c"}}
		out, _ := r.Apply("a")
		assert.Equal(t, "c", out)
	})

	t.Run("empty search is ignored", func(t *testing.T) {
		r := Replacements{{Search: "", Replace: "x"}}
		out, matched := r.Apply("abc")
		assert.Equal(t, "abc", out)
		assert.Zero(t, matched)
	})
}

func TestReplaceInFile(t *testing.T) {
	e, rec := newTestEngine(t, map[string]string{
		"src/Extension.php": "namespace Tipowerup\\Template;\n",
	})

	status, err := e.ReplaceInFile("src/Extension.php", Replacements{
		{Search: `Tipowerup\Template`, Replace: `Acme\Widgets`},
	})
	require.NoError(t, err)
	assert.Equal(t, Rewritten, status)
	assert.Equal(t, "namespace Acme\\Widgets;\n", readFile(t, e.Fs(), "src/Extension.php"))
	assert.Empty(t, rec.warnings)
}

func TestReplaceInFile_Missing(t *testing.T) {
	e, rec := newTestEngine(t, nil)

	status, err := e.ReplaceInFile("composer.json", Replacements{{Search: "a", Replace: "b"}})
	require.NoError(t, err)
	assert.Equal(t, Missing, status)
	assert.Equal(t, []string{"File not found: composer.json"}, rec.warnings)
}

func TestReplaceInFile_SecondPassIsNoop(t *testing.T) {
	const original = `{"name": "tipowerup/ti-ext-template", "psr-4": {"Tipowerup\\Template\\": "src/"}}`
	e, _ := newTestEngine(t, map[string]string{"composer.json": original})
	r := Replacements{
		{Search: "tipowerup/ti-ext-template", Replace: "acme/ti-ext-widgets"},
		{Search: `Tipowerup\\Template`, Replace: `Acme\\Widgets`},
		{Search: `Tipowerup\Template`, Replace: `Acme\Widgets`},
	}

	_, err := e.ReplaceInFile("composer.json", r)
	require.NoError(t, err)
	first := readFile(t, e.Fs(), "composer.json")

	_, err = e.ReplaceInFile("composer.json", r)
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, e.Fs(), "composer.json"))
}

func TestReplaceInFile_PreservesMode(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "run.sh", []byte("echo template"), 0755))
	e := NewEngine(fsys, zerolog.Nop(), &recorder{})

	_, err := e.ReplaceInFile("run.sh", Replacements{{Search: "template", Replace: "widgets"}})
	require.NoError(t, err)

	info, err := fsys.Stat("run.sh")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestReplaceInFile_WriteFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "composer.json", []byte("tipowerup"), 0644))
	e := NewEngine(afero.NewReadOnlyFs(base), zerolog.Nop(), &recorder{})

	_, err := e.ReplaceInFile("composer.json", Replacements{{Search: "tipowerup", Replace: "acme"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot write file: composer.json")
}

func TestRemove(t *testing.T) {
	e, _ := newTestEngine(t, map[string]string{"SETUP.md": "x"})

	removed, err := e.Remove("SETUP.md")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, e.Exists("SETUP.md"))

	removed, err = e.Remove("SETUP.md")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemove_Failure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "SETUP.md", []byte("x"), 0644))
	e := NewEngine(afero.NewReadOnlyFs(base), zerolog.Nop(), &recorder{})

	_, err := e.Remove("SETUP.md")
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
