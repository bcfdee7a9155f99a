package rewrite

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// recorder captures reporter notices.
type recorder struct {
	successes []string
	warnings  []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Warning(msg string) { r.warnings = append(r.warnings, msg) }

func newTestEngine(t *testing.T, files map[string]string) (*Engine, *recorder) {
	t.Helper()
	fsys := afero.NewBasePathFs(afero.NewMemMapFs(), "/")
	for path, content := range files {
		writeFile(t, fsys, path, content)
	}
	rec := &recorder{}
	return NewEngine(fsys, zerolog.Nop(), rec), rec
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

func readFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	return string(data)
}
