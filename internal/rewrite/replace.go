package rewrite

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Pair is one literal search/replace substitution.
type Pair struct {
	Search  string
	Replace string
}

// Replacements is an ordered substitution table. Pairs are applied one after
// another over the whole content, so a later pair sees the output of the
// earlier ones.
type Replacements []Pair

// Apply runs every pair over s and returns the result together with the
// number of pairs that matched at least once.
func (r Replacements) Apply(s string) (string, int) {
	matched := 0
	for _, p := range r {
		if p.Search == "" || !strings.Contains(s, p.Search) {
			continue
		}
		s = strings.ReplaceAll(s, p.Search, p.Replace)
		matched++
	}
	return s, matched
}

// Status describes what ReplaceInFile did with a file.
type Status int

const (
	// Rewritten means the file was read and written back.
	Rewritten Status = iota
	// Missing means the file does not exist and was skipped.
	Missing
)

// Reporter receives user-facing notices from the engine.
type Reporter interface {
	Success(msg string)
	Warning(msg string)
}

// Engine rewrites files on a filesystem.
type Engine struct {
	fs       afero.Fs
	log      zerolog.Logger
	reporter Reporter
}

// NewEngine returns an Engine operating on fsys.
func NewEngine(fsys afero.Fs, log zerolog.Logger, reporter Reporter) *Engine {
	return &Engine{fs: fsys, log: log, reporter: reporter}
}

// Fs returns the filesystem the engine operates on.
func (e *Engine) Fs() afero.Fs { return e.fs }

// ReplaceInFile applies r to the file at path and writes it back in place. A
// missing file is reported as a warning and skipped; read or write failures
// are returned.
func (e *Engine) ReplaceInFile(path string, r Replacements) (Status, error) {
	info, err := e.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.reporter.Warning("File not found: " + path)
		return Missing, nil
	}
	if err != nil {
		return Missing, fmt.Errorf("cannot read file: %s: %w", path, err)
	}

	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return Missing, fmt.Errorf("cannot read file: %s: %w", path, err)
	}

	content, matched := r.Apply(string(data))

	if err := afero.WriteFile(e.fs, path, []byte(content), info.Mode().Perm()); err != nil {
		return Rewritten, fmt.Errorf("cannot write file: %s: %w", path, err)
	}

	e.log.Debug().
		Str("file", path).
		Int("pairs", len(r)).
		Int("matched", matched).
		Msg("rewrote file")
	return Rewritten, nil
}

// Exists reports whether path exists on the engine's filesystem.
func (e *Engine) Exists(path string) bool {
	_, err := e.fs.Stat(path)
	return err == nil
}

// Remove deletes path when present. It reports whether a file was removed;
// a missing file is not an error.
func (e *Engine) Remove(path string) (bool, error) {
	err := e.fs.Remove(path)
	if err == nil {
		e.log.Debug().Str("file", path).Msg("removed file")
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("removing %s: %w", path, err)
}

// discard removes path and only logs a failure. Used for template leftovers
// whose removal is best-effort.
func (e *Engine) discard(path string) bool {
	removed, err := e.Remove(path)
	if err != nil {
		e.log.Warn().Err(err).Str("file", path).Msg("could not remove file")
	}
	return removed
}
