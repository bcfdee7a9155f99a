package console

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// LookupFunc reports the value of an environment variable and whether it is set.
type LookupFunc func(key string) (string, bool)

// colorTerminals are TERM_PROGRAM values known to render ANSI colour.
var colorTerminals = map[string]bool{
	"Hyper":          true,
	"vscode":         true,
	"Apple_Terminal": true,
}

// DetectColor decides whether ANSI colour should be emitted. NO_COLOR always
// wins. Known colour-capable terminals force colour on. On Windows only the
// console-specific variables are trusted; elsewhere colour follows whether
// stdout is a terminal.
func DetectColor(env LookupFunc, goos string, stdoutTTY bool) bool {
	if _, ok := env("NO_COLOR"); ok {
		return false
	}

	windowsHint := isSet(env, "ANSICON") || isSet(env, "WT_SESSION") || value(env, "ConEmuANSI") == "ON"
	if windowsHint || colorTerminals[value(env, "TERM_PROGRAM")] {
		return true
	}

	if goos == "windows" {
		return windowsHint
	}

	return stdoutTTY
}

// SupportsColor runs DetectColor against the real environment for f.
func SupportsColor(f *os.File) bool {
	return DetectColor(os.LookupEnv, runtime.GOOS, IsTerminal(f))
}

// IsTerminal reports whether f is attached to a terminal, including Cygwin
// and MSYS ptys.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func isSet(env LookupFunc, key string) bool {
	_, ok := env(key)
	return ok
}

func value(env LookupFunc, key string) string {
	v, _ := env(key)
	return v
}
