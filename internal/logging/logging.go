// Package logging builds the diagnostic logger used across the wizard. The
// wizard's own UI goes to stdout through the console package; this logger is
// for troubleshooting and stays quiet unless TIEXT_LOG_LEVEL asks otherwise.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-formatted zerolog logger writing to w at the given
// level. An empty level means "warn".
func New(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	if level == "" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
