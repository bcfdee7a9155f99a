package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color names a palette entry.
type Color string

// Palette entries used by the wizard.
const (
	Red    Color = "red"
	Green  Color = "green"
	Yellow Color = "yellow"
	Blue   Color = "blue"
)

const dividerWidth = 47

// Console writes styled wizard output to a single writer.
type Console struct {
	w      io.Writer
	color  bool
	styles map[Color]lipgloss.Style
}

// New returns a Console writing to w. When color is false every helper
// produces plain ASCII output.
func New(w io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		w:     w,
		color: color,
		styles: map[Color]lipgloss.Style{
			Red:    r.NewStyle().Foreground(lipgloss.Color("1")),
			Green:  r.NewStyle().Foreground(lipgloss.Color("2")),
			Yellow: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
			Blue:   r.NewStyle().Foreground(lipgloss.Color("4")),
		},
	}
}

// Color reports whether the console emits ANSI colour.
func (c *Console) Color() bool { return c.color }

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer { return c.w }

// Colorize wraps text in the given colour, or returns it unchanged when
// colour is disabled or the colour is unknown.
func (c *Console) Colorize(text string, color Color) string {
	if !c.color {
		return text
	}
	style, ok := c.styles[color]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Printf writes formatted text without a trailing newline.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Println writes the arguments followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// Success prints a green check line.
func (c *Console) Success(msg string) { c.status("✓", "[OK]", Green, msg) }

// Error prints a red cross line.
func (c *Console) Error(msg string) { c.status("✗", "[ERROR]", Red, msg) }

// Info prints a blue info line.
func (c *Console) Info(msg string) { c.status("ℹ", "[INFO]", Blue, msg) }

// Warning prints a yellow warning line.
func (c *Console) Warning(msg string) { c.status("⚠", "[WARN]", Yellow, msg) }

func (c *Console) status(symbol, plain string, color Color, msg string) {
	mark := plain
	if c.color {
		mark = symbol
	}
	fmt.Fprintf(c.w, "%s%s\n", c.Colorize(mark+" ", color), msg)
}

// Header prints a section banner framed by dividers.
func (c *Console) Header(title string) {
	divider := strings.Repeat("=", dividerWidth)
	if c.color {
		divider = strings.Repeat("═", dividerWidth)
	}
	fmt.Fprintf(c.w, "\n%s\n", c.Colorize(divider, Blue))
	fmt.Fprintf(c.w, "%s\n", c.Colorize("  "+title, Blue))
	fmt.Fprintf(c.w, "%s\n\n", c.Colorize(divider, Blue))
}

// FormatError renders a fatal error the way the top-level handler prints it.
func FormatError(err error, color bool) string {
	c := New(io.Discard, color)
	mark := "[ERROR]"
	if color {
		mark = "✗"
	}
	return c.Colorize(fmt.Sprintf("%s Error: %v", mark, err), Red)
}
