package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tipowerup/tiext-setup/internal/console"
)

// ErrNonInteractive is returned when a required value has no default and
// stdin is not interactive.
var ErrNonInteractive = errors.New("cannot prompt for input in non-interactive environment")

// ErrReadInput is returned when stdin closes while a value is being prompted for.
var ErrReadInput = errors.New("failed to read input from stdin")

// Prompter reads answers line by line. Reads happen on a separate goroutine
// so a cancelled context unblocks a prompt that is waiting for input.
type Prompter struct {
	r           *bufio.Reader
	out         *console.Console
	interactive bool

	// pending carries the result of a read started for an earlier prompt
	// that was cancelled before the line arrived.
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

// NewPrompter returns a Prompter reading from r and echoing prompts to out.
// When interactive is false nothing is read: prompts fall back to their
// defaults and confirmations to their default answer.
func NewPrompter(r io.Reader, out *console.Console, interactive bool) *Prompter {
	return &Prompter{r: bufio.NewReader(r), out: out, interactive: interactive}
}

// Interactive reports whether the prompter reads from its input.
func (p *Prompter) Interactive() bool { return p.interactive }

// Prompt asks for a single value. Input is trimmed; empty input takes def when
// def is non-empty. A required prompt repeats until a non-empty value is given.
func (p *Prompter) Prompt(ctx context.Context, message string, required bool, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.interactive {
		if def != "" {
			return def, nil
		}
		return "", ErrNonInteractive
	}

	for {
		p.out.Printf("%s", message)
		if def != "" {
			p.out.Printf(" [%s]", def)
		}
		p.out.Printf(": ")

		line, err := p.readLine(ctx)
		if err != nil {
			return "", err
		}

		if line == "" && def != "" {
			line = def
		}
		if !required || line != "" {
			return line, nil
		}

		p.out.Error("This field is required")
	}
}

// Ask prompts until check accepts the value. A nil check accepts anything.
// Rejections are printed and the same prompt is shown again.
func (p *Prompter) Ask(ctx context.Context, message string, required bool, def string, check func(string) error) (string, error) {
	for {
		v, err := p.Prompt(ctx, message, required, def)
		if err != nil {
			return "", err
		}
		if check == nil {
			return v, nil
		}
		if err := check(v); err != nil {
			if !p.interactive {
				return "", fmt.Errorf("default %q rejected: %w", v, err)
			}
			p.out.Error(err.Error())
			continue
		}
		return v, nil
	}
}

// Confirm asks a yes/no question. Empty input, a closed stdin or a
// non-interactive session yield defaultYes. The only error is a cancelled
// context.
func (p *Prompter) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !p.interactive {
		return defaultYes, nil
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	p.out.Printf("%s %s: ", message, hint)

	line, err := p.readLine(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return defaultYes, nil
	}

	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine returns the next trimmed line, or ctx.Err() once ctx is done. A
// final line without a newline is still returned; only a read that yields
// nothing is an error.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.r.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		if res.err != nil && (res.line == "" || !errors.Is(res.err, io.EOF)) {
			return "", fmt.Errorf("%w: %v", ErrReadInput, res.err)
		}
		return strings.TrimSpace(res.line), nil
	}
}
