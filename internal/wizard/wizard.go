package wizard

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/console"
	"github.com/tipowerup/tiext-setup/internal/extension"
	"github.com/tipowerup/tiext-setup/internal/rewrite"
)

// State is a step of the setup session.
type State int

// Session states.
const (
	StateStart State = iota
	StateConfirmed
	StateCollecting
	StateSummarized
	StateApplying
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateStart:      "start",
	StateConfirmed:  "confirmed",
	StateCollecting: "collecting",
	StateSummarized: "summarized",
	StateApplying:   "applying",
	StateDone:       "done",
	StateAborted:    "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Outcome is how a session ended.
type Outcome int

const (
	// OutcomeFailed means Run returned an error.
	OutcomeFailed Outcome = iota
	// OutcomeAborted means the user declined a confirmation. Nothing was written.
	OutcomeAborted
	// OutcomeDone means the template was personalized.
	OutcomeDone
)

// Options configures a Wizard.
type Options struct {
	// Fs is the template tree, rooted at the working directory.
	Fs afero.Fs
	// In supplies answers, one per line.
	In io.Reader
	// Console receives all user-facing output.
	Console *console.Console
	// Interactive selects whether In is read at all.
	Interactive bool
	// Logger receives diagnostics.
	Logger zerolog.Logger
	// Now returns the current time; it stamps the license year.
	Now func() time.Time
	// SelfPath is the wizard binary relative to Fs, or "" when the binary
	// lives outside the template tree.
	SelfPath string
	// DefaultVendor pre-fills the vendor prompt when it is a valid slug.
	DefaultVendor string
}

// Wizard is a single setup session. It is not safe for concurrent use and
// is meant to be run once.
type Wizard struct {
	out           *console.Console
	prompt        *Prompter
	engine        *rewrite.Engine
	log           zerolog.Logger
	now           func() time.Time
	selfPath      string
	defaultVendor string

	state State
	cfg   extension.Config
}

// New builds a Wizard from opts.
func New(opts Options) *Wizard {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Wizard{
		out:           opts.Console,
		prompt:        NewPrompter(opts.In, opts.Console, opts.Interactive),
		engine:        rewrite.NewEngine(opts.Fs, opts.Logger, opts.Console),
		log:           opts.Logger,
		now:           now,
		selfPath:      opts.SelfPath,
		defaultVendor: opts.DefaultVendor,
		state:         StateStart,
	}
}

// State returns the current session state.
func (w *Wizard) State() State { return w.state }

// Config returns the collected configuration record.
func (w *Wizard) Config() extension.Config { return w.cfg }

func (w *Wizard) transition(to State) {
	w.log.Debug().Stringer("from", w.state).Stringer("to", to).Msg("wizard state")
	w.state = to
}

// Run executes the whole session. Cancelling at either confirmation returns
// OutcomeAborted with a nil error. A cancelled ctx stops the session at the
// next prompt or file and returns ctx.Err().
func (w *Wizard) Run(ctx context.Context) (Outcome, error) {
	w.out.Header(branding.HostName() + " Extension Setup")
	w.out.Println("This script will help you set up a new extension from the template.")
	w.out.Println()
	w.out.Warning("This will modify multiple files in the current directory.")
	w.out.Println()

	ok, err := w.prompt.Confirm(ctx, "Do you want to continue?", false)
	if err != nil {
		return OutcomeFailed, err
	}
	if !ok {
		return w.abort(), nil
	}
	w.transition(StateConfirmed)

	w.transition(StateCollecting)
	if err := w.collect(ctx); err != nil {
		return OutcomeFailed, err
	}

	w.transition(StateSummarized)
	w.showSummary()

	ok, err = w.prompt.Confirm(ctx, "Is this correct?", false)
	if err != nil {
		return OutcomeFailed, err
	}
	if !ok {
		return w.abort(), nil
	}

	if err := w.cfg.Validate(); err != nil {
		return OutcomeFailed, err
	}

	w.transition(StateApplying)
	if err := w.apply(ctx); err != nil {
		return OutcomeFailed, err
	}

	w.transition(StateDone)
	w.showSuccess()
	if err := w.cleanup(ctx); err != nil {
		return OutcomeFailed, err
	}

	return OutcomeDone, nil
}

func (w *Wizard) abort() Outcome {
	w.transition(StateAborted)
	w.out.Info("Setup cancelled.")
	return OutcomeAborted
}
