package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/config"
	"github.com/tipowerup/tiext-setup/internal/console"
	"github.com/tipowerup/tiext-setup/internal/logging"
	"github.com/tipowerup/tiext-setup/internal/wizard"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// colorEnabled is decided once at startup and shared by the wizard output and
// the top-level error formatter.
var colorEnabled = console.SupportsColor(os.Stdout)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` personalizes a freshly cloned extension template.

Run it from the root of the template. It asks for the extension name, slug,
vendor, namespace, description and license, shows a summary, then rewrites
composer.json, the extension class, README, translations and test harness
in place. Finally it offers to delete the setup-only files and itself.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetup,
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed here once; the caller only maps them to an exit code.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.OutOrStdout())
		fmt.Fprintln(rootCmd.OutOrStdout(), console.FormatError(err, colorEnabled))
		return err
	}
	return nil
}

func runSetup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), settings.LogLevel, colorEnabled)
	if err != nil {
		return err
	}

	if err := branding.Err(); err != nil {
		log.Warn().Err(err).Msg("using built-in branding defaults")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	selfPath := ""
	if exe, err := os.Executable(); err == nil {
		selfPath = wizard.ResolveSelfPath(workDir, exe)
	}

	interactive := isInteractive(settings.Interactive, cmd.InOrStdin())
	log.Debug().
		Bool("color", colorEnabled).
		Bool("interactive", interactive).
		Str("dir", workDir).
		Str("self", selfPath).
		Msg("starting setup")

	w := wizard.New(wizard.Options{
		Fs:            afero.NewBasePathFs(afero.NewOsFs(), workDir),
		In:            cmd.InOrStdin(),
		Console:       console.New(cmd.OutOrStdout(), colorEnabled),
		Interactive:   interactive,
		Logger:        log,
		SelfPath:      selfPath,
		DefaultVendor: settings.Vendor,
	})

	outcome, err := w.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("setup interrupted in state %s: %w", w.State(), err)
		}
		return err
	}
	log.Debug().Stringer("state", w.State()).Int("outcome", int(outcome)).Msg("setup finished")
	return nil
}

// isInteractive resolves the interactive setting against the actual input.
func isInteractive(mode string, in io.Reader) bool {
	switch mode {
	case config.InteractiveAlways:
		return true
	case config.InteractiveNever:
		return false
	}
	f, ok := in.(*os.File)
	return ok && console.IsTerminal(f)
}
