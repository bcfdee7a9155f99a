package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tipowerup/tiext-setup/internal/branding"
	"github.com/tipowerup/tiext-setup/internal/config"
	"github.com/tipowerup/tiext-setup/internal/console"
	"github.com/tipowerup/tiext-setup/internal/manifest"
	"github.com/tipowerup/tiext-setup/internal/wizard"
)

var (
	checkFiles    bool
	checkEnv      bool
	checkManifest string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkFiles, "check-files", false, "Report template files and leftover placeholders")
	doctorCmd.Flags().BoolVar(&checkEnv, "check-env", false, "Report terminal detection and configuration")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a composer manifest at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect the template in the current directory",
	Long: `Run read-only checks on the current directory: which template files are
present, whether template placeholders are still in them, whether
composer.json passes the manifest check, and how the terminal is detected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		fsys := afero.NewBasePathFs(afero.NewOsFs(), workDir)

		// If no specific flag, run all checks.
		if !checkFiles && !checkEnv && checkManifest == "" {
			runFilesCheck(out, fsys)
			if err := runManifestCheck(out, fsys, wizard.ComposerFile); err != nil {
				fmt.Fprintf(out, "  [WARN] %v\n", err)
			}
			runEnvCheck(out, cmd.InOrStdin())
			return nil
		}

		if checkFiles {
			runFilesCheck(out, fsys)
		}
		if checkManifest != "" {
			if err := runManifestCheck(out, fsys, checkManifest); err != nil {
				return err
			}
		}
		if checkEnv {
			runEnvCheck(out, cmd.InOrStdin())
		}
		return nil
	},
}

func runFilesCheck(out io.Writer, fsys afero.Fs) {
	fmt.Fprintln(out, "Template files:")

	placeholders := branding.Placeholders().Strings()
	pristine := 0
	for _, name := range wizard.TemplateFiles() {
		data, err := afero.ReadFile(fsys, name)
		if err != nil {
			fmt.Fprintf(out, "  [MISS] %s\n", name)
			continue
		}
		if found := firstPlaceholder(string(data), placeholders); found != "" {
			pristine++
			fmt.Fprintf(out, "  [ OK ] %s (contains %q)\n", name, found)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s\n", name)
	}

	for _, name := range branding.SetupFiles() {
		if _, err := fsys.Stat(name); err == nil {
			fmt.Fprintf(out, "  [INFO] setup file %s is still present\n", name)
		}
	}

	if pristine > 0 {
		fmt.Fprintf(out, "  [INFO] %d file(s) still carry template placeholders; run `%s` to personalize them\n",
			pristine, branding.CLIName())
	} else {
		fmt.Fprintln(out, "  [ OK ] no template placeholders left")
	}
}

func firstPlaceholder(content string, placeholders []string) string {
	for _, p := range placeholders {
		if strings.Contains(content, p) {
			return p
		}
	}
	return ""
}

func runManifestCheck(out io.Writer, fsys afero.Fs, path string) error {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	findings, err := manifest.Check(fsys, path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if len(findings) == 0 {
		fmt.Fprintln(out, "  [ OK ] Valid manifest")
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d issue(s):\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(out, "    - %s\n", f)
	}
	return fmt.Errorf("manifest %s has %d issue(s)", path, len(findings))
}

func runEnvCheck(out io.Writer, in io.Reader) {
	fmt.Fprintln(out, "Environment:")

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return
	}

	path := config.FilePath()
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "  [ OK ] config file %s\n", path)
	} else {
		fmt.Fprintf(out, "  [INFO] no config file at %s\n", path)
	}

	fmt.Fprintf(out, "  [INFO] log level: %s\n", settings.LogLevel)
	fmt.Fprintf(out, "  [INFO] interactive: %s (resolved: %t)\n", settings.Interactive, isInteractive(settings.Interactive, in))
	fmt.Fprintf(out, "  [INFO] color: %t\n", console.SupportsColor(os.Stdout))
	if settings.Vendor != "" {
		fmt.Fprintf(out, "  [INFO] default vendor: %s\n", settings.Vendor)
	}
}
