package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tipowerup/tiext-setup/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

// buildInfo identifies the binary and the template it was built to
// personalize. Forks with their own branding.yaml report their own template.
type buildInfo struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Template string `json:"template"`
	Host     string `json:"host"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Template: branding.Placeholders().ComposerPackage,
		Host:     branding.HostName(),
	}
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version and template info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and template information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentBuildInfo()
		out := cmd.OutOrStdout()

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
		case versionJSON:
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
		default:
			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), info.Version, info.Commit, info.Date)
			fmt.Fprintf(out, "personalizes %s for %s\n", info.Template, info.Host)
		}
		return nil
	},
}
