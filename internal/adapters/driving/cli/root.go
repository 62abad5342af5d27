// Package cli provides the cobra command tree for the fundamentus CLI.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services wired by main before Execute.
var (
	exportService   driving.ExportService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "fundamentus",
	Short: "Export the Fundamentus stock screener as CSV, HTML and XLSX",
	Long: `fundamentus downloads the Fundamentus screener table, repairs its
character encoding, normalises pt-BR numbers and publishes the result
as semicolon CSV files, a standalone HTML table and an optional
spreadsheet.

Set FUNDAMENTUS_COOKIE to send a session cookie with the request.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline detail to stderr")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetServices wires the driving services used by commands.
func SetServices(export driving.ExportService, settings driving.SettingsService) {
	exportService = export
	settingsService = settings
}

// Execute runs the root command. Command output goes to stdout and
// errors to stderr.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
