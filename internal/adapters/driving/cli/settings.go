package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the source, decoder, column and output settings.

Settings are stored in config.toml under $FUNDAMENTUS_HOME, or
~/.fundamentus when unset. The session cookie is read from
FUNDAMENTUS_COOKIE and is never written to disk.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a configuration key and save it.

List values such as columns.curated are comma separated.
Run "fundamentus settings keys" for the accepted keys.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys",
	RunE:  runSettingsKeys,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Source]")
	cmd.Printf("  URL: %s\n", settings.Source.URL)
	cmd.Printf("  Timeout: %s\n", settings.Source.Timeout)
	cmd.Printf("  User-Agent: %s\n", settings.Source.UserAgent)
	cmd.Printf("  Accept-Language: %s\n", settings.Source.AcceptLanguage)
	if settings.Source.Cookie != "" {
		cmd.Printf("  Cookie: %s\n", maskSecret(settings.Source.Cookie))
	} else {
		cmd.Printf("  Cookie: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Decoder]")
	cmd.Printf("  Replacement threshold: %d\n", settings.Decoder.ReplacementThreshold)
	cmd.Println()

	cmd.Println("[Columns]")
	cmd.Printf("  Numeric: %s\n", strings.Join(settings.Columns.Numeric, ", "))
	cmd.Printf("  Curated: %s\n", strings.Join(settings.Columns.Curated, ", "))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Printf("  Full CSV: %s\n", settings.Output.FullCSV)
	cmd.Printf("  Curated CSV: %s\n", settings.Output.CuratedCSV)
	cmd.Printf("  HTML: %s\n", settings.Output.HTML)
	cmd.Printf("  XLSX: %s\n", enabled(settings.Output.XLSX, settings.Output.XLSXFile))
	cmd.Printf("  Site: %s\n", enabled(settings.Output.Site, "index.html, .nojekyll"))

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, k := range settingsService.Keys() {
		cmd.Println(k)
	}
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println(settingsService.Path())
	return nil
}

func enabled(on bool, detail string) string {
	if !on {
		return "disabled"
	}
	return "enabled (" + detail + ")"
}

// maskSecret masks a secret for display.
func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
