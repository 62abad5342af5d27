package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
)

var (
	exportInput   string
	exportCharset string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch the screener and publish every output",
	Long: `Fetches the screener page, extracts the results table and writes
the full CSV, the curated CSV, the HTML fragment and, when enabled,
the spreadsheet and landing page into the output directory.

Either every file is written or none is.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "read a saved page instead of fetching")
	exportCmd.Flags().StringVar(&exportCharset, "charset", "", "declared charset of the --input page")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (overrides output.dir)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	result, err := exportService.Export(cmd.Context(), domain.ExportRequest{
		InputPath: exportInput,
		Charset:   exportCharset,
		OutputDir: exportOut,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported %d rows from %s (%s)\n", result.Full.Len(), result.Source, result.Charset)
	for _, f := range result.Files {
		cmd.Printf("  %s\n", f)
	}
	cmd.Printf("Run: %s\n", result.RunID)
	return nil
}
