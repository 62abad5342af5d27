package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	csvout "github.com/custodia-labs/fundamentus-cli/internal/adapters/driven/output/csv"
	"github.com/custodia-labs/fundamentus-cli/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/normalisers/ptbr"
)

var (
	previewInput   string
	previewCharset string
	previewLimit   int
	previewFull    bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the curated table without writing files",
	Long: `Runs the pipeline and prints the curated projection.

On a terminal the rows are drawn as a table; otherwise they are
printed as semicolon CSV so the output can be piped.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "read a saved page instead of fetching")
	previewCmd.Flags().StringVar(&previewCharset, "charset", "", "declared charset of the --input page")
	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", 20, "maximum number of rows (0 for all)")
	previewCmd.Flags().BoolVar(&previewFull, "full", false, "show every column instead of the curated set")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	result, err := exportService.Preview(cmd.Context(), domain.ExportRequest{
		InputPath: previewInput,
		Charset:   previewCharset,
	})
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	p := result.Curated
	if previewFull {
		p = result.Full
	}
	total := p.Len()
	p = limitRows(p, previewLimit)

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		data, err := csvout.Encode(p)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	s := styles.DefaultStyles()
	_, err = fmt.Fprintf(out, "%s\n%s\n",
		renderTable(s, p),
		s.Muted.Render(fmt.Sprintf("%d of %d rows, %s, run %s", p.Len(), total, result.Charset, result.RunID)))
	return err
}

func limitRows(p domain.Projection, limit int) domain.Projection {
	if limit <= 0 || limit >= len(p.Rows) {
		return p
	}
	return domain.Projection{Columns: p.Columns, Rows: p.Rows[:limit]}
}

func renderTable(s *styles.Styles, p domain.Projection) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers(p.Columns...).
		Rows(p.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			if row >= 0 && row < len(p.Rows) && col < len(p.Rows[row]) && isNumber(p.Rows[row][col]) {
				return s.Numeric
			}
			return s.Cell
		}).
		String()
}

func isNumber(cell string) bool {
	_, err := ptbr.ParseDecimal(cell)
	return err == nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
