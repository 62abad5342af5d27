package html

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
	"github.com/custodia-labs/fundamentus-cli/internal/normalisers/ptbr"
)

// Ensure Extractor implements the interface.
var _ driven.TableExtractor = (*Extractor)(nil)

// FragmentPrefix opens the standalone table fragment.
const FragmentPrefix = `<meta charset="utf-8"><table>`

const cellSelector = "th, td"

// Extractor reads the first table of a page.
type Extractor struct{}

// New creates a new table extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the header, body rows and fragment of the first table.
func (e *Extractor) Extract(text string) (*domain.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, domain.ErrTableNotFound
	}

	replaceLineBreaks(table)

	headerRow := findHeaderRow(table)
	header := cellTexts(headerRow)
	rows := bodyRows(table, headerRow)

	markup, err := Fragment(table)
	if err != nil {
		return nil, err
	}

	logger.Debug("extracted table: %d columns, %d rows", len(header), len(rows))

	return &domain.Table{
		Header: header,
		Rows:   rows,
		Markup: markup,
	}, nil
}

// Fragment renders the table as a standalone UTF-8 document.
func Fragment(table *goquery.Selection) (string, error) {
	inner, err := table.Html()
	if err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return FragmentPrefix + inner + "</table>", nil
}

// replaceLineBreaks swaps every <br> for a newline text node so cell
// text keeps the words apart.
func replaceLineBreaks(table *goquery.Selection) {
	table.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&xhtml.Node{Type: xhtml.TextNode, Data: "\n"})
	})
}

// sectionRows returns the rows owned by the table, skipping nested tables.
func sectionRows(table *goquery.Selection, sections string) *goquery.Selection {
	return table.ChildrenFiltered(sections).ChildrenFiltered("tr")
}

// findHeaderRow prefers the first thead row, then the first row overall.
func findHeaderRow(table *goquery.Selection) *goquery.Selection {
	if head := sectionRows(table, "thead").First(); head.Length() > 0 {
		return head
	}
	return sectionRows(table, "thead, tbody, tfoot").First()
}

// bodyRows returns the tidied cells of every non-empty tbody row.
// The parser wraps bare rows in an implicit tbody, so a header taken
// from the first row is skipped here.
func bodyRows(table, headerRow *goquery.Selection) [][]string {
	var rows [][]string
	sectionRows(table, "tbody").Each(func(_ int, tr *goquery.Selection) {
		if headerRow.Length() > 0 && tr.Get(0) == headerRow.Get(0) {
			return
		}
		if cells := cellTexts(tr); len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}

// cellTexts returns the tidied text of the row's own cells.
func cellTexts(tr *goquery.Selection) []string {
	cells := tr.ChildrenFiltered(cellSelector)
	texts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, ptbr.Tidy(cell.Text()))
	})
	return texts
}
