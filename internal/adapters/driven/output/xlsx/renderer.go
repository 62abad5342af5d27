// Package xlsx renders the curated projection as a spreadsheet with
// numeric columns stored as numbers.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
	"github.com/custodia-labs/fundamentus-cli/internal/normalisers/ptbr"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// SheetName is the worksheet holding the data.
const SheetName = "resultado"

// Renderer writes the curated spreadsheet.
type Renderer struct {
	name    string
	columns domain.ColumnSet
}

// New creates an XLSX renderer writing to name.
func New(name string, columns domain.ColumnSet) *Renderer {
	return &Renderer{name: name, columns: columns}
}

// Name identifies the renderer.
func (r *Renderer) Name() string {
	return "xlsx"
}

// Render returns the curated workbook.
func (r *Renderer) Render(result *domain.ExportResult) ([]domain.Artifact, error) {
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	data, err := Encode(result.Curated, r.columns)
	if err != nil {
		return nil, err
	}
	return []domain.Artifact{{Name: r.name, Data: data}}, nil
}

// Encode builds a workbook from p. Numeric cells that parse as decimals
// are written as numbers; the rest stay text.
func Encode(p domain.Projection, columns domain.ColumnSet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, name := range p.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, err
		}
	}

	if len(p.Columns) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, err
		}
		last, _ := excelize.CoordinatesToCellName(len(p.Columns), 1)
		if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
			return nil, err
		}
		if err := f.SetPanes(SheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, err
		}
	}

	types := columns.Types(p.Columns)
	for r, row := range p.Rows {
		for c, value := range row {
			if value == "" || c >= len(types) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, cellValue(value, types[c])); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(value string, t domain.ColumnType) any {
	if t != domain.ColumnNumeric {
		return value
	}
	v, err := ptbr.ParseDecimal(value)
	if err != nil {
		logger.Debug("xlsx: keeping %q as text: %v", value, err)
		return value
	}
	return v
}
