package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

// Stat row order matches a pandas describe(include="all") summary.
var summaryStatOrder = []string{"count", "unique", "top", "freq", "mean", "std", "min", "25%", "50%", "75%", "max"}

// XLSXStore reads uploaded workbooks and writes analysis workbooks.
type XLSXStore struct{}

var _ interfaces.WorkbookStore = (*XLSXStore)(nil)

func NewXLSXStore() *XLSXStore {
	return &XLSXStore{}
}

// Load reads the first sheet of the workbook at path into a Dataset. The
// first row is taken as column headers.
func (s *XLSXStore) Load(path string) (entities.Dataset, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return entities.Dataset{}, fmt.Errorf("%w: %v", entities.ErrUnreadableFile, err)
	}
	if len(file.Sheets) == 0 {
		return entities.Dataset{}, fmt.Errorf("%w: workbook has no sheets", entities.ErrUnreadableFile)
	}

	sheet := file.Sheets[0]
	if len(sheet.Rows) == 0 {
		return entities.Dataset{}, nil
	}

	header := sheet.Rows[0]
	columns := make([]entities.Column, len(header.Cells))
	for i, cell := range header.Cells {
		name := strings.TrimSpace(cell.String())
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = entities.Column{Name: name}
	}

	for _, row := range sheet.Rows[1:] {
		for i := range columns {
			var raw string
			if i < len(row.Cells) {
				raw = row.Cells[i].String()
			}
			columns[i].Cells = append(columns[i].Cells, parseCell(raw))
		}
	}

	return entities.Dataset{Columns: columns}, nil
}

func parseCell(raw string) entities.Cell {
	cell := entities.Cell{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return cell
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		cell.Number = n
		cell.IsNumber = true
	}
	return cell
}

// WriteAnalysis writes a two-sheet workbook: the original data unmodified
// on "Original" and the statistics table on "Summary".
func (s *XLSXStore) WriteAnalysis(path string, data entities.Dataset, summary []entities.ColumnSummary) error {
	file := xlsx.NewFile()

	original, err := file.AddSheet("Original")
	if err != nil {
		return fmt.Errorf("failed to add Original sheet: %w", err)
	}
	writeDataset(original, data)

	summarySheet, err := file.AddSheet("Summary")
	if err != nil {
		return fmt.Errorf("failed to add Summary sheet: %w", err)
	}
	writeSummary(summarySheet, summary)

	if err := file.Save(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeDataset(sheet *xlsx.Sheet, data entities.Dataset) {
	header := sheet.AddRow()
	for _, col := range data.Columns {
		header.AddCell().SetString(col.Name)
	}

	rows := data.Rows()
	for r := 0; r < rows; r++ {
		row := sheet.AddRow()
		for _, col := range data.Columns {
			cell := row.AddCell()
			if r >= len(col.Cells) {
				continue
			}
			if c := col.Cells[r]; c.IsNumber {
				cell.SetFloat(c.Number)
			} else {
				cell.SetString(c.Raw)
			}
		}
	}
}

func writeSummary(sheet *xlsx.Sheet, summary []entities.ColumnSummary) {
	header := sheet.AddRow()
	header.AddCell().SetString("")
	for _, col := range summary {
		header.AddCell().SetString(col.Name)
	}

	for _, stat := range summaryStatOrder {
		row := sheet.AddRow()
		row.AddCell().SetString(stat)
		for _, col := range summary {
			writeStatCell(row.AddCell(), stat, col)
		}
	}
}

func writeStatCell(cell *xlsx.Cell, stat string, col entities.ColumnSummary) {
	if col.Numeric {
		switch stat {
		case "count":
			cell.SetFloat(float64(col.Count))
		case "mean":
			cell.SetFloat(col.Mean)
		case "std":
			if col.HasStd {
				cell.SetFloat(col.Std)
			}
		case "min":
			cell.SetFloat(col.Min)
		case "25%":
			cell.SetFloat(col.Q1)
		case "50%":
			cell.SetFloat(col.Median)
		case "75%":
			cell.SetFloat(col.Q3)
		case "max":
			cell.SetFloat(col.Max)
		}
		return
	}

	switch stat {
	case "count":
		cell.SetFloat(float64(col.Count))
	case "unique":
		cell.SetFloat(float64(col.Unique))
	case "top":
		cell.SetString(col.Top)
	case "freq":
		cell.SetFloat(float64(col.Freq))
	}
}
