package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"project_botAnalis/internal/entities"
)

func sampleDataset() entities.Dataset {
	return entities.Dataset{Columns: []entities.Column{
		{Name: "A", Cells: []entities.Cell{
			{Raw: "1", Number: 1, IsNumber: true},
			{Raw: "2", Number: 2, IsNumber: true},
			{Raw: "3", Number: 3, IsNumber: true},
		}},
		{Name: "B", Cells: []entities.Cell{{Raw: "x"}, {Raw: "y"}, {Raw: "z"}}},
	}}
}

func sampleSummary() []entities.ColumnSummary {
	return []entities.ColumnSummary{
		{Name: "A", Numeric: true, Count: 3, Mean: 2, Std: 1, HasStd: true, Min: 1, Q1: 1.5, Median: 2, Q3: 2.5, Max: 3},
		{Name: "B", Count: 3, Unique: 3, Top: "x", Freq: 1},
	}
}

func writeInputWorkbook(t *testing.T, path string) {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sheet1")
	require.NoError(t, err)

	header := sheet.AddRow()
	header.AddCell().SetString("A")
	header.AddCell().SetString("B")
	for i, s := range []string{"x", "y", "z"} {
		row := sheet.AddRow()
		row.AddCell().SetFloat(float64(i + 1))
		row.AddCell().SetString(s)
	}
	require.NoError(t, file.Save(path))
}

func TestLoadParsesHeadersAndCellTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	writeInputWorkbook(t, path)

	store := NewXLSXStore()
	data, err := store.Load(path)
	require.NoError(t, err)

	require.Len(t, data.Columns, 2)
	assert.Equal(t, "A", data.Columns[0].Name)
	assert.Equal(t, "B", data.Columns[1].Name)
	require.Equal(t, 3, data.Rows())

	assert.True(t, data.Columns[0].Cells[0].IsNumber)
	assert.InDelta(t, 1.0, data.Columns[0].Cells[0].Number, 1e-9)
	assert.False(t, data.Columns[1].Cells[0].IsNumber)
	assert.Equal(t, "x", data.Columns[1].Cells[0].Raw)
}

func TestLoadRejectsNonWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o600))

	store := NewXLSXStore()
	_, err := store.Load(path)
	require.ErrorIs(t, err, entities.ErrUnreadableFile)
}

func TestWriteAnalysisProducesTwoSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")

	store := NewXLSXStore()
	require.NoError(t, store.WriteAnalysis(path, sampleDataset(), sampleSummary()))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)
	assert.Equal(t, "Original", file.Sheets[0].Name)
	assert.Equal(t, "Summary", file.Sheets[1].Name)
}

func TestWriteAnalysisOriginalSheetRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")
	input := sampleDataset()

	store := NewXLSXStore()
	require.NoError(t, store.WriteAnalysis(path, input, sampleSummary()))

	// The Original sheet is the first sheet, so Load reads it back.
	got, err := store.Load(path)
	require.NoError(t, err)
	require.Len(t, got.Columns, 2)
	assert.Equal(t, "A", got.Columns[0].Name)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, input.Columns[0].Cells[i].Number, got.Columns[0].Cells[i].Number, 1e-9)
		assert.Equal(t, input.Columns[1].Cells[i].Raw, got.Columns[1].Cells[i].Raw)
	}
}

func TestWriteAnalysisSummaryLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.xlsx")

	store := NewXLSXStore()
	require.NoError(t, store.WriteAnalysis(path, sampleDataset(), sampleSummary()))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	summary := file.Sheets[1]

	// Header row names the dataset columns.
	assert.Equal(t, "A", summary.Rows[0].Cells[1].String())
	assert.Equal(t, "B", summary.Rows[0].Cells[2].String())

	rows := make(map[string]*xlsx.Row)
	for _, row := range summary.Rows[1:] {
		rows[row.Cells[0].String()] = row
	}

	countA, err := rows["count"].Cells[1].Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, countA, 1e-9)
	countB, err := rows["count"].Cells[2].Float()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, countB, 1e-9)

	meanA, err := rows["mean"].Cells[1].Float()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, meanA, 1e-9)
	// Mean does not apply to a categorical column.
	assert.Equal(t, "", rows["mean"].Cells[2].String())

	assert.Equal(t, "x", rows["top"].Cells[2].String())
	assert.Equal(t, "", rows["top"].Cells[1].String())
}
