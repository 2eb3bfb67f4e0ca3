package entities

// Cell is a single spreadsheet value. Raw always holds the original text;
// Number is valid only when IsNumber is set.
type Cell struct {
	Raw      string
	Number   float64
	IsNumber bool
}

// Column is an ordered sequence of cells under a header name.
type Column struct {
	Name  string
	Cells []Cell
}

// Dataset is tabular data loaded from an uploaded workbook.
type Dataset struct {
	Columns []Column
}

// Rows returns the number of data rows (longest column).
func (d Dataset) Rows() int {
	max := 0
	for _, col := range d.Columns {
		if len(col.Cells) > max {
			max = len(col.Cells)
		}
	}
	return max
}

// ColumnSummary holds descriptive statistics for one column. Numeric fields
// are meaningful only when Numeric is set; Unique/Top/Freq only when it is
// not. HasStd distinguishes a real standard deviation from the undefined
// single-sample case.
type ColumnSummary struct {
	Name    string
	Numeric bool

	Count int

	// Categorical statistics.
	Unique int
	Top    string
	Freq   int

	// Numeric statistics.
	Mean   float64
	Std    float64
	HasStd bool
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}
