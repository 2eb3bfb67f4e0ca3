package usecases

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"project_botAnalis/internal/entities"
)

// DescribeCalculator computes per-column descriptive statistics: count,
// mean, std, min, quartiles and max for numeric columns; count, unique,
// top and freq for categorical ones.
type DescribeCalculator struct{}

func NewDescribeCalculator() *DescribeCalculator {
	return &DescribeCalculator{}
}

// Describe summarizes every column of the dataset in order.
func (d *DescribeCalculator) Describe(data entities.Dataset) []entities.ColumnSummary {
	summaries := make([]entities.ColumnSummary, 0, len(data.Columns))
	for _, col := range data.Columns {
		summaries = append(summaries, d.describeColumn(col))
	}
	return summaries
}

func (d *DescribeCalculator) describeColumn(col entities.Column) entities.ColumnSummary {
	var numbers []float64
	var texts []string
	numeric := true

	for _, cell := range col.Cells {
		if strings.TrimSpace(cell.Raw) == "" {
			continue // empty cells are excluded from every statistic
		}
		if cell.IsNumber {
			numbers = append(numbers, cell.Number)
		} else {
			numeric = false
		}
		texts = append(texts, cell.Raw)
	}
	// A column is numeric only when every non-empty cell parses as a number.
	if len(numbers) == 0 {
		numeric = false
	}

	if numeric {
		return numericSummary(col.Name, numbers)
	}
	return categoricalSummary(col.Name, texts)
}

func numericSummary(name string, values []float64) entities.ColumnSummary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	summary := entities.ColumnSummary{
		Name:    name,
		Numeric: true,
		Count:   len(values),
		Mean:    stat.Mean(values, nil),
		Min:     sorted[0],
		Q1:      quantile(sorted, 0.25),
		Median:  quantile(sorted, 0.5),
		Q3:      quantile(sorted, 0.75),
		Max:     sorted[len(sorted)-1],
	}
	if len(values) > 1 {
		summary.Std = stat.StdDev(values, nil)
		summary.HasStd = true
	}
	return summary
}

func categoricalSummary(name string, values []string) entities.ColumnSummary {
	summary := entities.ColumnSummary{
		Name:  name,
		Count: len(values),
	}

	counts := make(map[string]int)
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	summary.Unique = len(counts)
	for _, v := range order {
		if counts[v] > summary.Freq {
			summary.Top = v
			summary.Freq = counts[v]
		}
	}
	return summary
}

// quantile interpolates linearly at index p*(n-1) over a sorted slice.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
