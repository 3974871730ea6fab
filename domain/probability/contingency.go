package probability

import (
	"fmt"
	"strings"
)

// ContingencyTable cross-tabulates row events A1..Am against column events
// B1..Bn.
type ContingencyTable struct {
	Counts    [][]int
	RowTotals []int
	ColTotals []int
	Total     int
}

// Probabilities are only available when the table is not empty.
type ContingencyProbabilities struct {
	// Row[i] = P(Ai), Col[j] = P(Bj).
	Row []float64
	Col []float64
	// Joint[i][j] = P(Ai ∩ Bj).
	Joint [][]float64
	// ColGivenRow[i][j] = P(Bj | Ai). Rows whose total is zero are nil.
	ColGivenRow [][]float64
}

// NewContingencyTable validates counts and computes the totals.
func NewContingencyTable(counts [][]int) (*ContingencyTable, error) {
	if len(counts) == 0 || len(counts[0]) == 0 {
		return nil, ErrEmptyTable
	}
	cols := len(counts[0])

	t := &ContingencyTable{
		Counts:    make([][]int, len(counts)),
		RowTotals: make([]int, len(counts)),
		ColTotals: make([]int, cols),
	}
	for i, row := range counts {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i+1, len(row), cols, ErrRaggedTable)
		}
		t.Counts[i] = append([]int(nil), row...)
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", i+1, j+1, v, ErrNegativeCount)
			}
			t.RowTotals[i] += v
			t.ColTotals[j] += v
			t.Total += v
		}
	}
	return t, nil
}

// Probabilities returns marginal, joint and conditional probabilities, or
// false when the grand total is zero.
func (t *ContingencyTable) Probabilities() (ContingencyProbabilities, bool) {
	if t.Total == 0 {
		return ContingencyProbabilities{}, false
	}
	total := float64(t.Total)

	p := ContingencyProbabilities{
		Row:         make([]float64, len(t.RowTotals)),
		Col:         make([]float64, len(t.ColTotals)),
		Joint:       make([][]float64, len(t.Counts)),
		ColGivenRow: make([][]float64, len(t.Counts)),
	}
	for i, rt := range t.RowTotals {
		p.Row[i] = float64(rt) / total
	}
	for j, ct := range t.ColTotals {
		p.Col[j] = float64(ct) / total
	}
	for i, row := range t.Counts {
		p.Joint[i] = make([]float64, len(row))
		for j, v := range row {
			p.Joint[i][j] = float64(v) / total
		}
		if t.RowTotals[i] == 0 {
			continue
		}
		p.ColGivenRow[i] = make([]float64, len(row))
		for j, v := range row {
			p.ColGivenRow[i][j] = float64(v) / float64(t.RowTotals[i])
		}
	}
	return p, true
}

// ExampleTables returns the sample 2×3 tables offered by the lessons.
func ExampleTables() [][][]int {
	return [][][]int{
		{{20, 30, 10}, {15, 25, 20}},
		{{45, 15, 10}, {25, 35, 20}},
		{{30, 20, 25}, {40, 15, 10}},
	}
}

// Lines lays the table out as fixed-width text with row and column totals.
func (t *ContingencyTable) Lines() []string {
	header := []string{"     "}
	for j := range t.ColTotals {
		header = append(header, fmt.Sprintf("%6s", fmt.Sprintf("B%d", j+1)))
	}
	header = append(header, fmt.Sprintf("%7s", "Total"))

	lines := []string{strings.Join(header, "")}
	for i, row := range t.Counts {
		cells := []string{fmt.Sprintf("%-5s", fmt.Sprintf("A%d", i+1))}
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%6d", v))
		}
		cells = append(cells, fmt.Sprintf("%7d", t.RowTotals[i]))
		lines = append(lines, strings.Join(cells, ""))
	}
	totals := []string{fmt.Sprintf("%-5s", "Total")}
	for _, v := range t.ColTotals {
		totals = append(totals, fmt.Sprintf("%6d", v))
	}
	totals = append(totals, fmt.Sprintf("%7d", t.Total))
	return append(lines, strings.Join(totals, ""))
}
