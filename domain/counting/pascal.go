package counting

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPascalRow bounds the triangle so it stays readable.
const MaxPascalRow = 15

// ErrRowOutOfRange is returned when the requested last row is outside
// [0, MaxPascalRow].
var ErrRowOutOfRange = errors.New("pascal: row out of range")

// Triangle holds rows 0..MaxRow of Pascal's triangle. Row n contains
// C(n,0) … C(n,n).
type Triangle struct {
	MaxRow int
	Rows   [][]Count
}

// Highlight describes the highlighted column of the last row.
type Highlight struct {
	Row     int
	Column  int
	Value   Count
	InRange bool
}

// NewTriangle builds every row from 0 to maxRow. Rows are recomputed from
// scratch on every call.
func NewTriangle(maxRow int) (*Triangle, error) {
	if maxRow < 0 || maxRow > MaxPascalRow {
		return nil, fmt.Errorf("%w: got %d, want 0..%d", ErrRowOutOfRange, maxRow, MaxPascalRow)
	}

	rows := make([][]Count, maxRow+1)
	for n := 0; n <= maxRow; n++ {
		row := make([]Count, n+1)
		for k := 0; k <= n; k++ {
			row[k] = Combinations(n, k)
		}
		rows[n] = row
	}

	return &Triangle{MaxRow: maxRow, Rows: rows}, nil
}

// Row returns row n, or nil when n is not part of the triangle.
func (t *Triangle) Row(n int) []Count {
	if n < 0 || n > t.MaxRow {
		return nil
	}
	return t.Rows[n]
}

// Highlight looks up column k of the last row. A column past the end of the
// last row is reported with InRange false instead of being dropped.
func (t *Triangle) Highlight(k int) Highlight {
	h := Highlight{Row: t.MaxRow, Column: k}
	if k < 0 || k > t.MaxRow {
		h.Value = NotDefined()
		return h
	}
	h.Value = t.Rows[t.MaxRow][k]
	h.InRange = true
	return h
}

// Note is a one-line explanation of the highlighted value.
func (h Highlight) Note() string {
	if !h.InRange {
		return fmt.Sprintf("k=%d is out of range for the last row n=%d", h.Column, h.Row)
	}
	return fmt.Sprintf("C(%d, %d) = %s ways to choose %d of %d elements",
		h.Row, h.Column, h.Value, h.Column, h.Row)
}

// String renders the triangle as centred text, one row per line.
func (t *Triangle) String() string {
	lines := make([]string, len(t.Rows))
	width := 0
	for n, row := range t.Rows {
		cells := make([]string, len(row))
		for k, c := range row {
			cells[k] = c.String()
		}
		lines[n] = strings.Join(cells, " ")
		if len(lines[n]) > width {
			width = len(lines[n])
		}
	}

	var b strings.Builder
	for _, line := range lines {
		pad := (width - len(line)) / 2
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
