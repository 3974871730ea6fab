package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContingencyTable(t *testing.T) {
	table, err := NewContingencyTable(ExampleTables()[0])
	require.NoError(t, err)

	assert.Equal(t, []int{60, 60}, table.RowTotals)
	assert.Equal(t, []int{35, 55, 30}, table.ColTotals)
	assert.Equal(t, 120, table.Total)

	p, ok := table.Probabilities()
	require.True(t, ok)
	assert.InDelta(t, 0.5, p.Row[0], 1e-12)
	assert.InDelta(t, 55.0/120, p.Col[1], 1e-12)
	assert.InDelta(t, 20.0/120, p.Joint[0][0], 1e-12)
	assert.InDelta(t, 20.0/60, p.ColGivenRow[1][2], 1e-12)
}

func TestContingencyTable_MarginalsSumToOne(t *testing.T) {
	for _, counts := range ExampleTables() {
		table, err := NewContingencyTable(counts)
		require.NoError(t, err)
		p, ok := table.Probabilities()
		require.True(t, ok)

		rowSum, colSum, jointSum := 0.0, 0.0, 0.0
		for _, v := range p.Row {
			rowSum += v
		}
		for _, v := range p.Col {
			colSum += v
		}
		for _, row := range p.Joint {
			for _, v := range row {
				jointSum += v
			}
		}
		assert.InDelta(t, 1.0, rowSum, 1e-12)
		assert.InDelta(t, 1.0, colSum, 1e-12)
		assert.InDelta(t, 1.0, jointSum, 1e-12)
	}
}

func TestContingencyTable_ZeroRowSkipsConditional(t *testing.T) {
	table, err := NewContingencyTable([][]int{{0, 0, 0}, {1, 2, 3}})
	require.NoError(t, err)

	p, ok := table.Probabilities()
	require.True(t, ok)
	assert.Nil(t, p.ColGivenRow[0])
	assert.Len(t, p.ColGivenRow[1], 3)
}

func TestContingencyTable_Empty(t *testing.T) {
	table, err := NewContingencyTable([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, table.Total)

	_, ok := table.Probabilities()
	assert.False(t, ok)
}

func TestNewContingencyTable_Invalid(t *testing.T) {
	_, err := NewContingencyTable(nil)
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewContingencyTable([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedTable)

	_, err = NewContingencyTable([][]int{{1, -2}})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestContingencyTable_Lines(t *testing.T) {
	table, err := NewContingencyTable([][]int{{30, 20}, {10, 40}})
	require.NoError(t, err)

	lines := table.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "         B1    B2  Total", lines[0])
	assert.Equal(t, "A1       30    20     50", lines[1])
	assert.Equal(t, "Total    40    60    100", lines[3])
}
