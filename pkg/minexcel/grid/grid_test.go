package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSliceRaggedRows(t *testing.T) {
	g, err := NewSlice([][]string{
		{"a", "b", "c"},
		{"d"},
		nil,
	}, nil)
	require.NoError(t, err)

	rows, cols := g.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, "b", g.CellValue(0, 1))
	assert.Equal(t, "", g.CellValue(1, 2))
	assert.Equal(t, "", g.CellValue(2, 0))
	assert.Equal(t, "", g.CellValue(-1, 0))
	assert.Equal(t, "", g.CellValue(0, 99))
}

func TestNewSliceRejectsOverlappingMerges(t *testing.T) {
	_, err := NewSlice([][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
	}, []MergeRange{
		{R1: 0, C1: 0, R2: 1, C2: 1},
		{R1: 1, C1: 1, R2: 1, C2: 2},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlapping")
}

func TestNewSliceRejectsOutOfBoundsMerge(t *testing.T) {
	_, err := NewSlice([][]string{
		{"a", "b"},
	}, []MergeRange{{R1: 0, C1: 0, R2: 1, C2: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds grid bounds")

	_, err = NewSlice([][]string{
		{"a", "b"},
	}, []MergeRange{{R1: 0, C1: 1, R2: 0, C2: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestMergeRangeGeometry(t *testing.T) {
	m := MergeRange{R1: 1, C1: 2, R2: 3, C2: 4}

	r, c := m.Anchor()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)

	assert.True(t, m.Contains(1, 2))
	assert.True(t, m.Contains(3, 4))
	assert.False(t, m.Contains(0, 2))
	assert.False(t, m.Contains(1, 5))

	assert.True(t, m.Overlaps(MergeRange{R1: 3, C1: 4, R2: 5, C2: 6}))
	assert.False(t, m.Overlaps(MergeRange{R1: 4, C1: 2, R2: 5, C2: 4}))
}

func TestSection(t *testing.T) {
	g, err := NewSlice([][]string{
		{"00", "01", "02", "03"},
		{"10", "11", "12", "13"},
		{"20", "21", "22", "23"},
	}, []MergeRange{
		{R1: 1, C1: 1, R2: 1, C2: 2}, // inside the section
		{R1: 0, C1: 0, R2: 0, C2: 1}, // crosses the section boundary
	})
	require.NoError(t, err)

	sec, err := Section(g, 1, 1, 2, 3)
	require.NoError(t, err)

	rows, cols := sec.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, "11", sec.CellValue(0, 0))
	assert.Equal(t, "23", sec.CellValue(1, 2))
	assert.Equal(t, "", sec.CellValue(2, 0))

	assert.Equal(t, []MergeRange{{R1: 0, C1: 0, R2: 0, C2: 1}}, sec.MergeRanges())
}

func TestSectionOutOfBounds(t *testing.T) {
	g, err := NewSlice([][]string{{"a"}}, nil)
	require.NoError(t, err)

	_, err = Section(g, 0, 0, 2, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds grid bounds")
}
