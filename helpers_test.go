package jps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testMap is a minimal Map for in-package tests; the grid package cannot be
// imported here without a cycle.
type testMap struct {
	rows        []string
	start, goal Cell
}

func parseTestMap(t *testing.T, rows ...string) *testMap {
	t.Helper()
	m := &testMap{rows: rows}
	for r, row := range rows {
		require.Len(t, row, len(rows[0]), "row %d", r)
		for c, ch := range row {
			switch ch {
			case 'S':
				m.start = Cell{r, c}
			case 'G':
				m.goal = Cell{r, c}
			}
		}
	}
	return m
}

func (m *testMap) Height() int { return len(m.rows) }
func (m *testMap) Width() int  { return len(m.rows[0]) }
func (m *testMap) Start() Cell { return m.start }
func (m *testMap) Goal() Cell  { return m.goal }
func (m *testMap) OnGrid(row, col int) bool {
	return row >= 0 && row < m.Height() && col >= 0 && col < m.Width()
}
func (m *testMap) IsObstacle(row, col int) bool {
	return m.OnGrid(row, col) && m.rows[row][col] == '#'
}

// requireValidPath checks that result walks from start to goal over free
// cells in unit steps.
func requireValidPath(t *testing.T, m Map, result Result, allowDiagonal bool) {
	t.Helper()
	require.True(t, result.Found)
	require.NotEmpty(t, result.Cells)
	require.Equal(t, m.Start(), result.Cells[0])
	require.Equal(t, m.Goal(), result.Cells[len(result.Cells)-1])
	require.Equal(t, m.Start(), result.Path[0].Cell)
	require.Equal(t, m.Goal(), result.Path[len(result.Path)-1].Cell)
	require.Equal(t, len(result.Path), result.PathLength)

	for i, c := range result.Cells {
		require.True(t, m.OnGrid(c.Row, c.Col), "cell %v off grid", c)
		require.False(t, m.IsObstacle(c.Row, c.Col), "cell %v is an obstacle", c)
		if i == 0 {
			continue
		}
		prev := result.Cells[i-1]
		di, dj := abs(c.Row-prev.Row), abs(c.Col-prev.Col)
		require.True(t, di <= 1 && dj <= 1 && di+dj > 0, "step %v -> %v is not a unit step", prev, c)
		if !allowDiagonal {
			require.Equal(t, 1, di+dj, "diagonal step %v -> %v", prev, c)
		}
	}

	for i := 1; i < len(result.Path); i++ {
		require.Greater(t, result.Path[i].G, result.Path[i-1].G)
	}
}
