// Package grid is a dense in-memory implementation of jps.Map.
package grid

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/jps"
)

// ErrMalformed is returned by Parse for inputs it cannot read.
var ErrMalformed = errors.New("grid: malformed input")

// Grid is a rectangular map of free and blocked cells with a start and a goal.
type Grid struct {
	height, width int
	blocked       []bool
	start, goal   jps.Cell
}

var _ jps.Map = (*Grid)(nil)

// New returns an obstacle-free height x width grid with start and goal at
// the origin.
func New(height, width int) *Grid {
	height, width = max(height, 0), max(width, 0)
	return &Grid{
		height:  height,
		width:   width,
		blocked: make([]bool, height*width),
	}
}

// Parse builds a grid from one string per row:
//
//	'.'  free
//	'#'  obstacle
//	'S'  start (free)
//	'G'  goal (free)
//
// Every row must have the same width, and S and G must each appear exactly
// once.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	g := New(len(rows), len(rows[0]))
	var starts, goals int
	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformed, r, len(row), g.width)
		}
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '.':
			case '#':
				g.SetObstacle(r, c, true)
			case 'S':
				g.start = jps.Cell{Row: r, Col: c}
				starts++
			case 'G':
				g.goal = jps.Cell{Row: r, Col: c}
				goals++
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformed, row[c], r, c)
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: want one S and one G, got %d and %d", ErrMalformed, starts, goals)
	}
	return g, nil
}

func (g *Grid) Height() int     { return g.height }
func (g *Grid) Width() int      { return g.width }
func (g *Grid) Start() jps.Cell { return g.start }
func (g *Grid) Goal() jps.Cell  { return g.goal }

func (g *Grid) OnGrid(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// IsObstacle reports whether the cell is blocked. Off-grid cells are not
// obstacles; callers check OnGrid for those.
func (g *Grid) IsObstacle(row, col int) bool {
	if !g.OnGrid(row, col) {
		return false
	}
	return g.blocked[row*g.width+col]
}

// SetObstacle marks or clears an obstacle. Off-grid cells are ignored.
func (g *Grid) SetObstacle(row, col int, blocked bool) {
	if g.OnGrid(row, col) {
		g.blocked[row*g.width+col] = blocked
	}
}

func (g *Grid) SetStart(c jps.Cell) { g.start = c }
func (g *Grid) SetGoal(c jps.Cell)  { g.goal = c }

// Obstacles returns the blocked cells in row-major order.
func (g *Grid) Obstacles() []jps.Cell {
	var cells []jps.Cell
	for i, b := range g.blocked {
		if b {
			cells = append(cells, jps.Cell{Row: i / g.width, Col: i % g.width})
		}
	}
	return cells
}
