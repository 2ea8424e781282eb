package jps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner_Jump(t *testing.T) {
	tests := []struct {
		name          string
		rows          []string
		goal          Cell
		allowDiagonal bool
		from          Cell
		di, dj        int
		want          Cell
		found         bool
	}{
		{
			name:          "straight stops below obstacle corner",
			rows:          []string{".....", ".#...", "....."},
			goal:          Cell{0, 0},
			allowDiagonal: true,
			from:          Cell{2, 0}, di: 0, dj: 1,
			want: Cell{2, 1}, found: true,
		},
		{
			name:          "straight runs into wall",
			rows:          []string{".....", "...#.", "....."},
			goal:          Cell{0, 0},
			allowDiagonal: true,
			from:          Cell{1, 0}, di: 0, dj: 1,
			found: false,
		},
		{
			name:          "straight off the edge",
			rows:          []string{".....", ".....", "....."},
			goal:          Cell{0, 0},
			allowDiagonal: true,
			from:          Cell{2, 0}, di: 0, dj: 1,
			found: false,
		},
		{
			name:          "straight reaches goal",
			rows:          []string{".....", ".....", "....."},
			goal:          Cell{2, 3},
			allowDiagonal: true,
			from:          Cell{2, 0}, di: 0, dj: 1,
			want: Cell{2, 3}, found: true,
		},
		{
			name:          "scan starting on obstacle",
			rows:          []string{".#...", ".....", "....."},
			goal:          Cell{0, 4},
			allowDiagonal: true,
			from:          Cell{0, 1}, di: 0, dj: 1,
			found: false,
		},
		{
			name:          "diagonal stops where a straight probe sees the goal",
			rows:          []string{".....", ".....", ".....", ".....", "....."},
			goal:          Cell{4, 2},
			allowDiagonal: true,
			from:          Cell{1, 1}, di: 1, dj: 1,
			want: Cell{2, 2}, found: true,
		},
		{
			name:          "diagonal forced by obstacle behind",
			rows:          []string{".....", "#....", ".....", "....."},
			goal:          Cell{0, 0},
			allowDiagonal: true,
			from:          Cell{1, 1}, di: 1, dj: 1,
			want: Cell{1, 1}, found: true,
		},
		{
			name:          "orthogonal scan turns in open space",
			rows:          []string{"....", "....", "....", "...."},
			goal:          Cell{3, 3},
			allowDiagonal: false,
			from:          Cell{1, 0}, di: 1, dj: 0,
			want: Cell{3, 0}, found: true,
		},
		{
			name:          "orthogonal forced past obstacle",
			rows:          []string{".#..", "....", "...."},
			goal:          Cell{2, 3},
			allowDiagonal: false,
			from:          Cell{1, 1}, di: 0, dj: 1,
			want: Cell{1, 2}, found: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := parseTestMap(t, tt.rows...)
			s := scanner{m: m, goal: tt.goal, allowDiagonal: tt.allowDiagonal}
			got, found := s.jump(tt.from, tt.di, tt.dj)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
