package jps

import (
	"fmt"
	"math"
	"strings"
)

// Metric selects the distance used for the heuristic.
type Metric int

const (
	Chebyshev Metric = iota
	Euclidean
	Manhattan
	Diagonal
)

var metricNames = map[Metric]string{
	Chebyshev: "chebyshev",
	Euclidean: "euclidean",
	Manhattan: "manhattan",
	Diagonal:  "diagonal",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a metric name, case-insensitively, to a Metric.
func ParseMetric(name string) (Metric, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for metric, metricName := range metricNames {
		if metricName == normalized {
			return metric, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, name)
}

func (m Metric) valid() bool {
	_, ok := metricNames[m]
	return ok
}

// costModel prices jump segments and estimates the remaining distance.
type costModel struct {
	allowDiagonal bool
	line          float64
	diagonal      float64
	metric        Metric
	weight        float64
}

func newCostModel(options Options) costModel {
	return costModel{
		allowDiagonal: options.AllowDiagonal,
		line:          options.LineCost,
		diagonal:      options.DiagonalCost,
		metric:        options.Metric,
		weight:        options.HeuristicWeight,
	}
}

func deltas(a, b Cell) (int, int) {
	return abs(a.Row - b.Row), abs(a.Col - b.Col)
}

// segment is the cost of the straight or diagonal run from a to b.
func (c costModel) segment(a, b Cell) float64 {
	di, dj := deltas(a, b)
	if c.allowDiagonal {
		return c.octile(di, dj)
	}
	return float64(di+dj) * c.line
}

func (c costModel) octile(di, dj int) float64 {
	return float64(min(di, dj))*c.diagonal + float64(abs(di-dj))*c.line
}

func (c costModel) heuristic(cell, goal Cell) float64 {
	di, dj := deltas(cell, goal)
	switch c.metric {
	case Euclidean:
		return math.Sqrt(float64(di*di+dj*dj)) * c.line
	case Manhattan:
		return float64(di+dj) * c.line
	case Diagonal:
		return c.octile(di, dj)
	default:
		return float64(max(di, dj)) * c.line
	}
}

// child builds the node reached from parent at cell.
func (c costModel) child(parent Node, parentHandle int, cell, goal Cell) Node {
	n := Node{
		Cell:   cell,
		G:      parent.G + c.segment(parent.Cell, cell),
		H:      c.heuristic(cell, goal),
		parent: parentHandle,
	}
	n.F = n.G + c.weight*n.H
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
