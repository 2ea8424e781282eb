package jps

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/pdrpinto/jps/internal"
)

type searchState int

const (
	stateRunning searchState = iota
	statePathFound
	stateExhausted
)

// searcher owns the open and closed sets of a single search. Search drives it
// to completion, Stepper drives it one expansion at a time.
type searcher struct {
	start      Cell
	goal       Cell
	costs      costModel
	scan       scanner
	directions []direction

	openSet   priorityQueue
	closedSet *closedSet
	sequence  uint64

	state    searchState
	goalNode Node
	steps    int

	// Last expansion, exposed through step snapshots.
	current    Cell
	discovered []Cell
}

func newSearcher(m Map, options Options) (*searcher, error) {
	if err := validate(m, options); err != nil {
		return nil, err
	}

	s := &searcher{
		start:      m.Start(),
		goal:       m.Goal(),
		costs:      newCostModel(options),
		directions: straightDirections,
		openSet:    make(priorityQueue, 0),
		closedSet:  newClosedSet(),
	}
	s.scan = scanner{m: m, goal: s.goal, allowDiagonal: options.AllowDiagonal}
	if options.AllowDiagonal {
		s.directions = allDirections
	}

	heap.Init(&s.openSet)
	startNode := Node{Cell: s.start, parent: -1}
	startNode.H = s.costs.heuristic(s.start, s.goal)
	startNode.F = s.costs.weight * startNode.H
	s.push(startNode)

	if s.start == s.goal {
		s.state = statePathFound
		s.goalNode = startNode
	}
	return s, nil
}

func validate(m Map, options Options) error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidInput)
	}
	if m.Height() <= 0 || m.Width() <= 0 {
		return fmt.Errorf("%w: empty %dx%d grid", ErrInvalidInput, m.Height(), m.Width())
	}
	endpoints := []struct {
		name string
		cell Cell
	}{{"start", m.Start()}, {"goal", m.Goal()}}
	for _, endpoint := range endpoints {
		if !m.OnGrid(endpoint.cell.Row, endpoint.cell.Col) {
			return fmt.Errorf("%w: %s %v is off the grid", ErrInvalidInput, endpoint.name, endpoint.cell)
		}
		if m.IsObstacle(endpoint.cell.Row, endpoint.cell.Col) {
			return fmt.Errorf("%w: %s %v is an obstacle", ErrInvalidInput, endpoint.name, endpoint.cell)
		}
	}
	if !positiveFinite(options.LineCost) || !positiveFinite(options.DiagonalCost) {
		return fmt.Errorf("%w: costs must be positive, got line=%v diagonal=%v",
			ErrInvalidInput, options.LineCost, options.DiagonalCost)
	}
	if !(options.HeuristicWeight >= 1) || math.IsInf(options.HeuristicWeight, 0) {
		return fmt.Errorf("%w: heuristic weight must be at least 1, got %v", ErrInvalidInput, options.HeuristicWeight)
	}
	if !options.Metric.valid() {
		return fmt.Errorf("%w: unknown metric %v", ErrInvalidInput, options.Metric)
	}
	return nil
}

func positiveFinite(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func (s *searcher) push(n Node) {
	heap.Push(&s.openSet, &priorityQueueItem{node: n, sequence: s.sequence})
	s.sequence++
}

// step pops one node and expands it. It reports false when the popped node
// was a stale duplicate of a closed cell or the open set was already empty.
func (s *searcher) step() bool {
	if s.state != stateRunning {
		return false
	}
	if s.openSet.Len() == 0 {
		s.state = stateExhausted
		return false
	}

	currentItem := heap.Pop(&s.openSet).(*priorityQueueItem)
	current := currentItem.node
	if s.closedSet.contains(current.Cell) {
		return false
	}
	handle := s.closedSet.insert(current)
	s.current = current.Cell
	s.discovered = nil

	for _, d := range s.directions {
		jumpPoint, ok := s.scan.jump(current.Cell.Add(d.di, d.dj), d.di, d.dj)
		if !ok {
			continue
		}
		child := s.costs.child(current, handle, jumpPoint, s.goal)
		s.push(child)
		s.discovered = append(s.discovered, jumpPoint)

		if jumpPoint == s.goal {
			s.state = statePathFound
			s.goalNode = child
			break
		}
	}

	s.steps++
	if s.state == stateRunning && s.openSet.Len() == 0 {
		s.state = stateExhausted
	}
	return true
}

func (s *searcher) nodesCreated() int { return s.openSet.Len() + s.closedSet.len() }

func (s *searcher) result(elapsed time.Duration) Result {
	result := Result{
		Found:        s.state == statePathFound,
		NodesCreated: s.nodesCreated(),
		Steps:        s.steps,
		Elapsed:      elapsed,
	}
	if !result.Found {
		return result
	}
	result.Path = s.reconstruct()
	result.Cells = cellsOf(result.Path)
	result.PathLength = len(result.Path)
	result.Cost = s.goalNode.G
	return result
}

// reconstruct follows parent handles from the goal node back to the start.
func (s *searcher) reconstruct() []Node {
	return internal.ReconstructPath(s.goalNode, func(n Node) (Node, bool) {
		if n.parent < 0 {
			return Node{}, false
		}
		return s.closedSet.node(n.parent), true
	})
}

// cellsOf expands the jump points into every cell the path crosses.
func cellsOf(path []Node) []Cell {
	if len(path) == 0 {
		return nil
	}
	cells := []Cell{path[0].Cell}
	for i := 1; i < len(path); i++ {
		from, to := path[i-1].Cell, path[i].Cell
		internal.Interpolate(from.Row, from.Col, to.Row, to.Col, func(row, col int) {
			cells = append(cells, Cell{Row: row, Col: col})
		})
	}
	return cells
}
