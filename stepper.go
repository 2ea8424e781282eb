package jps

import (
	"context"

	"github.com/zyedidia/generic/mapset"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current Cell
	Open    mapset.Set[Cell]
	Closed  mapset.Set[Cell]
	// Discovered holds the jump points pushed while expanding Current.
	Discovered []Cell
	Done       bool
	Found      bool
	Path       []Node
	StepIndex  int
}

// Stepper runs the same search as Search, one node expansion per call to
// Step. It is not safe for concurrent use.
type Stepper struct {
	ctx      context.Context
	searcher *searcher
	options  Options
	observed bool
}

// NewStepper validates the input and prepares a search positioned before its
// first expansion.
func NewStepper(ctx context.Context, m Map, options ...Option) (*Stepper, error) {
	stepperOptions := buildOptions(options)
	s, err := newSearcher(m, stepperOptions)
	if err != nil {
		stepperOptions.Metrics.observeError(outcomeInvalid)
		return nil, err
	}
	return &Stepper{ctx: ctx, searcher: s, options: stepperOptions}, nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.searcher.state != stateRunning }

// Step advances the search by one node expansion and returns a snapshot.
// Stale open-set entries are skipped without counting as a step. Once the
// search is done every call returns the final snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if err := s.ctx.Err(); err != nil {
		return s.snapshot(), err
	}
	if !s.Done() && s.options.MaxSteps > 0 && s.searcher.steps >= s.options.MaxSteps {
		return s.snapshot(), ErrStepLimit
	}
	for !s.Done() {
		if s.searcher.step() {
			break
		}
	}
	snapshot := s.snapshot()
	if snapshot.Done && !s.observed {
		s.observed = true
		s.options.Metrics.observe(s.searcher.result(0))
	}
	return snapshot, nil
}

// Result returns the outcome so far. Elapsed is left at zero since a stepped
// search has no meaningful wall-clock duration.
func (s *Stepper) Result() Result { return s.searcher.result(0) }

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Current:    s.searcher.current,
		Open:       mapset.New[Cell](),
		Closed:     mapset.New[Cell](),
		Discovered: append([]Cell(nil), s.searcher.discovered...),
		Done:       s.Done(),
		Found:      s.searcher.state == statePathFound,
		StepIndex:  s.searcher.steps,
	}
	for _, item := range s.searcher.openSet {
		if !s.searcher.closedSet.contains(item.node.Cell) {
			snapshot.Open.Put(item.node.Cell)
		}
	}
	for _, n := range s.searcher.closedSet.nodes {
		snapshot.Closed.Put(n.Cell)
	}
	if snapshot.Found {
		snapshot.Path = s.searcher.reconstruct()
	}
	return snapshot
}
