package jps

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"
)

// Cell is a grid coordinate. It is comparable and can key maps.
type Cell struct {
	Row int
	Col int
}

// Less orders cells by row, then column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Add returns c moved by the given row and column deltas.
func (c Cell) Add(di, dj int) Cell { return Cell{Row: c.Row + di, Col: c.Col + dj} }

// Map is the grid the search runs on. It is owned by the caller and must not
// change while a search is running.
type Map interface {
	Height() int
	Width() int
	Start() Cell
	Goal() Cell
	OnGrid(row, col int) bool
	IsObstacle(row, col int) bool
}

// Node is a search state at a cell.
type Node struct {
	Cell Cell
	G    float64
	H    float64
	F    float64

	// parent is a handle into the closed set arena, -1 for the start node.
	parent int
}

// Result contains the outcome of a search
type Result struct {
	Found bool
	// Path holds the jump points from start to goal.
	Path []Node
	// Cells holds every grid cell of the path, start and goal included.
	Cells        []Cell
	PathLength   int
	Cost         float64
	NodesCreated int
	Steps        int
	Elapsed      time.Duration
}

var (
	// ErrInvalidInput is returned when the map or options cannot be searched.
	ErrInvalidInput = errors.New("jps: invalid input")
	// ErrStepLimit is returned when a search exceeds Options.MaxSteps.
	ErrStepLimit = errors.New("jps: step limit reached")
)

// Options defines parameters for the search.
type Options struct {
	AllowDiagonal   bool
	LineCost        float64
	DiagonalCost    float64
	Metric          Metric
	HeuristicWeight float64

	// MaxSteps bounds the number of expansions. Zero means unlimited.
	MaxSteps int
	// NumberOfWorkers is only used by SearchAll.
	NumberOfWorkers int

	Logger  *slog.Logger
	Metrics *Metrics
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns 8-connected movement with unit line cost, sqrt(2)
// diagonal cost and the Chebyshev heuristic.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal:   true,
		LineCost:        1,
		DiagonalCost:    math.Sqrt2,
		Metric:          Chebyshev,
		HeuristicWeight: 1,
		NumberOfWorkers: runtime.NumCPU(),
	}
}

// WithDiagonal enables or disables diagonal moves.
func WithDiagonal(allow bool) Option {
	return func(options *Options) { options.AllowDiagonal = allow }
}

// WithCosts sets the cost of a straight step and of a diagonal step.
func WithCosts(line, diagonal float64) Option {
	return func(options *Options) {
		options.LineCost = line
		options.DiagonalCost = diagonal
	}
}

// WithMetric selects the heuristic distance metric.
func WithMetric(metric Metric) Option {
	return func(options *Options) { options.Metric = metric }
}

// WithHeuristicWeight sets the weight applied to h. Values above 1 make the
// search greedier.
func WithHeuristicWeight(weight float64) Option {
	return func(options *Options) { options.HeuristicWeight = weight }
}

// WithMaxSteps bounds the number of node expansions.
func WithMaxSteps(steps int) Option {
	return func(options *Options) { options.MaxSteps = steps }
}

// WithWorkers specifies how many goroutines SearchAll runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetrics records every search into the given collectors.
func WithMetrics(metrics *Metrics) Option {
	return func(options *Options) { options.Metrics = metrics }
}

func buildOptions(options []Option) Options {
	searchOptions := DefaultOptions()
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.DiscardHandler)
	}
	return searchOptions
}

// Search executes Jump Point Search from m.Start() to m.Goal().
//
// A missing path is not an error: the Result has Found set to false. Errors
// are reserved for invalid input, an exhausted step budget and context
// cancellation.
func Search(contextObject context.Context, m Map, options ...Option) (Result, error) {
	searchOptions := buildOptions(options)

	s, err := newSearcher(m, searchOptions)
	if err != nil {
		searchOptions.Metrics.observeError(outcomeInvalid)
		return Result{}, err
	}

	logger := searchOptions.Logger.With(
		slog.Any("start", s.start),
		slog.Any("goal", s.goal),
	)
	logger.Debug("jps search started",
		slog.Bool("allow_diagonal", searchOptions.AllowDiagonal),
		slog.String("metric", searchOptions.Metric.String()),
		slog.Float64("heuristic_weight", searchOptions.HeuristicWeight),
	)

	startTime := time.Now()
	for s.state == stateRunning {
		if err := contextObject.Err(); err != nil {
			searchOptions.Metrics.observeError(outcomeCanceled)
			return s.result(time.Since(startTime)), err
		}
		if searchOptions.MaxSteps > 0 && s.steps >= searchOptions.MaxSteps {
			logger.Warn("jps search hit step limit", slog.Int("max_steps", searchOptions.MaxSteps))
			searchOptions.Metrics.observeError(outcomeStepLimit)
			return s.result(time.Since(startTime)), ErrStepLimit
		}
		s.step()
	}

	result := s.result(time.Since(startTime))
	logger.Debug("jps search finished",
		slog.Bool("found", result.Found),
		slog.Int("steps", result.Steps),
		slog.Int("nodes_created", result.NodesCreated),
		slog.Int("path_length", result.PathLength),
		slog.Duration("elapsed", result.Elapsed),
	)
	searchOptions.Metrics.observe(result)
	return result, nil
}
