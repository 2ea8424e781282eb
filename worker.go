package jps

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is one independent search in a batch.
type Task struct {
	Map Map
	// Options are applied after the batch-wide options.
	Options []Option
}

// TaskResult is the outcome of the task at Index.
type TaskResult struct {
	Index  int
	Result Result
	Err    error
}

// SearchAll runs every task on a pool of NumberOfWorkers goroutines and
// returns the results in task order. A failing task records its error in its
// TaskResult and does not stop the others. The returned error is only set
// when ctx is done before every task has run.
func SearchAll(ctx context.Context, tasks []Task, options ...Option) ([]TaskResult, error) {
	batchOptions := buildOptions(options)
	workers := batchOptions.NumberOfWorkers
	if workers < 1 {
		workers = 1
	}

	results := make([]TaskResult, len(tasks))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, task := range tasks {
		results[i].Index = i
		if err := groupCtx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		group.Go(func() error {
			taskOptions := append(append([]Option(nil), options...), task.Options...)
			result, err := Search(groupCtx, task.Map, taskOptions...)
			results[i] = TaskResult{Index: i, Result: result, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
