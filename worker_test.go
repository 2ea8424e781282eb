package jps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAll(t *testing.T) {
	blocked := parseTestMap(t, "S#.", "##.", "..G")
	invalid := parseTestMap(t, "S#.", "...", "..G")
	invalid.start = Cell{0, 1}

	tasks := []Task{
		{Map: wallWithGap(t)},
		{Map: blocked},
		{Map: invalid},
		{Map: wallWithGap(t), Options: []Option{WithDiagonal(false)}},
	}
	results, err := SearchAll(context.Background(), tasks, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, results, len(tasks))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	assert.NoError(t, results[0].Err)
	assert.True(t, results[0].Result.Found)
	assert.NoError(t, results[1].Err)
	assert.False(t, results[1].Result.Found)
	assert.ErrorIs(t, results[2].Err, ErrInvalidInput)
	require.NoError(t, results[3].Err)
	requireValidPath(t, tasks[3].Map, results[3].Result, false)

	single, err := Search(context.Background(), wallWithGap(t))
	require.NoError(t, err)
	assert.Equal(t, single.Path, results[0].Result.Path)
}

func TestSearchAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []Task{{Map: wallWithGap(t)}, {Map: wallWithGap(t)}}
	results, err := SearchAll(ctx, tasks, WithWorkers(0))
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
