package channel_utils

import (
	"sort"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeChannels(t *testing.T) {
	workerPool, err := ants.NewPool(10)
	require.NoError(t, err)
	defer workerPool.Release()

	first := make(chan int)
	second := make(chan int)

	go func() {
		defer close(first)
		first <- 1
		first <- 2
	}()
	go func() {
		defer close(second)
		second <- 3
	}()

	merged, err := MergeChannels[int](workerPool, first, second)
	require.NoError(t, err)

	var got []int
	for v := range merged {
		got = append(got, v)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMergeChannels_NoInputs(t *testing.T) {
	workerPool, err := ants.NewPool(2)
	require.NoError(t, err)
	defer workerPool.Release()

	merged, err := MergeChannels[int](workerPool)
	require.NoError(t, err)

	_, ok := <-merged
	assert.False(t, ok)
}
