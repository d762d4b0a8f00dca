package modopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_SubmitReturnsResult(t *testing.T) {
	p := newPool(2)
	defer p.close()

	fut := p.submit(0, func() ([]LightweightSolution, error) {
		return []LightweightSolution{{Indices: []int{0, 1, 2, 3}, Score: 42}}, nil
	})
	result, err := fut.wait()
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 42, result[0].Score)
}

func TestPool_PanicSurfacesAsWorkerPoolError(t *testing.T) {
	p := newPool(1)
	defer p.close()

	fut := p.submit(7, func() ([]LightweightSolution, error) {
		panic("boom")
	})
	_, err := fut.wait()
	require.Error(t, err)
	var wpErr *WorkerPoolError
	require.ErrorAs(t, err, &wpErr)
	assert.Equal(t, 7, wpErr.Batch)
}

func TestPool_PollIsNonBlockingBeforeCompletion(t *testing.T) {
	p := newPool(1)
	defer p.close()

	release := make(chan struct{})
	fut := p.submit(0, func() ([]LightweightSolution, error) {
		<-release
		return nil, nil
	})
	assert.False(t, fut.poll())
	close(release)
	_, err := fut.wait()
	require.NoError(t, err)
	assert.True(t, fut.poll())
}
