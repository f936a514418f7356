package memo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetComputesOnce(t *testing.T) {
	store := NewMapStore()
	var calls int32

	compute := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		value, err := store.Get(context.Background(), "key", compute)
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestConcurrentGetsShareComputation(t *testing.T) {
	store := NewMapStore()
	var calls int32
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.Get(context.Background(), "key", func(ctx context.Context) (interface{}, error) {
				atomic.AddInt32(&calls, 1)
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, value)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFailedComputationIsRetried(t *testing.T) {
	store := NewMapStore()
	calls := 0

	compute := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}

	_, err := store.Get(context.Background(), "key", compute)
	require.Error(t, err)

	value, err := store.Get(context.Background(), "key", compute)
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
	assert.Equal(t, 2, calls)
}

func TestInvalidateForcesRecompute(t *testing.T) {
	store := NewMapStore()
	calls := 0

	compute := func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	}

	value, _ := store.Get(context.Background(), "key", compute)
	assert.Equal(t, 1, value)

	store.Invalidate("key")

	value, _ = store.Get(context.Background(), "key", compute)
	assert.Equal(t, 2, value)
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	store := NewMapStore()

	a, err := store.Get(context.Background(), "a", func(ctx context.Context) (interface{}, error) {
		return "A", nil
	})
	require.NoError(t, err)
	b, err := store.Get(context.Background(), "b", func(ctx context.Context) (interface{}, error) {
		return "B", nil
	})
	require.NoError(t, err)

	assert.Equal(t, "A", a)
	assert.Equal(t, "B", b)
}
