package worker

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etree.io/etree/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "console")
	os.Exit(m.Run())
}

func newTestPools(t *testing.T) *Pools {
	t.Helper()
	pools, err := NewPools(context.Background(), PoolConfig{GeneralPoolSize: 4})
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func TestPool_Submit(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan struct{})
	err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestPool_Submit_CancelledContext(t *testing.T) {
	pools := newTestPools(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	err := pools.General.Submit(ctx, func(ctx context.Context) { ran = true })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestPool_Submit_Concurrent(t *testing.T) {
	pools := newTestPools(t)

	const tasks = 20
	var (
		mu    sync.Mutex
		count int
		wg    sync.WaitGroup
	)
	wg.Add(tasks)
	for range tasks {
		err := pools.General.Submit(context.Background(), func(ctx context.Context) {
			mu.Lock()
			count++
			mu.Unlock()
			wg.Done()
		})
		require.NoError(t, err)
	}
	wg.Wait()
	assert.Equal(t, tasks, count)
}

func TestPools_SubmitDetached(t *testing.T) {
	pools := newTestPools(t)

	done := make(chan struct{})
	err := pools.SubmitDetached(func(ctx context.Context) {
		close(done)
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}
}

func TestPools_SubmitDetached_AfterShutdown(t *testing.T) {
	pools, err := NewPools(context.Background(), PoolConfig{GeneralPoolSize: 2})
	require.NoError(t, err)
	pools.Shutdown()

	// queued tasks see the cancelled lifecycle context and do not run;
	// submitting to a released pool errors
	err = pools.SubmitDetached(func(ctx context.Context) {
		t.Error("task ran after shutdown")
	})
	assert.Error(t, err)
}

func TestPools_Metrics(t *testing.T) {
	pools := newTestPools(t)

	metrics := pools.Metrics()
	general, ok := metrics["general"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 4, general["cap"])
}

func TestPool_Raw(t *testing.T) {
	pools := newTestPools(t)
	assert.NotNil(t, pools.General.Raw())
	assert.Equal(t, 4, pools.General.Raw().Cap())
}
