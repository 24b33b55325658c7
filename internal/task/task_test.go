package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_Result(t *testing.T) {
	f := Go(context.Background(), func(ctx context.Context) (string, error) {
		return "summary", nil
	})

	c, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "summary", c.Result)
	assert.NoError(t, c.Err)
}

func TestGo_Error(t *testing.T) {
	boom := errors.New("boom")
	f := Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	<-f.Done()
	assert.ErrorIs(t, f.Completion().Err, boom)
}

func TestGo_Panic(t *testing.T) {
	f := Go(context.Background(), func(ctx context.Context) (string, error) {
		panic("kaboom")
	})

	c, err := f.Wait(context.Background())
	require.NoError(t, err)
	require.Error(t, c.Err)
	assert.Contains(t, c.Err.Error(), "kaboom")
	assert.Equal(t, "", c.Result)
}

func TestGo_RunsExactlyOnce(t *testing.T) {
	var runs atomic.Int32
	f := Go(context.Background(), func(ctx context.Context) (int32, error) {
		return runs.Add(1), nil
	})

	first, err := f.Wait(context.Background())
	require.NoError(t, err)
	second, err := f.Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), runs.Load())
	assert.Equal(t, first, second)
	assert.Equal(t, first, f.Completion())
}

func TestGo_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	f := Go(context.Background(), func(ctx context.Context) (bool, error) {
		<-release
		return true, nil
	})

	select {
	case <-f.Done():
		t.Fatal("task finished before it was released")
	default:
	}

	close(release)
	c, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, c.Result)
}

func TestWait_ContextDone(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := Go(context.Background(), func(ctx context.Context) (bool, error) {
		<-release
		return true, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := f.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGo_PassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := Go(ctx, func(ctx context.Context) (struct{}, error) {
		<-ctx.Done()
		return struct{}{}, ctx.Err()
	})
	cancel()

	c, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, c.Err, context.Canceled)
}
