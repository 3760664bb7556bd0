package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inkwell/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result via Await", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})

		result, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("propagates function error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		f := async.Async(context.Background(), struct{}{}, func(context.Context, struct{}) (int, error) {
			return 0, wantErr
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("pre-canceled context skips execution", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		f := async.Async(ctx, struct{}{}, func(context.Context, struct{}) (int, error) {
			called = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("AwaitWithTimeout times out", func(t *testing.T) {
		t.Parallel()

		f := async.Async(context.Background(), struct{}{}, func(ctx context.Context, _ struct{}) (int, error) {
			time.Sleep(time.Second)
			return 1, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})

	t.Run("IsComplete reflects completion", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		f := async.Async(context.Background(), struct{}{}, func(context.Context, struct{}) (int, error) {
			<-release
			return 1, nil
		})

		assert.False(t, f.IsComplete())
		close(release)

		_, err := f.Await()
		require.NoError(t, err)
		assert.True(t, f.IsComplete())
	})
}
