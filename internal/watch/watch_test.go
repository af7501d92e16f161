package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NothingToWatch(t *testing.T) {
	_, err := New(nil, func(context.Context, string) error { return nil })
	require.Error(t, err)
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.dispatch.yaml")
	other := filepath.Join(dir, "b.dispatch.yaml")

	require.NoError(t, os.WriteFile(target, []byte("v: 0\n"), 0o644))

	var (
		mu    sync.Mutex
		seen  []string
		calls atomic.Int32
	)

	w, err := New([]string{target}, func(_ context.Context, path string) error {
		mu.Lock()
		seen = append(seen, path)
		mu.Unlock()
		calls.Add(1)

		return errors.New("logged, not fatal")
	}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte("v: 1\n"), 0o644)
		_ = os.WriteFile(target, []byte("v: 1\n"), 0o644)

		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	abs, err := filepath.Abs(target)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()

	for _, p := range seen {
		assert.Equal(t, abs, p)
	}
}

func TestDebouncer_Collapses(t *testing.T) {
	d := &debouncer{delay: 30 * time.Millisecond, pending: map[string]*time.Timer{}}

	var calls atomic.Int32
	for range 5 {
		d.schedule("k", func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	d.stop()
	assert.Equal(t, int32(1), calls.Load())
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := &debouncer{delay: time.Hour, pending: map[string]*time.Timer{}}

	var calls atomic.Int32
	d.schedule("a", func() { calls.Add(1) })
	d.schedule("b", func() { calls.Add(1) })
	d.stop()

	assert.Equal(t, int32(0), calls.Load())
}
