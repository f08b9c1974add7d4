package scheduler

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/config"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   int
	errs    []error
	started chan struct{}
	block   chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context) (*service.RunResult, error) {
	f.mu.Lock()
	i := f.calls
	f.calls++
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return &service.RunResult{RunID: uuid.New()}, nil
}

func (f *fakeRunner) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestScheduler(runner Runner, retries int) *Scheduler {
	log := logger.New()
	log.SetOutput(io.Discard)
	return New(config.SchedulerConfig{
		Interval:   time.Hour,
		Retries:    retries,
		RetryDelay: time.Millisecond,
	}, runner, log)
}

func TestScheduler_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("retries a failed run", func(t *testing.T) {
		runner := &fakeRunner{errs: []error{errors.New("api down")}}
		s := newTestScheduler(runner, 1)

		result, ran, err := s.Tick(ctx)
		require.NoError(t, err)
		require.True(t, ran)
		require.NotNil(t, result)
		require.Equal(t, 2, runner.Calls())

		stats := s.Stats()
		require.Equal(t, int64(2), stats.Runs)
		require.Equal(t, int64(1), stats.Failures)
		require.Empty(t, stats.LastError)
		require.Equal(t, result.RunID.String(), stats.LastRunID)
	})

	t.Run("gives up after retries", func(t *testing.T) {
		runner := &fakeRunner{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}}
		s := newTestScheduler(runner, 1)

		_, ran, err := s.Tick(ctx)
		require.True(t, ran)
		require.EqualError(t, err, "b")
		require.Equal(t, 2, runner.Calls())
		require.Equal(t, "b", s.Stats().LastError)
	})

	t.Run("run in progress is not retried", func(t *testing.T) {
		runner := &fakeRunner{errs: []error{etl_errors.ErrRunInProgress}}
		s := newTestScheduler(runner, 3)

		_, _, err := s.Tick(ctx)
		require.ErrorIs(t, err, etl_errors.ErrRunInProgress)
		require.Equal(t, 1, runner.Calls())
		require.Zero(t, s.Stats().Failures)
	})

	t.Run("cancelled during retry delay", func(t *testing.T) {
		runner := &fakeRunner{errs: []error{errors.New("a"), errors.New("b")}}
		s := newTestScheduler(runner, 1)
		s.RetryDelay = time.Hour

		cctx, cancel := context.WithCancel(ctx)
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		_, _, err := s.Tick(cctx)
		require.ErrorIs(t, err, context.Canceled)
		require.Equal(t, 1, runner.Calls())
	})

	t.Run("overlapping tick is skipped", func(t *testing.T) {
		runner := &fakeRunner{started: make(chan struct{}, 1), block: make(chan struct{})}
		s := newTestScheduler(runner, 0)

		done := make(chan struct{})
		var firstRan bool
		var firstErr error
		go func() {
			defer close(done)
			_, firstRan, firstErr = s.Tick(ctx)
		}()
		<-runner.started

		_, ran, err := s.Tick(ctx)
		require.NoError(t, err)
		require.False(t, ran)

		close(runner.block)
		<-done
		require.NoError(t, firstErr)
		require.True(t, firstRan)
		require.Equal(t, 1, runner.Calls())
		require.Equal(t, int64(1), s.Stats().Overlaps)
	})
}

func TestScheduler_Start(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{}, 10)}
	s := newTestScheduler(runner, 0)
	s.RunOnStart = true
	s.Interval = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() {
		stopped <- s.Start(ctx)
	}()

	// first run happens immediately, the second comes from the ticker
	<-runner.started
	<-runner.started
	cancel()

	select {
	case err := <-stopped:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	require.GreaterOrEqual(t, runner.Calls(), 2)
}

func TestScheduler_StartDropsOverlappingTicks(t *testing.T) {
	runner := &fakeRunner{started: make(chan struct{}, 100), block: make(chan struct{})}
	s := newTestScheduler(runner, 0)
	s.RunOnStart = true
	s.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error)
	go func() {
		stopped <- s.Start(ctx)
	}()

	<-runner.started
	require.Eventually(t, func() bool {
		return s.Stats().Overlaps >= 2
	}, 5*time.Second, time.Millisecond)
	require.Equal(t, 1, runner.Calls())

	cancel()
	close(runner.block)

	select {
	case err := <-stopped:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
