package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	etl_errors "cryptoetl/internal"
	"cryptoetl/internal/config"
	"cryptoetl/internal/logger"
	"cryptoetl/internal/service"
)

// Runner is satisfied by service.PipelineService
type Runner interface {
	Run(ctx context.Context) (*service.RunResult, error)
}

type Stats struct {
	Runs        int64
	Failures    int64
	Overlaps    int64
	LastRunAt   time.Time
	LastRunID   string
	LastError   string
	LastSuccess time.Time
}

// Scheduler triggers the pipeline on a fixed interval. A tick that fires
// while a run is still in flight is dropped.
type Scheduler struct {
	Runner     Runner
	Interval   time.Duration
	Retries    int
	RetryDelay time.Duration
	RunOnStart bool
	Log        *logger.Log

	running sync.Mutex
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stats   Stats
}

func New(cfg config.SchedulerConfig, runner Runner, log *logger.Log) *Scheduler {
	return &Scheduler{
		Runner:     runner,
		Interval:   cfg.Interval,
		Retries:    cfg.Retries,
		RetryDelay: cfg.RetryDelay,
		RunOnStart: cfg.RunOnStart,
		Log:        log,
	}
}

// Start blocks until ctx is cancelled and the in-flight run, if any, has
// returned
func (s *Scheduler) Start(ctx context.Context) error {
	log := s.Log.WithComponent("scheduler")
	log.WithFields(logger.Fields{
		"interval":    s.Interval.String(),
		"retries":     s.Retries,
		"retry_delay": s.RetryDelay.String(),
	}).Info("scheduler started")

	if s.RunOnStart {
		s.trigger(ctx)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.trigger(ctx)
		case <-ctx.Done():
			log.Info("scheduler stopping")
			s.wg.Wait()
			return nil
		}
	}
}

func (s *Scheduler) trigger(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		_, _, _ = s.Tick(ctx)
	}()
}

// Tick runs the pipeline once in the calling goroutine. It returns false
// without running when another run is in flight.
func (s *Scheduler) Tick(ctx context.Context) (*service.RunResult, bool, error) {
	if !s.running.TryLock() {
		s.recordOverlap()
		return nil, false, nil
	}
	defer s.running.Unlock()

	result, err := s.runWithRetries(ctx)
	return result, true, err
}

func (s *Scheduler) runWithRetries(ctx context.Context) (*service.RunResult, error) {
	log := s.Log.WithComponent("scheduler")

	var err error
	for attempt := 0; attempt <= s.Retries; attempt++ {
		if attempt > 0 {
			log.WithFields(logger.Fields{
				"attempt": attempt + 1,
				"delay":   s.RetryDelay.String(),
			}).Warn("retrying pipeline run")
			select {
			case <-time.After(s.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var result *service.RunResult
		result, err = s.Runner.Run(ctx)
		s.record(result, err)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, etl_errors.ErrRunInProgress) || ctx.Err() != nil {
			return nil, err
		}
	}

	log.WithError(err).WithFields(logger.Fields{"attempts": s.Retries + 1}).Error("pipeline run failed after retries")
	return nil, err
}

func (s *Scheduler) record(result *service.RunResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Runs++
	s.stats.LastRunAt = time.Now().UTC()
	if err != nil {
		s.stats.LastError = err.Error()
		if !errors.Is(err, etl_errors.ErrRunInProgress) {
			s.stats.Failures++
		}
		return
	}
	s.stats.LastError = ""
	s.stats.LastSuccess = s.stats.LastRunAt
	if result != nil {
		s.stats.LastRunID = result.RunID.String()
	}
}

func (s *Scheduler) recordOverlap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Overlaps++
	s.Log.WithComponent("scheduler").Warn("previous run still in flight, skipping tick")
}

func (s *Scheduler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
