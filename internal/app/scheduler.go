package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// DefaultSchedule runs the recurring job once a day at midnight UTC.
const DefaultSchedule = "@daily"

// Scheduler runs RecurringService.ProcessDue on a cron schedule.
type Scheduler struct {
	svc        ports.RecurringService
	cron       *cron.Cron
	spec       string
	runOnStart bool
	logger     *slog.Logger
	now        func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewScheduler creates a Scheduler. The spec is validated here so a bad
// configuration fails at startup.
func NewScheduler(svc ports.RecurringService, cfg config.SchedulerConfig, logger *slog.Logger) (*Scheduler, error) {
	logger = orDiscard(logger)
	spec := cfg.Spec
	if spec == "" {
		spec = DefaultSchedule
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("parsing scheduler spec %q: %w", spec, err)
	}

	cl := cronLogger{logger: logger}
	return &Scheduler{
		svc: svc,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		spec:       spec,
		runOnStart: cfg.RunOnStart,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Start registers the job and starts the cron loop. Jobs run with a context
// derived from ctx that Stop cancels.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	if _, err := s.cron.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		cancel()
		return fmt.Errorf("scheduling recurring job: %w", err)
	}

	if s.runOnStart {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.run(ctx)
		}()
	}

	s.cron.Start()
	s.logger.InfoContext(ctx, "scheduler started",
		slog.String("spec", s.spec),
		slog.Bool("run_on_start", s.runOnStart),
	)
	return nil
}

// Stop halts the cron loop and waits for running jobs until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop().Done()
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		<-cronDone
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.InfoContext(ctx, "scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stopping scheduler: %w", ctx.Err())
	}
}

// RunOnce processes the expenses due on today outside the schedule.
func (s *Scheduler) RunOnce(ctx context.Context, today time.Time) (*ports.RecurringRunResult, error) {
	return s.svc.ProcessDue(ctx, today)
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.svc.ProcessDue(ctx, s.now().UTC()); err != nil {
		s.logger.ErrorContext(ctx, "recurring job failed",
			slog.String("operation", "Scheduler.run"),
			slog.Any("error", err),
		)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
