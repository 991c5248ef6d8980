package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

// OrderEventRelayer is the command handler the relay job drives.
type OrderEventRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOrderEventsCommand) (int, error)
}

// OutboxRelayJob periodically publishes order events from the outbox.
// Runs never overlap: a slow broker delays the next run instead of starting
// a second relay over the same rows.
type OutboxRelayJob struct {
	relayer   OrderEventRelayer
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the relay job. schedule is a cron spec with a
// seconds field; an empty schedule means DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(relayer OrderEventRelayer, schedule string, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	logger = logger.With("component", "outbox_relay_job")

	return &OutboxRelayJob{
		relayer:   relayer,
		schedule:  schedule,
		batchSize: commands.DefaultRelayBatchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start registers the relay on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Run performs one relay pass.
func (j *OutboxRelayJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewRelayOrderEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.relayer.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Order events published", "count", published)
	}
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
