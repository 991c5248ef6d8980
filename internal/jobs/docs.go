// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes order events that command handlers wrote to the
// outbox table. It runs on OUTBOX_RELAY_SCHEDULE (a cron spec with a seconds
// field, every five seconds by default) and publishes at most
// commands.DefaultRelayBatchSize events per run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxRelaySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay failures are logged and retried on the next run; unpublished events
// stay in the outbox until a run succeeds.
package jobs
