// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for reliable notification delivery.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every ten seconds to republish notification jobs
// whose post-commit enqueue did not reach the broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, queue, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A relay tick that cannot reach the broker stops early; the remaining
//     rows stay pending and the next tick retries them.
//   - A row that was enqueued but not marked sent may be republished. The
//     queue is at-least-once end to end, so consumers tolerate duplicates.
package jobs
