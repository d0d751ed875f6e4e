// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field in the
// schedule.
//
// # Available Jobs
//
// OutboxRelayJob publishes pending outbox messages through the event
// publisher. It runs every five seconds unless OUTBOX_RELAY_SCHEDULE says
// otherwise and handles OUTBOX_BATCH_SIZE messages per run.
//
// # Usage
//
//	relayJob, err := jobs.NewOutboxRelayJob(relayHandler, schedule, batchSize, log)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relayJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Storage failures of a run are logged and retried on the next tick.
// Messages that fail to publish stay pending and are logged as a warning.
package jobs
