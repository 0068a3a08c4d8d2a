// Package jobs provides scheduled background tasks for the purchasing service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OutboxRelayJob publishes pending order events from the outbox table to Kafka.
// It runs on OUTBOX_RELAY_SCHEDULE (default every five seconds) and is only
// registered when a Kafka host is configured. Overlapping runs are skipped.
//
// # Usage
//
//	relayJob, err := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxRelaySchedule, cfg.OutboxRelayBatchSize, logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(relayJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Relay errors are logged and the batch stays in the outbox for the next run.
package jobs
