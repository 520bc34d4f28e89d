// Package jobs runs the scheduled back-office tasks with
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. LateDeliveryJob - every hour, notifies clients of deliveries past their
//     scheduled time (at most once per delivery and day)
//  2. MembershipExpiryJob - every day at 00:05 UTC, expires contracts and
//     subscriptions whose end date has passed
//
// # Usage
//
//	jobManager := jobs.NewJobManager(flagLateHandler, expireHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried at the next tick. Failed job starts
// stop the jobs already running.
package jobs
