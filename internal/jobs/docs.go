// Package jobs provides scheduled background tasks for the restaurant backend.
//
// Jobs are built on github.com/robfig/cron/v3 with second-precision schedules,
// so both six-field expressions ("0 */5 * * * *") and descriptors ("@every 5m")
// are accepted.
//
// # Available Jobs
//
// 1. UnassignedOrdersReportJob - counts placed orders nobody has been assigned
// to deliver and logs a warning while the count is non-zero. It only reads.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countUnassignedHandler, "@every 5m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the report job; StartAll then starts nothing.
package jobs
