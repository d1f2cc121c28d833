// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is OrderStatsJob, which periodically counts orders per
// lifecycle status and publishes the counts as Prometheus gauges. Jobs are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(db, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
