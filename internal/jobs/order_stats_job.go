package jobs

import (
	"context"
	"log/slog"

	"ustabar/internal/core/domain/model/order"
	"ustabar/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// orderStatsSchedule runs the stats refresh every 15 seconds. The gauges are
// observability data, not business state, so a short lag is acceptable.
const orderStatsSchedule = "*/15 * * * * *"

// OrderStatsJob periodically counts orders per lifecycle status and exposes
// the counts through the orders-by-status gauge.
type OrderStatsJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderStatsJob creates the stats job on the shared database handle.
func NewOrderStatsJob(db *gorm.DB, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_stats_job"),
	}
}

// Start begins the periodic refresh.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(orderStatsSchedule, func() {
		ctx := context.Background()

		if err := j.refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

// refresh recounts orders grouped by status. Statuses with no orders are
// reset to zero so the gauge does not keep stale values after the last order
// in a status moves on.
func (j *OrderStatsJob) refresh(ctx context.Context) error {
	rows, err := j.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) FROM orders GROUP BY status
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	counts := map[order.Status]int64{
		order.Searching:  0,
		order.InProgress: 0,
		order.Completed:  0,
		order.Canceled:   0,
	}

	for rows.Next() {
		var (
			status int
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return err
		}
		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for status, count := range counts {
		metrics.OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	return nil
}
