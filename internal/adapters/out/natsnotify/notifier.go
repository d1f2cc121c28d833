// Package natsnotify publishes side-channel events to NATS for the bot
// process, which turns them into Telegram messages to workers. Publishing
// happens after the business transaction has committed and is best effort:
// a lost notification is recoverable through the UI, a rolled-back order is
// not.
package natsnotify

import (
	"context"
	"encoding/json"
	"log/slog"

	"ustabar/internal/core/ports"
	"ustabar/internal/pkg/metrics"

	"github.com/nats-io/nats.go"
)

// SubjectApplicationAccepted is the subject accepted-application events are
// published on.
const SubjectApplicationAccepted = "ustabar.orders.accepted"

// Notifier implements ports.WorkerNotifier on top of a NATS connection.
type Notifier struct {
	conn   *nats.Conn
	logger *slog.Logger
}

// NewNotifier creates a Notifier publishing on the given connection.
func NewNotifier(conn *nats.Conn, logger *slog.Logger) *Notifier {
	return &Notifier{
		conn:   conn,
		logger: logger.With("component", "natsnotify"),
	}
}

// NotifyApplicationAccepted publishes the accepted event. Failures are
// logged and counted, never returned: the caller's transaction has already
// committed.
func (n *Notifier) NotifyApplicationAccepted(_ context.Context, event ports.AcceptedApplicationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("marshal accepted event failed",
			"order_id", event.OrderID, "error", err)
		metrics.NotificationsFailed.Inc()
		return
	}

	if err := n.conn.Publish(SubjectApplicationAccepted, data); err != nil {
		n.logger.Warn("publish accepted event failed",
			"order_id", event.OrderID, "worker_id", event.WorkerID, "error", err)
		metrics.NotificationsFailed.Inc()
		return
	}

	metrics.NotificationsPublished.Inc()
	n.logger.Info("accepted event published",
		"order_id", event.OrderID, "worker_id", event.WorkerID)
}
