package ports

import "context"

// AcceptedApplicationEvent carries the facts a worker needs to hear about
// after the customer accepted their application.
type AcceptedApplicationEvent struct {
	OrderID         string `json:"order_id"`
	WorkerID        string `json:"worker_id"`
	WorkerTgID      int64  `json:"worker_tg_id"`
	ServiceCategory string `json:"service_category"`
	Price           int    `json:"price"`
}

// WorkerNotifier publishes side-channel notifications to workers. Delivery
// is best effort: the business transaction has already committed when the
// notifier runs, and publish failures must not surface to the caller.
type WorkerNotifier interface {
	NotifyApplicationAccepted(ctx context.Context, event AcceptedApplicationEvent)
}
