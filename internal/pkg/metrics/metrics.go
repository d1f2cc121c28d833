// Package metrics defines the service's Prometheus metrics. Register must
// be called once at startup before the /metrics endpoint is exposed.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and performance
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ustabar_orders_created_total",
			Help: "Total number of orders created",
		},
	)

	ApplicationsAcceptedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ustabar_applications_accepted_total",
			Help: "Total number of applications accepted by customers",
		},
	)

	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ustabar_worker_decisions_total",
			Help: "Total number of worker decisions recorded, by kind",
		},
		[]string{"kind"},
	)

	NotificationsPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ustabar_notifications_published_total",
			Help: "Total number of worker notifications published to NATS",
		},
	)

	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ustabar_notifications_failed_total",
			Help: "Total number of worker notifications that failed to publish",
		},
	)

	OrdersByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ustabar_orders_by_status",
			Help: "Current number of orders in each lifecycle status",
		},
		[]string{"status"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(ApplicationsAcceptedTotal)
	prometheus.MustRegister(DecisionsTotal)
	prometheus.MustRegister(NotificationsPublished)
	prometheus.MustRegister(NotificationsFailed)
	prometheus.MustRegister(OrdersByStatus)
}
