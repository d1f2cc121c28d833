package http

import (
	"time"

	"ustabar/internal/core/application/usecases/queries"
)

// LocationDTO carries a geographic point over the wire, latitude first.
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ServiceCategory string      `json:"service_category"`
	Price           int         `json:"price"`
	Duration        string      `json:"duration"`
	Comment         string      `json:"comment"`
	Address         string      `json:"address"`
	Photos          []string    `json:"photos"`
	Location        LocationDTO `json:"location"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AcceptApplicationRequest is the body of POST /api/v1/orders/:orderID/accept.
type AcceptApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// ApplyToOrderRequest is the body of POST /api/v1/orders/:orderID/apply.
// ProposedPrice is omitted when the worker takes the listed price.
type ApplyToOrderRequest struct {
	ProposedPrice *int   `json:"proposed_price,omitempty"`
	Message       string `json:"message,omitempty"`
}

// DecisionResponse reports whether a worker's apply/skip was recorded now or
// had already been made earlier. Both cases are successes.
type DecisionResponse struct {
	Result string `json:"result"`
}

const (
	decisionRecorded       = "recorded"
	decisionAlreadyDecided = "already_decided"
)

// RegisterAccountRequest is the body of POST /internal/v1/accounts, used by
// the bot onboarding flow. ServiceCategory is required for workers.
type RegisterAccountRequest struct {
	TgID            int64  `json:"tg_id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	ServiceCategory string `json:"service_category,omitempty"`
}

// OrderResponse is one order as seen by its customer.
type OrderResponse struct {
	ID              string      `json:"id"`
	WorkerID        *string     `json:"worker_id,omitempty"`
	ServiceCategory string      `json:"service_category"`
	Price           int         `json:"price"`
	Duration        string      `json:"duration"`
	Comment         string      `json:"comment,omitempty"`
	Address         string      `json:"address"`
	Photos          []string    `json:"photos,omitempty"`
	Location        LocationDTO `json:"location"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// FeedItemResponse is one order in a worker's feed. Customer identity is
// deliberately absent until an application is accepted.
type FeedItemResponse struct {
	ID              string      `json:"id"`
	ServiceCategory string      `json:"service_category"`
	Price           int         `json:"price"`
	Duration        string      `json:"duration"`
	Comment         string      `json:"comment,omitempty"`
	Address         string      `json:"address"`
	Photos          []string    `json:"photos,omitempty"`
	Location        LocationDTO `json:"location"`
	CreatedAt       time.Time   `json:"created_at"`
}

// WorkerShortInfo is the worker profile attached to an application.
type WorkerShortInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// ApplicationResponse is one application shown to the order's owner.
type ApplicationResponse struct {
	ID            string          `json:"id"`
	Worker        WorkerShortInfo `json:"worker"`
	ProposedPrice *int            `json:"proposed_price,omitempty"`
	Message       string          `json:"message,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AccountResponse is the authenticated account's own profile.
type AccountResponse struct {
	ID              string `json:"id"`
	TgID            int64  `json:"tg_id"`
	Username        string `json:"username,omitempty"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	ServiceCategory string `json:"service_category,omitempty"`
}

func orderResponseFrom(item queries.GetCustomerOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:              item.ID.String(),
		ServiceCategory: item.ServiceCategory,
		Price:           item.Price,
		Duration:        item.Duration,
		Comment:         item.Comment,
		Address:         item.Address,
		Photos:          item.Photos,
		Location: LocationDTO{
			Latitude:  item.Location.Latitude(),
			Longitude: item.Location.Longitude(),
		},
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
	}
	if item.WorkerID != nil {
		workerID := item.WorkerID.String()
		resp.WorkerID = &workerID
	}
	return resp
}

func feedItemResponseFrom(item queries.GetWorkerFeedQueryResponse) FeedItemResponse {
	return FeedItemResponse{
		ID:              item.ID.String(),
		ServiceCategory: item.ServiceCategory,
		Price:           item.Price,
		Duration:        item.Duration,
		Comment:         item.Comment,
		Address:         item.Address,
		Photos:          item.Photos,
		Location: LocationDTO{
			Latitude:  item.Location.Latitude(),
			Longitude: item.Location.Longitude(),
		},
		CreatedAt: item.CreatedAt,
	}
}

func applicationResponseFrom(item queries.GetOrderApplicationsQueryResponse) ApplicationResponse {
	return ApplicationResponse{
		ID: item.ID.String(),
		Worker: WorkerShortInfo{
			ID:       item.WorkerID.String(),
			Name:     item.WorkerName,
			Username: item.WorkerUsername,
		},
		ProposedPrice: item.ProposedPrice,
		Message:       item.Message,
		CreatedAt:     item.CreatedAt,
	}
}
