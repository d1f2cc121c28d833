package queries

import (
	"errors"
	"time"

	"ustabar/internal/core/domain/model/kernel"
	"ustabar/internal/pkg/errs"
	"ustabar/internal/pkg/guard"
)

const (
	minFeedBatchSize = 1
	maxFeedBatchSize = 100
)

var (
	ErrGetWorkerFeedQueryIsNotConstructed = errors.New(
		"GetWorkerFeedQuery must be created via NewGetWorkerFeedQuery constructor",
	)
)

// GetWorkerFeedQuery retrieves orders a worker can still decide on:
// orders searching for a worker, in the worker's service category, that
// the worker has neither applied to nor skipped.
type GetWorkerFeedQuery struct {
	workerID  kernel.UUID
	batchSize int

	guard guard.ConstructorGuard
}

// NewGetWorkerFeedQuery creates a feed query for the given worker.
// batchSize limits how many orders a single call returns.
func NewGetWorkerFeedQuery(workerID kernel.UUID, batchSize int) (GetWorkerFeedQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerFeedQuery{}, errs.NewValueIsRequiredErrorWithCause("workerID", err)
	}
	if batchSize < minFeedBatchSize || batchSize > maxFeedBatchSize {
		return GetWorkerFeedQuery{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, minFeedBatchSize, maxFeedBatchSize)
	}

	return GetWorkerFeedQuery{
		workerID:  workerID,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetWorkerFeedQuery) WorkerID() kernel.UUID {
	return q.workerID
}

func (q GetWorkerFeedQuery) BatchSize() int {
	return q.batchSize
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerFeedQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerFeedQueryIsNotConstructed)
}

// GetWorkerFeedQueryResponse is a single order in the worker's feed.
type GetWorkerFeedQueryResponse struct {
	ID              kernel.UUID
	ServiceCategory string
	Price           int
	Duration        string
	Comment         string
	Address         string
	Photos          []string
	Location        kernel.GeoPoint
	CreatedAt       time.Time
}
