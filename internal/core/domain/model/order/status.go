package order

import (
	"fmt"

	"ustabar/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the correct business
// workflow.
//
// State transitions:
//
//	Searching ──┬──> InProgress ──> Completed
//	            │
//	            └──> Canceled
//
// Completed and Canceled are terminal; no other transition is legal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Searching is the initial status: the order is visible in worker
	// feeds and collecting applications.
	Searching

	// InProgress indicates the customer accepted a worker's application.
	InProgress

	// Completed indicates the customer confirmed the work is done.
	// Terminal.
	Completed

	// Canceled indicates the customer withdrew the order before accepting
	// anyone. Terminal.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Searching:  "Searching",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Searching:  "Searching",
		InProgress: "InProgress",
		Completed:  "Completed",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle
// states. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// ValidateCanHaveWorker validates the consistency between order status and
// worker assignment: Searching and Canceled orders must not have a worker,
// InProgress and Completed orders must.
func (s Status) ValidateCanHaveWorker(worker bool) error {
	if worker && s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a worker", s.String()),
		)
	}

	if !worker && (s == InProgress || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no worker", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to InProgress.
//
// Valid transitions:
//   - Searching -> InProgress (an application was accepted)
//
// A second acceptance attempt fails here because the status is already
// InProgress, which is what guarantees at most one accepted application per
// order.
func (s Status) Accept() (Status, error) {
	if s != Searching {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept an application", s.String()),
		)
	}

	return InProgress, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Searching -> Canceled
//
// Orders already in progress cannot be canceled through this path.
func (s Status) Cancel() (Status, error) {
	if s != Searching {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
