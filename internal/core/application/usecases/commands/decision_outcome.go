package commands

// DecisionOutcome reports what happened to a worker's apply/skip request.
// A repeated decision for the same order is not an error: the first
// decision stands and the request is acknowledged as already made.
type DecisionOutcome int

const (
	// DecisionRecorded means a new decision row was written.
	DecisionRecorded DecisionOutcome = iota

	// DecisionAlreadyMade means the worker had already decided on this
	// order; nothing was written.
	DecisionAlreadyMade
)
