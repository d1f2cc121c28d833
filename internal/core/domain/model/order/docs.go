// Package order contains the Order aggregate and its lifecycle state
// machine. Orders are placed by customers, collected applications from
// workers while Searching, and move to InProgress when the customer accepts
// exactly one application. Completed and Canceled are terminal states.
package order
