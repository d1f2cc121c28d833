// Package queries contains read-side use cases that bypass the aggregate
// repositories and run SQL directly against the database. Query handlers
// return flat response structs shaped for the HTTP layer and never modify
// state.
package queries
