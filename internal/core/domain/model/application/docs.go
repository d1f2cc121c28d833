// Package application contains the Application aggregate: a worker's
// write-once decision about an order, either a genuine application or a
// skip. One decision per (order, worker) pair.
package application
