// Package services contains domain services - business operations that span
// multiple aggregates and therefore do not belong to any single one.
package services
