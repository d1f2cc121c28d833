// Package kernel provides shared value objects used across the domain
// model: UUID identifiers and validated geographic points. Both follow the
// constructor-guard discipline - the zero value is invalid and every
// instance is created through a validating constructor.
package kernel
