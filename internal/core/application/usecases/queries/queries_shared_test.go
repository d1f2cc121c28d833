package queries_test

import (
	"ustabar/internal/core/domain/model/kernel"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {}
