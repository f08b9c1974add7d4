package resolver

import "cryptoetl/internal/scheduler"

// StatsProvider is implemented by the scheduler
type StatsProvider interface {
	Stats() scheduler.Stats
}
