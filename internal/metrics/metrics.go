// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	IncUserCreated()
	IncUserUpdated()
	IncUserDeleted()
	IncValidationRejected()

	// SetUserCount records the current number of users held in memory.
	SetUserCount(count int64)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
