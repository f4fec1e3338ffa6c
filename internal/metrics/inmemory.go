package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated       uint64
	UsersUpdated       uint64
	UsersDeleted       uint64
	ValidationRejected uint64
	UserCount          int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersCreated       uint64
	usersUpdated       uint64
	usersDeleted       uint64
	validationRejected uint64
	userCount          int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:       atomic.LoadUint64(&m.usersCreated),
		UsersUpdated:       atomic.LoadUint64(&m.usersUpdated),
		UsersDeleted:       atomic.LoadUint64(&m.usersDeleted),
		ValidationRejected: atomic.LoadUint64(&m.validationRejected),
		UserCount:          atomic.LoadInt64(&m.userCount),
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserUpdated increments the user updated counter.
func (m *InMemoryRecorder) IncUserUpdated() {
	atomic.AddUint64(&m.usersUpdated, 1)
}

// IncUserDeleted increments the user deleted counter.
func (m *InMemoryRecorder) IncUserDeleted() {
	atomic.AddUint64(&m.usersDeleted, 1)
}

// IncValidationRejected increments the rejected payload counter.
func (m *InMemoryRecorder) IncValidationRejected() {
	atomic.AddUint64(&m.validationRejected, 1)
}

// SetUserCount records the current user count gauge.
func (m *InMemoryRecorder) SetUserCount(count int64) {
	atomic.StoreInt64(&m.userCount, count)
}
