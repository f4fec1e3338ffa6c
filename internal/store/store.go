// Package store provides the in-memory data layer for user records.
// It plays the role a database repository would in a persistent service:
// the single owner of all records, injected into the service layer.
package store

import (
	"sync"

	"github.com/roster/roster/internal/model"
)

// Store holds all user records in process memory together with the ID
// counter. The zero value is not usable; construct with New.
//
// Requests are served on parallel goroutines, so every operation runs
// under one mutex. Create allocates the next ID and inserts the record
// in a single critical section, which keeps IDs unique and inserts
// atomic without any further coordination from callers.
type Store struct {
	mu     sync.Mutex
	users  map[int64]*model.User
	order  []int64
	nextID int64
}

// New creates an empty Store. The ID counter starts at 1.
func New() *Store {
	return &Store{
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

// Create assigns the next ID to the user, inserts it, and returns the
// stored record. IDs are strictly increasing and never reused, even
// after deletion.
func (s *Store) Create(u *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := u.Clone()
	stored.ID = s.nextID
	s.nextID++

	s.users[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored
}

// Get returns the record for id, or false if absent.
func (s *Store) Get(id int64) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// Put replaces the record at id wholesale. The record's ID field must
// equal id; insertion order is unaffected for existing keys.
func (s *Store) Put(id int64, u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		s.order = append(s.order, id)
	}
	s.users[id] = u.Clone()
}

// Remove deletes the record at id and reports whether it existed.
// The ID is not returned to the counter.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all records in insertion order. The returned slice is
// owned by the caller.
func (s *Store) List() []*model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.users[id])
	}
	return out
}

// Len returns the number of records currently held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
