// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/roster/roster/internal/metrics"
	"github.com/roster/roster/internal/model"
	"github.com/roster/roster/internal/store"
)

// Service errors.
var (
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError reports an invalid create/update payload. Details
// holds the human-readable reasons in field order.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// UserService handles user business logic on top of the store.
type UserService struct {
	store   *store.Store
	metrics metrics.Recorder
	now     func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(st *store.Store, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   st,
		metrics: recorder,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser validates the payload and inserts a new user. The ID and
// CreatedAt are assigned here; name and email are stored trimmed.
func (s *UserService) CreateUser(ctx context.Context, payload map[string]any) (*model.User, error) {
	if errs := ValidateUserPayload(payload); len(errs) > 0 {
		s.metrics.IncValidationRejected()
		return nil, &ValidationError{Details: errs}
	}

	name, _ := payload["name"].(string)
	email, _ := payload["email"].(string)

	user := s.store.Create(&model.User{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		CreatedAt: s.now(),
	})

	s.metrics.IncUserCreated()
	s.metrics.SetUserCount(int64(s.store.Len()))
	return user, nil
}

// GetUser returns the user with the given ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, ok := s.store.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers(ctx context.Context) []*model.User {
	return s.store.List()
}

// UpdateUser replaces name and email of an existing user. ID and
// CreatedAt are preserved verbatim. Existence is checked before the
// payload, so a missing user is reported even when the body is also
// invalid.
func (s *UserService) UpdateUser(ctx context.Context, id int64, payload map[string]any) (*model.User, error) {
	existing, ok := s.store.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	if errs := ValidateUserPayload(payload); len(errs) > 0 {
		s.metrics.IncValidationRejected()
		return nil, &ValidationError{Details: errs}
	}

	name, _ := payload["name"].(string)
	email, _ := payload["email"].(string)

	updated := existing.Clone()
	updated.Name = strings.TrimSpace(name)
	updated.Email = strings.TrimSpace(email)
	s.store.Put(id, updated)

	s.metrics.IncUserUpdated()
	return updated, nil
}

// DeleteUser removes the user with the given ID. The ID is never
// reused afterwards.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if !s.store.Remove(id) {
		return ErrUserNotFound
	}
	s.metrics.IncUserDeleted()
	s.metrics.SetUserCount(int64(s.store.Len()))
	return nil
}
