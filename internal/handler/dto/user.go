// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/roster/roster/internal/model"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse represents a single-message API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse represents a rejected payload with the full
// list of reasons.
type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

// ToUserResponse converts a User model to a UserResponse DTO.
func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserListResponse converts a slice of User models to response DTOs.
// The result is never nil so an empty store serializes as [].
func ToUserListResponse(users []*model.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *ToUserResponse(u)
	}
	return responses
}
