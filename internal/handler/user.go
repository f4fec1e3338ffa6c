package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/roster/roster/internal/handler/dto"
	"github.com/roster/roster/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.svc.ListUsers(r.Context())
	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	user, err := h.svc.CreateUser(r.Context(), payload)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created",
		"user_id", user.ID,
		"email", user.Email,
	)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), id, payload)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_updated", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_deleted", "user_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// parseID extracts the {id} path segment as a base-10 integer. The
// whole segment must be numeric; trailing garbage is rejected. On
// failure it writes the 400 response and returns ok=false.
func (h *UserHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	segment := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}

// decodeBody decodes the request body into an untyped JSON object so
// the service can report wrong field types as validation errors. On
// failure it writes the 400 response and returns ok=false.
func (h *UserHandler) decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	return payload, true
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrUserNotFound):
		h.writeError(w, http.StatusNotFound, "User not found")
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			Error:   "Validation failed",
			Details: validationErr.Details,
		})
	default:
		h.logger.Error("internal_error", "error", err)
		h.writeError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}

// writeError writes a single-message error response.
func (h *UserHandler) writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}
