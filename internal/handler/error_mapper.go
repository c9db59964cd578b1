package handler

import (
	"errors"

	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/model"
	"github.com/roomstack/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrRoomNotFound):
		return model.NewNotFoundError("room")
	case errors.Is(err, service.ErrRoommateNotFound):
		return model.NewNotFoundError("roommate")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError("resource already exists")
	case errors.Is(err, database.ErrForeignKey):
		return model.NewConflictError("operation conflicts with a related resource")

	// ===== Everything else → 500 =====
	// Connectivity and query failures carry driver detail that does not
	// belong in a response body.
	default:
		return model.NewInternalError("")
	}
}
