package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/service"
)

func TestMapServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         error
		wantStatus int
	}{
		{"room not found", service.ErrRoomNotFound, http.StatusNotFound},
		{"roommate not found", service.ErrRoommateNotFound, http.StatusNotFound},
		{"duplicate", database.ErrDuplicate, http.StatusConflict},
		{"foreign key", database.ErrForeignKey, http.StatusConflict},
		{"query failure", database.ErrQuery, http.StatusInternalServerError},
		{"connection failure", database.ErrConnection, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problem := MapServiceError(tt.in)
			if problem == nil {
				t.Fatal("expected a ProblemDetails, got nil")
			}
			if problem.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", problem.Status, tt.wantStatus)
			}
		})
	}
}

func TestMapServiceError_Nil(t *testing.T) {
	t.Parallel()

	if problem := MapServiceError(nil); problem != nil {
		t.Errorf("expected nil for nil error, got %+v", problem)
	}
}

func TestMapServiceError_WrappedSentinel(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("delete room"), database.ErrForeignKey)
	if problem := MapServiceError(wrapped); problem.Status != http.StatusConflict {
		t.Errorf("status = %d, want %d", problem.Status, http.StatusConflict)
	}
}
