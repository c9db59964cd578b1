package handler

import (
	"context"
	"net/http"

	"github.com/roomstack/api/internal/model"
)

// RoommateServiceInterface defines the service interface for the handler
type RoommateServiceInterface interface {
	CreateRoommate(ctx context.Context, req *model.CreateRoommateRequest) (*model.Roommate, error)
	GetRoommate(ctx context.Context, id int) (*model.Roommate, error)
	ListRoomRoommates(ctx context.Context, roomID int) ([]*model.Roommate, error)
	DeleteRoommate(ctx context.Context, id int) error
}

// RoommateHandler handles roommate HTTP requests
type RoommateHandler struct {
	roommateService RoommateServiceInterface
}

// NewRoommateHandler creates a new roommate handler
func NewRoommateHandler(roommateService RoommateServiceInterface) *RoommateHandler {
	return &RoommateHandler{roommateService: roommateService}
}

// ListByRoom handles GET /v1/rooms/{roomId}/roommates - list a room's roommates
func (h *RoommateHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(w, r, "roomId")
	if !ok {
		return
	}

	roommates, err := h.roommateService.ListRoomRoommates(r.Context(), roomID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, roommates)
}

// Get handles GET /v1/roommates/{roommateId} - get a roommate by id
func (h *RoommateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roommateId")
	if !ok {
		return
	}

	roommate, err := h.roommateService.GetRoommate(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, roommate)
}

// Create handles POST /v1/roommates - assign a roommate to a room
func (h *RoommateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoommateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	roommate, err := h.roommateService.CreateRoommate(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, roommate)
}

// Delete handles DELETE /v1/roommates/{roommateId} - remove a roommate
func (h *RoommateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roommateId")
	if !ok {
		return
	}

	if err := h.roommateService.DeleteRoommate(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}
