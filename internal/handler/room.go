package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/roomstack/api/internal/model"
)

// RoomServiceInterface defines the service interface for the handler
type RoomServiceInterface interface {
	CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error)
	GetRoom(ctx context.Context, id int) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	UpdateRoom(ctx context.Context, id int, req *model.UpdateRoomRequest) (*model.Room, error)
	DeleteRoom(ctx context.Context, id int) error
}

// RoomHandler handles room HTTP requests
type RoomHandler struct {
	roomService RoomServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService RoomServiceInterface) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List handles GET /v1/rooms - list all rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomService.ListRooms(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, rooms)
}

// Get handles GET /v1/rooms/{roomId} - get a room by id
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomId")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(r.Context(), id)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, room)
}

// Create handles POST /v1/rooms - create a room
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoomRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	room, err := h.roomService.CreateRoom(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, room)
}

// Update handles PUT /v1/rooms/{roomId} - replace a room's fields
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomId")
	if !ok {
		return
	}

	var req model.UpdateRoomRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	room, err := h.roomService.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/{roomId} - delete a room
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "roomId")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}

// pathID parses an integer path parameter, writing a 400 response when the
// segment is missing or not a number.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		WriteError(w, model.NewBadRequestError(name+" must be an integer"))
		return 0, false
	}
	return id, true
}
