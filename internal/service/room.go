package service

import (
	"context"

	"github.com/roomstack/api/internal/model"
)

// RoomRepositoryInterface defines the repository interface
type RoomRepositoryInterface interface {
	Insert(ctx context.Context, room *model.Room) error
	GetByID(ctx context.Context, id int) (*model.Room, error)
	GetAll(ctx context.Context) ([]*model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id int) error
}

// RoomService handles room business logic
type RoomService struct {
	repo RoomRepositoryInterface
}

// NewRoomService creates a new room service
func NewRoomService(repo RoomRepositoryInterface) *RoomService {
	return &RoomService{repo: repo}
}

// CreateRoom persists a new room and returns it with its database-assigned ID.
func (s *RoomService) CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	room := &model.Room{
		Name:         req.Name,
		MaxOccupancy: req.MaxOccupancy,
	}
	if err := s.repo.Insert(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom retrieves a room by id. Repository absence becomes ErrRoomNotFound.
func (s *RoomService) GetRoom(ctx context.Context, id int) (*model.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// ListRooms returns all rooms.
func (s *RoomService) ListRooms(ctx context.Context) ([]*model.Room, error) {
	return s.repo.GetAll(ctx)
}

// UpdateRoom replaces both mutable fields of the room with the given id.
// The store treats an id that matches no row as a silent no-op, so the
// service checks existence first to give the HTTP layer a 404 to map.
func (s *RoomService) UpdateRoom(ctx context.Context, id int, req *model.UpdateRoomRequest) (*model.Room, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrRoomNotFound
	}

	room := &model.Room{
		ID:           id,
		Name:         req.Name,
		MaxOccupancy: req.MaxOccupancy,
	}
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room by id. A missing id is a silent success, matching
// the store; a room that roommates still reference propagates the store's
// foreign key error.
func (s *RoomService) DeleteRoom(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
