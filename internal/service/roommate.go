package service

import (
	"context"

	"github.com/roomstack/api/internal/model"
)

// RoommateRepositoryInterface defines the repository interface
type RoommateRepositoryInterface interface {
	Insert(ctx context.Context, roommate *model.Roommate) error
	GetByID(ctx context.Context, id int) (*model.Roommate, error)
	GetByRoom(ctx context.Context, roomID int) ([]*model.Roommate, error)
	Delete(ctx context.Context, id int) error
}

// RoommateService handles roommate business logic
type RoommateService struct {
	repo     RoommateRepositoryInterface
	roomRepo RoomRepositoryInterface
}

// NewRoommateService creates a new roommate service
func NewRoommateService(repo RoommateRepositoryInterface, roomRepo RoomRepositoryInterface) *RoommateService {
	return &RoommateService{repo: repo, roomRepo: roomRepo}
}

// CreateRoommate persists a new roommate assigned to a room. A RoomID that
// references no room surfaces the store's foreign key error unchanged.
func (s *RoommateService) CreateRoommate(ctx context.Context, req *model.CreateRoommateRequest) (*model.Roommate, error) {
	roommate := &model.Roommate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoomID:    req.RoomID,
	}
	if err := s.repo.Insert(ctx, roommate); err != nil {
		return nil, err
	}
	return roommate, nil
}

// GetRoommate retrieves a roommate by id. Repository absence becomes
// ErrRoommateNotFound.
func (s *RoommateService) GetRoommate(ctx context.Context, id int) (*model.Roommate, error) {
	roommate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roommate == nil {
		return nil, ErrRoommateNotFound
	}
	return roommate, nil
}

// ListRoomRoommates returns all roommates assigned to one room. The room must
// exist; a room with no roommates yields an empty slice.
func (s *RoommateService) ListRoomRoommates(ctx context.Context, roomID int) ([]*model.Roommate, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return s.repo.GetByRoom(ctx, roomID)
}

// DeleteRoommate removes a roommate by id; a missing id is a silent success.
func (s *RoommateService) DeleteRoommate(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
