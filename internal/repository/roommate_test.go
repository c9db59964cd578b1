package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/model"
	"github.com/roomstack/api/internal/testing/testdb"
)

func TestRoommateRepository_InsertGetRoundTrip(t *testing.T) {
	db := testdb.New(t)
	rooms := NewRoomRepository(db)
	repo := NewRoommateRepository(db)
	ctx := context.Background()

	room := &model.Room{Name: "Lounge", MaxOccupancy: 4}
	require.NoError(t, rooms.Insert(ctx, room))

	roommate := &model.Roommate{FirstName: "Ada", LastName: "Lovelace", RoomID: room.ID}
	require.NoError(t, repo.Insert(ctx, roommate))
	require.NotZero(t, roommate.ID)

	got, err := repo.GetByID(ctx, roommate.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, roommate.ID, got.ID)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, room.ID, got.RoomID)
}

func TestRoommateRepository_Insert_UnknownRoomFails(t *testing.T) {
	db := testdb.New(t)
	repo := NewRoommateRepository(db)
	ctx := context.Background()

	err := repo.Insert(ctx, &model.Roommate{FirstName: "Ada", LastName: "Lovelace", RoomID: 999999})
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrForeignKey)
}

func TestRoommateRepository_GetByRoom(t *testing.T) {
	db := testdb.New(t)
	rooms := NewRoomRepository(db)
	repo := NewRoommateRepository(db)
	ctx := context.Background()

	lounge := &model.Room{Name: "Lounge", MaxOccupancy: 4}
	study := &model.Room{Name: "Study", MaxOccupancy: 2}
	require.NoError(t, rooms.Insert(ctx, lounge))
	require.NoError(t, rooms.Insert(ctx, study))

	for _, rm := range []*model.Roommate{
		{FirstName: "Ada", LastName: "Lovelace", RoomID: lounge.ID},
		{FirstName: "Alan", LastName: "Turing", RoomID: lounge.ID},
		{FirstName: "Grace", LastName: "Hopper", RoomID: study.ID},
	} {
		require.NoError(t, repo.Insert(ctx, rm))
	}

	got, err := repo.GetByRoom(ctx, lounge.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, rm := range got {
		assert.Equal(t, lounge.ID, rm.RoomID)
	}

	empty, err := repo.GetByRoom(ctx, 999999)
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRoommateRepository_DeleteUnblocksRoom(t *testing.T) {
	db := testdb.New(t)
	rooms := NewRoomRepository(db)
	repo := NewRoommateRepository(db)
	ctx := context.Background()

	room := &model.Room{Name: "Lounge", MaxOccupancy: 4}
	require.NoError(t, rooms.Insert(ctx, room))

	roommate := &model.Roommate{FirstName: "Ada", LastName: "Lovelace", RoomID: room.ID}
	require.NoError(t, repo.Insert(ctx, roommate))

	require.NoError(t, repo.Delete(ctx, roommate.ID))

	got, err := repo.GetByID(ctx, roommate.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// With the reference gone the room can be deleted.
	assert.NoError(t, rooms.Delete(ctx, room.ID))
}

func TestRoommateRepository_Delete_MissingIDIsSilent(t *testing.T) {
	db := testdb.New(t)
	repo := NewRoommateRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, 999999))
}
