package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/model"
)

const (
	insertRoommateQuery     = `INSERT INTO Roommate (FirstName, LastName, RoomId) VALUES (@firstName, @lastName, @roomId) RETURNING Id`
	getRoommateQuery        = `SELECT FirstName, LastName, RoomId FROM Roommate WHERE Id = @idparam`
	getRoommatesByRoomQuery = `SELECT Id, FirstName, LastName FROM Roommate WHERE RoomId = @roomId`
	deleteRoommateQuery     = `DELETE FROM Roommate WHERE Id = @id`
)

// RoommateRepository handles roommate data access
type RoommateRepository struct {
	db *database.Postgres
}

// NewRoommateRepository creates a new roommate repository
func NewRoommateRepository(db *database.Postgres) *RoommateRepository {
	return &RoommateRepository{db: db}
}

// Insert persists a new roommate and populates roommate.ID from the same
// round trip. A RoomID that references no room surfaces the schema's
// foreign key violation as database.ErrForeignKey.
func (r *RoommateRepository) Insert(ctx context.Context, roommate *model.Roommate) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	args := pgx.NamedArgs{
		"firstName": roommate.FirstName,
		"lastName":  roommate.LastName,
		"roomId":    roommate.RoomID,
	}
	if err := conn.QueryRow(ctx, insertRoommateQuery, args).Scan(&roommate.ID); err != nil {
		return database.TranslateError(err)
	}
	return nil
}

// GetByID retrieves a roommate by id; (nil, nil) when no row matches.
func (r *RoommateRepository) GetByID(ctx context.Context, id int) (*model.Roommate, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	roommate := model.Roommate{ID: id}
	args := pgx.NamedArgs{"idparam": id}
	if err := conn.QueryRow(ctx, getRoommateQuery, args).Scan(&roommate.FirstName, &roommate.LastName, &roommate.RoomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, database.TranslateError(err)
	}
	return &roommate, nil
}

// GetByRoom retrieves all roommates assigned to one room, materialized,
// in database order. A room with no roommates yields an empty slice.
func (r *RoommateRepository) GetByRoom(ctx context.Context, roomID int) ([]*model.Roommate, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, getRoommatesByRoomQuery, pgx.NamedArgs{"roomId": roomID})
	if err != nil {
		return nil, database.TranslateError(err)
	}
	defer rows.Close()

	roommates := make([]*model.Roommate, 0)
	for rows.Next() {
		roommate := model.Roommate{RoomID: roomID}
		if err := rows.Scan(&roommate.ID, &roommate.FirstName, &roommate.LastName); err != nil {
			return nil, database.TranslateError(err)
		}
		roommates = append(roommates, &roommate)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError(err)
	}
	return roommates, nil
}

// Delete removes a roommate by id; an id that matches no row succeeds silently.
func (r *RoommateRepository) Delete(ctx context.Context, id int) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, deleteRoommateQuery, pgx.NamedArgs{"id": id}); err != nil {
		return database.TranslateError(err)
	}
	return nil
}
