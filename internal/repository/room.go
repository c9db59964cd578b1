package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/model"
)

// Statement text is part of the store's compatibility surface; keep it
// byte-for-byte stable.
const (
	insertRoomQuery  = `INSERT INTO Room (Name, MaxOccupancy) VALUES (@name, @maxOccupancy) RETURNING Id`
	getRoomQuery     = `SELECT Name, MaxOccupancy FROM Room WHERE Id = @idparam`
	getAllRoomsQuery = `SELECT Id, Name, MaxOccupancy FROM Room`
	updateRoomQuery  = `UPDATE Room SET Name = @name, MaxOccupancy = @maxOccupancy WHERE Id = @id`
	deleteRoomQuery  = `DELETE FROM Room WHERE Id = @id`
)

// RoomRepository handles room data access
type RoomRepository struct {
	db *database.Postgres
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *database.Postgres) *RoomRepository {
	return &RoomRepository{db: db}
}

// Insert persists a new room and populates room.ID with the
// database-generated identifier retrieved in the same round trip.
func (r *RoomRepository) Insert(ctx context.Context, room *model.Room) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	args := pgx.NamedArgs{
		"name":         room.Name,
		"maxOccupancy": room.MaxOccupancy,
	}
	if err := conn.QueryRow(ctx, insertRoomQuery, args).Scan(&room.ID); err != nil {
		return database.TranslateError(err)
	}
	return nil
}

// GetByID retrieves a room by id. Absence is a normal result: (nil, nil).
// The returned room's ID is taken from the id argument rather than re-read
// from the row; the statement filters on that same column, so the two are
// equal whenever a row exists.
func (r *RoomRepository) GetByID(ctx context.Context, id int) (*model.Room, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	room := model.Room{ID: id}
	args := pgx.NamedArgs{"idparam": id}
	if err := conn.QueryRow(ctx, getRoomQuery, args).Scan(&room.Name, &room.MaxOccupancy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, database.TranslateError(err)
	}
	return &room, nil
}

// GetAll retrieves every room as an eagerly materialized slice, in whatever
// order the database returns rows.
func (r *RoomRepository) GetAll(ctx context.Context) ([]*model.Room, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, getAllRoomsQuery)
	if err != nil {
		return nil, database.TranslateError(err)
	}
	defer rows.Close()

	rooms := make([]*model.Room, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.MaxOccupancy); err != nil {
			return nil, database.TranslateError(err)
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, database.TranslateError(err)
	}
	return rooms, nil
}

// Update writes both mutable columns unconditionally (full replace).
// An id that matches no row is not an error: the statement executes with
// zero rows affected and the call succeeds silently.
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	args := pgx.NamedArgs{
		"name":         room.Name,
		"maxOccupancy": room.MaxOccupancy,
		"id":           room.ID,
	}
	if _, err := conn.Exec(ctx, updateRoomQuery, args); err != nil {
		return database.TranslateError(err)
	}
	return nil
}

// Delete removes a room by id. An id that matches no row succeeds silently.
// Deleting a room that roommates still reference surfaces the schema's
// foreign key violation as database.ErrForeignKey; no cascade is attempted.
func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, deleteRoomQuery, pgx.NamedArgs{"id": id}); err != nil {
		return database.TranslateError(err)
	}
	return nil
}
