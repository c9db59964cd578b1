package model

// Room represents a bookable room persisted in the Room table.
// ID is assigned by the database on insert and is immutable afterwards;
// a Room that has not been persisted yet carries a zero ID.
type Room struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	MaxOccupancy int    `json:"max_occupancy"`
}

// Roommate represents an occupant assigned to a room. RoomID references
// Room.ID; the schema enforces the relationship, the application does not.
type Roommate struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoomID    int    `json:"room_id"`
}

// CreateRoomRequest represents a request to create a room
type CreateRoomRequest struct {
	Name         string `json:"name"`
	MaxOccupancy int    `json:"max_occupancy"`
}

// UpdateRoomRequest represents a request to update a room.
// Updates are full replacements: both fields are written unconditionally.
type UpdateRoomRequest struct {
	Name         string `json:"name"`
	MaxOccupancy int    `json:"max_occupancy"`
}

// CreateRoommateRequest represents a request to assign a roommate to a room
type CreateRoommateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RoomID    int    `json:"room_id"`
}
