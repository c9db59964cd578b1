package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoommateNotFound = errors.New("roommate not found")
)
