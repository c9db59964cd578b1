// Package model defines domain entities and data structures for the Roomstack API.
//
// The model package contains struct definitions for domain objects,
// request types, and error payloads. Models are plain value holders used
// across all layers of the application; they carry no behavior and no
// persistence logic.
//
// # Domain Entities
//
//   - Room: a bookable room with a capacity, identified by a
//     database-assigned integer id
//   - Roommate: an occupant assigned to a room via foreign key
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Room struct {
//	    ID           int    `json:"id"`
//	    Name         string `json:"name"`
//	    MaxOccupancy int    `json:"max_occupancy"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
