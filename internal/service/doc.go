// Package service implements the business logic layer for the Roomstack API.
//
// Services sit between the HTTP handlers and the repositories. They are
// deliberately thin: the store's semantics (absence as nil, silent no-op
// mutations, sentinel error taxonomy) are defined at the repository and
// database layers, and services only translate those semantics into the
// vocabulary the HTTP layer speaks.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts the repository dependency
//   - Each service defines its own repository interface, so tests mock the
//     data layer without a database
//   - Repository absence (nil, nil) is converted into a sentinel error such
//     as ErrRoomNotFound; everything else passes through unchanged
//   - Context is passed through for cancellation
package service
