// Package handler implements the HTTP layer for the Roomstack API.
//
// Handlers parse and validate the request shape (path parameters, JSON
// bodies), call the service layer, and write JSON responses. Errors are
// reported as RFC 9457 Problem Details; the translation from service
// errors to status codes lives in one place, MapServiceError, so every
// handler maps the same error to the same response.
//
// Handlers are registered on a net/http ServeMux using method patterns
// ("GET /v1/rooms/{roomId}"), so routing needs no third-party router.
package handler
