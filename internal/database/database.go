// Package database provides PostgreSQL connectivity for the Roomstack API.
//
// This package wraps a pgx connection pool behind a small surface that the
// repository layer uses, keeping driver wiring out of data-access code.
//
// # Resource Discipline
//
// Store operations acquire one pooled connection via Acquire, perform exactly
// one round trip on it, and release it before returning — on every exit path,
// including errors. Connections are never shared between operations or
// retained between calls.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrForeignKey: Foreign key constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// There is no local recovery: failures are translated onto the sentinels and
// propagated to the caller unretried.
package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")

	// ErrForeignKey indicates a foreign key constraint violation, e.g.
	// deleting a row that other rows still reference.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Config holds database connection settings
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN assembles the postgres connection string from the config.
// The password is URL-escaped so reserved characters cannot break the URL.
func (c Config) DSN() string {
	hostPort := net.JoinHostPort(c.Host, c.Port)
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		c.User,
		url.QueryEscape(c.Password),
		hostPort,
		c.Name,
		c.SSLMode,
	)
}
