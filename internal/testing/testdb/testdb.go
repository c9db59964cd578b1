// Package testdb provides test database utilities for integration testing.
//
// Tests built on this package run real statements against a real PostgreSQL
// instance, so they validate actual database behavior including generated
// identifiers and foreign key constraints. The target database is taken from
// TEST_DATABASE_URL; when the variable is unset the calling test is skipped,
// keeping the unit test run database-free.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.New(t)
//	    // db is a connected *database.Postgres with the schema in place
//	}
package testdb

import (
	"context"
	neturl "net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/roomstack/api/internal/database"
)

const setupTimeout = 30 * time.Second

// schema bootstraps the tables the store operates on. This is test harness
// setup, not application migration: the application assumes the schema exists.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS Room (
		Id           serial PRIMARY KEY,
		Name         text NOT NULL,
		MaxOccupancy integer NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS Roommate (
		Id        serial PRIMARY KEY,
		FirstName text NOT NULL,
		LastName  text NOT NULL,
		RoomId    integer NOT NULL REFERENCES Room (Id)
	)`,
}

// New connects to the database named by TEST_DATABASE_URL, ensures the schema
// exists, and empties the tables. It skips the calling test when the variable
// is unset and registers cleanup to close the pool when the test finishes.
func New(t *testing.T) *database.Postgres {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	cfg, err := configFromURL(url)
	if err != nil {
		t.Fatalf("testdb: invalid TEST_DATABASE_URL: %v", err)
	}

	db := database.NewPostgres(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	conn, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("testdb: failed to acquire connection: %v", err)
	}
	defer conn.Release()

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			t.Fatalf("testdb: schema setup failed: %v", err)
		}
	}
	if _, err := conn.Exec(ctx, `TRUNCATE Roommate, Room RESTART IDENTITY`); err != nil {
		t.Fatalf("testdb: failed to reset tables: %v", err)
	}

	return db
}

// configFromURL converts a postgres:// URL into the database package's
// explicit config, so tests exercise the same Connect path the server uses.
func configFromURL(url string) (database.Config, error) {
	parsed, err := pgxpool.ParseConfig(url)
	if err != nil {
		return database.Config{}, err
	}

	cc := parsed.ConnConfig
	return database.Config{
		Host:     cc.Host,
		Port:     strconv.Itoa(int(cc.Port)),
		User:     cc.User,
		Password: cc.Password,
		Name:     cc.Database,
		SSLMode:  sslModeFromURL(url),
	}, nil
}

// sslModeFromURL preserves an explicit sslmode query parameter; local test
// databases usually run without TLS.
func sslModeFromURL(raw string) string {
	parsed, err := neturl.Parse(raw)
	if err != nil {
		return "disable"
	}
	if mode := parsed.Query().Get("sslmode"); mode != "" {
		return mode
	}
	return "disable"
}
