// Package config manages application configuration for the Roomstack API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth; nothing else in the application reads the environment.
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - HTTP read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - HTTP write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated allowed origins
//	DB_HOST               - PostgreSQL host (default: localhost)
//	DB_PORT               - PostgreSQL port (default: 5432)
//	DB_USER               - database username
//	DB_PASSWORD           - database password
//	DB_NAME               - database name (default: roomstack)
//	DB_SSLMODE            - sslmode parameter (default: disable)
//
// Load never fails on missing variables; defaults cover development. Call
// Validate afterwards to reject configurations that cannot serve, and treat
// its error as fatal at startup.
package config
