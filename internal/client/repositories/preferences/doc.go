// Package preferences persists the client's small key/value settings (the
// session token and the theme) in the local SQLite database.
//
// Schema (created by the goose migrations):
//
//	CREATE TABLE preferences (
//	    key   TEXT PRIMARY KEY,
//	    value TEXT NOT NULL
//	);
//
// Set is an upsert, Delete and Clear are idempotent. Errors from the driver
// are wrapped with the affected key.
package preferences
