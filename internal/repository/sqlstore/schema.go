package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables and indexes for the dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts := postgresSchema
	if dialect == DialectSQLite {
		stmts = sqliteSchema
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Unique indexes shared by both dialects. LOWER(name) makes guest and option names case-insensitive keys.
var sharedIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS guests_name_lower_key ON guests (LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS poll_options_name_lower_key ON poll_options (LOWER(name))`,
	`CREATE INDEX IF NOT EXISTS idx_poll_votes_option_id ON poll_votes (option_id)`,
}

var postgresSchema = append([]string{
	`CREATE TABLE IF NOT EXISTS guests (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		attending BOOLEAN NOT NULL,
		avatar_color TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id SERIAL PRIMARY KEY,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		comment TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id SERIAL PRIMARY KEY,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		photo_url TEXT NOT NULL,
		drive_id TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS poll_options (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		emoji TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS poll_votes (
		id SERIAL PRIMARY KEY,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		option_id INTEGER NOT NULL REFERENCES poll_options(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (guest_id, option_id)
	)`,
}, sharedIndexes...)

var sqliteSchema = append([]string{
	`CREATE TABLE IF NOT EXISTS guests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		attending BOOLEAN NOT NULL,
		avatar_color TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		comment TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS photos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		photo_url TEXT NOT NULL,
		drive_id TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS poll_options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		emoji TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS poll_votes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_id INTEGER NOT NULL REFERENCES guests(id),
		option_id INTEGER NOT NULL REFERENCES poll_options(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (guest_id, option_id)
	)`,
}, sharedIndexes...)
