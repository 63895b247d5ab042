// Package sqlstore implements the domain repositories on database/sql.
// The same queries run against PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite);
// only the schema DDL and the post-restore sequence fix-up differ per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL backend behind a *sql.DB.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// sqliteBusyTimeoutMS is how long a SQLite statement waits on a locked database before failing.
const sqliteBusyTimeoutMS = 5000

// Open connects to PostgreSQL when dbURL is set, otherwise to the SQLite file at sqlitePath,
// and verifies the connection.
func Open(ctx context.Context, dbURL, sqlitePath string) (*sql.DB, Dialect, error) {
	if dbURL != "" {
		db, err := sql.Open("postgres", dbURL)
		if err != nil {
			return nil, "", fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("ping postgres: %w", err)
		}
		return db, DialectPostgres, nil
	}

	db, err := sql.Open("sqlite", sqliteDSN(sqlitePath))
	if err != nil {
		return nil, "", fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers; SQLite would otherwise answer concurrent writes with SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping sqlite: %w", err)
	}
	return db, DialectSQLite, nil
}

func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", sqliteBusyTimeoutMS))
	return path + "?" + q.Encode()
}
