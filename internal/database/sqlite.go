package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenLocal opens (creating if needed) the local SQLite database and
// applies its migrations
func OpenLocal(ctx context.Context, path string) (*sql.DB, error) {
	db, err := OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}

	m, err := NewSQLiteMigrator(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := m.Up(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Default().Info(LogMsgOpenedLocalDatabase, "path", path)
	return db, nil
}

// OpenSQLite opens the SQLite file without touching its schema
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenLocal, err)
		}
	}

	db, err := sql.Open(sqliteDriver, fmt.Sprintf(sqliteDSNFormat, path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenLocal, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}
	return db, nil
}
