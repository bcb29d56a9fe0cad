package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/yumbiru/yumvalues/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus reports whether one embedded migration has been applied
type MigrationStatus struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded goose migrations for one database
type Migrator struct {
	provider *goose.Provider
	db       *sql.DB
	ownsDB   bool
}

// NewPostgresMigrator wraps the pool in a database/sql handle for goose
func NewPostgresMigrator(pool *pgxpool.Pool) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	m, err := newMigrator(goose.DialectPostgres, db, postgresMigrationsDir)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	m.ownsDB = true
	return m, nil
}

// NewSQLiteMigrator migrates the local blob database
func NewSQLiteMigrator(db *sql.DB) (*Migrator, error) {
	return newMigrator(goose.DialectSQLite3, db, sqliteMigrationsDir)
}

func newMigrator(dialect goose.Dialect, db *sql.DB, dir string) (*Migrator, error) {
	sub, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	provider, err := goose.NewProvider(dialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{provider: provider, db: db}, nil
}

// Up applies every pending migration and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	results, err := m.provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
	}
	return len(results), nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollbackMigration, err)
	}
	logger.FromContext(ctx).Info(LogMsgMigrationRolledBack, "version", r.Source.Version, "path", r.Source.Path)
	return nil
}

// Status lists every embedded migration in version order
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadStatus, err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Path:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// Close releases the database/sql handle created for a postgres pool.
// The pool itself stays open.
func (m *Migrator) Close() error {
	if m.ownsDB {
		return m.db.Close()
	}
	return nil
}

// MigratePostgres applies all pending postgres migrations
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	m, err := NewPostgresMigrator(pool)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	_, err = m.Up(ctx)
	return err
}
