package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"

	"github.com/yumbiru/yumvalues/internal/config"
	"github.com/yumbiru/yumvalues/internal/database"
)

// migrateCmd drives the embedded goose migrations.
type migrateCmd struct {
	local bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply, roll back or list database migrations" }
func (*migrateCmd) Usage() string {
	return `yumctl migrate [-local] up|down|status

  Runs against PostgreSQL (DB_* variables) or, with -local, the SQLite
  ledger database at LOCAL_DB_PATH.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "migrate the local SQLite database instead of PostgreSQL")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fail("%s", c.Usage())
		return subcommands.ExitUsageError
	}
	action := f.Arg(0)
	if action != "up" && action != "down" && action != "status" {
		fail("Unknown migrate action %q", action)
		return subcommands.ExitUsageError
	}

	cfg, err := config.LoadForTooling()
	if err != nil {
		fail("Error loading config: %v", err)
		return subcommands.ExitFailure
	}

	m, closeFn, err := c.open(ctx, cfg)
	if err != nil {
		fail("Error opening database: %v", err)
		return subcommands.ExitFailure
	}
	defer closeFn()
	defer func() { _ = m.Close() }()

	switch action {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			fail("Error applying migrations: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("applied %d migration(s)\n", n)
	case "down":
		if err := m.Down(ctx); err != nil {
			fail("Error rolling back: %v", err)
			return subcommands.ExitFailure
		}
		fmt.Println("rolled back one migration")
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			fail("Error reading status: %v", err)
			return subcommands.ExitFailure
		}
		printMarkdown(statusMarkdown(statuses))
	}
	return subcommands.ExitSuccess
}

func (c *migrateCmd) open(ctx context.Context, cfg *config.Config) (*database.Migrator, func(), error) {
	if c.local {
		db, err := database.OpenSQLite(ctx, cfg.LocalDBPath)
		if err != nil {
			return nil, nil, err
		}
		m, err := database.NewSQLiteMigrator(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return m, func() { _ = db.Close() }, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, err
	}
	m, err := database.NewPostgresMigrator(pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	return m, pool.Close, nil
}

func statusMarkdown(statuses []database.MigrationStatus) string {
	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		applied := "pending"
		if s.Applied {
			applied = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{strconv.FormatInt(s.Version, 10), s.Path, applied})
	}
	return markdownTable([]string{"Version", "File", "Applied"}, rows)
}
