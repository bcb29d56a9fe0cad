package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumbiru/yumvalues/internal/config"
	"github.com/yumbiru/yumvalues/internal/database"
	"github.com/yumbiru/yumvalues/internal/database/postgres"
	"github.com/yumbiru/yumvalues/internal/database/sqlite"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// Stores holds every storage backend used by the application
type Stores struct {
	Pool    *pgxpool.Pool
	LocalDB *sql.DB

	Trades   repository.Trade
	Presence repository.Presence
	Viewers  repository.ChangeFeed
	Blobs    repository.BlobStore
}

// InitializeStores connects to PostgreSQL, applies its migrations, and opens
// the local SQLite database.
func InitializeStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	if err := database.MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	local, err := database.OpenLocal(ctx, cfg.LocalDBPath)
	if err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info(LogMsgStoresInitialized)
	return &Stores{
		Pool:     pool,
		LocalDB:  local,
		Trades:   postgres.NewTradeRepository(pool),
		Presence: postgres.NewPresenceRepository(pool),
		Viewers:  postgres.NewListener(pool, postgres.ChannelActiveViewers),
		Blobs:    sqlite.NewBlobStore(local),
	}, nil
}

// Close releases both databases
func (s *Stores) Close() {
	if s.LocalDB != nil {
		if err := s.LocalDB.Close(); err != nil {
			slog.Error(LogMsgLocalDBCloseFailed, "error", err)
		}
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
}
