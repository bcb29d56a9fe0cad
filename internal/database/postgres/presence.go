package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// PresenceRepository implements repository.Presence on the active_viewers table
type PresenceRepository struct {
	db *pgxpool.Pool
}

var _ repository.Presence = (*PresenceRepository)(nil)

// NewPresenceRepository creates a new PresenceRepository
func NewPresenceRepository(db *pgxpool.Pool) *PresenceRepository {
	return &PresenceRepository{db: db}
}

func (r *PresenceRepository) InsertViewer(ctx context.Context, id string, seenAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO active_viewers (id, last_seen) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET last_seen = EXCLUDED.last_seen`, id, seenAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertViewer, err)
	}
	return nil
}

func (r *PresenceRepository) TouchViewer(ctx context.Context, id string, seenAt time.Time) error {
	tag, err := r.db.Exec(ctx, `UPDATE active_viewers SET last_seen = $2 WHERE id = $1`, id, seenAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTouchViewer, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrViewerNotFound, id)
	}
	return nil
}

func (r *PresenceRepository) DeleteViewer(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM active_viewers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteViewer, err)
	}
	return nil
}

func (r *PresenceRepository) CountViewersSince(ctx context.Context, since time.Time) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM active_viewers WHERE last_seen >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountViewers, err)
	}
	return int(n), nil
}

func (r *PresenceRepository) DeleteViewersBefore(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM active_viewers WHERE last_seen < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPruneViewers, err)
	}
	return tag.RowsAffected(), nil
}
