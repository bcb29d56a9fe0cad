package repository

import (
	"context"
	"time"
)

// Presence defines persistence for the active viewer table
type Presence interface {
	InsertViewer(ctx context.Context, id string, seenAt time.Time) error
	// TouchViewer returns domain.ErrViewerNotFound when the row is gone
	TouchViewer(ctx context.Context, id string, seenAt time.Time) error
	DeleteViewer(ctx context.Context, id string) error
	CountViewersSince(ctx context.Context, since time.Time) (int, error)
	DeleteViewersBefore(ctx context.Context, before time.Time) (int64, error)
}

// ChangeFeed delivers remote change notifications. Listen blocks until ctx
// is cancelled or the connection fails, calling onChange for each notification.
type ChangeFeed interface {
	Listen(ctx context.Context, onChange func(payload string)) error
}
