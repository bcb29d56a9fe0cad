package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/repository"
)

// Listener implements repository.ChangeFeed with LISTEN/NOTIFY on a
// dedicated pool connection
type Listener struct {
	db      *pgxpool.Pool
	channel string
}

var _ repository.ChangeFeed = (*Listener)(nil)

// NewListener creates a listener for one notification channel
func NewListener(db *pgxpool.Pool, channel string) *Listener {
	return &Listener{db: db, channel: channel}
}

// Listen holds a connection until ctx is cancelled (returning nil) or the
// connection fails
func (l *Listener) Listen(ctx context.Context, onChange func(payload string)) error {
	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAcquireConn, err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToListen, l.channel, err)
	}
	logger.FromContext(ctx).Info(LogMsgListening, "channel", l.channel)

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("%s: %w", ErrMsgFailedToReceiveNotify, err)
		}
		onChange(n.Payload)
	}
}
