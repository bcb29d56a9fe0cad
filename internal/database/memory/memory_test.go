package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumbiru/yumvalues/internal/domain"
)

func TestBlobStore(t *testing.T) {
	ctx := context.Background()
	s := NewBlobStore()

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(ctx, "k:1", []byte("one")))
	require.NoError(t, s.Put(ctx, "k:2", []byte("two")))
	require.NoError(t, s.Put(ctx, "other", []byte("x")))

	blob, found, err := s.Get(ctx, "k:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "one", string(blob))

	keys, err := s.Keys(ctx, "k:")
	require.NoError(t, err)
	assert.Equal(t, []string{"k:1", "k:2"}, keys)

	require.NoError(t, s.Delete(ctx, "k:1"))
	_, found, _ = s.Get(ctx, "k:1")
	assert.False(t, found)
}

func TestTradeStore_Transition(t *testing.T) {
	ctx := context.Background()
	s := NewTradeStore()

	req, err := s.InsertTrade(ctx, &domain.TradeRequest{CreatedBy: "a", TargetDisplayName: "b"})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, domain.TradeStatusPending, req.Status)

	done, err := s.TransitionTrade(ctx, req.ID, domain.TradeStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusAccepted, done.Status)

	_, err = s.TransitionTrade(ctx, req.ID, domain.TradeStatusDeclined)
	assert.ErrorIs(t, err, domain.ErrTradeNotPending)

	_, err = s.TransitionTrade(ctx, "missing", domain.TradeStatusDeclined)
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}

func TestTradeStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewTradeStore()
	base := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)

	_, _ = s.InsertTrade(ctx, &domain.TradeRequest{ID: "old", CreatedAt: base})
	_, _ = s.InsertTrade(ctx, &domain.TradeRequest{ID: "new", CreatedAt: base.Add(time.Minute)})
	_, _ = s.InsertTrade(ctx, &domain.TradeRequest{ID: "done", CreatedAt: base.Add(2 * time.Minute)})
	_, _ = s.TransitionTrade(ctx, "done", domain.TradeStatusDeclined)

	pending, err := s.ListTradesByStatus(ctx, domain.TradeStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "new", pending[0].ID)
	assert.Equal(t, "old", pending[1].ID)
}

func TestPresenceStore(t *testing.T) {
	ctx := context.Background()
	s := NewPresenceStore()
	now := time.Now()

	require.NoError(t, s.InsertViewer(ctx, "fresh", now))
	require.NoError(t, s.InsertViewer(ctx, "stale", now.Add(-30*time.Second)))

	n, err := s.CountViewersSince(ctx, now.Add(-15*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pruned, err := s.DeleteViewersBefore(ctx, now.Add(-20*time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	assert.ErrorIs(t, s.TouchViewer(ctx, "stale", now), domain.ErrViewerNotFound)
	assert.NoError(t, s.TouchViewer(ctx, "fresh", now))
}
