package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/repository"
)

const tradeColumns = `id::text, created_at, left_items, right_items, status, created_by, target_profile, target_display_name`

// TradeRepository implements repository.Trade on the trade_requests table
type TradeRepository struct {
	db *pgxpool.Pool
}

var _ repository.Trade = (*TradeRepository)(nil)

// NewTradeRepository creates a new TradeRepository
func NewTradeRepository(db *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) InsertTrade(ctx context.Context, req *domain.TradeRequest) (*domain.TradeRequest, error) {
	left, err := encodeItems(req.LeftItems)
	if err != nil {
		return nil, err
	}
	right, err := encodeItems(req.RightItems)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO trade_requests (left_items, right_items, status, created_by, target_profile, target_display_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+tradeColumns,
		left, right, string(domain.TradeStatusPending), req.CreatedBy, req.TargetProfile, req.TargetDisplayName)

	out, err := scanTrade(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertTrade, err)
	}
	return out, nil
}

func (r *TradeRepository) GetTrade(ctx context.Context, id string) (*domain.TradeRequest, error) {
	if !validTradeID(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTradeNotFound, id)
	}
	return getTrade(ctx, r.db, id)
}

// TransitionTrade updates the status only while the row is still pending.
// When nothing matched, the row is re-read in the same transaction to tell
// a missing id from an already settled one.
func (r *TradeRepository) TransitionTrade(ctx context.Context, id string, to domain.TradeStatus) (*domain.TradeRequest, error) {
	if !validTradeID(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTradeNotFound, id)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		UPDATE trade_requests SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING `+tradeColumns,
		id, string(to), string(domain.TradeStatusPending))

	out, err := scanTrade(row)
	if errors.Is(err, pgx.ErrNoRows) {
		current, getErr := getTrade(ctx, tx, id)
		if getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrTradeNotPending, id, current.Status)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToTransitionTrade, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return out, nil
}

func (r *TradeRepository) ListTradesByStatus(ctx context.Context, status domain.TradeStatus) ([]domain.TradeRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+tradeColumns+`
		FROM trade_requests
		WHERE status = $1
		ORDER BY created_at DESC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
	}
	defer rows.Close()

	out := make([]domain.TradeRequest, 0)
	for rows.Next() {
		req, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTrades, err)
	}
	return out, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getTrade(ctx context.Context, q querier, id string) (*domain.TradeRequest, error) {
	row := q.QueryRow(ctx, `SELECT `+tradeColumns+` FROM trade_requests WHERE id = $1`, id)
	out, err := scanTrade(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTradeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTrade, err)
	}
	return out, nil
}

func scanTrade(row pgx.Row) (*domain.TradeRequest, error) {
	var (
		req         domain.TradeRequest
		left, right []byte
		status      string
	)
	if err := row.Scan(&req.ID, &req.CreatedAt, &left, &right, &status,
		&req.CreatedBy, &req.TargetProfile, &req.TargetDisplayName); err != nil {
		return nil, err
	}
	req.Status = domain.TradeStatus(status)

	var err error
	if req.LeftItems, err = decodeItems(left); err != nil {
		return nil, err
	}
	if req.RightItems, err = decodeItems(right); err != nil {
		return nil, err
	}
	return &req, nil
}
