package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// validTradeID reports whether id can be stored in a uuid column.
// Anything else can never match a row.
func validTradeID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func encodeItems(items []domain.QuantitySelection) ([]byte, error) {
	if items == nil {
		items = []domain.QuantitySelection{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeItems, err)
	}
	return b, nil
}

func decodeItems(raw []byte) ([]domain.QuantitySelection, error) {
	items := []domain.QuantitySelection{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeItems, err)
	}
	return items, nil
}
