package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yumbiru/yumvalues/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"validation with detail", fmt.Errorf("%w: target is required", domain.ErrValidation), http.StatusBadRequest, "Invalid input: target is required"},
		{"bare validation", domain.ErrValidation, http.StatusBadRequest, ErrMsgValidationError},
		{"insufficient names item",
			fmt.Errorf("%w: not enough Blue Pet (have 0, need 1)", domain.ErrInsufficientInventory),
			http.StatusBadRequest, "Not enough in inventory: not enough Blue Pet (have 0, need 1)"},
		{"unknown item", fmt.Errorf("%w: ghost", domain.ErrUnknownItem), http.StatusBadRequest, "Unknown item: ghost"},
		{"trade not found", fmt.Errorf("%w: abc", domain.ErrTradeNotFound), http.StatusNotFound, ErrMsgTradeNotFoundError},
		{"trade not pending", domain.ErrTradeNotPending, http.StatusConflict, ErrMsgTradeNotPendingError},
		{"decline by non-proposer", fmt.Errorf("%w: trade t1 was proposed by alice", domain.ErrNotTradeOwner), http.StatusForbidden, ErrMsgNotTradeOwnerError},
		{"session not found", fmt.Errorf("%w: s1", domain.ErrSessionNotFound), http.StatusNotFound, ErrMsgSessionNotFoundError},
		{"persistence hides detail", fmt.Errorf("%w: dial tcp: refused", domain.ErrPersistence), http.StatusBadGateway, ErrMsgPersistenceError},
		{"doubly wrapped", fmt.Errorf("accept: %w", fmt.Errorf("%w: gone", domain.ErrTradeNotPending)), http.StatusConflict, ErrMsgTradeNotPendingError},
		{"unexpected", errors.New("kaboom"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}
