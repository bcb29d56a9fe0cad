package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgValidation            = "validation error"
	ErrMsgInsufficientInventory = "insufficient inventory"
	ErrMsgPersistence           = "persistence error"

	ErrMsgTradeNotFound   = "trade not found"
	ErrMsgTradeNotPending = "trade is not pending"
	ErrMsgNotTradeOwner   = "not the trade proposer"

	ErrMsgUnknownItem     = "unknown item"
	ErrMsgSessionNotFound = "session not found"
	ErrMsgViewerNotFound  = "viewer not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrValidation is returned for missing or malformed input. No state changes.
	ErrValidation = errors.New(ErrMsgValidation)

	// ErrInsufficientInventory is returned when the ledger holds less than requested. No state changes.
	ErrInsufficientInventory = errors.New(ErrMsgInsufficientInventory)

	// ErrPersistence is returned when a remote read or write fails.
	ErrPersistence = errors.New(ErrMsgPersistence)

	ErrTradeNotFound   = errors.New(ErrMsgTradeNotFound)
	ErrTradeNotPending = errors.New(ErrMsgTradeNotPending)

	// ErrNotTradeOwner is returned when someone other than the proposer declines a trade.
	ErrNotTradeOwner = errors.New(ErrMsgNotTradeOwner)

	ErrUnknownItem     = errors.New(ErrMsgUnknownItem)
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrViewerNotFound  = errors.New(ErrMsgViewerNotFound)
)
