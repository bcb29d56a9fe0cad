package trade

import "time"

// pendingCacheKey is the single key of the shared pending-list cache
const pendingCacheKey = "pending"

// DefaultPendingTTL bounds how long a fetched pending list is served
const DefaultPendingTTL = 15 * time.Second

// Error messages
const (
	ErrMsgTargetRequired  = "target display name is required"
	ErrMsgBadQuantityFmt  = "item %s has quantity %d"
	ErrMsgShortfallFmt    = "not enough %s (have %d, need %d)"
	ErrMsgInsertFailedFmt = "failed to create trade request: %v"
	ErrMsgUpdateFailedFmt = "failed to update trade request: %v"
	ErrMsgListFailedFmt   = "failed to list pending trades: %v"
	ErrMsgGetFailedFmt    = "failed to read trade request: %v"
	ErrMsgNotProposerFmt  = "trade %s was proposed by %s"
)

// Log messages
const (
	LogMsgProposeCalled      = "Propose called"
	LogMsgTradeProposed      = "Trade proposed"
	LogMsgTradeSettled       = "Trade settled"
	LogMsgTradeSettleFailed  = "Trade settlement rejected"
	LogMsgPendingRefreshed   = "Pending trades refreshed"
	LogMsgPublishEventFailed = "Failed to publish trade event"
	LogMsgNotProposer        = "Decline rejected: caller is not the proposer"
)
