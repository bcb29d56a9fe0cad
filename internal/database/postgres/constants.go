package postgres

// Notification channels
const (
	// ChannelActiveViewers is signalled by the active_viewers trigger on insert and delete
	ChannelActiveViewers = "active_viewers_changed"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Trade Operations
const (
	ErrMsgFailedToEncodeItems     = "failed to encode trade items"
	ErrMsgFailedToDecodeItems     = "failed to decode trade items"
	ErrMsgFailedToInsertTrade     = "failed to insert trade request"
	ErrMsgFailedToGetTrade        = "failed to get trade request"
	ErrMsgFailedToTransitionTrade = "failed to update trade request"
	ErrMsgFailedToListTrades      = "failed to list trade requests"
)

// Error Messages - Presence Operations
const (
	ErrMsgFailedToUpsertViewer  = "failed to upsert viewer"
	ErrMsgFailedToTouchViewer   = "failed to update viewer"
	ErrMsgFailedToDeleteViewer  = "failed to delete viewer"
	ErrMsgFailedToCountViewers  = "failed to count viewers"
	ErrMsgFailedToPruneViewers  = "failed to delete stale viewers"
	ErrMsgFailedToAcquireConn   = "failed to acquire listener connection"
	ErrMsgFailedToListen        = "failed to listen on channel"
	ErrMsgFailedToReceiveNotify = "failed waiting for notification"
)

// Log Messages
const (
	LogMsgListening = "Listening for database notifications"
)
