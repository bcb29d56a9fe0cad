package inventory

// Log messages
const (
	LogMsgLedgerLoaded        = "Inventory ledger loaded"
	LogMsgLedgerCorrupt       = "Stored inventory ledger is unreadable, starting empty"
	LogMsgLedgerReadFailed    = "Failed to read inventory ledger, starting empty"
	LogMsgLedgerPersistFailed = "Failed to persist inventory ledger"
	LogMsgLedgerEncodeFailed  = "Failed to encode inventory ledger"
)
