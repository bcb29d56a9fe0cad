package domain

// InventoryStorageKey is the local storage key holding the serialized ledger
const InventoryStorageKey = "yum-values-inventory"

// Presence timing defaults
const (
	PresenceHeartbeatSeconds = 10
	PresenceActiveSeconds    = 15
	PresenceStaleSeconds     = 20
)

// PendingRefreshSeconds is how often the pending-trade list is refreshed
const PendingRefreshSeconds = 15
