package domain

import "time"

// TradeStatus is the lifecycle state of a trade request
type TradeStatus string

const (
	TradeStatusPending  TradeStatus = "pending"
	TradeStatusAccepted TradeStatus = "accepted"
	TradeStatusDeclined TradeStatus = "declined"
)

// IsTerminal reports whether no further transition is allowed
func (s TradeStatus) IsTerminal() bool {
	return s == TradeStatusAccepted || s == TradeStatusDeclined
}

// TradeSide names one half of the trade desk
type TradeSide string

const (
	TradeSideLeft  TradeSide = "left"  // the proposer's offered items
	TradeSideRight TradeSide = "right" // the requested items
)

// TradeRequest is a persisted trade proposal
type TradeRequest struct {
	ID                string              `json:"id" db:"id"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	LeftItems         []QuantitySelection `json:"left_items" db:"left_items"`
	RightItems        []QuantitySelection `json:"right_items" db:"right_items"`
	Status            TradeStatus         `json:"status" db:"status"`
	CreatedBy         string              `json:"created_by" db:"created_by"`
	TargetProfile     string              `json:"target_profile" db:"target_profile"`
	TargetDisplayName string              `json:"target_display_name" db:"target_display_name"`
}

// TradeProposal is the input for creating a trade request
type TradeProposal struct {
	CreatedBy         string
	TargetDisplayName string
	LeftItems         []QuantitySelection
	RightItems        []QuantitySelection
}

// Viewer is a presence heartbeat row
type Viewer struct {
	ID       string    `json:"id" db:"id"`
	LastSeen time.Time `json:"last_seen" db:"last_seen"`
}
