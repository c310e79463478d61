package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GigStatus is the lifecycle state of a gig
type GigStatus string

const (
	GigOpen     GigStatus = "open"
	GigAssigned GigStatus = "assigned"
)

// CanTransitionTo reports whether a gig may move from s to next.
// The only legal transition is open -> assigned.
func (s GigStatus) CanTransitionTo(next GigStatus) bool {
	return s == GigOpen && next == GigAssigned
}

// BidStatus is the lifecycle state of a bid
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidHired    BidStatus = "hired"
	BidRejected BidStatus = "rejected"
)

// CanTransitionTo reports whether a bid may move from s to next.
// Bids only ever leave pending, and never come back.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	return s == BidPending && (next == BidHired || next == BidRejected)
}

// Valid reports whether s is a known bid status
func (s BidStatus) Valid() bool {
	switch s {
	case BidPending, BidHired, BidRejected:
		return true
	default:
		return false
	}
}

// Gig represents a job posted by a client
type Gig struct {
	GigID       string          `json:"gig_id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	Status      GigStatus       `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Bid represents a freelancer's offer on a gig
type Bid struct {
	BidID     string          `json:"bid_id"`
	GigID     string          `json:"gig_id"`
	BidderID  string          `json:"bidder_id"`
	Message   string          `json:"message"`
	Price     decimal.Decimal `json:"price"`
	Status    BidStatus       `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// HireConfirmation is returned once a hire has committed
type HireConfirmation struct {
	GigID    string    `json:"gig_id"`
	GigTitle string    `json:"gig_title"`
	BidID    string    `json:"bid_id"`
	BidderID string    `json:"bidder_id"`
	Rejected int       `json:"rejected"`
	HiredAt  time.Time `json:"hired_at"`
}

// Notification is the payload pushed to a connected actor
type Notification struct {
	Message string `json:"message"`
}
