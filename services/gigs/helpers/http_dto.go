package helpers

import (
	"time"

	model "gig-hire/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
// Amounts are validated by the service so that a zero or negative value
// reports the domain error rather than a binding error.
type CreateGigRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Budget      decimal.Decimal `json:"budget"`
}

type PlaceBidRequest struct {
	GigID   string          `json:"gig_id" binding:"required"`
	Message string          `json:"message" binding:"required"`
	Price   decimal.Decimal `json:"price"`
}

type GigResponse struct {
	GigID       string          `json:"gig_id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	GigID     string          `json:"gig_id"`
	BidderID  string          `json:"bidder_id"`
	Message   string          `json:"message"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type HireResponse struct {
	GigID    string `json:"gig_id"`
	BidID    string `json:"bid_id"`
	BidderID string `json:"bidder_id"`
	Rejected int    `json:"rejected"`
	HiredAt  string `json:"hired_at"`
}

func NewGigResponse(g model.Gig) GigResponse {
	return GigResponse{
		GigID:       g.GigID,
		OwnerID:     g.OwnerID,
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		Status:      string(g.Status),
		CreatedAt:   g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:     b.BidID,
		GigID:     b.GigID,
		BidderID:  b.BidderID,
		Message:   b.Message,
		Price:     b.Price,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewHireResponse(c model.HireConfirmation) HireResponse {
	return HireResponse{
		GigID:    c.GigID,
		BidID:    c.BidID,
		BidderID: c.BidderID,
		Rejected: c.Rejected,
		HiredAt:  c.HiredAt.UTC().Format(time.RFC3339),
	}
}
