package handler

import (
	"context"
	"net/http"

	"gig-hire/internal/auth"
	model "gig-hire/internal/models"
	"gig-hire/services/gigs/helpers"
	"gig-hire/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=gig_handler.go -destination=mock_gig_handler.go -package=handler

type HiringServiceInterface interface {
	CreateGig(ctx context.Context, ownerID, title, description string, budget decimal.Decimal) (model.Gig, error)
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListOpenGigs(ctx context.Context) ([]model.Gig, error)
	PlaceBid(ctx context.Context, gigID, bidderID, message string, price decimal.Decimal) (model.Bid, error)
	GetBids(ctx context.Context, gigID, requesterID string) ([]model.Bid, error)
	Hire(ctx context.Context, bidID, ownerID string) (model.HireConfirmation, error)
}

type GigHandler struct {
	service HiringServiceInterface
}

func NewGigHandler(service HiringServiceInterface) *GigHandler {
	return &GigHandler{service: service}
}

// CreateGigHandler handles POST /api/gigs
func (h *GigHandler) CreateGigHandler(c *gin.Context) {
	var req helpers.CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateGigHandler", err)
		return
	}

	ownerID := auth.ActorID(c)
	gig, err := h.service.CreateGig(c.Request.Context(), ownerID, req.Title, req.Description, req.Budget)
	if err != nil {
		helpers.RespondError(c, "CreateGigHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewGigResponse(gig), "gig created successfully")
	helpers.LogSuccess("CreateGigHandler", "gig created successfully", map[string]any{
		"gig_id":   gig.GigID,
		"owner_id": ownerID,
		"budget":   gig.Budget.String(),
	})
}

// ListGigsHandler handles GET /api/gigs
func (h *GigHandler) ListGigsHandler(c *gin.Context) {
	gigs, err := h.service.ListOpenGigs(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListGigsHandler", err, nil)
		return
	}

	resp := make([]helpers.GigResponse, 0, len(gigs))
	for _, g := range gigs {
		resp = append(resp, helpers.NewGigResponse(g))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "gigs retrieved successfully")
	helpers.LogSuccess("ListGigsHandler", "gigs retrieved successfully", map[string]any{"count": len(resp)})
}

// GetGigHandler handles GET /api/gigs/:gig_id
func (h *GigHandler) GetGigHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	gig, err := h.service.GetGig(c.Request.Context(), gigID)
	if err != nil {
		helpers.RespondError(c, "GetGigHandler", err, map[string]any{"gig_id": gigID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewGigResponse(gig), "gig retrieved successfully")
	helpers.LogSuccess("GetGigHandler", "gig retrieved successfully", map[string]any{"gig_id": gigID})
}

// PlaceBidHandler handles POST /api/bids
func (h *GigHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidderID := auth.ActorID(c)
	bid, err := h.service.PlaceBid(c.Request.Context(), req.GigID, bidderID, req.Message, req.Price)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"gig_id":    req.GigID,
			"bidder_id": bidderID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"gig_id":    bid.GigID,
		"bidder_id": bidderID,
		"price":     bid.Price.String(),
	})
}

// GetBidsHandler handles GET /api/bids/:gig_id
func (h *GigHandler) GetBidsHandler(c *gin.Context) {
	gigID := c.Param("gig_id")
	requesterID := auth.ActorID(c)

	bids, err := h.service.GetBids(c.Request.Context(), gigID, requesterID)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{
			"gig_id":       gigID,
			"requester_id": requesterID,
		})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"gig_id": gigID,
		"count":  len(resp),
	})
}

// HireHandler handles PATCH /api/bids/:bid_id/hire
func (h *GigHandler) HireHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	ownerID := auth.ActorID(c)

	confirmation, err := h.service.Hire(c.Request.Context(), bidID, ownerID)
	if err != nil {
		helpers.RespondError(c, "HireHandler", err, map[string]any{
			"bid_id":   bidID,
			"owner_id": ownerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewHireResponse(confirmation), "freelancer hired successfully")
	helpers.LogSuccess("HireHandler", "freelancer hired successfully", map[string]any{
		"gig_id":    confirmation.GigID,
		"bid_id":    confirmation.BidID,
		"bidder_id": confirmation.BidderID,
		"rejected":  confirmation.Rejected,
	})
}
