package hiring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gig-hire/internal/gigerrors"
	"gig-hire/internal/models"
	"gig-hire/internal/repository"
	"gig-hire/utils"

	"github.com/shopspring/decimal"
)

// Notifier delivers a best-effort message to an actor
type Notifier interface {
	Notify(ctx context.Context, actorID string, n models.Notification)
}

// HiringService defines the business logic for gigs, bids and hiring
type HiringService struct {
	repo     repository.GigStore
	notifier Notifier
	now      func() time.Time
}

// NewHiringService creates a new HiringService instance. notifier may be nil,
// in which case hires are never announced.
func NewHiringService(repo repository.GigStore, notifier Notifier) *HiringService {
	return &HiringService{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateGig posts a new open gig owned by ownerID
func (s *HiringService) CreateGig(ctx context.Context, ownerID, title, description string, budget decimal.Decimal) (models.Gig, error) {
	title, description = strings.TrimSpace(title), strings.TrimSpace(description)
	switch {
	case ownerID == "":
		return models.Gig{}, fmt.Errorf("service: %w - missing owner", gigerrors.ErrInvalidGig)
	case title == "" || description == "":
		return models.Gig{}, fmt.Errorf("service: %w - missing title or description", gigerrors.ErrInvalidGig)
	case !budget.IsPositive():
		return models.Gig{}, fmt.Errorf("service: %w - non-positive budget", gigerrors.ErrInvalidGig)
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Budget:      budget,
		Status:      models.GigOpen,
		CreatedAt:   s.now(),
	}

	err := s.repo.Transaction(ctx, func(tx repository.Tx) error {
		return tx.InsertGig(ctx, gig)
	})
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for owner %s: %w", ownerID, err)
	}
	return gig, nil
}

// GetGig returns a single gig
func (s *HiringService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", gigerrors.ErrInvalidGig)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListOpenGigs returns the gigs still accepting bids, newest first
func (s *HiringService) ListOpenGigs(ctx context.Context) ([]models.Gig, error) {
	gigs, err := s.repo.ListOpenGigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}
	return gigs, nil
}

// PlaceBid records a pending bid by bidderID on an open gig. The gig check,
// duplicate check and insert run in one transaction.
func (s *HiringService) PlaceBid(ctx context.Context, gigID, bidderID, message string, price decimal.Decimal) (models.Bid, error) {
	message = strings.TrimSpace(message)
	switch {
	case gigID == "" || bidderID == "":
		return models.Bid{}, fmt.Errorf("service: %w - missing gigID or bidderID", gigerrors.ErrInvalidBid)
	case message == "":
		return models.Bid{}, fmt.Errorf("service: %w - missing message", gigerrors.ErrInvalidBid)
	case !price.IsPositive():
		return models.Bid{}, fmt.Errorf("service: %w - non-positive price", gigerrors.ErrInvalidBid)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		GigID:     gigID,
		BidderID:  bidderID,
		Message:   message,
		Price:     price,
		Status:    models.BidPending,
		CreatedAt: s.now(),
	}

	err := s.repo.Transaction(ctx, func(tx repository.Tx) error {
		gig, err := tx.GetGig(ctx, gigID)
		if err != nil {
			return err
		}
		if gig.Status != models.GigOpen {
			return gigerrors.ErrGigClosed
		}

		_, err = tx.FindBid(ctx, gigID, bidderID)
		if err == nil {
			return gigerrors.ErrDuplicateBid
		}
		if !errors.Is(err, gigerrors.ErrBidNotFound) {
			return err
		}

		return tx.InsertBid(ctx, bid)
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on gig %s by %s: %w", gigID, bidderID, err)
	}

	return bid, nil
}

// GetBids returns every bid on a gig. Only the gig owner may see them.
func (s *HiringService) GetBids(ctx context.Context, gigID, requesterID string) ([]models.Bid, error) {
	if gigID == "" || requesterID == "" {
		return nil, fmt.Errorf("service: %w - empty gig ID or requester", gigerrors.ErrInvalidBid)
	}

	gig, err := s.repo.GetGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for gig %s: %w", gigID, err)
	}
	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("service: bids for gig %s requested by %s: %w", gigID, requesterID, gigerrors.ErrNotGigOwner)
	}

	bids, err := s.repo.ListBidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for gig %s: %w", gigID, err)
	}
	return bids, nil
}

// Hire accepts bidID on behalf of ownerID. In a single transaction the gig is
// assigned, the bid hired and every other bid on the gig rejected. The winner
// is notified only after the commit, and a failed notification does not
// affect the result.
func (s *HiringService) Hire(ctx context.Context, bidID, ownerID string) (models.HireConfirmation, error) {
	if bidID == "" || ownerID == "" {
		return models.HireConfirmation{}, fmt.Errorf("service: %w - missing bidID or owner", gigerrors.ErrInvalidBid)
	}

	var confirmation models.HireConfirmation
	err := s.repo.Transaction(ctx, func(tx repository.Tx) error {
		bid, err := tx.GetBid(ctx, bidID)
		if err != nil {
			return err
		}

		gig, err := tx.GetGig(ctx, bid.GigID)
		if err != nil {
			return err
		}
		if gig.OwnerID != ownerID {
			return gigerrors.ErrNotGigOwner
		}
		if !gig.Status.CanTransitionTo(models.GigAssigned) {
			return gigerrors.ErrGigAssigned
		}
		if !bid.Status.CanTransitionTo(models.BidHired) {
			return fmt.Errorf("%w: bid is %s", gigerrors.ErrConflict, bid.Status)
		}

		if err := tx.SetGigStatus(ctx, gig.GigID, models.GigAssigned); err != nil {
			return err
		}
		if err := tx.SetBidStatus(ctx, bid.BidID, models.BidHired); err != nil {
			return err
		}
		rejected, err := tx.RejectOtherBids(ctx, gig.GigID, bid.BidID)
		if err != nil {
			return err
		}

		confirmation = models.HireConfirmation{
			GigID:    gig.GigID,
			GigTitle: gig.Title,
			BidID:    bid.BidID,
			BidderID: bid.BidderID,
			Rejected: rejected,
			HiredAt:  s.now(),
		}
		return nil
	})
	if err != nil {
		return models.HireConfirmation{}, fmt.Errorf("service: failed to hire bid %s: %w", bidID, err)
	}

	utils.Info("service: bid hired", map[string]any{
		"gig_id":    confirmation.GigID,
		"bid_id":    confirmation.BidID,
		"bidder_id": confirmation.BidderID,
		"rejected":  confirmation.Rejected,
	})

	if s.notifier != nil {
		s.notifier.Notify(ctx, confirmation.BidderID, HiredNotification(confirmation.GigTitle))
	}

	return confirmation, nil
}

// HiredNotification is the message sent to a freelancer who won a gig
func HiredNotification(gigTitle string) models.Notification {
	return models.Notification{Message: fmt.Sprintf(`You have been hired for "%s"!`, gigTitle)}
}
