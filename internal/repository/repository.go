package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"gig-hire/internal/gigerrors"
	model "gig-hire/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// GigStore defines the transactional gig and bid storage used by the hiring engine
type GigStore interface {
	// Transaction runs fn in a single isolated unit of work. If fn returns an
	// error nothing it wrote is kept and that error is returned unchanged.
	Transaction(ctx context.Context, fn func(tx Tx) error) error

	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListOpenGigs(ctx context.Context) ([]model.Gig, error)
	ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)
}

// Tx is the read-modify-write view of the store inside a transaction
type Tx interface {
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	// GetGig reads a gig and holds it against concurrent writers until the
	// transaction ends.
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	FindBid(ctx context.Context, gigID, bidderID string) (model.Bid, error)
	ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)

	InsertGig(ctx context.Context, gig model.Gig) error
	InsertBid(ctx context.Context, bid model.Bid) error
	SetGigStatus(ctx context.Context, gigID string, status model.GigStatus) error
	SetBidStatus(ctx context.Context, bidID string, status model.BidStatus) error
	RejectOtherBids(ctx context.Context, gigID, keepBidID string) (int, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of GigStore.
// Transactions are serialized; their writes are staged and only become
// visible on commit.
type MemoryRepo struct {
	txMu sync.Mutex

	mu      sync.RWMutex
	gigs    map[string]model.Gig // key: gigID -> value: gig
	bids    map[string]model.Bid // key: bidID -> value: bid
	gigBids map[string][]string  // key: gigID -> value: bidIDs in insertion order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		gigs:    make(map[string]model.Gig),
		bids:    make(map[string]model.Bid),
		gigBids: make(map[string][]string),
	}
}

// Transaction runs fn with exclusive access to the repository
func (r *MemoryRepo) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	tx := &memTx{
		repo:   r,
		gigs:   make(map[string]model.Gig),
		bids:   make(map[string]model.Bid),
		newBid: make(map[string][]string),
	}
	if err := fn(tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	tx.commit()
	return nil
}

// GetGig returns a committed gig
func (r *MemoryRepo) GetGig(_ context.Context, gigID string) (model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gig, ok := r.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	return gig, nil
}

// ListOpenGigs returns all open gigs, newest first
func (r *MemoryRepo) ListOpenGigs(_ context.Context) ([]model.Gig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gigs := make([]model.Gig, 0, len(r.gigs))
	for _, g := range r.gigs {
		if g.Status == model.GigOpen {
			gigs = append(gigs, g)
		}
	}
	sort.Slice(gigs, func(i, j int) bool {
		if gigs[i].CreatedAt.Equal(gigs[j].CreatedAt) {
			return gigs[i].GigID < gigs[j].GigID
		}
		return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
	})
	return gigs, nil
}

// ListBidsByGig returns all committed bids for a gig in the order they were placed
func (r *MemoryRepo) ListBidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.gigs[gigID]; !ok {
		return nil, fmt.Errorf("list bids for gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}

	ids := r.gigBids[gigID]
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		bids = append(bids, r.bids[id])
	}
	return bids, nil
}

// AddGig stores a gig outside of a transaction. This method is intended for tests and seeding only.
func (r *MemoryRepo) AddGig(gig model.Gig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gigs[gig.GigID] = gig
}

// AddBid stores a bid outside of a transaction. This method is intended for tests only.
func (r *MemoryRepo) AddBid(bid model.Bid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bids[bid.BidID]; !exists {
		r.gigBids[bid.GigID] = append(r.gigBids[bid.GigID], bid.BidID)
	}
	r.bids[bid.BidID] = bid
}

// memTx stages writes on top of the committed maps
type memTx struct {
	repo   *MemoryRepo
	gigs   map[string]model.Gig
	bids   map[string]model.Bid
	newBid map[string][]string // key: gigID -> value: bidIDs inserted by this tx
}

func (t *memTx) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	if bid, ok := t.bids[bidID]; ok {
		return bid, nil
	}

	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()

	bid, ok := t.repo.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}
	return bid, nil
}

func (t *memTx) GetGig(_ context.Context, gigID string) (model.Gig, error) {
	if gig, ok := t.gigs[gigID]; ok {
		return gig, nil
	}

	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()

	gig, ok := t.repo.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}
	return gig, nil
}

func (t *memTx) FindBid(ctx context.Context, gigID, bidderID string) (model.Bid, error) {
	bids, err := t.bidsOf(gigID)
	if err != nil {
		return model.Bid{}, err
	}
	for _, b := range bids {
		if b.BidderID == bidderID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("find bid on gig %s by %s: %w", gigID, bidderID, gigerrors.ErrBidNotFound)
}

func (t *memTx) ListBidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	return t.bidsOf(gigID)
}

func (t *memTx) InsertGig(_ context.Context, gig model.Gig) error {
	t.gigs[gig.GigID] = gig
	return nil
}

func (t *memTx) InsertBid(ctx context.Context, bid model.Bid) error {
	if _, err := t.GetGig(ctx, bid.GigID); err != nil {
		return fmt.Errorf("insert bid %s: %w", bid.BidID, err)
	}
	if _, err := t.FindBid(ctx, bid.GigID, bid.BidderID); err == nil {
		return fmt.Errorf("insert bid on gig %s by %s: %w", bid.GigID, bid.BidderID, gigerrors.ErrDuplicateBid)
	}

	t.bids[bid.BidID] = bid
	t.newBid[bid.GigID] = append(t.newBid[bid.GigID], bid.BidID)
	return nil
}

func (t *memTx) SetGigStatus(ctx context.Context, gigID string, status model.GigStatus) error {
	gig, err := t.GetGig(ctx, gigID)
	if err != nil {
		return fmt.Errorf("set gig status: %w", err)
	}
	gig.Status = status
	t.gigs[gigID] = gig
	return nil
}

func (t *memTx) SetBidStatus(ctx context.Context, bidID string, status model.BidStatus) error {
	bid, err := t.GetBid(ctx, bidID)
	if err != nil {
		return fmt.Errorf("set bid status: %w", err)
	}
	bid.Status = status
	t.bids[bidID] = bid
	return nil
}

func (t *memTx) RejectOtherBids(_ context.Context, gigID, keepBidID string) (int, error) {
	bids, err := t.bidsOf(gigID)
	if err != nil {
		return 0, fmt.Errorf("reject bids: %w", err)
	}

	rejected := 0
	for _, b := range bids {
		if b.BidID == keepBidID {
			continue
		}
		b.Status = model.BidRejected
		t.bids[b.BidID] = b
		rejected++
	}
	return rejected, nil
}

// bidsOf merges committed and staged bids of a gig, preserving insertion order
func (t *memTx) bidsOf(gigID string) ([]model.Bid, error) {
	t.repo.mu.RLock()
	defer t.repo.mu.RUnlock()

	_, committed := t.repo.gigs[gigID]
	_, staged := t.gigs[gigID]
	if !committed && !staged {
		return nil, fmt.Errorf("bids of gig %s: %w", gigID, gigerrors.ErrGigNotFound)
	}

	ids := append(append([]string(nil), t.repo.gigBids[gigID]...), t.newBid[gigID]...)
	bids := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		if b, ok := t.bids[id]; ok {
			bids = append(bids, b)
			continue
		}
		bids = append(bids, t.repo.bids[id])
	}
	return bids, nil
}

func (t *memTx) commit() {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	for id, g := range t.gigs {
		t.repo.gigs[id] = g
	}
	for id, b := range t.bids {
		t.repo.bids[id] = b
	}
	for gigID, ids := range t.newBid {
		t.repo.gigBids[gigID] = append(t.repo.gigBids[gigID], ids...)
	}
}
