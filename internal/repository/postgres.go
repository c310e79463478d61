package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gig-hire/internal/gigerrors"
	model "gig-hire/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

// schema is applied by Migrate. The unique index is the storage-level guard
// against two bids from the same bidder on one gig.
const schema = `
CREATE TABLE IF NOT EXISTS gigs (
    id          TEXT PRIMARY KEY,
    owner_id    TEXT NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    budget      NUMERIC(14,2) NOT NULL CHECK (budget > 0),
    status      TEXT NOT NULL DEFAULT 'open',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS bids (
    id         TEXT PRIMARY KEY,
    gig_id     TEXT NOT NULL REFERENCES gigs(id),
    bidder_id  TEXT NOT NULL,
    message    TEXT NOT NULL,
    price      NUMERIC(14,2) NOT NULL CHECK (price > 0),
    status     TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS bids_gig_bidder_uniq ON bids (gig_id, bidder_id);
CREATE INDEX IF NOT EXISTS gigs_status_created_idx ON gigs (status, created_at DESC);
`

const (
	gigColumns = `id, owner_id, title, description, budget, status, created_at`
	bidColumns = `id, gig_id, bidder_id, message, price, status, created_at`
)

// PostgreSQL error codes that are mapped onto domain errors
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"

	bidderUniqueIndex = "bids_gig_bidder_uniq"
)

// PostgresRepo is a GigStore backed by PostgreSQL through database/sql
type PostgresRepo struct {
	db *sql.DB
}

// NewPostgresRepo wraps an open database handle
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// Migrate creates the tables and indexes if they do not exist
func (r *PostgresRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Transaction runs fn inside a database transaction. Every mutating path locks
// the gig row first, so writers on the same gig are serialized by Postgres.
func (r *PostgresRepo) Transaction(ctx context.Context, fn func(tx Tx) error) (err error) {
	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", mapPgError(err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = sqlTx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&pgTx{tx: sqlTx}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", mapPgError(err))
	}
	return nil
}

// GetGig returns a gig without locking it
func (r *PostgresRepo) GetGig(ctx context.Context, gigID string) (model.Gig, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gigColumns+` FROM gigs WHERE id = $1`, gigID)
	gig, err := scanGig(row)
	if err != nil {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListOpenGigs returns all open gigs, newest first
func (r *PostgresRepo) ListOpenGigs(ctx context.Context) ([]model.Gig, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+gigColumns+` FROM gigs WHERE status = $1 ORDER BY created_at DESC, id ASC`, model.GigOpen)
	if err != nil {
		return nil, fmt.Errorf("list open gigs: %w", err)
	}
	defer rows.Close()

	gigs := []model.Gig{}
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			return nil, fmt.Errorf("list open gigs: %w", err)
		}
		gigs = append(gigs, gig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list open gigs: %w", err)
	}
	return gigs, nil
}

// ListBidsByGig returns every bid on a gig, oldest first
func (r *PostgresRepo) ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	if _, err := r.GetGig(ctx, gigID); err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return listBids(ctx, r.db, gigID)
}

// queryer is the subset shared by *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func listBids(ctx context.Context, q queryer, gigID string) ([]model.Bid, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE gig_id = $1 ORDER BY created_at ASC, id ASC`, gigID)
	if err != nil {
		return nil, fmt.Errorf("list bids for gig %s: %w", gigID, err)
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("list bids for gig %s: %w", gigID, err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bids for gig %s: %w", gigID, err)
	}
	return bids, nil
}

type pgTx struct {
	tx *sql.Tx
}

func (t *pgTx) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, bidID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, gigerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, mapPgError(err))
	}
	return bid, nil
}

func (t *pgTx) GetGig(ctx context.Context, gigID string) (model.Gig, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT `+gigColumns+` FROM gigs WHERE id = $1 FOR UPDATE`, gigID)
	gig, err := scanGig(row)
	if err != nil {
		return model.Gig{}, fmt.Errorf("lock gig %s: %w", gigID, mapPgError(err))
	}
	return gig, nil
}

func (t *pgTx) FindBid(ctx context.Context, gigID, bidderID string) (model.Bid, error) {
	row := t.tx.QueryRowContext(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE gig_id = $1 AND bidder_id = $2`, gigID, bidderID)
	bid, err := scanBid(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("find bid on gig %s by %s: %w", gigID, bidderID, gigerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("find bid on gig %s by %s: %w", gigID, bidderID, mapPgError(err))
	}
	return bid, nil
}

func (t *pgTx) ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	return listBids(ctx, t.tx, gigID)
}

func (t *pgTx) InsertGig(ctx context.Context, gig model.Gig) error {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO gigs (`+gigColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		gig.GigID, gig.OwnerID, gig.Title, gig.Description, gig.Budget, gig.Status, gig.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gig %s: %w", gig.GigID, mapPgError(err))
	}
	return nil
}

func (t *pgTx) InsertBid(ctx context.Context, bid model.Bid) error {
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO bids (`+bidColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bid.BidID, bid.GigID, bid.BidderID, bid.Message, bid.Price, bid.Status, bid.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid on gig %s by %s: %w", bid.GigID, bid.BidderID, mapPgError(err))
	}
	return nil
}

func (t *pgTx) SetGigStatus(ctx context.Context, gigID string, status model.GigStatus) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE gigs SET status = $1 WHERE id = $2`, status, gigID)
	if err != nil {
		return fmt.Errorf("set gig %s status: %w", gigID, mapPgError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set gig %s status: %w", gigID, gigerrors.ErrGigNotFound)
	}
	return nil
}

func (t *pgTx) SetBidStatus(ctx context.Context, bidID string, status model.BidStatus) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE bids SET status = $1 WHERE id = $2`, status, bidID)
	if err != nil {
		return fmt.Errorf("set bid %s status: %w", bidID, mapPgError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set bid %s status: %w", bidID, gigerrors.ErrBidNotFound)
	}
	return nil
}

func (t *pgTx) RejectOtherBids(ctx context.Context, gigID, keepBidID string) (int, error) {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE bids SET status = $1 WHERE gig_id = $2 AND id <> $3`, model.BidRejected, gigID, keepBidID)
	if err != nil {
		return 0, fmt.Errorf("reject bids on gig %s: %w", gigID, mapPgError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reject bids on gig %s: %w", gigID, err)
	}
	return int(n), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGig(s rowScanner) (model.Gig, error) {
	var g model.Gig
	err := s.Scan(&g.GigID, &g.OwnerID, &g.Title, &g.Description, &g.Budget, &g.Status, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Gig{}, gigerrors.ErrGigNotFound
	}
	return g, err
}

func scanBid(s rowScanner) (model.Bid, error) {
	var b model.Bid
	err := s.Scan(&b.BidID, &b.GigID, &b.BidderID, &b.Message, &b.Price, &b.Status, &b.CreatedAt)
	return b, err
}

// mapPgError turns serialization failures and unique violations into domain
// conflicts. Anything else is returned as is.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w (sqlstate %s)", gigerrors.ErrTxConflict, pgErr.Code)
	case pgUniqueViolation:
		if pgErr.ConstraintName == bidderUniqueIndex {
			return fmt.Errorf("%w (%s)", gigerrors.ErrDuplicateBid, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w (%s)", gigerrors.ErrConflict, pgErr.ConstraintName)
	default:
		return err
	}
}
