package gigerrors

import (
	"errors"
	"fmt"
)

// Error categories. Every domain error wraps exactly one of these so the
// request boundary can classify it with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
)

// Identity errors
var (
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Repository-level errors
var (
	ErrGigNotFound = fmt.Errorf("gig %w", ErrNotFound)
	ErrBidNotFound = fmt.Errorf("bid %w", ErrNotFound)
	ErrTxConflict  = fmt.Errorf("%w: concurrent update, retry the request", ErrConflict)
)

// business logic errors
var (
	ErrNotGigOwner  = fmt.Errorf("%w: not the gig owner", ErrUnauthorized)
	ErrGigClosed    = fmt.Errorf("%w: gig closed", ErrConflict)
	ErrGigAssigned  = fmt.Errorf("%w: gig already assigned", ErrConflict)
	ErrDuplicateBid = fmt.Errorf("%w: duplicate bid", ErrConflict)
	ErrInvalidBid   = fmt.Errorf("%w: invalid bid", ErrValidation)
	ErrInvalidGig   = fmt.Errorf("%w: invalid gig", ErrValidation)
)
