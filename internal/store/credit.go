package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// CreditStore is the credit ledger: a per-user integer balance consulted
// before every paid operation, plus an audit trail of every change.
type CreditStore interface {
	// Debit atomically subtracts amount from the user's balance and writes
	// the matching ledger entry. The decrement is applied as a single
	// conditional SQL statement, never an application-level
	// read-modify-write, so two concurrent debits (two open browser tabs)
	// can never authorize spending credits that do not exist.
	//
	// Returns ErrInsufficientCredits, with no mutation of any kind, when
	// the balance is smaller than amount. Returns ErrInvalidAmount when
	// amount is not positive. Returns ErrUserNotFound for unknown users.
	Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) error

	// Credit atomically adds amount to the user's balance and writes the
	// matching ledger entry. There is no upper bound. Returns
	// ErrInvalidAmount when amount is not positive.
	Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) error

	// Balance returns the user's current credit balance.
	// Returns ErrUserNotFound if the user does not exist.
	Balance(ctx context.Context, userID uuid.UUID) (int, error)

	// Transactions returns the user's most recent ledger entries, newest
	// first, capped at limit.
	Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.CreditTransaction, error)
}
