package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the accounting side of a credit ledger entry.
type TransactionKind string

// Ledger entry kinds.
const (
	TransactionDebit  TransactionKind = "debit"
	TransactionCredit TransactionKind = "credit"
)

// Credit transaction validation errors
var (
	ErrInvalidAmount       = errors.New("credit amount must be positive")
	ErrEmptyTransactionRef = errors.New("credit transaction reason cannot be empty")
)

// CreditTransaction is one audit row in the credit ledger, written in the
// same database transaction as the balance change it describes. Amount is
// always positive; Kind carries the direction.
type CreditTransaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    int             `json:"amount"`
	Kind      TransactionKind `json:"kind"`
	Reason    string          `json:"reason"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewCreditTransaction creates a ledger audit entry for a balance change.
// Returns an error if the amount is not positive or the reason is empty.
func NewCreditTransaction(userID uuid.UUID, amount int, kind TransactionKind, reason string) (*CreditTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reason == "" {
		return nil, ErrEmptyTransactionRef
	}

	return &CreditTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Kind:      kind,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}, nil
}
