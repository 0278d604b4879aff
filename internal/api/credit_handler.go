package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// TransactionResponse represents one credit ledger entry.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionsResponse is the payload for the ledger history endpoint.
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// CreditHandler handles credit balance and ledger HTTP requests.
type CreditHandler struct {
	credits store.CreditStore
	logger  *slog.Logger
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(credits store.CreditStore, logger *slog.Logger) *CreditHandler {
	if credits == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("credits cannot be nil for CreditHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CreditHandler")
	}

	return &CreditHandler{
		credits: credits,
		logger:  logger.With(slog.String("component", "credit_handler")),
	}
}

// GetBalance handles GET /credits requests.
func (h *CreditHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	balance, err := h.credits.Balance(r.Context(), userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get credit balance"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BalanceResponse{Credits: balance})
}

// GetTransactions handles GET /credits/transactions requests. It returns
// the user's most recent ledger entries, newest first.
func (h *CreditHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	transactions, err := h.credits.Transactions(r.Context(), userID, 0)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get transactions"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := TransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(transactions)),
	}
	for _, tx := range transactions {
		response.Transactions = append(response.Transactions, TransactionResponse{
			ID:        tx.ID.String(),
			Amount:    tx.Amount,
			Kind:      string(tx.Kind),
			Reason:    tx.Reason,
			CreatedAt: tx.CreatedAt,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
