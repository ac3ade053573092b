package handler

import (
	"encoding/json"
	"net/http"

	"github.com/iho/pocketledger/internal/adapter/http/dto"
	"github.com/iho/pocketledger/internal/adapter/http/view"
	"github.com/iho/pocketledger/internal/usecase"
)

// APIHandler serves the JSON ledger endpoints.
type APIHandler struct {
	deps Deps
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(deps Deps) *APIHandler {
	return &APIHandler{deps: deps}
}

func (h *APIHandler) ledger(r *http.Request, prompter usecase.Prompter) *usecase.LedgerUseCase {
	return usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Store:    h.deps.Store,
		Prompter: prompter,
		Recorder: h.deps.Recorder,
		Logger:   h.deps.requestLogger(r),
	})
}

// ListTransactions returns the transaction log.
func (h *APIHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.ledger(r, nil).Transactions(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}

// CreateTransaction adds a transaction and returns the updated summary.
func (h *APIHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	uc := h.ledger(r, nil)
	if err := uc.AddTransaction(r.Context(), &req); err != nil {
		writeError(w, mapDomainError(err), "failed to add transaction", err.Error())
		return
	}

	h.writeSummary(w, r, uc, http.StatusCreated)
}

// ListCards returns the saved cards.
func (h *APIHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.ledger(r, nil).Cards(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read cards", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CardsFromDomain(cards))
}

// CreateCard adds a card.
func (h *APIHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Number == "" {
		writeError(w, http.StatusBadRequest, "card number is required", "")
		return
	}

	uc := h.ledger(r, view.Answer{Value: req.Number, Given: true})
	if err := uc.AddCard(r.Context()); err != nil {
		writeError(w, mapDomainError(err), "failed to add card", err.Error())
		return
	}

	cards, err := uc.Cards(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read cards", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CardsFromDomain(cards))
}

// Summary returns the running balance and the expense summary.
func (h *APIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.writeSummary(w, r, h.ledger(r, nil), http.StatusOK)
}

// Reconciliation compares the running balance with the transaction log.
func (h *APIHandler) Reconciliation(w http.ResponseWriter, r *http.Request) {
	result, err := h.ledger(r, nil).Reconcile(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationFromDomain(result))
}

func (h *APIHandler) writeSummary(w http.ResponseWriter, r *http.Request, uc *usecase.LedgerUseCase, status int) {
	balance, err := uc.Balance(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read balance", err.Error())
		return
	}

	summary, err := uc.Summary(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to read summary", err.Error())
		return
	}

	writeJSON(w, status, dto.SummaryFromDomain(balance, summary))
}
