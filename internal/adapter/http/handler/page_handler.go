package handler

import (
	"net/http"

	"github.com/iho/pocketledger/internal/adapter/http/view"
	"github.com/iho/pocketledger/internal/usecase"
)

// Page form fields.
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldType        = "transaction-type"
	FieldCardNumber  = "card-number"
)

// PageHandler serves the HTML ledger page.
type PageHandler struct {
	deps Deps
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(deps Deps) *PageHandler {
	return &PageHandler{deps: deps}
}

func (h *PageHandler) ledger(r *http.Request, page *view.Page, prompter usecase.Prompter) *usecase.LedgerUseCase {
	return usecase.NewLedgerUseCase(usecase.LedgerConfig{
		Store:    h.deps.Store,
		Surfaces: page.Surfaces(),
		Alerter:  &page.Alerts,
		Prompter: prompter,
		Recorder: h.deps.Recorder,
		Logger:   h.deps.requestLogger(r),
	})
}

// Show renders the page from the stored records.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	page := view.NewPage()
	if err := h.ledger(r, page, nil).Load(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
		return
	}

	h.render(w, r, http.StatusOK, page)
}

// AddTransaction handles the transaction form. A rejected form is rendered
// back with the alert and the entered values; an accepted one redirects to
// the page.
func (h *PageHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form", err.Error())
		return
	}

	page := view.NewPage()
	page.Form = view.Form{
		Description: r.PostForm.Get(FieldDescription),
		Amount:      r.PostForm.Get(FieldAmount),
		Type:        r.PostForm.Get(FieldType),
	}

	uc := h.ledger(r, page, nil)
	err := uc.AddTransaction(r.Context(), &page.Form)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case usecase.IsInvalidInput(err):
		if err := uc.Load(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load ledger", err.Error())
			return
		}
		h.render(w, r, mapDomainError(err), page)
	default:
		writeError(w, mapDomainError(err), "failed to add transaction", err.Error())
	}
}

// AddCard handles the card prompt answer.
func (h *PageHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form", err.Error())
		return
	}

	number := r.PostForm.Get(FieldCardNumber)
	answer := view.Answer{Value: number, Given: number != ""}

	if err := h.ledger(r, view.NewPage(), answer).AddCard(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to add card", err.Error())
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page *view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		logger := h.deps.requestLogger(r)
		logger.Error().Err(err).Msg("failed to render page")
	}
}
