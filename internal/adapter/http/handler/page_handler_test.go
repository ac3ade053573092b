package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/pocketledger/internal/usecase/mocks"
)

func newPageHandler(store *mocks.FakeStore) *PageHandler {
	return NewPageHandler(Deps{Store: store, Logger: zerolog.Nop()})
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPageHandler_ShowEmptyLedger(t *testing.T) {
	h := newPageHandler(mocks.NewFakeStore())

	rr := httptest.NewRecorder()
	h.Show(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, `<span id="total-balance">$0.00</span>`)
	assert.Contains(t, body, "Total Income: $0.00")
	assert.Contains(t, body, "Net Balance: $0.00")
}

func TestPageHandler_AddTransaction(t *testing.T) {
	store := mocks.NewFakeStore()
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.AddTransaction(rr, postForm("/transactions", url.Values{
		FieldDescription: {"Coffee"},
		FieldAmount:      {"4.5"},
		FieldType:        {"expense"},
	}))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, "-4.50", store.Raw("balance"))
	assert.JSONEq(t, `[{"description":"Coffee","amount":4.5,"type":"expense"}]`, store.Raw("transactions"))

	rr = httptest.NewRecorder()
	h.Show(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rr.Body.String()
	assert.Contains(t, body, `<span id="total-balance">$-4.50</span>`)
	assert.Contains(t, body, "Coffee")
	assert.Contains(t, body, `<span class="expense">- $4.50</span>`)
	assert.Contains(t, body, "Total Expense: $4.50")
}

func TestPageHandler_AddTransactionInvalid(t *testing.T) {
	store := mocks.NewFakeStore()
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.AddTransaction(rr, postForm("/transactions", url.Values{
		FieldDescription: {"Refund"},
		FieldAmount:      {"-5"},
		FieldType:        {"income"},
	}))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `alert("Please enter a valid description and amount.")`)
	assert.Contains(t, body, `value="Refund"`)
	assert.Contains(t, body, `value="-5"`)
	assert.Zero(t, store.Writes)
}

func TestPageHandler_AddTransactionStoreFailure(t *testing.T) {
	store := mocks.NewFakeStore()
	store.SetFunc = func(context.Context, string, string) error { return errors.New("disk full") }
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.AddTransaction(rr, postForm("/transactions", url.Values{
		FieldDescription: {"Salary"},
		FieldAmount:      {"1000"},
		FieldType:        {"income"},
	}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestPageHandler_AddCard(t *testing.T) {
	store := mocks.NewFakeStore()
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.AddCard(rr, postForm("/cards", url.Values{FieldCardNumber: {"4111111111111111"}}))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.JSONEq(t, `[{"number":"4111111111111111"}]`, store.Raw("cards"))

	rr = httptest.NewRecorder()
	h.Show(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rr.Body.String(), "Card: 4111111111111111")
}

func TestPageHandler_AddCardCancelled(t *testing.T) {
	store := mocks.NewFakeStore()
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.AddCard(rr, postForm("/cards", url.Values{}))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Zero(t, store.Writes)
}

func TestPageHandler_ShowStoreFailure(t *testing.T) {
	store := mocks.NewFakeStore()
	store.GetFunc = func(context.Context, string) (string, bool, error) {
		return "", false, errors.New("connection refused")
	}
	h := newPageHandler(store)

	rr := httptest.NewRecorder()
	h.Show(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
