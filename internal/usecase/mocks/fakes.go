package mocks

import (
	"context"
	"sync"

	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/usecase"
)

// FakeStore is an in-memory usecase.RecordStore. GetFunc and SetFunc override
// the default behavior when set.
type FakeStore struct {
	mu      sync.RWMutex
	records map[string]string
	Writes  int

	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{records: make(map[string]string)}
}

func (s *FakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, key)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.records[key]
	return v, ok, nil
}

func (s *FakeStore) Set(ctx context.Context, key, value string) error {
	if s.SetFunc != nil {
		return s.SetFunc(ctx, key, value)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = value
	s.Writes++
	return nil
}

// Raw returns the stored text for key.
func (s *FakeStore) Raw(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[key]
}

// TextRecorder is a usecase.TextSink that keeps the last text and a count of
// writes.
type TextRecorder struct {
	Text   string
	Writes int
}

func (r *TextRecorder) SetText(text string) {
	r.Text = text
	r.Writes++
}

// ListRecorder is a usecase.ListSink that keeps its rows.
type ListRecorder struct {
	Rows   []usecase.Row
	Clears int
}

func (r *ListRecorder) Clear() {
	r.Rows = nil
	r.Clears++
}

func (r *ListRecorder) Append(row usecase.Row) {
	r.Rows = append(r.Rows, row)
}

// Texts returns the text of every row.
func (r *ListRecorder) Texts() []string {
	out := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Text()
	}
	return out
}

// ChartRecorder is a usecase.ChartRenderer that keeps every spec it was given.
type ChartRecorder struct {
	Specs []domain.ChartSpec
}

func (r *ChartRecorder) Render(_ context.Context, spec domain.ChartSpec) error {
	r.Specs = append(r.Specs, spec)
	return nil
}

// Last returns the most recent spec.
func (r *ChartRecorder) Last() domain.ChartSpec {
	if len(r.Specs) == 0 {
		return domain.ChartSpec{}
	}
	return r.Specs[len(r.Specs)-1]
}

// StaticForm is a usecase.TransactionForm with fixed values until reset.
type StaticForm struct {
	Input  domain.TransactionInput
	Resets int
}

func (f *StaticForm) Fields() domain.TransactionInput {
	return f.Input
}

func (f *StaticForm) Reset() {
	f.Input = domain.TransactionInput{}
	f.Resets++
}
