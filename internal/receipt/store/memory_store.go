package store

import (
	"context"
	"sync"
	"time"

	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	"github.com/homelife/backoffice/internal/receipt/domain"
)

// MemoryStore is an in-memory cash-receipt store for tests and local mode.
type MemoryStore struct {
	mu      sync.Mutex
	entries []domain.CashReceiptEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make([]domain.CashReceiptEntry, 0)}
}

func (s *MemoryStore) Append(ctx context.Context, entries []domain.CashReceiptEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]domain.CashReceiptEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]domain.CashReceiptEntry, len(s.entries))
	copy(copied, s.entries)
	return copied, nil
}

func (s *MemoryStore) ListRange(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.CashReceiptEntry, error) {
	start, end := ledgerdomain.DayBounds(from, to, loc)
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.CashReceiptEntry
	for _, entry := range s.entries {
		if entry.EffectiveDate.Before(start) || entry.EffectiveDate.After(end) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = s.entries[:0]
	return nil
}

var _ domain.Store = (*MemoryStore)(nil)
