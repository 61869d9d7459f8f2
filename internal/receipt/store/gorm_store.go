package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	"github.com/homelife/backoffice/internal/receipt/domain"
)

// GormStore persists cash receipts in the cash_receipt_entries table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Append(ctx context.Context, entries []domain.CashReceiptEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&entries).Error
}

func (s *GormStore) List(ctx context.Context) ([]domain.CashReceiptEntry, error) {
	var entries []domain.CashReceiptEntry
	err := s.db.WithContext(ctx).
		Order("effective_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) ListRange(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.CashReceiptEntry, error) {
	start, end := ledgerdomain.DayBounds(from, to, loc)
	var entries []domain.CashReceiptEntry
	err := s.db.WithContext(ctx).
		Where("effective_date >= ? AND effective_date <= ?", start, end).
		Order("effective_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec(`DELETE FROM cash_receipt_entries`).Error
}

var _ domain.Store = (*GormStore)(nil)
