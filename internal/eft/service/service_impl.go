package service

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/homelife/backoffice/internal/eft/domain"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("eft.service"),
	}
}

// List projects every ledger line that carries an EFT number into the trust
// disbursement view, newest first.
func (s *Service) List(ctx context.Context) ([]domain.EFTRecord, error) {
	var entries []ledgerdomain.LedgerEntry
	err := s.db.WithContext(ctx).
		Where("eft_number <> ''").
		Order("effective_date DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	records := make([]domain.EFTRecord, 0, len(entries))
	for _, entry := range entries {
		amount := entry.Debit
		if amount.IsZero() {
			amount = entry.Credit
		}
		records = append(records, domain.EFTRecord{
			EntryID:       entry.ID,
			EFTNumber:     entry.EFTNumber,
			AccountNumber: entry.AccountNumber,
			AccountName:   entry.AccountName,
			Amount:        amount,
			Description:   entry.Description,
			Date:          entry.DisplayDate(),
		})
	}
	return records, nil
}
