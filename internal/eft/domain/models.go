package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// EFTRecord is a read model over posted ledger lines carrying an EFT number.
// Commission trust disbursements land in the ledger as EFT-typed postings; this
// view surfaces them without a second table.
type EFTRecord struct {
	EntryID       snowflake.ID    `json:"entryId"`
	EFTNumber     string          `json:"eftNumber"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
}

// EFTService lists commission trust EFT disbursements.
type EFTService interface {
	List(ctx context.Context) ([]EFTRecord, error)
}

// Service is the package alias for EFTService.
type Service = EFTService
