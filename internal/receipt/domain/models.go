package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
)

// CashReceiptEntry is one debit-or-credit line produced by posting a cash
// receipt. Receipts live in their own table, separate from the general
// ledger; the trial balance merges both sources.
type CashReceiptEntry struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	AccountNumber string          `gorm:"type:text;not null;index" json:"accountNumber"`
	AccountName   string          `gorm:"type:text;not null" json:"accountName"`
	Debit         decimal.Decimal `gorm:"type:numeric;not null" json:"debit"`
	Credit        decimal.Decimal `gorm:"type:numeric;not null" json:"credit"`
	Description   string          `gorm:"type:text" json:"description"`
	Date          *time.Time      `gorm:"index" json:"date,omitempty"`
	Reference     string          `gorm:"type:text;index" json:"reference"`
	EffectiveDate time.Time       `gorm:"not null;index" json:"effectiveDate"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (CashReceiptEntry) TableName() string { return "cash_receipt_entries" }

// ToLedgerEntry maps a receipt line into the canonical ledger entry shape
// used by the trial balance.
func (e CashReceiptEntry) ToLedgerEntry() ledgerdomain.LedgerEntry {
	return ledgerdomain.LedgerEntry{
		ID:            e.ID,
		AccountNumber: e.AccountNumber,
		AccountName:   e.AccountName,
		Debit:         e.Debit,
		Credit:        e.Credit,
		Description:   e.Description,
		Date:          e.Date,
		Reference:     e.Reference,
		Type:          ledgerdomain.EntryTypeCashReceipt,
		EffectiveDate: e.EffectiveDate,
		CreatedAt:     e.CreatedAt,
	}
}

// Allocation is one account allocation of a received amount.
type Allocation struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string
}

// Receipt is a cash receipt to post: money received into a cash account,
// allocated across one or more credit accounts.
type Receipt struct {
	CashAccountNumber string
	Date              time.Time
	ReceivedFrom      string
	Amount            decimal.Decimal
	Allocations       []Allocation
}
