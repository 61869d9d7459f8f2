package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Entry types as written by the posting workflows.
const (
	EntryTypeJournalEntry = "Journal Entry"
	EntryTypeCashReceipt  = "Cash Receipt"
	EntryTypeAPInvoice    = "AP Invoice"
	EntryTypeEFT          = "EFT"
)

// ManualJournalPlaceholder is a legacy description written in place of a real
// reference by older imports. It is never shown as a reference.
const ManualJournalPlaceholder = "Manual Journal Entry"

// LedgerEntry is a single immutable debit-or-credit line. A posting is the
// group of lines sharing one Reference and must balance within Tolerance.
type LedgerEntry struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	AccountNumber string          `gorm:"type:text;not null;index" json:"accountNumber"`
	AccountName   string          `gorm:"type:text;not null" json:"accountName"`
	Debit         decimal.Decimal `gorm:"type:numeric;not null" json:"debit"`
	Credit        decimal.Decimal `gorm:"type:numeric;not null" json:"credit"`
	Description   string          `gorm:"type:text" json:"description"`
	Date          *time.Time      `gorm:"index" json:"date,omitempty"`
	Reference     string          `gorm:"type:text;index" json:"reference"`
	Type          string          `gorm:"type:text;not null" json:"type"`
	APNumber      string          `gorm:"type:text" json:"apNumber,omitempty"`
	ChequeDate    *time.Time      `json:"chequeDate,omitempty"`
	EFTNumber     string          `gorm:"type:text" json:"eftNumber,omitempty"`
	// EffectiveDate is computed once at write time: Date when present,
	// CreatedAt otherwise. Range queries and ordering use it exclusively.
	EffectiveDate time.Time `gorm:"not null;index" json:"effectiveDate"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
}

// TableName sets the database table name.
func (LedgerEntry) TableName() string { return "ledger_entries" }

// Tolerance is the rounding tolerance for a balanced posting.
var Tolerance = decimal.NewFromFloat(0.01)

// EffectiveDateOf resolves the canonical ordering date for an entry.
func EffectiveDateOf(date *time.Time, createdAt time.Time) time.Time {
	if date != nil && !date.IsZero() {
		return *date
	}
	return createdAt
}

// DisplayReference resolves the reference label for one entry. Cash receipts
// always show their AR number; AP postings show the AP number; journal entries
// show the server-issued JE reference; EFT postings show the EFT number.
func (e LedgerEntry) DisplayReference() string {
	switch {
	case e.Type == EntryTypeCashReceipt:
		if e.Reference == "" || e.Reference == "null" {
			return "-"
		}
		return e.Reference
	case e.APNumber != "":
		return e.APNumber
	case e.Type == EntryTypeJournalEntry:
		if e.Reference == "" {
			return "-"
		}
		return e.Reference
	case e.Reference != "" && e.Reference != ManualJournalPlaceholder:
		return e.Reference
	case e.EFTNumber != "":
		return "EFT" + e.EFTNumber
	default:
		return "-"
	}
}

// DisplayDate resolves the date label for one entry.
func (e LedgerEntry) DisplayDate() time.Time {
	switch {
	case e.Type == EntryTypeCashReceipt && e.Date != nil:
		return *e.Date
	case e.APNumber != "" && e.Date != nil:
		return *e.Date
	case e.ChequeDate != nil:
		return *e.ChequeDate
	case e.Date != nil:
		return *e.Date
	default:
		return e.CreatedAt
	}
}
