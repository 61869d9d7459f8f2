package domain

import (
	"context"
	"errors"
)

// ReceiptService posts cash receipts.
type ReceiptService interface {
	// PostReceipt validates the receipt, issues an AR number, and appends a
	// balanced debit/credit group to the store. Returns the issued AR number
	// and the stored entries.
	PostReceipt(ctx context.Context, receipt Receipt) (string, []CashReceiptEntry, error)
}

// Service is the package alias for ReceiptService.
type Service = ReceiptService

var (
	ErrInvalidCashAccount = errors.New("invalid_cash_account")
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrMissingAllocations = errors.New("missing_allocations")
	ErrInvalidAllocation  = errors.New("invalid_allocation")
	ErrAllocationMismatch = errors.New("allocation_total_mismatch")
	ErrUnknownAccount     = errors.New("unknown_account")
	ErrMissingReceiptDate = errors.New("missing_receipt_date")
)
