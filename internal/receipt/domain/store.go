package domain

import (
	"context"
	"time"
)

// Store is the cash-receipt persistence port. Implementations must keep the
// entry list append-only: entries are never updated, only appended or wiped
// wholesale by Clear.
type Store interface {
	Append(ctx context.Context, entries []CashReceiptEntry) error
	List(ctx context.Context) ([]CashReceiptEntry, error)
	// ListRange filters on effective date using inclusive calendar-day
	// semantics in the given location: [from 00:00, to end-of-day].
	ListRange(ctx context.Context, from, to time.Time, loc *time.Location) ([]CashReceiptEntry, error)
	Clear(ctx context.Context) error
}
