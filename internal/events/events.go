package events

// Back-office event types written to the outbox.
const (
	EventEntryPosted    = "ledger.entry_posted"
	EventReceiptPosted  = "receipt.posted"
	EventLedgerCleared  = "ledger.cleared"
	EventListingCreated = "listing.created"
	EventListingDeleted = "listing.deleted"
)
