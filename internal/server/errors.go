package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	listingdomain "github.com/homelife/backoffice/internal/listing/domain"
	obscontext "github.com/homelife/backoffice/internal/observability/context"
	receiptdomain "github.com/homelife/backoffice/internal/receipt/domain"
	reminderdomain "github.com/homelife/backoffice/internal/reminder/domain"
)

// APIError is the wire shape of every non-2xx response.
type APIError struct {
	Status    int    `json:"-"`
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func (e *APIError) Error() string { return e.Message }

var (
	ErrNotFound = &APIError{
		Status:  http.StatusNotFound,
		Code:    "not_found",
		Message: "resource not found",
	}
	ErrServiceUnavailable = &APIError{
		Status:  http.StatusServiceUnavailable,
		Code:    "service_unavailable",
		Message: "service unavailable",
	}
	ErrTooManyRequests = &APIError{
		Status:  http.StatusTooManyRequests,
		Code:    "rate_limited",
		Message: "too many requests",
	}
)

func invalidRequestError() *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "invalid request body",
	}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// validationSentinels maps domain validation errors to request-level codes.
var validationSentinels = []error{
	ledgerdomain.ErrInvalidEntryLines,
	ledgerdomain.ErrInvalidAccount,
	ledgerdomain.ErrInvalidLineAmount,
	ledgerdomain.ErrOneSidedLine,
	ledgerdomain.ErrUnbalancedEntry,
	ledgerdomain.ErrMissingDebitSide,
	ledgerdomain.ErrMissingCreditSide,
	receiptdomain.ErrInvalidCashAccount,
	receiptdomain.ErrInvalidAmount,
	receiptdomain.ErrMissingAllocations,
	receiptdomain.ErrInvalidAllocation,
	receiptdomain.ErrAllocationMismatch,
	receiptdomain.ErrUnknownAccount,
	receiptdomain.ErrMissingReceiptDate,
	listingdomain.ErrInvalidAddress,
	listingdomain.ErrInvalidPrice,
	listingdomain.ErrInvalidStatus,
	reminderdomain.ErrInvalidText,
	reminderdomain.ErrInvalidDueDate,
}

// AbortWithError writes the error envelope and stops the handler chain.
// Domain validation sentinels map to 400, missing records to 404, anything
// unrecognized to 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		abort(c, apiErr)
		return
	}

	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			abort(c, &APIError{
				Status:  http.StatusBadRequest,
				Code:    sentinel.Error(),
				Message: sentinel.Error(),
			})
			return
		}
	}

	if errors.Is(err, listingdomain.ErrNotFound) {
		abort(c, ErrNotFound)
		return
	}

	abort(c, &APIError{
		Status:    http.StatusInternalServerError,
		Code:      "internal_error",
		Message:   "internal error",
		RequestID: obscontext.RequestIDFromGin(c),
	})
	_ = c.Error(err)
}

func abort(c *gin.Context, apiErr *APIError) {
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
}
