package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	receiptdomain "github.com/homelife/backoffice/internal/receipt/domain"
)

type receiptAllocation struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
}

type postReceiptRequest struct {
	CashAccountNumber string              `json:"cashAccountNumber"`
	Date              string              `json:"date"`
	ReceivedFrom      string              `json:"receivedFrom"`
	Amount            string              `json:"amount"`
	Allocations       []receiptAllocation `json:"allocations"`
}

func (s *Server) PostReceipt(c *gin.Context) {
	var req postReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "invalid date"))
		return
	}
	if date == nil {
		AbortWithError(c, receiptdomain.ErrMissingReceiptDate)
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		AbortWithError(c, newValidationError("amount", "invalid_amount", "invalid amount"))
		return
	}

	allocations := make([]receiptdomain.Allocation, 0, len(req.Allocations))
	for _, alloc := range req.Allocations {
		parsed, err := decimal.NewFromString(strings.TrimSpace(alloc.Amount))
		if err != nil {
			AbortWithError(c, newValidationError("allocations", "invalid_amount", "invalid allocation amount"))
			return
		}
		allocations = append(allocations, receiptdomain.Allocation{
			AccountNumber: strings.TrimSpace(alloc.AccountNumber),
			Amount:        parsed,
			Description:   strings.TrimSpace(alloc.Description),
		})
	}

	arNumber, entries, err := s.receiptSvc.PostReceipt(c.Request.Context(), receiptdomain.Receipt{
		CashAccountNumber: strings.TrimSpace(req.CashAccountNumber),
		Date:              *date,
		ReceivedFrom:      strings.TrimSpace(req.ReceivedFrom),
		Amount:            amount,
		Allocations:       allocations,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := arNumber
	s.audit(c, "receipt.post", "cash_receipt", &targetID, map[string]any{
		"ar_number": arNumber,
		"amount":    amount.String(),
	})

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"arNumber": arNumber,
		"entries":  entries,
	}})
}

func (s *Server) ListReceipts(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	store := s.receiptStore
	if store == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	var entries []receiptdomain.CashReceiptEntry
	if from != nil && to != nil {
		entries, err = store.ListRange(c.Request.Context(), *from, *to, s.cfg.Location())
	} else {
		entries, err = store.List(c.Request.Context())
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}
