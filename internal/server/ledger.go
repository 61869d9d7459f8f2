package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	"github.com/homelife/backoffice/internal/sequence"
)

type postLedgerLine struct {
	AccountNumber string `json:"accountNumber"`
	Debit         string `json:"debit"`
	Credit        string `json:"credit"`
	Description   string `json:"description"`
}

type postLedgerRequest struct {
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Lines       []postLedgerLine `json:"lines"`
}

func (s *Server) PostLedgerEntries(c *gin.Context) {
	var req postLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "invalid date"))
		return
	}

	lines := make([]ledgerdomain.PostLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, ledgerdomain.PostLine{
			AccountNumber: strings.TrimSpace(line.AccountNumber),
			Debit:         strings.TrimSpace(line.Debit),
			Credit:        strings.TrimSpace(line.Credit),
			Description:   strings.TrimSpace(line.Description),
		})
	}

	entries, err := s.ledgerSvc.PostBatch(c.Request.Context(), date, strings.TrimSpace(req.Description), lines)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if len(entries) > 0 {
		targetID := entries[0].Reference
		s.audit(c, "ledger.post", "ledger_entry", &targetID, map[string]any{
			"reference":  entries[0].Reference,
			"line_count": len(entries),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *Server) ListLedgerEntries(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	entries, err := s.ledgerSvc.List(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *Server) ClearLedger(c *gin.Context) {
	if err := s.ledgerSvc.ClearAll(c.Request.Context()); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "ledger.clear_all", "ledger", nil, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) NextReference(c *gin.Context) {
	kind := strings.ToUpper(strings.TrimSpace(c.Param("kind")))
	switch kind {
	case sequence.KindJE:
		reference, err := s.ledgerSvc.NextReference(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"reference": reference}})
	case sequence.KindAR:
		reference, err := s.seq.Peek(c.Request.Context(), sequence.KindAR)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"reference": reference}})
	default:
		AbortWithError(c, newValidationError("kind", "invalid_kind", "kind must be AR or JE"))
	}
}

// parseOptionalDate accepts "2006-01-02" or RFC3339; empty means absent.
func parseOptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseDateRange(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := parseOptionalDate(c.Query("from"))
	if err != nil {
		return nil, nil, newValidationError("from", "invalid_date", "invalid from date")
	}
	to, err := parseOptionalDate(c.Query("to"))
	if err != nil {
		return nil, nil, newValidationError("to", "invalid_date", "invalid to date")
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, newValidationError("range", "invalid_range", "from must be before to")
	}
	return from, to, nil
}
