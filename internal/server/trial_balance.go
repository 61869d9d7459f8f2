package server

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	tbdomain "github.com/homelife/backoffice/internal/trialbalance/domain"
)

func (s *Server) GetTrialBalance(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report, err := s.trialBalanceSvc.Build(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		writeTrialBalanceCSV(c, report)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func writeTrialBalanceCSV(c *gin.Context, report tbdomain.TrialBalance) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "trial_balance.csv"))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write([]string{"Account", "Description", "Type", "Debit", "Credit", "Balance"})
	for _, row := range report.Rows {
		_ = writer.Write([]string{
			row.Account.Number,
			row.Account.Description,
			string(row.Account.Type),
			row.DebitTotal.StringFixed(2),
			row.CreditTotal.StringFixed(2),
			row.Balance.StringFixed(2),
		})
	}
}
