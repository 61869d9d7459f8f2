package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homelife/backoffice/internal/report/render"
)

const reportCompanyName = "HomeLife Benchmark Realty Corp."

func (s *Server) clockNow() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return time.Now()
}

func (s *Server) GetTrialBalanceReport(c *gin.Context) {
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

	html, err := s.renderer.RenderTrialBalanceHTML(render.TrialBalanceInput{
		CompanyName: reportCompanyName,
		GeneratedAt: s.clockNow(),
		From:        from,
		To:          to,
		Rows:        report.Rows,
		TotalCount:  report.RowCount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) GetJournalReport(c *gin.Context) {
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

	html, err := s.renderer.RenderJournalHTML(render.JournalInput{
		CompanyName: reportCompanyName,
		GeneratedAt: s.clockNow(),
		Rows:        report.Merged,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
