package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListEFTRecords(c *gin.Context) {
	records, err := s.eftSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}
