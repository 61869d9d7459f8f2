package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListAgents(c *gin.Context) {
	agents, err := s.agentSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": agents})
}
