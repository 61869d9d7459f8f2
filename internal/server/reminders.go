package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	reminderdomain "github.com/homelife/backoffice/internal/reminder/domain"
)

type createReminderRequest struct {
	Text    string `json:"text"`
	DueDate string `json:"dueDate"`
}

func (s *Server) CreateReminder(c *gin.Context) {
	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		AbortWithError(c, newValidationError("dueDate", "invalid_date", "invalid due date"))
		return
	}
	if due == nil {
		AbortWithError(c, reminderdomain.ErrInvalidDueDate)
		return
	}

	reminder, err := s.reminderSvc.Create(c.Request.Context(), reminderdomain.CreateReminderRequest{
		Text:    strings.TrimSpace(req.Text),
		DueDate: *due,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reminder})
}

func (s *Server) ListReminders(c *gin.Context) {
	reminders, err := s.reminderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reminders})
}
