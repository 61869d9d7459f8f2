package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	listingdomain "github.com/homelife/backoffice/internal/listing/domain"
)

type createListingRequest struct {
	MLSNumber string `json:"mlsNumber"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ListPrice string `json:"listPrice"`
	AgentName string `json:"agentName"`
	Status    string `json:"status"`
}

type updateListingRequest struct {
	MLSNumber *string `json:"mlsNumber"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	ListPrice *string `json:"listPrice"`
	AgentName *string `json:"agentName"`
	Status    *string `json:"status"`
}

type listingNoteRequest struct {
	Note string `json:"note"`
}

func (s *Server) CreateListing(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	price := decimal.Zero
	if strings.TrimSpace(req.ListPrice) != "" {
		parsed, err := decimal.NewFromString(strings.TrimSpace(req.ListPrice))
		if err != nil {
			AbortWithError(c, newValidationError("listPrice", "invalid_price", "invalid list price"))
			return
		}
		price = parsed
	}

	listing, err := s.listingSvc.Create(c.Request.Context(), listingdomain.CreateListingRequest{
		MLSNumber: strings.TrimSpace(req.MLSNumber),
		Address:   req.Address,
		City:      strings.TrimSpace(req.City),
		ListPrice: price,
		AgentName: strings.TrimSpace(req.AgentName),
		Status:    strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := listing.ID.String()
	s.audit(c, "listing.create", "listing", &targetID, map[string]any{
		"address": listing.Address,
		"status":  listing.Status,
	})

	c.JSON(http.StatusOK, gin.H{"data": listing})
}

func (s *Server) ListListings(c *gin.Context) {
	listings, err := s.listingSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": listings})
}

func (s *Server) UpdateListing(c *gin.Context) {
	id, err := parseListingID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := listingdomain.UpdateListingRequest{
		MLSNumber: req.MLSNumber,
		Address:   req.Address,
		City:      req.City,
		AgentName: req.AgentName,
		Status:    req.Status,
	}
	if req.ListPrice != nil {
		parsed, err := decimal.NewFromString(strings.TrimSpace(*req.ListPrice))
		if err != nil {
			AbortWithError(c, newValidationError("listPrice", "invalid_price", "invalid list price"))
			return
		}
		update.ListPrice = &parsed
	}

	listing, err := s.listingSvc.Update(c.Request.Context(), id, update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := listing.ID.String()
	s.audit(c, "listing.update", "listing", &targetID, map[string]any{
		"status": listing.Status,
	})

	c.JSON(http.StatusOK, gin.H{"data": listing})
}

func (s *Server) DeleteListing(c *gin.Context) {
	id, err := parseListingID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.listingSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := id.String()
	s.audit(c, "listing.delete", "listing", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetListingNote(c *gin.Context) {
	id, err := parseListingID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	note, err := s.listingSvc.GetNote(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"note": note}})
}

func (s *Server) PutListingNote(c *gin.Context) {
	id, err := parseListingID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req listingNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.listingSvc.SetNote(c.Request.Context(), id, req.Note); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseListingID(c *gin.Context) (snowflake.ID, error) {
	raw, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, newValidationError("id", "invalid_id", "invalid listing id")
	}
	return snowflake.ParseInt64(raw), nil
}
