package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/service"
)

type Handler struct {
	donations *service.DonationService
	campaigns *service.CampaignService
	requests  *service.RequestService
	profiles  *service.ProfileService
	contacts  *service.ContactService
	orgs      *service.OrganizationService
	log       zerolog.Logger
}

func NewHandler(
	donations *service.DonationService,
	campaigns *service.CampaignService,
	requests *service.RequestService,
	profiles *service.ProfileService,
	contacts *service.ContactService,
	orgs *service.OrganizationService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		donations: donations,
		campaigns: campaigns,
		requests:  requests,
		profiles:  profiles,
		contacts:  contacts,
		orgs:      orgs,
		log:       log,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvariantViolation):
		h.log.Error().Err(err).Msg("data invariant violated")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(param)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

func parseCategoryQuery(c *gin.Context) (*model.CampaignCategory, bool) {
	raw := strings.TrimSpace(c.Query("category"))
	if raw == "" {
		return nil, true
	}
	category := model.CampaignCategory(strings.ToUpper(raw))
	if !category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return nil, false
	}
	return &category, true
}

func parseStatusQuery(c *gin.Context) (*model.ApprovalStatus, bool) {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return nil, true
	}
	status := model.ApprovalStatus(strings.ToUpper(raw))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return nil, false
	}
	return &status, true
}
