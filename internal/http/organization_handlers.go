package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/service"
)

type organizationRequest struct {
	Name       string  `json:"name" binding:"required"`
	WebsiteURL string  `json:"website_url"`
	Category   string  `json:"category" binding:"required"`
	ImageRef   *string `json:"image_ref"`
}

func (h *Handler) createOrganization(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req organizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgs.Create(c.Request.Context(), service.OrganizationInput{
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
		Category:   model.CampaignCategory(strings.ToUpper(req.Category)),
		ImageRef:   req.ImageRef,
		Principal:  principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrganizationResponse(*org))
}

func (h *Handler) listOrganizations(c *gin.Context) {
	category, ok := parseCategoryQuery(c)
	if !ok {
		return
	}

	orgs, err := h.orgs.List(c.Request.Context(), category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]organizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, toOrganizationResponse(org))
	}
	c.JSON(http.StatusOK, gin.H{"organizations": responses})
}
