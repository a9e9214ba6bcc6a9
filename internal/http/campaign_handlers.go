package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/service"
)

type campaignRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required"`
	GoalAmount  float64 `json:"goal_amount" binding:"required"`
}

func (h *Handler) createCampaign(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaigns.Create(c.Request.Context(), service.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.CampaignCategory(strings.ToUpper(req.Category)),
		GoalAmount:  req.GoalAmount,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCampaignResponse(*campaign))
}

func (h *Handler) updateCampaign(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	campaignID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.campaigns.Update(c.Request.Context(), campaignID, service.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.CampaignCategory(strings.ToUpper(req.Category)),
		GoalAmount:  req.GoalAmount,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCampaignResponse(*campaign))
}

func (h *Handler) deleteCampaign(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	campaignID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.campaigns.Delete(c.Request.Context(), campaignID, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": campaignID})
}

func (h *Handler) getCampaign(c *gin.Context) {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaigns.Get(c.Request.Context(), campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCampaignResponse(*campaign))
}

func (h *Handler) listCampaigns(c *gin.Context) {
	category, ok := parseCategoryQuery(c)
	if !ok {
		return
	}

	campaigns, err := h.campaigns.List(c.Request.Context(), category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]campaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		responses = append(responses, toCampaignResponse(campaign))
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": responses})
}
