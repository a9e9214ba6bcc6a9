package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/service"
)

type submitDonationRequest struct {
	DonationType string  `json:"donation_type" binding:"required"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	CampaignID   string  `json:"campaign_id" binding:"required"`
	Purpose      string  `json:"purpose"`
	Amount       float64 `json:"amount"`
	Address      string  `json:"address"`
	Anonymous    bool    `json:"anonymous"`
}

func (h *Handler) submitDonation(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req submitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaignID, err := uuid.Parse(strings.TrimSpace(req.CampaignID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign_id"})
		return
	}

	donation, err := h.donations.Submit(c.Request.Context(), service.SubmitDonationInput{
		DonationType: model.DonationType(strings.ToUpper(req.DonationType)),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		CampaignID:   campaignID,
		Purpose:      req.Purpose,
		Amount:       req.Amount,
		Address:      req.Address,
		Anonymous:    req.Anonymous,
		Principal:    principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": donation.ID, "status": donation.Status})
}

func (h *Handler) listMyDonations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	donations, err := h.donations.ListMine(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": toDonationResponses(donations)})
}

func (h *Handler) listApprovedDonations(c *gin.Context) {
	donations, err := h.donations.ListApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": toDonationResponses(donations)})
}

func (h *Handler) listAllDonations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}
	filter := model.DonationFilter{Status: status}
	if raw := strings.TrimSpace(c.Query("campaign_id")); raw != "" {
		campaignID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign_id"})
			return
		}
		filter.CampaignID = &campaignID
	}

	donations, err := h.donations.ListAll(c.Request.Context(), filter, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": toDonationResponses(donations)})
}

func (h *Handler) pendingDonations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	donations, err := h.donations.PendingQueue(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"donations": toDonationResponses(donations)})
}

func (h *Handler) approveDonation(c *gin.Context) {
	h.reviewDonation(c, model.StatusApproved)
}

func (h *Handler) rejectDonation(c *gin.Context) {
	h.reviewDonation(c, model.StatusRejected)
}

func (h *Handler) reviewDonation(c *gin.Context, status model.ApprovalStatus) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	donationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var result *service.ReviewResult
	var err error
	if status == model.StatusApproved {
		result, err = h.donations.Approve(c.Request.Context(), donationID, principal)
	} else {
		result, err = h.donations.Reject(c.Request.Context(), donationID, principal)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{"donation": toDonationResponse(result.Donation)}
	if result.DeliveryWarning != "" {
		response["warning"] = result.DeliveryWarning
	}
	c.JSON(http.StatusOK, response)
}

type bulkReviewRequest struct {
	DonationIDs []string `json:"donation_ids" binding:"required"`
	Action      string   `json:"action" binding:"required,oneof=approve reject"`
}

func (h *Handler) bulkReviewDonations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req bulkReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.DonationIDs))
	for _, raw := range req.DonationIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id: " + raw})
			return
		}
		ids = append(ids, id)
	}

	status := model.StatusApproved
	if req.Action == "reject" {
		status = model.StatusRejected
	}

	items, err := h.donations.BulkReview(c.Request.Context(), ids, status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := make([]gin.H, 0, len(items))
	for _, item := range items {
		entry := gin.H{"donation_id": item.DonationID}
		if item.Err != "" {
			entry["error"] = item.Err
		}
		if item.DeliveryWarning != "" {
			entry["warning"] = item.DeliveryWarning
		}
		response = append(response, entry)
	}
	c.JSON(http.StatusOK, gin.H{"items": response})
}

func (h *Handler) exportDonations(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	result, err := h.donations.ExportReport(c.Request.Context(), status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) donationReceipt(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	donationID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.donations.Receipt(c.Request.Context(), donationID, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
