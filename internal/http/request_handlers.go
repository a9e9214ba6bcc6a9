package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/service"
)

type submitRequestRequest struct {
	AadhaarNumber    string  `json:"aadhaar_number" binding:"required"`
	RationCardNumber string  `json:"ration_card_number"`
	AadhaarFileRef   *string `json:"aadhaar_file_ref"`
	RationCardRef    *string `json:"ration_card_ref"`
	FamilyIncome     float64 `json:"family_income"`
	Description      string  `json:"description" binding:"required"`
}

func (h *Handler) submitRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req submitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.requests.Submit(c.Request.Context(), service.SubmitRequestInput{
		AadhaarNumber:    req.AadhaarNumber,
		RationCardNumber: req.RationCardNumber,
		AadhaarFileRef:   req.AadhaarFileRef,
		RationCardRef:    req.RationCardRef,
		FamilyIncome:     req.FamilyIncome,
		Description:      req.Description,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": request.ID, "status": request.Status})
}

func (h *Handler) listMyRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	requests, err := h.requests.ListMine(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": toRequestResponses(requests)})
}

func (h *Handler) listAllRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	requests, err := h.requests.ListAll(c.Request.Context(), status, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": toRequestResponses(requests)})
}

func (h *Handler) approveRequest(c *gin.Context) {
	h.reviewRequest(c, model.StatusApproved)
}

func (h *Handler) rejectRequest(c *gin.Context) {
	h.reviewRequest(c, model.StatusRejected)
}

func (h *Handler) reviewRequest(c *gin.Context, status model.ApprovalStatus) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	requestID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var result *service.RequestReviewResult
	var err error
	if status == model.StatusApproved {
		result, err = h.requests.Approve(c.Request.Context(), requestID, principal)
	} else {
		result, err = h.requests.Reject(c.Request.Context(), requestID, principal)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	response := gin.H{"request": toRequestResponse(result.Request)}
	if result.DeliveryWarning != "" {
		response["warning"] = result.DeliveryWarning
	}
	c.JSON(http.StatusOK, response)
}
