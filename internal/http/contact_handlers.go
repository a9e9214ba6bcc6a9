package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/donations-service/internal/http/middleware"
	"github.com/nurpe/donations-service/internal/service"
)

type submitContactRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) submitContact(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, err := h.contacts.Submit(c.Request.Context(), service.SubmitContactInput{
		Subject:   req.Subject,
		Message:   req.Message,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": query.ID})
}

func (h *Handler) listContacts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	queries, err := h.contacts.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	responses := make([]contactResponse, 0, len(queries))
	for _, query := range queries {
		responses = append(responses, toContactResponse(query))
	}
	c.JSON(http.StatusOK, gin.H{"queries": responses})
}

type replyContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) replyContact(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	queryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req replyContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.contacts.Reply(c.Request.Context(), service.ReplyInput{
		QueryID:   queryID,
		Subject:   req.Subject,
		Message:   req.Message,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
