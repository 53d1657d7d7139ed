package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/rs/zerolog/log"
)

type ApprovalHandler struct {
	service *service.ApprovalService
}

func NewApprovalHandler(svc *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: svc}
}

type updateStatusRequest struct {
	UserToken   string `json:"user_token" binding:"required"`
	ChangeID    string `json:"change_id" binding:"required"`
	Status      string `json:"status" binding:"required"`
	TargetTable string `json:"target_table" binding:"required"`
}

// UpdateStatus accepts or rejects a pending change set.
func (h *ApprovalHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), req.UserToken, req.ChangeID, req.Status, req.TargetTable); err != nil {
		log.Error().Err(err).Str("change_id", req.ChangeID).Msg("approval status update failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
