package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/rs/zerolog/log"
)

type CatloteHandler struct {
	service  *service.CatloteService
	approval *service.ApprovalService
}

func NewCatloteHandler(svc *service.CatloteService, approval *service.ApprovalService) *CatloteHandler {
	return &CatloteHandler{service: svc, approval: approval}
}

// GetLots loads the discount configurations and the initial full simulation
// for the requested lots (all lots when the filter is empty).
func (h *CatloteHandler) GetLots(c *gin.Context) {
	var lotIDs []string
	if raw := strings.TrimSpace(c.Query("lot_ids")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				lotIDs = append(lotIDs, id)
			}
		}
	}

	configs, result, err := h.service.LoadSimulation(c.Request.Context(), lotIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to load catlote simulation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load catlote data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configs": configs,
		"rows":    result.Rows,
		"totals":  result.Totals,
	})
}

type simulateRequest struct {
	Configs []domain.DiscountConfig `json:"configs" binding:"required"`
	Rows    []domain.CatalogRow     `json:"rows" binding:"required"`
	Patch   *domain.Patch           `json:"patch"`
}

// Simulate recomputes the caller's working set: a full pass when no patch is
// sent, a single-row pass for one edited cell.
func (h *CatloteHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Simulate(req.Configs, req.Rows, req.Patch)
	c.JSON(http.StatusOK, result)
}

type approvalRequest struct {
	UserToken string              `json:"user_token" binding:"required"`
	Rows      []domain.CatalogRow `json:"rows" binding:"required"`
}

// SubmitApproval sends the edited rows into the approval workflow.
func (h *CatloteHandler) SubmitApproval(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.approval.SubmitCatlote(c.Request.Context(), req.UserToken, req.Rows)
	if err != nil {
		log.Error().Err(err).Msg("catlote approval submission failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"output": output})
}
