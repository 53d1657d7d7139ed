package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/rs/zerolog/log"
)

type CommandCenterHandler struct {
	service *service.CommandCenterService
}

func NewCommandCenterHandler(svc *service.CommandCenterService) *CommandCenterHandler {
	return &CommandCenterHandler{service: svc}
}

// GetSummary returns the per-view aggregates, served from the cache when
// warm.
func (h *CommandCenterHandler) GetSummary(c *gin.Context) {
	summaries, err := h.service.Summary(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to build command center summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build command center summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// Refresh invalidates the cached summary.
func (h *CommandCenterHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to refresh command center cache")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh cache"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
