package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/engine/buildup"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/rs/zerolog/log"
)

type BuildupHandler struct {
	service *service.BuildupService
}

func NewBuildupHandler(svc *service.BuildupService) *BuildupHandler {
	return &BuildupHandler{service: svc}
}

// GetFactors returns the pivoted factor table for one quarter/year.
func (h *BuildupHandler) GetFactors(c *gin.Context) {
	quarter := c.Query("quarter")
	year := c.Query("year")
	if quarter == "" || year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quarter and year are required"})
		return
	}

	table, err := h.service.FactorTable(c.Request.Context(), quarter, year)
	if err != nil {
		log.Error().Err(err).Str("quarter", quarter).Str("year", year).
			Msg("failed to load buildup factors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load buildup factors"})
		return
	}

	c.JSON(http.StatusOK, table)
}

// simulateBuildupRequest carries the panel inputs as the user typed them:
// whole percents, divided by 100 before they reach the engine.
type simulateBuildupRequest struct {
	Tab                   string  `json:"tab"`
	Code                  string  `json:"buildup_code" binding:"required"`
	Quarter               string  `json:"quarter" binding:"required"`
	Year                  string  `json:"year" binding:"required"`
	Currency              string  `json:"currency"`
	PriceZRSD026          float64 `json:"price_zrsd026"`
	ProductPricePISCOFINS float64 `json:"product_price_pis_cofins"`
	DealerCode            float64 `json:"dealer_code"`
	ICMSST                float64 `json:"icms_st"`
	MVA                   float64 `json:"mva"`
	IPI                   float64 `json:"ipi"`
	IPIMaterialCost       float64 `json:"ipi_material_cost"`
	ICMSMaterialCost      float64 `json:"icms_material_cost"`
}

// Simulate recomputes the waterfall for one (tab, buildup-code) pair.
func (h *BuildupHandler) Simulate(c *gin.Context) {
	var req simulateBuildupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Simulate(c.Request.Context(), service.BuildupSimRequest{
		Tab:      req.Tab,
		Code:     req.Code,
		Quarter:  req.Quarter,
		Year:     req.Year,
		Currency: req.Currency,
		Inputs: buildup.Inputs{
			PriceZRSD026:          req.PriceZRSD026,
			ProductPricePISCOFINS: req.ProductPricePISCOFINS,
			DealerCodePct:         req.DealerCode / 100,
			ICMSSTPct:             req.ICMSST / 100,
			MVAPct:                req.MVA / 100,
			IPIPct:                req.IPI / 100,
			IPIMaterialCostPct:    req.IPIMaterialCost / 100,
			ICMSMaterialCostPct:   req.ICMSMaterialCost / 100,
		},
	})
	if err != nil {
		var rateErr *buildup.RateNotFoundError
		if errors.As(err, &rateErr) {
			// The one lookup that must surface as a user-visible failure.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rateErr.Error()})
			return
		}
		log.Error().Err(err).Str("buildup", req.Code).Msg("buildup simulation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "buildup simulation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
