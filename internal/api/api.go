package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/api/handlers"
	"github.com/pricingdesk/pricing-console/internal/api/middleware"
	"github.com/pricingdesk/pricing-console/internal/service"
)

type Services struct {
	Catlote       *service.CatloteService
	Buildup       *service.BuildupService
	Approval      *service.ApprovalService
	CommandCenter *service.CommandCenterService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.Catlote != nil {
			catloteHandler := handlers.NewCatloteHandler(services.Catlote, services.Approval)
			catloteGroup := apiGroup.Group("/catlote")
			{
				catloteGroup.GET("/lots", catloteHandler.GetLots)
				catloteGroup.POST("/simulate", catloteHandler.Simulate)
				catloteGroup.POST("/approval", catloteHandler.SubmitApproval)
			}
		}

		if services.Buildup != nil {
			buildupHandler := handlers.NewBuildupHandler(services.Buildup)
			buildupGroup := apiGroup.Group("/buildup")
			{
				buildupGroup.GET("/factors", buildupHandler.GetFactors)
				buildupGroup.POST("/simulate", buildupHandler.Simulate)
			}
		}

		if services.CommandCenter != nil {
			ccHandler := handlers.NewCommandCenterHandler(services.CommandCenter)
			ccGroup := apiGroup.Group("/command-center")
			{
				ccGroup.GET("/summary", ccHandler.GetSummary)
				ccGroup.POST("/refresh", ccHandler.Refresh)
			}
		}

		if services.Approval != nil {
			approvalHandler := handlers.NewApprovalHandler(services.Approval)
			apiGroup.POST("/approvals/status", approvalHandler.UpdateStatus)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
