package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/metrics"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	sponsorshipHandler *handler.SponsorshipHandler,
	settlementHandler *handler.SettlementHandler,
	webhookHandler *handler.WebhookHandler,
	webhookSigningSecret string,
	logger coreport.Logger,
) {
	// Sponsorship routes
	sponsorshipRoutes := router.Group("/sponsorships")
	{
		// POST /sponsorships
		sponsorshipRoutes.POST("", sponsorshipHandler.Create)

		// GET /sponsorships/:sponsorshipId
		sponsorshipRoutes.GET("/:sponsorshipId", sponsorshipHandler.Get)

		// POST /sponsorships/:sponsorshipId/cancel
		sponsorshipRoutes.POST("/:sponsorshipId/cancel", sponsorshipHandler.Cancel)

		// GET /sponsorships/:sponsorshipId/executed-transactions
		sponsorshipRoutes.GET("/:sponsorshipId/executed-transactions", settlementHandler.ListExecutedBySponsorship)
	}

	// GET /sponsors/:sponsorId/sponsorships
	router.GET("/sponsors/:sponsorId/sponsorships", sponsorshipHandler.ListBySponsor)

	// GET /beneficiaries/:beneficiaryId/sponsorships (vendor quoting)
	router.GET("/beneficiaries/:beneficiaryId/sponsorships", sponsorshipHandler.ListActiveForBeneficiary)

	// Settlement routes
	settlementRoutes := router.Group("/settlements")
	{
		// POST /settlements/initiate
		settlementRoutes.POST("/initiate", settlementHandler.Initiate)

		// POST /settlements/:pendingTransactionId/confirm
		settlementRoutes.POST("/:pendingTransactionId/confirm", settlementHandler.Confirm)
	}

	// GET /vendors/:vendorId/pending-transactions
	router.GET("/vendors/:vendorId/pending-transactions", settlementHandler.ListPendingByVendor)

	// Webhook routes require a gateway-signed token
	webhookRoutes := router.Group("/webhooks")
	webhookRoutes.Use(middleware.WebhookAuth(webhookSigningSecret, logger))
	{
		// POST /webhooks/transfers
		webhookRoutes.POST("/transfers", webhookHandler.TransferOutcome)
	}

	// GET /metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
}
