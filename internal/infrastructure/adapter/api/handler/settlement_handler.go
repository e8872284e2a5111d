package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/persistence"
	settlementUseCase "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/settlement"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/metrics"
)

// SettlementHandler handles the two-phase settlement HTTP surface
type SettlementHandler struct {
	settlementService *settlementUseCase.Service
	pendingRepo       persistence.PendingTransactionRepository
	executedRepo      persistence.ExecutedTransactionRepository
	logger            coreport.Logger
}

// NewSettlementHandler creates a new settlement handler instance
func NewSettlementHandler(
	settlementService *settlementUseCase.Service,
	pendingRepo persistence.PendingTransactionRepository,
	executedRepo persistence.ExecutedTransactionRepository,
	logger coreport.Logger,
) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		pendingRepo:       pendingRepo,
		executedRepo:      executedRepo,
		logger:            logger,
	}
}

// Initiate handles the POST /settlements/initiate endpoint
func (h *SettlementHandler) Initiate(c *gin.Context) {
	var req dto.InitiateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, "Invalid request format: "+err.Error())
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		respondBindingError(c, "Invalid vendor ID format")
		return
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		respondBindingError(c, "Invalid category ID format")
		return
	}

	result, err := h.settlementService.Initiate(c.Request.Context(), settlementUseCase.InitiateRequest{
		VendorID:             vendorID,
		BeneficiaryLookupKey: req.BeneficiaryLookupKey,
		Amount:               req.Amount,
		CategoryID:           categoryID,
		Notes:                req.Notes,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.InitiateSettlementResponse{
		PendingTransactionID: result.PendingTransactionID.String(),
		OtpExpiresAt:         result.OtpExpiresAt,
		OtpDelivered:         result.OtpDelivered,
		DisplayFallback:      result.DisplayFallback,
	})
}

// Confirm handles the POST /settlements/:pendingTransactionId/confirm endpoint
func (h *SettlementHandler) Confirm(c *gin.Context) {
	pendingID, err := uuid.Parse(c.Param("pendingTransactionId"))
	if err != nil {
		respondBindingError(c, "Invalid pending transaction ID format")
		return
	}

	var req dto.ConfirmSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, "Invalid request format: "+err.Error())
		return
	}

	result, err := h.settlementService.Confirm(c.Request.Context(), pendingID, req.Otp)
	if err != nil {
		if errs.IsGatewayError(err) {
			metrics.SettlementsTotal.WithLabelValues("failed_platform").Inc()
			metrics.CompensationsTotal.Inc()
		}
		respondError(c, h.logger, err)
		return
	}

	metrics.SettlementsTotal.WithLabelValues("dispatched").Inc()
	metrics.InFlightTransfers.Inc()

	c.JSON(http.StatusOK, dto.ConfirmSettlementResponse{
		ExecutedTransactionID: result.ExecutedTransactionID.String(),
		Status:                string(result.Status),
		TransferID:            result.TransferID,
		SponsorshipRemaining:  result.SponsorshipRemaining,
	})
}

// ListPendingByVendor handles the GET /vendors/:vendorId/pending-transactions endpoint
func (h *SettlementHandler) ListPendingByVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		respondBindingError(c, "Invalid vendor ID format")
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBindingError(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	pending, err := h.pendingRepo.ListByVendor(c.Request.Context(), vendorID, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.PendingTransactionResponse, 0, len(pending))
	for _, p := range pending {
		responses = append(responses, dto.NewPendingTransactionResponse(p))
	}
	c.JSON(http.StatusOK, responses)
}

// ListExecutedBySponsorship handles the
// GET /sponsorships/:sponsorshipId/executed-transactions endpoint
func (h *SettlementHandler) ListExecutedBySponsorship(c *gin.Context) {
	sponsorshipID, err := uuid.Parse(c.Param("sponsorshipId"))
	if err != nil {
		respondBindingError(c, "Invalid sponsorship ID format")
		return
	}

	executed, err := h.executedRepo.ListBySponsorship(c.Request.Context(), sponsorshipID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.ExecutedTransactionResponse, 0, len(executed))
	for _, e := range executed {
		responses = append(responses, dto.NewExecutedTransactionResponse(e))
	}
	c.JSON(http.StatusOK, responses)
}
