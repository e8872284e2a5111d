package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	sponsorshipUseCase "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/sponsorship"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/dto"
)

// SponsorshipHandler handles sponsorship-related HTTP requests
type SponsorshipHandler struct {
	sponsorshipService *sponsorshipUseCase.Service
	logger             coreport.Logger
}

// NewSponsorshipHandler creates a new sponsorship handler instance
func NewSponsorshipHandler(sponsorshipService *sponsorshipUseCase.Service, logger coreport.Logger) *SponsorshipHandler {
	return &SponsorshipHandler{
		sponsorshipService: sponsorshipService,
		logger:             logger,
	}
}

// Create handles the POST /sponsorships endpoint
func (h *SponsorshipHandler) Create(c *gin.Context) {
	var req dto.CreateSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, "Invalid request format: "+err.Error())
		return
	}

	sponsorID, err := uuid.Parse(req.SponsorID)
	if err != nil {
		respondBindingError(c, "Invalid sponsor ID format")
		return
	}
	walletID, err := uuid.Parse(req.WalletID)
	if err != nil {
		respondBindingError(c, "Invalid wallet ID format")
		return
	}

	categoryIDs := make([]uuid.UUID, 0, len(req.CategoryIDs))
	for _, raw := range req.CategoryIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBindingError(c, "Invalid category ID format: "+raw)
			return
		}
		categoryIDs = append(categoryIDs, id)
	}

	sponsorship, err := h.sponsorshipService.Create(c.Request.Context(), sponsorshipUseCase.CreateRequest{
		SponsorID:            sponsorID,
		WalletID:             walletID,
		BeneficiaryLookupKey: req.BeneficiaryLookupKey,
		Amount:               req.Amount,
		CategoryIDs:          categoryIDs,
		Notes:                req.Notes,
		ExpiresAt:            req.ExpiresAt,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSponsorshipResponse(sponsorship))
}

// Get handles the GET /sponsorships/:sponsorshipId endpoint
func (h *SponsorshipHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("sponsorshipId"))
	if err != nil {
		respondBindingError(c, "Invalid sponsorship ID format")
		return
	}

	sponsorship, err := h.sponsorshipService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSponsorshipResponse(sponsorship))
}

// Cancel handles the POST /sponsorships/:sponsorshipId/cancel endpoint
func (h *SponsorshipHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("sponsorshipId"))
	if err != nil {
		respondBindingError(c, "Invalid sponsorship ID format")
		return
	}

	var req dto.CancelSponsorshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, "Invalid request format: "+err.Error())
		return
	}
	sponsorID, err := uuid.Parse(req.SponsorID)
	if err != nil {
		respondBindingError(c, "Invalid sponsor ID format")
		return
	}

	sponsorship, err := h.sponsorshipService.Cancel(c.Request.Context(), id, sponsorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSponsorshipResponse(sponsorship))
}

// ListBySponsor handles the GET /sponsors/:sponsorId/sponsorships endpoint
func (h *SponsorshipHandler) ListBySponsor(c *gin.Context) {
	sponsorID, err := uuid.Parse(c.Param("sponsorId"))
	if err != nil {
		respondBindingError(c, "Invalid sponsor ID format")
		return
	}

	sponsorships, err := h.sponsorshipService.ListBySponsor(c.Request.Context(), sponsorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSponsorshipListResponse(sponsorships))
}

// ListActiveForBeneficiary handles the GET /beneficiaries/:beneficiaryId/sponsorships
// endpoint. Vendors use it to quote available funds before initiating a
// redemption; an optional categoryId query restricts the result.
func (h *SponsorshipHandler) ListActiveForBeneficiary(c *gin.Context) {
	beneficiaryID, err := uuid.Parse(c.Param("beneficiaryId"))
	if err != nil {
		respondBindingError(c, "Invalid beneficiary ID format")
		return
	}

	var categoryID *uuid.UUID
	if raw := c.Query("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBindingError(c, "Invalid category ID format")
			return
		}
		categoryID = &id
	}

	sponsorships, err := h.sponsorshipService.FindActiveForBeneficiary(c.Request.Context(), beneficiaryID, categoryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSponsorshipListResponse(sponsorships))
}
