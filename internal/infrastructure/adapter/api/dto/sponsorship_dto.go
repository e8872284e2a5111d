package dto

import (
	"time"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// CreateSponsorshipRequest represents the API request for allocating a sponsorship
type CreateSponsorshipRequest struct {
	SponsorID            string     `json:"sponsorId" binding:"required,uuid"`
	WalletID             string     `json:"walletId" binding:"required,uuid"`
	BeneficiaryLookupKey string     `json:"beneficiaryLookupKey" binding:"required"`
	Amount               string     `json:"amount" binding:"required"`
	CategoryIDs          []string   `json:"categoryIds" binding:"required,min=1,dive,uuid"`
	Notes                string     `json:"notes"`
	ExpiresAt            *time.Time `json:"expiresAt"`
}

// CancelSponsorshipRequest identifies the sponsor requesting cancellation
type CancelSponsorshipRequest struct {
	SponsorID string `json:"sponsorId" binding:"required,uuid"`
}

// SponsorshipResponse represents a sponsorship as returned by the API
type SponsorshipResponse struct {
	ID            string     `json:"id"`
	SponsorID     string     `json:"sponsorId"`
	BeneficiaryID string     `json:"beneficiaryId"`
	WalletID      string     `json:"walletId"`
	Total         string     `json:"total"`
	Remaining     string     `json:"remaining"`
	Status        string     `json:"status"`
	CategoryIDs   []string   `json:"categoryIds"`
	Notes         string     `json:"notes,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewSponsorshipResponse maps a sponsorship entity to its API representation
func NewSponsorshipResponse(s *entity.Sponsorship) SponsorshipResponse {
	categoryIDs := make([]string, 0, len(s.CategoryIDs))
	for _, id := range s.CategoryIDs {
		categoryIDs = append(categoryIDs, id.String())
	}

	return SponsorshipResponse{
		ID:            s.ID.String(),
		SponsorID:     s.SponsorID.String(),
		BeneficiaryID: s.BeneficiaryID.String(),
		WalletID:      s.WalletID.String(),
		Total:         s.GetTotal(),
		Remaining:     s.GetRemaining(),
		Status:        string(s.Status),
		CategoryIDs:   categoryIDs,
		Notes:         s.Notes,
		ExpiresAt:     s.ExpiresAt,
		CreatedAt:     s.CreatedAt,
	}
}

// NewSponsorshipListResponse maps a slice of sponsorships
func NewSponsorshipListResponse(sponsorships []*entity.Sponsorship) []SponsorshipResponse {
	responses := make([]SponsorshipResponse, 0, len(sponsorships))
	for _, s := range sponsorships {
		responses = append(responses, NewSponsorshipResponse(s))
	}
	return responses
}
