package dto

import (
	"time"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// InitiateSettlementRequest represents a vendor's request to start a redemption
type InitiateSettlementRequest struct {
	VendorID             string `json:"vendorId" binding:"required,uuid"`
	BeneficiaryLookupKey string `json:"beneficiaryLookupKey" binding:"required"`
	Amount               string `json:"amount" binding:"required"`
	CategoryID           string `json:"categoryId" binding:"required,uuid"`
	Notes                string `json:"notes"`
}

// InitiateSettlementResponse is returned after the OTP challenge is issued
type InitiateSettlementResponse struct {
	PendingTransactionID string    `json:"pendingTransactionId"`
	OtpExpiresAt         time.Time `json:"otpExpiresAt"`
	OtpDelivered         bool      `json:"otpDelivered"`
	DisplayFallback      string    `json:"displayFallback,omitempty"`
}

// ConfirmSettlementRequest carries the passcode supplied by the beneficiary
type ConfirmSettlementRequest struct {
	Otp string `json:"otp" binding:"required"`
}

// ConfirmSettlementResponse is returned after a successful dispatch
type ConfirmSettlementResponse struct {
	ExecutedTransactionID string `json:"executedTransactionId"`
	Status                string `json:"status"`
	TransferID            string `json:"transferId"`
	SponsorshipRemaining  string `json:"sponsorshipRemaining"`
}

// PendingTransactionResponse represents an OTP challenge in read endpoints
type PendingTransactionResponse struct {
	ID            string    `json:"id"`
	VendorID      string    `json:"vendorId"`
	BeneficiaryID string    `json:"beneficiaryId"`
	CategoryID    string    `json:"categoryId"`
	SponsorshipID string    `json:"sponsorshipId"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	OtpExpiresAt  time.Time `json:"otpExpiresAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewPendingTransactionResponse maps a pending transaction to its API representation
func NewPendingTransactionResponse(p *entity.PendingTransaction) PendingTransactionResponse {
	return PendingTransactionResponse{
		ID:            p.ID.String(),
		VendorID:      p.VendorID.String(),
		BeneficiaryID: p.BeneficiaryID.String(),
		CategoryID:    p.CategoryID.String(),
		SponsorshipID: p.SponsorshipID.String(),
		Amount:        p.GetAmount(),
		Status:        string(p.Status),
		OtpExpiresAt:  p.OtpExpiresAt,
		CreatedAt:     p.CreatedAt,
	}
}

// ExecutedTransactionResponse represents an execution record in read endpoints
type ExecutedTransactionResponse struct {
	ID                   string    `json:"id"`
	PendingTransactionID string    `json:"pendingTransactionId"`
	SponsorshipID        string    `json:"sponsorshipId"`
	DestinationAddress   string    `json:"destinationAddress"`
	Amount               string    `json:"amount"`
	TransferID           string    `json:"transferId,omitempty"`
	OnchainRef           string    `json:"onchainRef,omitempty"`
	Status               string    `json:"status"`
	FailureNotes         string    `json:"failureNotes,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewExecutedTransactionResponse maps an executed transaction to its API representation
func NewExecutedTransactionResponse(e *entity.ExecutedTransaction) ExecutedTransactionResponse {
	return ExecutedTransactionResponse{
		ID:                   e.ID.String(),
		PendingTransactionID: e.PendingTransactionID.String(),
		SponsorshipID:        e.SponsorshipID.String(),
		DestinationAddress:   e.DestinationAddress,
		Amount:               e.GetAmount(),
		TransferID:           e.TransferID,
		OnchainRef:           e.OnchainRef,
		Status:               string(e.Status),
		FailureNotes:         e.FailureNotes,
		CreatedAt:            e.CreatedAt,
	}
}
