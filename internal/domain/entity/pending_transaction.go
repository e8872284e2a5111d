package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
)

// PendingTransactionStatus represents the state of the OTP challenge
type PendingTransactionStatus string

// Pending transaction statuses
const (
	PendingOtp         PendingTransactionStatus = "pending_otp"
	OtpVerified        PendingTransactionStatus = "otp_verified"
	PendingExpired     PendingTransactionStatus = "expired"
	FailedVerification PendingTransactionStatus = "failed_verification"
	PendingCancelled   PendingTransactionStatus = "cancelled"
)

// PendingTransaction is a short-lived OTP challenge binding a vendor,
// beneficiary, category, amount and the sponsorship selected at initiation
// time. Only the plaintext passcode's one-way hash is stored. Once the
// challenge leaves pending_otp it is immutable.
type PendingTransaction struct {
	ID            uuid.UUID
	VendorID      uuid.UUID
	BeneficiaryID uuid.UUID
	CategoryID    uuid.UUID
	SponsorshipID uuid.UUID
	AmountCents   int64
	OtpHash       string
	OtpIssuedAt   time.Time
	OtpExpiresAt  time.Time
	Status        PendingTransactionStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPendingTransaction creates a pending_otp challenge referencing the chosen sponsorship
func NewPendingTransaction(
	vendorID, beneficiaryID, categoryID, sponsorshipID uuid.UUID,
	amountCents int64,
	otpHash string,
	otpTTL time.Duration,
	notes string,
	timeProvider coreport.TimeProvider,
) (*PendingTransaction, error) {
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if otpHash == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &PendingTransaction{
		ID:            uuid.New(),
		VendorID:      vendorID,
		BeneficiaryID: beneficiaryID,
		CategoryID:    categoryID,
		SponsorshipID: sponsorshipID,
		AmountCents:   amountCents,
		OtpHash:       otpHash,
		OtpIssuedAt:   now,
		OtpExpiresAt:  now.Add(otpTTL),
		Status:        PendingOtp,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// GetAmount returns the amount as a string with 2 decimal places
func (p *PendingTransaction) GetAmount() string {
	return AmountInCentsToString(p.AmountCents)
}

// IsAwaitingOtp reports whether the challenge can still be confirmed
func (p *PendingTransaction) IsAwaitingOtp() bool {
	return p.Status == PendingOtp
}

// IsLive reports whether the challenge is still in-flight (not terminal)
func (p *PendingTransaction) IsLive() bool {
	return p.Status == PendingOtp || p.Status == OtpVerified
}

// OtpWindowElapsed reports whether the passcode validity window has passed
func (p *PendingTransaction) OtpWindowElapsed(now time.Time) bool {
	return now.After(p.OtpExpiresAt)
}

// MarkVerified transitions pending_otp -> otp_verified
func (p *PendingTransaction) MarkVerified(timeProvider coreport.TimeProvider) error {
	if p.Status != PendingOtp {
		return errs.ErrInvalidState
	}
	p.Status = OtpVerified
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkExpired transitions pending_otp -> expired
func (p *PendingTransaction) MarkExpired(timeProvider coreport.TimeProvider) error {
	if p.Status != PendingOtp {
		return errs.ErrInvalidState
	}
	p.Status = PendingExpired
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkFailedVerification transitions pending_otp -> failed_verification
func (p *PendingTransaction) MarkFailedVerification(timeProvider coreport.TimeProvider) error {
	if p.Status != PendingOtp {
		return errs.ErrInvalidState
	}
	p.Status = FailedVerification
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkCancelled transitions pending_otp -> cancelled. Abandoning a challenge
// has no ledger side effect since no debit has occurred yet.
func (p *PendingTransaction) MarkCancelled(timeProvider coreport.TimeProvider) error {
	if p.Status != PendingOtp {
		return errs.ErrInvalidState
	}
	p.Status = PendingCancelled
	p.UpdatedAt = timeProvider.Now()
	return nil
}
