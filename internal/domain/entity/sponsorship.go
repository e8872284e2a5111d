package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
)

// SponsorshipStatus represents the lifecycle status of a sponsorship
type SponsorshipStatus string

// Sponsorship statuses
const (
	SponsorshipActive    SponsorshipStatus = "active"
	SponsorshipDepleted  SponsorshipStatus = "depleted"
	SponsorshipCancelled SponsorshipStatus = "cancelled"
)

// Sponsorship is a capped, category-restricted fund allocation from a sponsor
// to a beneficiary. The allocation total is fixed at creation; only the
// remaining balance mutates, and only through the ledger's debit and credit
// paths. Sponsorships are never deleted once created.
type Sponsorship struct {
	ID             uuid.UUID
	SponsorID      uuid.UUID
	BeneficiaryID  uuid.UUID
	WalletID       uuid.UUID // custody wallet funding this allocation
	TotalCents     int64     // fixed at creation
	remainingCents int64     // mutable, conserved against TotalCents (private)
	Status         SponsorshipStatus
	CategoryIDs    []uuid.UUID // immutable after creation
	Notes          string
	ExpiresAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewSponsorship creates a new sponsorship with remaining = total = amount
func NewSponsorship(
	sponsorID, beneficiaryID, walletID uuid.UUID,
	amount string,
	categoryIDs []uuid.UUID,
	notes string,
	expiresAt *time.Time,
	timeProvider coreport.TimeProvider,
) (*Sponsorship, error) {
	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents == 0 {
		return nil, errs.ErrInvalidAmount
	}
	if len(categoryIDs) == 0 {
		return nil, errs.ErrCategoryNotFound
	}

	now := timeProvider.Now()
	return &Sponsorship{
		ID:             uuid.New(),
		SponsorID:      sponsorID,
		BeneficiaryID:  beneficiaryID,
		WalletID:       walletID,
		TotalCents:     amountInCents,
		remainingCents: amountInCents,
		Status:         SponsorshipActive,
		CategoryIDs:    categoryIDs,
		Notes:          notes,
		ExpiresAt:      expiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// RemainingCents returns the current remaining balance in cents (for internal use)
func (s *Sponsorship) RemainingCents() int64 {
	return s.remainingCents
}

// GetRemaining returns the remaining balance as a string with 2 decimal places
func (s *Sponsorship) GetRemaining() string {
	return AmountInCentsToString(s.remainingCents)
}

// GetTotal returns the total allocation as a string with 2 decimal places
func (s *Sponsorship) GetTotal() string {
	return AmountInCentsToString(s.TotalCents)
}

// SetRemaining updates the remaining balance directly (for internal use, like repositories)
func (s *Sponsorship) SetRemaining(remainingCents int64, timeProvider coreport.TimeProvider) {
	s.remainingCents = remainingCents
	s.UpdatedAt = timeProvider.Now()
}

// IsExpired reports whether the sponsorship's expiry timestamp has passed
func (s *Sponsorship) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// IsSpendable reports whether funds can still be drawn from this sponsorship
func (s *Sponsorship) IsSpendable(now time.Time) bool {
	return s.Status == SponsorshipActive && s.remainingCents > 0 && !s.IsExpired(now)
}

// CanCover checks if the remaining balance covers the given amount
func (s *Sponsorship) CanCover(amountInCents int64) bool {
	return s.remainingCents >= amountInCents
}

// AllowsCategory reports whether the allocation is usable for the given category
func (s *Sponsorship) AllowsCategory(categoryID uuid.UUID) bool {
	for _, id := range s.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// ApplyDebit subtracts the amount from the remaining balance, flipping the
// status to depleted when it reaches zero. Returns ErrInsufficientFunds if the
// balance cannot cover the amount. Repositories perform the equivalent
// mutation as a single conditional update; this method keeps the entity
// consistent with what the store did.
func (s *Sponsorship) ApplyDebit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if s.Status != SponsorshipActive {
		return errs.ErrSponsorshipInactive
	}
	if s.remainingCents < amountInCents {
		return errs.NewInsufficientFundsError(s.ID.String(),
			AmountInCentsToString(amountInCents), s.GetRemaining())
	}

	s.remainingCents -= amountInCents
	if s.remainingCents == 0 {
		s.Status = SponsorshipDepleted
	}
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyCredit adds the amount back to the remaining balance, reinstating the
// active status if the sponsorship had flipped to depleted. This is the
// compensating inverse of ApplyDebit.
func (s *Sponsorship) ApplyCredit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if s.remainingCents+amountInCents > s.TotalCents {
		return errs.ErrAmountOverflow
	}

	s.remainingCents += amountInCents
	if s.Status == SponsorshipDepleted && s.remainingCents > 0 {
		s.Status = SponsorshipActive
	}
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// Cancel marks the sponsorship cancelled. Cancelling an already-cancelled
// sponsorship is a no-op.
func (s *Sponsorship) Cancel(timeProvider coreport.TimeProvider) {
	if s.Status == SponsorshipCancelled {
		return
	}
	s.Status = SponsorshipCancelled
	s.UpdatedAt = timeProvider.Now()
}
