package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// SponsorshipRepository defines essential methods to interact with sponsorship data.
// Debit and credit are the only hot mutation paths and must be executed as a
// single conditional update inside the store, never as an application-level
// read-modify-write.
type SponsorshipRepository interface {
	// Create saves a new sponsorship
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, sponsorship *entity.Sponsorship) error

	// LinkCategories persists the allowed-category set for a sponsorship.
	// Called right after Create; on failure the caller compensates with Remove.
	//
	// Possible errors:
	// - ErrCategoryNotFound: If a referenced category does not exist
	// - ErrDatabaseConnection: If database connection fails
	LinkCategories(ctx context.Context, sponsorshipID uuid.UUID, categoryIDs []uuid.UUID) error

	// Remove deletes a sponsorship row. Only used to compensate a failed
	// creation; settled sponsorships are never deleted.
	Remove(ctx context.Context, sponsorshipID uuid.UUID) error

	// GetByID retrieves a sponsorship including its category restrictions
	//
	// Possible errors:
	// - ErrSponsorshipNotFound: If the sponsorship doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error)

	// ListBySponsor returns all sponsorships created by the given sponsor,
	// oldest first
	ListBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]*entity.Sponsorship, error)

	// FindActiveForBeneficiary returns sponsorships with status active,
	// remaining > 0 and not expired at the given instant, oldest first.
	// When categoryID is non-nil, only sponsorships whose allowed-category
	// set contains it are returned.
	FindActiveForBeneficiary(ctx context.Context, beneficiaryID uuid.UUID, categoryID *uuid.UUID, now time.Time) ([]*entity.Sponsorship, error)

	// DebitRemaining atomically decrements the remaining balance, flipping
	// the status to depleted when it reaches zero. The decrement is a single
	// conditional update (remaining >= amount AND status = active); a failed
	// predicate is classified by reloading the row.
	//
	// Possible errors:
	// - ErrSponsorshipNotFound: If the sponsorship doesn't exist
	// - ErrSponsorshipInactive: If the sponsorship is not active
	// - ErrInsufficientFunds: If remaining < amount
	// - ErrDatabaseConnection: If database connection fails
	DebitRemaining(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error)

	// CreditRemaining atomically increments the remaining balance,
	// reinstating active status if the sponsorship had flipped to depleted.
	// Compensating inverse of DebitRemaining.
	//
	// Possible errors:
	// - ErrSponsorshipNotFound: If the sponsorship doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	CreditRemaining(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error)

	// UpdateStatus sets the sponsorship status
	//
	// Possible errors:
	// - ErrSponsorshipNotFound: If the sponsorship doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SponsorshipStatus) error
}
