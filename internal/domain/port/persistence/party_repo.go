package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// BeneficiaryRepository resolves and registers beneficiaries by lookup key
type BeneficiaryRepository interface {
	// GetByID retrieves a beneficiary
	//
	// Possible errors:
	// - ErrBeneficiaryNotFound: If the beneficiary doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Beneficiary, error)

	// GetByLookupKey retrieves a beneficiary by the out-of-band key sponsors
	// and vendors use to reference them
	//
	// Possible errors:
	// - ErrBeneficiaryNotFound: If no beneficiary has this key
	// - ErrDatabaseConnection: If database connection fails
	GetByLookupKey(ctx context.Context, lookupKey string) (*entity.Beneficiary, error)

	// Create registers a new beneficiary
	Create(ctx context.Context, beneficiary *entity.Beneficiary) error
}

// VendorRepository provides vendor lookups including category approvals
type VendorRepository interface {
	// GetByID retrieves a vendor with its approved-category set
	//
	// Possible errors:
	// - ErrVendorNotFound: If the vendor doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
}

// CategoryRepository provides category lookups
type CategoryRepository interface {
	// GetByID retrieves a category
	//
	// Possible errors:
	// - ErrCategoryNotFound: If the category doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// AllExist checks that every given category id is registered
	AllExist(ctx context.Context, ids []uuid.UUID) (bool, error)
}

// WalletRepository stores the sponsor-side cached wallet view
type WalletRepository interface {
	// GetByID retrieves a wallet record
	//
	// Possible errors:
	// - ErrWalletNotFound: If the wallet doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error)

	// UpdateCachedBalances stores a freshly fetched balance snapshot
	UpdateCachedBalances(ctx context.Context, id uuid.UUID, spendableCents, feeTokenCents int64) error
}
