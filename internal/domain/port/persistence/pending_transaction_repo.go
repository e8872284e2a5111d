package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// PendingTransactionRepository defines methods to interact with OTP challenges.
// Status transitions are conditional updates so a challenge can leave
// pending_otp exactly once even under racing confirms.
type PendingTransactionRepository interface {
	// Create saves a new pending transaction
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, pending *entity.PendingTransaction) error

	// GetByID retrieves a pending transaction
	//
	// Possible errors:
	// - ErrPendingTransactionNotFound: If the challenge doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PendingTransaction, error)

	// TransitionStatus moves the challenge from one status to another as a
	// single conditional update. Returns false (and no error) when the row
	// was not in the expected from-status, which is how racing confirms lose.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.PendingTransactionStatus) (bool, error)

	// ExpireStale marks all pending_otp rows whose expiry timestamp is before
	// the cutoff as expired, returning the number of rows swept. Used by the
	// periodic sweep for observability; expiry is still enforced at confirm
	// time regardless.
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)

	// ListByVendor returns the vendor's challenges, newest first
	ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.PendingTransaction, error)
}
