package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
)

// ExecutedTransactionRepository defines methods to interact with execution
// records. Terminal transitions are conditional updates restricted to the
// expected prior status: the boolean result tells the caller whether this
// invocation performed the flip, which anchors idempotent compensation.
type ExecutedTransactionRepository interface {
	// Create saves a new execution record. The pending transaction reference
	// is unique, so a retried confirm cannot create a second record for the
	// same challenge.
	//
	// Possible errors:
	// - ErrInvalidState: If an execution already exists for the challenge
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, executed *entity.ExecutedTransaction) error

	// GetByID retrieves an execution record
	//
	// Possible errors:
	// - ErrExecutedTransactionNotFound: If the record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExecutedTransaction, error)

	// GetByTransferID retrieves an execution record by the gateway's transfer identifier
	//
	// Possible errors:
	// - ErrExecutedTransactionNotFound: If no record matches
	// - ErrDatabaseConnection: If database connection fails
	GetByTransferID(ctx context.Context, transferID string) (*entity.ExecutedTransaction, error)

	// MarkDispatched transitions initiated -> pending_confirmation and stores
	// the gateway's provisional transfer identifier
	//
	// Possible errors:
	// - ErrInvalidState: If the record was not in initiated
	// - ErrDatabaseConnection: If database connection fails
	MarkDispatched(ctx context.Context, id uuid.UUID, transferID string) error

	// MarkCompleted transitions pending_confirmation -> completed with the
	// on-chain settlement reference. Returns false when the record was
	// already terminal (duplicate or stale webhook).
	MarkCompleted(ctx context.Context, id uuid.UUID, onchainRef string) (bool, error)

	// MarkFailed transitions the record to the given failed_* status with the
	// failure reason. The flip only succeeds from the expected prior status
	// (initiated for failed_platform, pending_confirmation for
	// failed_onchain); false means someone already settled the record and the
	// caller must not compensate again.
	MarkFailed(ctx context.Context, id uuid.UUID, status entity.ExecutedTransactionStatus, reason string) (bool, error)

	// ListBySponsorship returns all executions against a sponsorship, oldest first
	ListBySponsorship(ctx context.Context, sponsorshipID uuid.UUID) ([]*entity.ExecutedTransaction, error)
}
