package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes that must commit or
// roll back together across multiple repositories. The compensating credit and
// the terminal status flip it is paired with are the canonical case: neither
// may be observed without the other.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetExecutedTransactionRepository returns an executed-transaction repository bound to the current transaction
	GetExecutedTransactionRepository(ctx context.Context) ExecutedTransactionRepository

	// GetSponsorshipRepository returns a sponsorship repository bound to the current transaction
	GetSponsorshipRepository(ctx context.Context) SponsorshipRepository
}
