package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
)

// ExecutedTransactionStatus represents the state of an attempted fund movement
type ExecutedTransactionStatus string

// Executed transaction statuses
const (
	ExecutionInitiated           ExecutedTransactionStatus = "initiated"
	ExecutionPendingConfirmation ExecutedTransactionStatus = "pending_confirmation"
	ExecutionCompleted           ExecutedTransactionStatus = "completed"
	ExecutionFailedPlatform      ExecutedTransactionStatus = "failed_platform"
	ExecutionFailedOnchain       ExecutedTransactionStatus = "failed_onchain"
)

// ExecutedTransaction records an attempted fund movement, one-to-one with a
// successfully OTP-verified PendingTransaction. Exactly one executed
// transaction debits the ledger for its amount; a failed_* terminal status is
// paired with exactly one compensating credit. Records are never deleted.
type ExecutedTransaction struct {
	ID                   uuid.UUID
	PendingTransactionID uuid.UUID
	SponsorshipID        uuid.UUID
	SourceWalletID       uuid.UUID
	DestinationAddress   string
	AmountCents          int64
	TransferID           string // provisional identifier from the gateway
	OnchainRef           string // settlement reference, filled by reconciliation
	Status               ExecutedTransactionStatus
	FailureNotes         string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewExecutedTransaction creates an initiated execution record for a verified challenge
func NewExecutedTransaction(
	pending *PendingTransaction,
	sourceWalletID uuid.UUID,
	destinationAddress string,
	timeProvider coreport.TimeProvider,
) (*ExecutedTransaction, error) {
	if pending == nil {
		return nil, errs.ErrPendingTransactionNotFound
	}
	if destinationAddress == "" {
		return nil, errs.ErrInvalidRequest
	}

	now := timeProvider.Now()
	return &ExecutedTransaction{
		ID:                   uuid.New(),
		PendingTransactionID: pending.ID,
		SponsorshipID:        pending.SponsorshipID,
		SourceWalletID:       sourceWalletID,
		DestinationAddress:   destinationAddress,
		AmountCents:          pending.AmountCents,
		Status:               ExecutionInitiated,
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// GetAmount returns the transferred amount as a string with 2 decimal places
func (e *ExecutedTransaction) GetAmount() string {
	return AmountInCentsToString(e.AmountCents)
}

// IsTerminal reports whether the execution reached one of its three end states
func (e *ExecutedTransaction) IsTerminal() bool {
	return e.Status == ExecutionCompleted ||
		e.Status == ExecutionFailedPlatform ||
		e.Status == ExecutionFailedOnchain
}

// MarkDispatched transitions initiated -> pending_confirmation once the
// gateway accepted the transfer and handed back its provisional identifier
func (e *ExecutedTransaction) MarkDispatched(transferID string, timeProvider coreport.TimeProvider) error {
	if e.Status != ExecutionInitiated {
		return errs.ErrInvalidState
	}
	if transferID == "" {
		return errs.ErrInvalidRequest
	}
	e.TransferID = transferID
	e.Status = ExecutionPendingConfirmation
	e.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkCompleted transitions pending_confirmation -> completed with the
// on-chain settlement reference. The earlier debit is now confirmed final.
func (e *ExecutedTransaction) MarkCompleted(onchainRef string, timeProvider coreport.TimeProvider) error {
	if e.Status != ExecutionPendingConfirmation {
		return errs.ErrInvalidState
	}
	e.OnchainRef = onchainRef
	e.Status = ExecutionCompleted
	e.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkFailedPlatform transitions initiated -> failed_platform after a
// synchronous gateway rejection. The caller must compensate the ledger.
func (e *ExecutedTransaction) MarkFailedPlatform(reason string, timeProvider coreport.TimeProvider) error {
	if e.Status != ExecutionInitiated {
		return errs.ErrInvalidState
	}
	e.Status = ExecutionFailedPlatform
	e.FailureNotes = reason
	e.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkFailedOnchain transitions pending_confirmation -> failed_onchain after
// the gateway's webhook reported a failed transfer. The reconciliation
// listener must compensate the ledger.
func (e *ExecutedTransaction) MarkFailedOnchain(reason string, timeProvider coreport.TimeProvider) error {
	if e.Status != ExecutionPendingConfirmation {
		return errs.ErrInvalidState
	}
	e.Status = ExecutionFailedOnchain
	e.FailureNotes = reason
	e.UpdatedAt = timeProvider.Now()
	return nil
}
