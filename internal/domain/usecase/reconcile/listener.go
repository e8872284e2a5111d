package reconcile

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/persistence"
)

// Outcome constants for transfer status events
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// TransferOutcome is the gateway's asynchronous verdict on a dispatched transfer
type TransferOutcome struct {
	TransferID string
	Outcome    string
	OnchainRef string
	Reason     string
}

// Listener consumes transfer-status events from the funds gateway and drives
// executed transactions to their terminal states. Duplicate and stale events
// are expected and ignored. On failure events the terminal flip and the
// compensating credit commit in a single transaction: either both are
// observed or neither is, so a lost credit also rolls the flip back and the
// redelivered event retries the whole compensation.
type Listener struct {
	executedRepo persistence.ExecutedTransactionRepository
	uow          persistence.UnitOfWork
	logger       coreport.Logger
}

// NewListener creates a reconciliation listener
func NewListener(
	executedRepo persistence.ExecutedTransactionRepository,
	uow persistence.UnitOfWork,
	logger coreport.Logger,
) *Listener {
	return &Listener{
		executedRepo: executedRepo,
		uow:          uow,
		logger:       logger,
	}
}

// HandleOutcome processes one transfer-status event. It reports whether the
// event actually transitioned the execution; stale events (unknown transfer
// id or already-terminal execution) are logged and swallowed with no
// transition, because the webhook sender retries on non-2xx responses and
// must not be punished for duplicates.
func (l *Listener) HandleOutcome(ctx context.Context, event TransferOutcome) (bool, error) {
	if event.TransferID == "" {
		return false, errs.ErrInvalidRequest
	}

	executed, err := l.executedRepo.GetByTransferID(ctx, event.TransferID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			l.logger.Warn("Reconciliation event references unknown transfer", map[string]any{
				"transfer_id": event.TransferID,
				"outcome":     event.Outcome,
			})
			return false, nil
		}
		return false, fmt.Errorf("failed to load executed transaction: %w", err)
	}

	switch event.Outcome {
	case OutcomeSuccess:
		return l.handleSuccess(ctx, executed, event)
	case OutcomeFailure:
		return l.handleFailure(ctx, executed, event)
	default:
		return false, fmt.Errorf("%w: unknown outcome %q", errs.ErrInvalidRequest, event.Outcome)
	}
}

// handleSuccess finalizes the execution. The earlier debit is now confirmed
// final, so the ledger is left untouched.
func (l *Listener) handleSuccess(ctx context.Context, executed *entity.ExecutedTransaction, event TransferOutcome) (bool, error) {
	completed, err := l.executedRepo.MarkCompleted(ctx, executed.ID, event.OnchainRef)
	if err != nil {
		return false, fmt.Errorf("failed to complete executed transaction: %w", err)
	}
	if !completed {
		l.logger.Warn("Duplicate or stale success event ignored", map[string]any{
			"executed_transaction_id": executed.ID.String(),
			"transfer_id":             event.TransferID,
			"status":                  string(executed.Status),
		})
		return false, nil
	}

	l.logger.Info("Settlement completed", map[string]any{
		"executed_transaction_id": executed.ID.String(),
		"transfer_id":             event.TransferID,
		"onchain_ref":             event.OnchainRef,
		"amount":                  executed.GetAmount(),
	})
	return true, nil
}

// handleFailure reverses the execution: the status flips to failed_onchain
// and the earlier debit is credited back, restoring conservation. Both
// writes share one transaction, so the record can never end up terminal
// without its credit; when the credit fails the flip rolls back with it and
// the error surfaces for the webhook sender to redeliver.
func (l *Listener) handleFailure(ctx context.Context, executed *entity.ExecutedTransaction, event TransferOutcome) (bool, error) {
	txCtx, err := l.uow.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin compensation transaction: %w", err)
	}

	flipped, err := l.uow.GetExecutedTransactionRepository(txCtx).
		MarkFailed(txCtx, executed.ID, entity.ExecutionFailedOnchain, event.Reason)
	if err != nil {
		_ = l.uow.Rollback(txCtx)
		return false, fmt.Errorf("failed to mark onchain failure: %w", err)
	}
	if !flipped {
		_ = l.uow.Rollback(txCtx)
		l.logger.Warn("Duplicate or stale failure event ignored", map[string]any{
			"executed_transaction_id": executed.ID.String(),
			"transfer_id":             event.TransferID,
			"status":                  string(executed.Status),
		})
		return false, nil
	}

	if _, err := l.uow.GetSponsorshipRepository(txCtx).
		CreditRemaining(txCtx, executed.SponsorshipID, executed.AmountCents); err != nil {
		_ = l.uow.Rollback(txCtx)
		l.logger.Error("Compensating credit failed, failure flip rolled back", map[string]any{
			"executed_transaction_id": executed.ID.String(),
			"sponsorship_id":          executed.SponsorshipID.String(),
			"amount":                  executed.GetAmount(),
			"error":                   err.Error(),
		})
		return false, fmt.Errorf("failed to compensate ledger: %w", err)
	}

	if err := l.uow.Commit(txCtx); err != nil {
		_ = l.uow.Rollback(txCtx)
		return false, fmt.Errorf("failed to commit compensation: %w", err)
	}

	l.logger.Warn("Settlement failed on-chain, ledger compensated", map[string]any{
		"executed_transaction_id": executed.ID.String(),
		"sponsorship_id":          executed.SponsorshipID.String(),
		"transfer_id":             event.TransferID,
		"amount":                  executed.GetAmount(),
		"reason":                  event.Reason,
	})
	return true, nil
}
