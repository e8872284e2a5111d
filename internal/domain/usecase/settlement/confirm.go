package settlement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
)

// ConfirmResult is returned to the vendor after a confirm attempt
type ConfirmResult struct {
	ExecutedTransactionID uuid.UUID
	Status                entity.ExecutedTransactionStatus
	TransferID            string
	SponsorshipRemaining  string
}

// Confirm verifies the supplied passcode, re-validates sponsorship and wallet
// balances, debits the ledger and dispatches the transfer through the
// gateway.
//
// Ordering is deliberate: the challenge leaves pending_otp through a single
// conditional transition (so a given OTP is usable exactly once), the debit
// commits before the gateway call, and any synchronous gateway failure is
// compensated with a credit before this method returns. No sponsorship-level
// lock is ever held across the gateway call.
func (s *Service) Confirm(ctx context.Context, pendingID uuid.UUID, suppliedOtp string) (*ConfirmResult, error) {
	pending, err := s.pendingRepo.GetByID(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	if !pending.IsAwaitingOtp() {
		return nil, errs.ErrInvalidState
	}

	now := s.timeProvider.Now()
	if pending.OtpWindowElapsed(now) {
		if _, err := s.pendingRepo.TransitionStatus(ctx, pendingID, entity.PendingOtp, entity.PendingExpired); err != nil {
			s.logger.Error("Failed to expire pending transaction", map[string]any{
				"pending_transaction_id": pendingID.String(),
				"error":                  err.Error(),
			})
		}
		return nil, errs.ErrOtpExpired
	}

	if !VerifyOtp(pending.OtpHash, suppliedOtp) {
		if _, err := s.pendingRepo.TransitionStatus(ctx, pendingID, entity.PendingOtp, entity.FailedVerification); err != nil {
			s.logger.Error("Failed to mark verification failure", map[string]any{
				"pending_transaction_id": pendingID.String(),
				"error":                  err.Error(),
			})
		}
		return nil, errs.ErrInvalidOtp
	}

	// Single-use gate: only one caller wins this transition, a concurrent
	// confirm that lost the race sees InvalidState
	verified, err := s.pendingRepo.TransitionStatus(ctx, pendingID, entity.PendingOtp, entity.OtpVerified)
	if err != nil {
		return nil, fmt.Errorf("failed to verify pending transaction: %w", err)
	}
	if !verified {
		return nil, errs.ErrInvalidState
	}

	// Re-validate everything checked at initiate: time has passed and other
	// transactions may have consumed the same sponsorship in between
	sponsorship, err := s.ledger.GetByID(ctx, pending.SponsorshipID)
	if err != nil {
		return nil, err
	}
	if sponsorship.Status != entity.SponsorshipActive || sponsorship.IsExpired(now) {
		return nil, errs.ErrSponsorshipInactive
	}
	if !sponsorship.CanCover(pending.AmountCents) {
		return nil, errs.NewInsufficientFundsError(
			sponsorship.ID.String(), pending.GetAmount(), sponsorship.GetRemaining())
	}

	wallet, err := s.refreshWallet(ctx, sponsorship.WalletID, pending.AmountCents)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, pending.VendorID)
	if err != nil {
		return nil, err
	}

	executed, err := entity.NewExecutedTransaction(pending, wallet.ID, vendor.ReceivingAddress, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.executedRepo.Create(ctx, executed); err != nil {
		return nil, fmt.Errorf("failed to persist executed transaction: %w", err)
	}

	// Irreversible commit point on the ledger side
	debited, err := s.ledger.Debit(ctx, sponsorship.ID, pending.AmountCents)
	if err != nil {
		// No debit happened, so the execution fails without compensation
		if _, markErr := s.executedRepo.MarkFailed(ctx, executed.ID, entity.ExecutionFailedPlatform, "ledger debit failed: "+err.Error()); markErr != nil {
			s.logger.Error("Failed to mark execution failed after debit error", map[string]any{
				"executed_transaction_id": executed.ID.String(),
				"error":                   markErr.Error(),
			})
		}
		return nil, err
	}

	receipt, transferErr := s.transferWithTimeout(ctx, wallet.Address, vendor.ReceivingAddress, pending.AmountCents)
	if transferErr != nil {
		return nil, s.compensatePlatformFailure(ctx, executed, sponsorship.ID, transferErr)
	}

	if err := s.executedRepo.MarkDispatched(ctx, executed.ID, receipt.TransferID); err != nil {
		// The transfer is in flight; reconciliation will still find the
		// record through the challenge, but the transfer id is lost. This is
		// the one write that must not fail silently.
		s.logger.Error("Failed to record dispatched transfer", map[string]any{
			"executed_transaction_id": executed.ID.String(),
			"transfer_id":             receipt.TransferID,
			"error":                   err.Error(),
		})
		return nil, fmt.Errorf("failed to record dispatched transfer: %w", err)
	}
	executed.Status = entity.ExecutionPendingConfirmation
	executed.TransferID = receipt.TransferID

	if beneficiary, benErr := s.beneficiaryRepo.GetByID(ctx, pending.BeneficiaryID); benErr == nil {
		summary := fmt.Sprintf("Purchase of %s at %s is being settled.", pending.GetAmount(), vendor.Name)
		s.notifier.SendConfirmation(ctx, beneficiary.Contact, summary)
	}

	s.logger.Info("Settlement dispatched", map[string]any{
		"executed_transaction_id": executed.ID.String(),
		"pending_transaction_id":  pending.ID.String(),
		"sponsorship_id":          sponsorship.ID.String(),
		"transfer_id":             receipt.TransferID,
		"amount":                  pending.GetAmount(),
		"remaining":               debited.GetRemaining(),
	})
	return &ConfirmResult{
		ExecutedTransactionID: executed.ID,
		Status:                executed.Status,
		TransferID:            receipt.TransferID,
		SponsorshipRemaining:  debited.GetRemaining(),
	}, nil
}

// transferWithTimeout calls the gateway under a bounded context. A timeout is
// a synchronous failure requiring compensation: assuming eventual webhook
// delivery would leave the vendor believing the payment failed while the
// ledger stays debited.
func (s *Service) transferWithTimeout(ctx context.Context, sourceAddress, destAddress string, amountCents int64) (gateway.TransferReceipt, error) {
	callCtx, cancel := s.timeProvider.WithTimeout(ctx, coreport.Duration(s.cfg.GatewayTimeout))
	defer cancel()

	receipt, err := s.funds.Transfer(callCtx, sourceAddress, destAddress, amountCents)
	if err != nil {
		return gateway.TransferReceipt{}, errs.NewGatewayError("transfer", sourceAddress, err)
	}
	return receipt, nil
}

// compensationAttempts bounds the retry loop for the synchronous
// compensation path, which has no redelivery channel behind it.
const compensationAttempts = 3

// compensatePlatformFailure settles a synchronous gateway failure: the
// execution flips to failed_platform and the earlier debit is credited back
// before the failure is surfaced. Flip and credit share one transaction, so
// the record cannot end up terminal without its credit. Unlike webhook
// failures nothing redelivers this path, so a failed attempt is retried a few
// times before giving up with the record still non-terminal.
func (s *Service) compensatePlatformFailure(ctx context.Context, executed *entity.ExecutedTransaction, sponsorshipID uuid.UUID, cause error) error {
	var lastErr error
	for attempt := 1; attempt <= compensationAttempts; attempt++ {
		if attempt > 1 {
			s.timeProvider.Sleep(coreport.Duration(attempt-1) * 100 * coreport.Millisecond)
		}

		compensated, err := s.tryCompensate(ctx, executed, sponsorshipID, cause)
		if err == nil {
			if compensated {
				s.logger.Warn("Settlement failed at gateway, ledger compensated", map[string]any{
					"executed_transaction_id": executed.ID.String(),
					"sponsorship_id":          sponsorshipID.String(),
					"amount":                  executed.GetAmount(),
					"cause":                   cause.Error(),
				})
			}
			return cause
		}

		lastErr = err
		s.logger.Warn("Compensation attempt failed, retrying", map[string]any{
			"executed_transaction_id": executed.ID.String(),
			"attempt":                 attempt,
			"of":                      compensationAttempts,
			"error":                   err.Error(),
		})
	}

	s.logger.Error("Compensation abandoned, execution left non-terminal", map[string]any{
		"executed_transaction_id": executed.ID.String(),
		"sponsorship_id":          sponsorshipID.String(),
		"amount":                  executed.GetAmount(),
		"error":                   lastErr.Error(),
	})
	return fmt.Errorf("gateway transfer failed and compensation errored: %w", lastErr)
}

// tryCompensate performs one atomic flip-and-credit attempt. It reports false
// with no error when the execution is already terminal, which means an
// earlier attempt (or the reconciliation listener) already compensated.
func (s *Service) tryCompensate(ctx context.Context, executed *entity.ExecutedTransaction, sponsorshipID uuid.UUID, cause error) (bool, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin compensation transaction: %w", err)
	}

	flipped, err := s.uow.GetExecutedTransactionRepository(txCtx).
		MarkFailed(txCtx, executed.ID, entity.ExecutionFailedPlatform, cause.Error())
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return false, fmt.Errorf("failed to record platform failure: %w", err)
	}
	if !flipped {
		_ = s.uow.Rollback(txCtx)
		return false, nil
	}

	if _, err := s.uow.GetSponsorshipRepository(txCtx).
		CreditRemaining(txCtx, sponsorshipID, executed.AmountCents); err != nil {
		_ = s.uow.Rollback(txCtx)
		return false, fmt.Errorf("failed to credit sponsorship: %w", err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		_ = s.uow.Rollback(txCtx)
		return false, fmt.Errorf("failed to commit compensation: %w", err)
	}

	return true, nil
}
