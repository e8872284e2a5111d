package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/model"
)

// ExecutedTransactionRepository implements the execution record store using GORM
type ExecutedTransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewExecutedTransactionRepository creates a new ExecutedTransactionRepository instance
func NewExecutedTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ExecutedTransactionRepository {
	return &ExecutedTransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an executed transaction model to an entity
func (r *ExecutedTransactionRepository) modelToEntity(m *model.ExecutedTransaction) *entity.ExecutedTransaction {
	return &entity.ExecutedTransaction{
		ID:                   m.ID,
		PendingTransactionID: m.PendingTransactionID,
		SponsorshipID:        m.SponsorshipID,
		SourceWalletID:       m.SourceWalletID,
		DestinationAddress:   m.DestinationAddress,
		AmountCents:          m.AmountCents,
		TransferID:           m.TransferID,
		OnchainRef:           m.OnchainRef,
		Status:               entity.ExecutedTransactionStatus(m.Status),
		FailureNotes:         m.FailureNotes,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ExecutedTransactionRepository) handleDatabaseError(operation string, err error, id uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"executed_transaction_id": id.String(),
		"error":                   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrExecutedTransactionNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new execution record. The pending transaction reference is
// unique, so a retried confirm cannot create a second record for the same
// challenge.
func (r *ExecutedTransactionRepository) Create(ctx context.Context, executed *entity.ExecutedTransaction) error {
	executedModel := model.ExecutedTransaction{
		ID:                   executed.ID,
		PendingTransactionID: executed.PendingTransactionID,
		SponsorshipID:        executed.SponsorshipID,
		SourceWalletID:       executed.SourceWalletID,
		DestinationAddress:   executed.DestinationAddress,
		AmountCents:          executed.AmountCents,
		TransferID:           executed.TransferID,
		OnchainRef:           executed.OnchainRef,
		Status:               string(executed.Status),
		FailureNotes:         executed.FailureNotes,
		CreatedAt:            executed.CreatedAt,
		UpdatedAt:            executed.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&executedModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Execution already exists for challenge", map[string]any{
				"pending_transaction_id": executed.PendingTransactionID.String(),
			})
			return errs.ErrInvalidState
		}
		return r.handleDatabaseError("creating executed transaction", result.Error, executed.ID)
	}

	r.logger.Info("Executed transaction created", map[string]any{
		"executed_transaction_id": executed.ID.String(),
		"pending_transaction_id":  executed.PendingTransactionID.String(),
		"sponsorship_id":          executed.SponsorshipID.String(),
		"amount":                  executed.GetAmount(),
	})
	return nil
}

// GetByID retrieves an execution record
func (r *ExecutedTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExecutedTransaction, error) {
	var executedModel model.ExecutedTransaction
	result := r.db.WithContext(ctx).First(&executedModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting executed transaction", result.Error, id)
	}

	return r.modelToEntity(&executedModel), nil
}

// GetByTransferID retrieves an execution record by the gateway's transfer identifier
func (r *ExecutedTransactionRepository) GetByTransferID(ctx context.Context, transferID string) (*entity.ExecutedTransaction, error) {
	var executedModel model.ExecutedTransaction
	result := r.db.WithContext(ctx).First(&executedModel, "transfer_id = ?", transferID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrExecutedTransactionNotFound
		}
		r.logger.Error("Database error when getting executed transaction by transfer", map[string]any{
			"transfer_id": transferID,
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return r.modelToEntity(&executedModel), nil
}

// MarkDispatched transitions initiated -> pending_confirmation and stores the
// gateway's provisional transfer identifier
func (r *ExecutedTransactionRepository) MarkDispatched(ctx context.Context, id uuid.UUID, transferID string) error {
	result := r.db.WithContext(ctx).Model(&model.ExecutedTransaction{}).
		Where("id = ? AND status = ?", id, string(entity.ExecutionInitiated)).
		Updates(map[string]any{
			"transfer_id": transferID,
			"status":      string(entity.ExecutionPendingConfirmation),
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("dispatching executed transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return errs.ErrInvalidState
	}

	r.logger.Info("Executed transaction dispatched", map[string]any{
		"executed_transaction_id": id.String(),
		"transfer_id":             transferID,
	})
	return nil
}

// MarkCompleted transitions pending_confirmation -> completed with the
// on-chain settlement reference. Returns false when the record was already
// terminal.
func (r *ExecutedTransactionRepository) MarkCompleted(ctx context.Context, id uuid.UUID, onchainRef string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.ExecutedTransaction{}).
		Where("id = ? AND status = ?", id, string(entity.ExecutionPendingConfirmation)).
		Updates(map[string]any{
			"onchain_ref": onchainRef,
			"status":      string(entity.ExecutionCompleted),
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("completing executed transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	r.logger.Info("Executed transaction completed", map[string]any{
		"executed_transaction_id": id.String(),
		"onchain_ref":             onchainRef,
	})
	return true, nil
}

// MarkFailed transitions the record to the given failed_* status with the
// failure reason. The flip only succeeds from the expected prior status; false
// means someone already settled the record and the caller must not compensate
// again.
func (r *ExecutedTransactionRepository) MarkFailed(
	ctx context.Context,
	id uuid.UUID,
	status entity.ExecutedTransactionStatus,
	reason string,
) (bool, error) {
	var from entity.ExecutedTransactionStatus
	switch status {
	case entity.ExecutionFailedPlatform:
		from = entity.ExecutionInitiated
	case entity.ExecutionFailedOnchain:
		from = entity.ExecutionPendingConfirmation
	default:
		return false, errs.ErrInvalidState
	}

	result := r.db.WithContext(ctx).Model(&model.ExecutedTransaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":        string(status),
			"failure_notes": reason,
			"updated_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("failing executed transaction", result.Error, id)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}

	r.logger.Warn("Executed transaction failed", map[string]any{
		"executed_transaction_id": id.String(),
		"status":                  string(status),
		"reason":                  reason,
	})
	return true, nil
}

// ListBySponsorship returns all executions against a sponsorship, oldest first
func (r *ExecutedTransactionRepository) ListBySponsorship(ctx context.Context, sponsorshipID uuid.UUID) ([]*entity.ExecutedTransaction, error) {
	var models []model.ExecutedTransaction
	result := r.db.WithContext(ctx).
		Where("sponsorship_id = ?", sponsorshipID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing executed transactions", result.Error, sponsorshipID)
	}

	executions := make([]*entity.ExecutedTransaction, 0, len(models))
	for i := range models {
		executions = append(executions, r.modelToEntity(&models[i]))
	}
	return executions, nil
}
