package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/model"
)

// PendingTransactionRepository implements the OTP challenge store using GORM
type PendingTransactionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPendingTransactionRepository creates a new PendingTransactionRepository instance
func NewPendingTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PendingTransactionRepository {
	return &PendingTransactionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// modelToEntity converts a pending transaction model to an entity
func (r *PendingTransactionRepository) modelToEntity(m *model.PendingTransaction) *entity.PendingTransaction {
	return &entity.PendingTransaction{
		ID:            m.ID,
		VendorID:      m.VendorID,
		BeneficiaryID: m.BeneficiaryID,
		CategoryID:    m.CategoryID,
		SponsorshipID: m.SponsorshipID,
		AmountCents:   m.AmountCents,
		OtpHash:       m.OtpHash,
		OtpIssuedAt:   m.OtpIssuedAt,
		OtpExpiresAt:  m.OtpExpiresAt,
		Status:        entity.PendingTransactionStatus(m.Status),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PendingTransactionRepository) handleDatabaseError(operation string, err error, id uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"pending_transaction_id": id.String(),
		"error":                  err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrPendingTransactionNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new pending transaction
func (r *PendingTransactionRepository) Create(ctx context.Context, pending *entity.PendingTransaction) error {
	pendingModel := model.PendingTransaction{
		ID:            pending.ID,
		VendorID:      pending.VendorID,
		BeneficiaryID: pending.BeneficiaryID,
		CategoryID:    pending.CategoryID,
		SponsorshipID: pending.SponsorshipID,
		AmountCents:   pending.AmountCents,
		OtpHash:       pending.OtpHash,
		OtpIssuedAt:   pending.OtpIssuedAt,
		OtpExpiresAt:  pending.OtpExpiresAt,
		Status:        string(pending.Status),
		Notes:         pending.Notes,
		CreatedAt:     pending.CreatedAt,
		UpdatedAt:     pending.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&pendingModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating pending transaction", result.Error, pending.ID)
	}

	r.logger.Info("Pending transaction created", map[string]any{
		"pending_transaction_id": pending.ID.String(),
		"sponsorship_id":         pending.SponsorshipID.String(),
		"amount":                 pending.GetAmount(),
		"expires_at":             pending.OtpExpiresAt,
	})
	return nil
}

// GetByID retrieves a pending transaction
func (r *PendingTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PendingTransaction, error) {
	var pendingModel model.PendingTransaction
	result := r.db.WithContext(ctx).First(&pendingModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting pending transaction", result.Error, id)
	}

	return r.modelToEntity(&pendingModel), nil
}

// TransitionStatus moves the challenge from one status to another as a single
// conditional update. Returns false when the row was not in the expected
// from-status, which is how racing confirms lose.
func (r *PendingTransactionRepository) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entity.PendingTransactionStatus,
) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.PendingTransaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("transitioning pending transaction", result.Error, id)
	}

	transitioned := result.RowsAffected == 1
	if !transitioned {
		r.logger.Debug("Pending transaction transition lost", map[string]any{
			"pending_transaction_id": id.String(),
			"from":                   string(from),
			"to":                     string(to),
		})
	}
	return transitioned, nil
}

// ExpireStale marks all pending_otp rows past the cutoff as expired
func (r *PendingTransactionRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.PendingTransaction{}).
		Where("status = ? AND otp_expires_at < ?", string(entity.PendingOtp), cutoff).
		Updates(map[string]any{
			"status":     string(entity.PendingExpired),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Database error when expiring stale challenges", map[string]any{
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return result.RowsAffected, nil
}

// ListByVendor returns the vendor's challenges, newest first
func (r *PendingTransactionRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.PendingTransaction, error) {
	query := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.PendingTransaction
	result := query.Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing pending transactions", result.Error, vendorID)
	}

	pendings := make([]*entity.PendingTransaction, 0, len(models))
	for i := range models {
		pendings = append(pendings, r.modelToEntity(&models[i]))
	}
	return pendings, nil
}
