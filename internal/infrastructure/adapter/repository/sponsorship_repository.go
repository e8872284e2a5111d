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

// SponsorshipRepository implements the sponsorship store using GORM
type SponsorshipRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSponsorshipRepository creates a new SponsorshipRepository instance
func NewSponsorshipRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SponsorshipRepository {
	return &SponsorshipRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a sponsorship model to an entity
func (r *SponsorshipRepository) modelToEntity(m *model.Sponsorship) *entity.Sponsorship {
	categoryIDs := make([]uuid.UUID, 0, len(m.Categories))
	for _, link := range m.Categories {
		categoryIDs = append(categoryIDs, link.CategoryID)
	}

	sponsorship := &entity.Sponsorship{
		ID:            m.ID,
		SponsorID:     m.SponsorID,
		BeneficiaryID: m.BeneficiaryID,
		WalletID:      m.WalletID,
		TotalCents:    m.TotalCents,
		Status:        entity.SponsorshipStatus(m.Status),
		CategoryIDs:   categoryIDs,
		Notes:         m.Notes,
		ExpiresAt:     m.ExpiresAt,
		CreatedAt:     m.CreatedAt,
	}
	sponsorship.SetRemaining(m.RemainingCents, r.timeProvider)
	sponsorship.UpdatedAt = m.UpdatedAt
	return sponsorship
}

// handleDatabaseError standardizes database error handling
func (r *SponsorshipRepository) handleDatabaseError(operation string, err error, id uuid.UUID) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"sponsorship_id": id.String(),
		"error":          err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSponsorshipNotFound
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new sponsorship row
func (r *SponsorshipRepository) Create(ctx context.Context, sponsorship *entity.Sponsorship) error {
	r.logger.Debug("Creating sponsorship", map[string]any{
		"sponsorship_id": sponsorship.ID.String(),
		"sponsor_id":     sponsorship.SponsorID.String(),
		"beneficiary_id": sponsorship.BeneficiaryID.String(),
		"total":          sponsorship.GetTotal(),
	})

	sponsorshipModel := model.Sponsorship{
		ID:             sponsorship.ID,
		SponsorID:      sponsorship.SponsorID,
		BeneficiaryID:  sponsorship.BeneficiaryID,
		WalletID:       sponsorship.WalletID,
		TotalCents:     sponsorship.TotalCents,
		RemainingCents: sponsorship.RemainingCents(),
		Status:         string(sponsorship.Status),
		Notes:          sponsorship.Notes,
		ExpiresAt:      sponsorship.ExpiresAt,
		CreatedAt:      sponsorship.CreatedAt,
		UpdatedAt:      sponsorship.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&sponsorshipModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating sponsorship", result.Error, sponsorship.ID)
	}

	r.logger.Info("Sponsorship created", map[string]any{
		"sponsorship_id": sponsorship.ID.String(),
		"total":          sponsorship.GetTotal(),
	})
	return nil
}

// LinkCategories persists the allowed-category set for a sponsorship
func (r *SponsorshipRepository) LinkCategories(ctx context.Context, sponsorshipID uuid.UUID, categoryIDs []uuid.UUID) error {
	now := r.timeProvider.Now()
	links := make([]model.SponsorshipCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, model.SponsorshipCategory{
			SponsorshipID: sponsorshipID,
			CategoryID:    categoryID,
			CreatedAt:     now,
		})
	}

	result := r.db.WithContext(ctx).Create(&links)
	if result.Error != nil {
		if r.errorClassifier.IsConstraintError(result.Error) {
			r.logger.Warn("Category link rejected by constraint", map[string]any{
				"sponsorship_id": sponsorshipID.String(),
				"error":          result.Error.Error(),
			})
			return errs.ErrCategoryNotFound
		}
		return r.handleDatabaseError("linking categories", result.Error, sponsorshipID)
	}
	return nil
}

// Remove deletes a sponsorship row and its category links. Only used to
// compensate a failed creation.
func (r *SponsorshipRepository) Remove(ctx context.Context, sponsorshipID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sponsorship_id = ?", sponsorshipID).
			Delete(&model.SponsorshipCategory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sponsorshipID).Delete(&model.Sponsorship{}).Error
	})
	if err != nil {
		return r.handleDatabaseError("removing sponsorship", err, sponsorshipID)
	}

	r.logger.Warn("Sponsorship removed", map[string]any{
		"sponsorship_id": sponsorshipID.String(),
	})
	return nil
}

// GetByID retrieves a sponsorship including its category restrictions
func (r *SponsorshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error) {
	var sponsorshipModel model.Sponsorship
	result := r.db.WithContext(ctx).Preload("Categories").First(&sponsorshipModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting sponsorship", result.Error, id)
	}

	return r.modelToEntity(&sponsorshipModel), nil
}

// ListBySponsor returns all sponsorships created by the given sponsor, oldest first
func (r *SponsorshipRepository) ListBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]*entity.Sponsorship, error) {
	var models []model.Sponsorship
	result := r.db.WithContext(ctx).Preload("Categories").
		Where("sponsor_id = ?", sponsorID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing sponsorships", result.Error, sponsorID)
	}

	sponsorships := make([]*entity.Sponsorship, 0, len(models))
	for i := range models {
		sponsorships = append(sponsorships, r.modelToEntity(&models[i]))
	}
	return sponsorships, nil
}

// FindActiveForBeneficiary returns spendable sponsorships for the beneficiary,
// oldest first, optionally restricted to one category
func (r *SponsorshipRepository) FindActiveForBeneficiary(
	ctx context.Context,
	beneficiaryID uuid.UUID,
	categoryID *uuid.UUID,
	now time.Time,
) ([]*entity.Sponsorship, error) {
	query := r.db.WithContext(ctx).Preload("Categories").
		Where("beneficiary_id = ? AND status = ? AND remaining_cents > 0", beneficiaryID, string(entity.SponsorshipActive)).
		Where("expires_at IS NULL OR expires_at >= ?", now)

	if categoryID != nil {
		query = query.Where("id IN (?)",
			r.db.Table("sponsorship_categories").
				Select("sponsorship_id").
				Where("category_id = ?", *categoryID))
	}

	var models []model.Sponsorship
	result := query.Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding active sponsorships", result.Error, beneficiaryID)
	}

	sponsorships := make([]*entity.Sponsorship, 0, len(models))
	for i := range models {
		sponsorships = append(sponsorships, r.modelToEntity(&models[i]))
	}
	return sponsorships, nil
}

// DebitRemaining atomically decrements the remaining balance as a single
// conditional update. A failed predicate is classified by reloading the row.
func (r *SponsorshipRepository) DebitRemaining(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error) {
	r.logger.Debug("Debiting sponsorship", map[string]any{
		"sponsorship_id": id.String(),
		"amount":         entity.AmountInCentsToString(amountCents),
	})

	result := r.db.WithContext(ctx).Model(&model.Sponsorship{}).
		Where("id = ? AND status = ? AND remaining_cents >= ?", id, string(entity.SponsorshipActive), amountCents).
		Updates(map[string]any{
			"remaining_cents": gorm.Expr("remaining_cents - ?", amountCents),
			"status": gorm.Expr("CASE WHEN remaining_cents - ? = 0 THEN ? ELSE status END",
				amountCents, string(entity.SponsorshipDepleted)),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("debiting sponsorship", result.Error, id)
	}

	if result.RowsAffected == 0 {
		// The predicate failed; reload to tell the caller why
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != entity.SponsorshipActive {
			r.logger.Warn("Debit rejected, sponsorship not active", map[string]any{
				"sponsorship_id": id.String(),
				"status":         string(current.Status),
			})
			return nil, errs.ErrSponsorshipInactive
		}
		r.logger.Warn("Debit rejected, insufficient remaining balance", map[string]any{
			"sponsorship_id": id.String(),
			"amount":         entity.AmountInCentsToString(amountCents),
			"remaining":      current.GetRemaining(),
		})
		return nil, errs.NewInsufficientFundsError(id.String(),
			entity.AmountInCentsToString(amountCents), current.GetRemaining())
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Sponsorship debited", map[string]any{
		"sponsorship_id": id.String(),
		"amount":         entity.AmountInCentsToString(amountCents),
		"remaining":      updated.GetRemaining(),
		"status":         string(updated.Status),
	})
	return updated, nil
}

// CreditRemaining atomically increments the remaining balance, reinstating
// active status if the sponsorship had flipped to depleted. Compensating
// callers run this inside a unit of work together with the terminal status
// flip, so a failed credit rolls the flip back with it.
func (r *SponsorshipRepository) CreditRemaining(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error) {
	result := r.db.WithContext(ctx).Model(&model.Sponsorship{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"remaining_cents": gorm.Expr("remaining_cents + ?", amountCents),
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END",
				string(entity.SponsorshipDepleted), string(entity.SponsorshipActive)),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("crediting sponsorship", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrSponsorshipNotFound
	}

	updated, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Sponsorship credited", map[string]any{
		"sponsorship_id": id.String(),
		"amount":         entity.AmountInCentsToString(amountCents),
		"remaining":      updated.GetRemaining(),
		"status":         string(updated.Status),
	})
	return updated, nil
}

// UpdateStatus sets the sponsorship status
func (r *SponsorshipRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SponsorshipStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Sponsorship{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating sponsorship status", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSponsorshipNotFound
	}

	r.logger.Info("Sponsorship status updated", map[string]any{
		"sponsorship_id": id.String(),
		"status":         string(status),
	})
	return nil
}
