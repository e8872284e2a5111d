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

// BeneficiaryRepository implements the beneficiary store using GORM
type BeneficiaryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBeneficiaryRepository creates a new BeneficiaryRepository instance
func NewBeneficiaryRepository(db *gorm.DB, logger coreport.Logger) *BeneficiaryRepository {
	return &BeneficiaryRepository{db: db, logger: logger}
}

func beneficiaryModelToEntity(m *model.Beneficiary) *entity.Beneficiary {
	return &entity.Beneficiary{
		ID:        m.ID,
		LookupKey: m.LookupKey,
		Contact:   m.Contact,
		CreatedAt: m.CreatedAt,
	}
}

// GetByID retrieves a beneficiary
func (r *BeneficiaryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Beneficiary, error) {
	var beneficiaryModel model.Beneficiary
	result := r.db.WithContext(ctx).First(&beneficiaryModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBeneficiaryNotFound
		}
		r.logger.Error("Database error when getting beneficiary", map[string]any{
			"beneficiary_id": id.String(),
			"error":          result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return beneficiaryModelToEntity(&beneficiaryModel), nil
}

// GetByLookupKey retrieves a beneficiary by the out-of-band key sponsors and
// vendors use to reference them
func (r *BeneficiaryRepository) GetByLookupKey(ctx context.Context, lookupKey string) (*entity.Beneficiary, error) {
	var beneficiaryModel model.Beneficiary
	result := r.db.WithContext(ctx).First(&beneficiaryModel, "lookup_key = ?", lookupKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBeneficiaryNotFound
		}
		r.logger.Error("Database error when getting beneficiary by lookup key", map[string]any{
			"error": result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return beneficiaryModelToEntity(&beneficiaryModel), nil
}

// Create registers a new beneficiary
func (r *BeneficiaryRepository) Create(ctx context.Context, beneficiary *entity.Beneficiary) error {
	beneficiaryModel := model.Beneficiary{
		ID:        beneficiary.ID,
		LookupKey: beneficiary.LookupKey,
		Contact:   beneficiary.Contact,
		CreatedAt: beneficiary.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&beneficiaryModel)
	if result.Error != nil {
		r.logger.Error("Database error when creating beneficiary", map[string]any{
			"beneficiary_id": beneficiary.ID.String(),
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Beneficiary registered", map[string]any{
		"beneficiary_id": beneficiary.ID.String(),
	})
	return nil
}

// VendorRepository implements the vendor store using GORM
type VendorRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewVendorRepository creates a new VendorRepository instance
func NewVendorRepository(db *gorm.DB, logger coreport.Logger) *VendorRepository {
	return &VendorRepository{db: db, logger: logger}
}

// GetByID retrieves a vendor with its approved-category set
func (r *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	var vendorModel model.Vendor
	result := r.db.WithContext(ctx).Preload("ApprovedCategories").First(&vendorModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrVendorNotFound
		}
		r.logger.Error("Database error when getting vendor", map[string]any{
			"vendor_id": id.String(),
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	approved := make([]uuid.UUID, 0, len(vendorModel.ApprovedCategories))
	for _, link := range vendorModel.ApprovedCategories {
		approved = append(approved, link.CategoryID)
	}

	return &entity.Vendor{
		ID:                  vendorModel.ID,
		Name:                vendorModel.Name,
		ReceivingAddress:    vendorModel.ReceivingAddress,
		ApprovedCategoryIDs: approved,
		CreatedAt:           vendorModel.CreatedAt,
	}, nil
}

// CategoryRepository implements the category store using GORM
type CategoryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger}
}

// GetByID retrieves a category
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).First(&categoryModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrCategoryNotFound
		}
		r.logger.Error("Database error when getting category", map[string]any{
			"category_id": id.String(),
			"error":       result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Category{
		ID:        categoryModel.ID,
		Name:      categoryModel.Name,
		CreatedAt: categoryModel.CreatedAt,
	}, nil
}

// AllExist checks that every given category id is registered
func (r *CategoryRepository) AllExist(ctx context.Context, ids []uuid.UUID) (bool, error) {
	if len(ids) == 0 {
		return false, nil
	}

	// Duplicate ids in the request must not inflate the count
	unique := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	distinct := make([]uuid.UUID, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}

	var count int64
	result := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id IN ?", distinct).
		Count(&count)
	if result.Error != nil {
		r.logger.Error("Database error when checking categories", map[string]any{
			"error": result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return count == int64(len(distinct)), nil
}

// WalletRepository implements the cached wallet store using GORM
type WalletRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{db: db, timeProvider: timeProvider, logger: logger}
}

// GetByID retrieves a wallet record
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).First(&walletModel, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrWalletNotFound
		}
		r.logger.Error("Database error when getting wallet", map[string]any{
			"wallet_id": id.String(),
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Wallet{
		ID:             walletModel.ID,
		OwnerID:        walletModel.OwnerID,
		Address:        walletModel.Address,
		SpendableCents: walletModel.SpendableCents,
		FeeTokenCents:  walletModel.FeeTokenCents,
		RefreshedAt:    walletModel.RefreshedAt,
		CreatedAt:      walletModel.CreatedAt,
	}, nil
}

// UpdateCachedBalances stores a freshly fetched balance snapshot
func (r *WalletRepository) UpdateCachedBalances(ctx context.Context, id uuid.UUID, spendableCents, feeTokenCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"spendable_cents": spendableCents,
			"fee_token_cents": feeTokenCents,
			"refreshed_at":    r.timeProvider.Now(),
		})
	if result.Error != nil {
		r.logger.Error("Database error when refreshing wallet balances", map[string]any{
			"wallet_id": id.String(),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}

	return nil
}
