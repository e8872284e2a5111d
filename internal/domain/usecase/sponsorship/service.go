package sponsorship

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/persistence"
)

// Service owns sponsorship records: allocation, remaining balance, status and
// category restrictions. It is the only component allowed to mutate a
// sponsorship's remaining balance, and it does so exclusively through the
// repository's conditional debit/credit updates.
type Service struct {
	sponsorshipRepo persistence.SponsorshipRepository
	beneficiaryRepo persistence.BeneficiaryRepository
	categoryRepo    persistence.CategoryRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewService creates a new sponsorship ledger service
func NewService(
	sponsorshipRepo persistence.SponsorshipRepository,
	beneficiaryRepo persistence.BeneficiaryRepository,
	categoryRepo persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		sponsorshipRepo: sponsorshipRepo,
		beneficiaryRepo: beneficiaryRepo,
		categoryRepo:    categoryRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// CreateRequest represents the input for creating a sponsorship
type CreateRequest struct {
	SponsorID            uuid.UUID
	WalletID             uuid.UUID
	BeneficiaryLookupKey string
	Amount               string
	CategoryIDs          []uuid.UUID
	Notes                string
	ExpiresAt            *time.Time
}

// Create validates the category set, finds or registers the beneficiary and
// persists the sponsorship together with its category restrictions. The
// restriction link is written right after the sponsorship row; if linking
// fails the sponsorship creation is compensated by deletion so it never
// exists without its restrictions.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*entity.Sponsorship, error) {
	if len(req.CategoryIDs) == 0 {
		return nil, errs.ErrCategoryNotFound
	}

	ok, err := s.categoryRepo.AllExist(ctx, req.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to verify categories: %w", err)
	}
	if !ok {
		return nil, errs.ErrCategoryNotFound
	}

	beneficiary, err := s.findOrCreateBeneficiary(ctx, req.BeneficiaryLookupKey)
	if err != nil {
		return nil, err
	}

	sponsorship, err := entity.NewSponsorship(
		req.SponsorID, beneficiary.ID, req.WalletID,
		req.Amount, req.CategoryIDs, req.Notes, req.ExpiresAt,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.sponsorshipRepo.Create(ctx, sponsorship); err != nil {
		return nil, fmt.Errorf("failed to persist sponsorship: %w", err)
	}

	if err := s.sponsorshipRepo.LinkCategories(ctx, sponsorship.ID, req.CategoryIDs); err != nil {
		// A sponsorship must never exist without its restrictions
		if removeErr := s.sponsorshipRepo.Remove(ctx, sponsorship.ID); removeErr != nil {
			s.logger.Error("Failed to compensate sponsorship creation", map[string]any{
				"sponsorship_id": sponsorship.ID.String(),
				"link_error":     err.Error(),
				"remove_error":   removeErr.Error(),
			})
		}
		return nil, fmt.Errorf("failed to link categories: %w", err)
	}

	s.logger.Info("Sponsorship created", map[string]any{
		"sponsorship_id": sponsorship.ID.String(),
		"sponsor_id":     req.SponsorID.String(),
		"beneficiary_id": beneficiary.ID.String(),
		"total":          sponsorship.GetTotal(),
		"categories":     len(req.CategoryIDs),
	})
	return sponsorship, nil
}

// findOrCreateBeneficiary resolves the beneficiary by lookup key, registering
// a new record when the key is unknown
func (s *Service) findOrCreateBeneficiary(ctx context.Context, lookupKey string) (*entity.Beneficiary, error) {
	if lookupKey == "" {
		return nil, errs.ErrInvalidRequest
	}

	beneficiary, err := s.beneficiaryRepo.GetByLookupKey(ctx, lookupKey)
	if err == nil {
		return beneficiary, nil
	}
	if !errs.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to resolve beneficiary: %w", err)
	}

	beneficiary = &entity.Beneficiary{
		ID:        uuid.New(),
		LookupKey: lookupKey,
		Contact:   lookupKey,
		CreatedAt: s.timeProvider.Now(),
	}
	if err := s.beneficiaryRepo.Create(ctx, beneficiary); err != nil {
		return nil, fmt.Errorf("failed to register beneficiary: %w", err)
	}

	s.logger.Info("Beneficiary registered", map[string]any{
		"beneficiary_id": beneficiary.ID.String(),
	})
	return beneficiary, nil
}

// FindActiveForBeneficiary returns spendable sponsorships for the
// beneficiary, optionally restricted to a category. Used both by the vendor
// quoting surface and by the settlement engine's eligibility check.
func (s *Service) FindActiveForBeneficiary(ctx context.Context, beneficiaryID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Sponsorship, error) {
	return s.sponsorshipRepo.FindActiveForBeneficiary(ctx, beneficiaryID, categoryID, s.timeProvider.Now())
}

// ListBySponsor returns the sponsor's allocations, oldest first
func (s *Service) ListBySponsor(ctx context.Context, sponsorID uuid.UUID) ([]*entity.Sponsorship, error) {
	return s.sponsorshipRepo.ListBySponsor(ctx, sponsorID)
}

// GetByID retrieves a single sponsorship
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error) {
	return s.sponsorshipRepo.GetByID(ctx, id)
}

// Debit decrements the sponsorship's remaining balance. This is the
// irreversible commit point of a settlement on the ledger side and must be
// safe under concurrent callers: the repository evaluates the balance
// predicate inside a single conditional update.
func (s *Service) Debit(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error) {
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	sponsorship, err := s.sponsorshipRepo.DebitRemaining(ctx, id, amountCents)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sponsorship debited", map[string]any{
		"sponsorship_id": id.String(),
		"amount":         entity.AmountInCentsToString(amountCents),
		"remaining":      sponsorship.GetRemaining(),
		"status":         string(sponsorship.Status),
	})
	return sponsorship, nil
}

// Credit reinstates funds on the sponsorship. This is the compensating
// inverse of Debit; callers are responsible for invoking it at most once per
// executed transaction (the settlement engine and reconciliation listener
// anchor that on the execution record's terminal transition).
func (s *Service) Credit(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error) {
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	sponsorship, err := s.sponsorshipRepo.CreditRemaining(ctx, id, amountCents)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sponsorship credited", map[string]any{
		"sponsorship_id": id.String(),
		"amount":         entity.AmountInCentsToString(amountCents),
		"remaining":      sponsorship.GetRemaining(),
		"status":         string(sponsorship.Status),
	})
	return sponsorship, nil
}

// Cancel marks the sponsorship cancelled. Only the owning sponsor may cancel;
// cancelling an already-cancelled sponsorship returns the existing record
// rather than erroring.
func (s *Service) Cancel(ctx context.Context, id, sponsorID uuid.UUID) (*entity.Sponsorship, error) {
	sponsorship, err := s.sponsorshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sponsorship.SponsorID != sponsorID {
		// Ownership is part of the lookup contract: a foreign sponsorship is
		// indistinguishable from a missing one
		return nil, errs.ErrSponsorshipNotFound
	}

	if sponsorship.Status == entity.SponsorshipCancelled {
		return sponsorship, nil
	}

	if err := s.sponsorshipRepo.UpdateStatus(ctx, id, entity.SponsorshipCancelled); err != nil {
		return nil, err
	}
	sponsorship.Cancel(s.timeProvider)

	s.logger.Info("Sponsorship cancelled", map[string]any{
		"sponsorship_id": id.String(),
		"sponsor_id":     sponsorID.String(),
		"remaining":      sponsorship.GetRemaining(),
	})
	return sponsorship, nil
}
