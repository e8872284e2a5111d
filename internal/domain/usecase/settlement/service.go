package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/persistence"
)

// Ledger is the slice of the sponsorship service the settlement engine
// depends on. Debit is the irreversible commit point; its compensating
// credit is applied through the unit of work so it commits atomically with
// the terminal status flip.
type Ledger interface {
	FindActiveForBeneficiary(ctx context.Context, beneficiaryID uuid.UUID, categoryID *uuid.UUID) ([]*entity.Sponsorship, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sponsorship, error)
	Debit(ctx context.Context, id uuid.UUID, amountCents int64) (*entity.Sponsorship, error)
}

// Config carries the settlement engine's tunables. MinFeeTokenCents is an
// explicit threshold rather than a hard-coded comparison against zero.
type Config struct {
	OtpTTL           time.Duration
	OtpDigits        int
	MinFeeTokenCents int64
	GatewayTimeout   time.Duration
}

// Service orchestrates the initiate -> OTP-confirm -> transfer -> reconcile
// pipeline. All collaborators are injected at construction time; the service
// holds no process-wide state.
type Service struct {
	ledger          Ledger
	pendingRepo     persistence.PendingTransactionRepository
	executedRepo    persistence.ExecutedTransactionRepository
	beneficiaryRepo persistence.BeneficiaryRepository
	vendorRepo      persistence.VendorRepository
	categoryRepo    persistence.CategoryRepository
	walletRepo      persistence.WalletRepository
	uow             persistence.UnitOfWork
	funds           gateway.FundsGateway
	notifier        gateway.Notifier
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	cfg             Config
}

// NewService creates a new settlement engine
func NewService(
	ledger Ledger,
	pendingRepo persistence.PendingTransactionRepository,
	executedRepo persistence.ExecutedTransactionRepository,
	beneficiaryRepo persistence.BeneficiaryRepository,
	vendorRepo persistence.VendorRepository,
	categoryRepo persistence.CategoryRepository,
	walletRepo persistence.WalletRepository,
	uow persistence.UnitOfWork,
	funds gateway.FundsGateway,
	notifier gateway.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.OtpTTL <= 0 {
		cfg.OtpTTL = 5 * time.Minute
	}
	if cfg.OtpDigits == 0 {
		cfg.OtpDigits = 6
	}
	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = 15 * time.Second
	}

	return &Service{
		ledger:          ledger,
		pendingRepo:     pendingRepo,
		executedRepo:    executedRepo,
		beneficiaryRepo: beneficiaryRepo,
		vendorRepo:      vendorRepo,
		categoryRepo:    categoryRepo,
		walletRepo:      walletRepo,
		uow:             uow,
		funds:           funds,
		notifier:        notifier,
		timeProvider:    timeProvider,
		logger:          logger,
		cfg:             cfg,
	}
}

// refreshWallet fetches a fresh balance snapshot for the sponsorship's
// backing wallet, stores it in the cache and verifies it can fund the
// amount. The cached view is advisory; this is called immediately before any
// debit decision.
func (s *Service) refreshWallet(ctx context.Context, walletID uuid.UUID, amountCents int64) (*entity.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	balances, err := s.funds.GetBalances(ctx, wallet.Address)
	if err != nil {
		return nil, errs.NewGatewayError("balance query", wallet.Address, err)
	}

	wallet.SpendableCents = balances.SpendableCents
	wallet.FeeTokenCents = balances.FeeTokenCents
	wallet.RefreshedAt = s.timeProvider.Now()

	if err := s.walletRepo.UpdateCachedBalances(ctx, wallet.ID, balances.SpendableCents, balances.FeeTokenCents); err != nil {
		// The cache is advisory; a stale row must not fail the settlement
		s.logger.Warn("Failed to store refreshed wallet balances", map[string]any{
			"wallet_id": wallet.ID.String(),
			"error":     err.Error(),
		})
	}

	if !wallet.CanFund(amountCents, s.cfg.MinFeeTokenCents) {
		s.logger.Warn("Sponsor wallet cannot fund transfer", map[string]any{
			"wallet_id": wallet.ID.String(),
			"spendable": wallet.GetSpendable(),
			"fee_token": entity.AmountInCentsToString(wallet.FeeTokenCents),
			"required":  entity.AmountInCentsToString(amountCents),
		})
		return nil, errs.ErrSponsorWalletInsufficient
	}

	return wallet, nil
}

// selectSponsorship picks the first eligible sponsorship, in creation order,
// whose remaining balance covers the amount. The selection is advisory: the
// balance is re-verified at confirm time, not reserved here.
func (s *Service) selectSponsorship(ctx context.Context, beneficiaryID, categoryID uuid.UUID, amountCents int64) (*entity.Sponsorship, error) {
	eligible, err := s.ledger.FindActiveForBeneficiary(ctx, beneficiaryID, &categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible sponsorships: %w", err)
	}
	if len(eligible) == 0 {
		return nil, errs.ErrNoEligibleFunds
	}

	for _, candidate := range eligible {
		if candidate.CanCover(amountCents) {
			return candidate, nil
		}
	}

	return nil, errs.NewInsufficientFundsError(
		eligible[0].ID.String(),
		entity.AmountInCentsToString(amountCents),
		eligible[0].GetRemaining(),
	)
}
