package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
	coremocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/gateway"
	persistencemocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/usecase/settlement"
)

type engineMocks struct {
	ledger          *usecasemocks.MockLedger
	pendingRepo     *persistencemocks.MockPendingTransactionRepository
	executedRepo    *persistencemocks.MockExecutedTransactionRepository
	beneficiaryRepo *persistencemocks.MockBeneficiaryRepository
	vendorRepo      *persistencemocks.MockVendorRepository
	categoryRepo    *persistencemocks.MockCategoryRepository
	walletRepo      *persistencemocks.MockWalletRepository
	sponsorshipRepo *persistencemocks.MockSponsorshipRepository
	uow             *persistencemocks.MockUnitOfWork
	funds           *gatewaymocks.MockFundsGateway
	notifier        *gatewaymocks.MockNotifier
	timeProvider    *coremocks.MockTimeProvider
	logger          *coremocks.MockLogger
}

func newEngineWithMocks(t *testing.T, fixedTime time.Time, cfg Config) (*Service, engineMocks) {
	m := engineMocks{
		ledger:          usecasemocks.NewMockLedger(t),
		pendingRepo:     persistencemocks.NewMockPendingTransactionRepository(t),
		executedRepo:    persistencemocks.NewMockExecutedTransactionRepository(t),
		beneficiaryRepo: persistencemocks.NewMockBeneficiaryRepository(t),
		vendorRepo:      persistencemocks.NewMockVendorRepository(t),
		categoryRepo:    persistencemocks.NewMockCategoryRepository(t),
		walletRepo:      persistencemocks.NewMockWalletRepository(t),
		sponsorshipRepo: persistencemocks.NewMockSponsorshipRepository(t),
		uow:             persistencemocks.NewMockUnitOfWork(t),
		funds:           gatewaymocks.NewMockFundsGateway(t),
		notifier:        gatewaymocks.NewMockNotifier(t),
		timeProvider:    coremocks.NewMockTimeProvider(t),
		logger:          coremocks.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(
		m.ledger, m.pendingRepo, m.executedRepo,
		m.beneficiaryRepo, m.vendorRepo, m.categoryRepo, m.walletRepo,
		m.uow, m.funds, m.notifier, m.timeProvider, m.logger, cfg,
	)
	return svc, m
}

type initiateFixture struct {
	beneficiary *entity.Beneficiary
	vendor      *entity.Vendor
	category    *entity.Category
	sponsorship *entity.Sponsorship
	wallet      *entity.Wallet
}

func newInitiateFixture(t *testing.T, m engineMocks) initiateFixture {
	categoryID := uuid.New()
	walletID := uuid.New()
	beneficiary := &entity.Beneficiary{ID: uuid.New(), LookupKey: "+15550001111", Contact: "+15550001111"}
	vendor := &entity.Vendor{
		ID:                  uuid.New(),
		Name:                "Corner Grocery",
		ReceivingAddress:    "0xvendor",
		ApprovedCategoryIDs: []uuid.UUID{categoryID},
	}
	category := &entity.Category{ID: categoryID, Name: "groceries"}

	sponsorship, err := entity.NewSponsorship(uuid.New(), beneficiary.ID, walletID, "100.00",
		[]uuid.UUID{categoryID}, "", nil, m.timeProvider)
	require.NoError(t, err)

	wallet := &entity.Wallet{ID: walletID, Address: "0xsponsor"}

	return initiateFixture{
		beneficiary: beneficiary,
		vendor:      vendor,
		category:    category,
		sponsorship: sponsorship,
		wallet:      wallet,
	}
}

func TestInitiate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful initiation issues an OTP challenge", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{fx.sponsorship}, nil).Once()
		m.walletRepo.EXPECT().GetByID(mock.Anything, fx.wallet.ID).Return(fx.wallet, nil).Once()
		m.funds.EXPECT().GetBalances(mock.Anything, "0xsponsor").
			Return(gateway.WalletBalances{SpendableCents: 50000, FeeTokenCents: 1000}, nil).Once()
		m.walletRepo.EXPECT().UpdateCachedBalances(mock.Anything, fx.wallet.ID, int64(50000), int64(1000)).Return(nil).Once()
		m.pendingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.PendingTransaction) bool {
			return p.SponsorshipID == fx.sponsorship.ID && p.AmountCents == 2500 && p.Status == entity.PendingOtp
		})).Return(nil).Once()
		m.notifier.EXPECT().SendOtp(mock.Anything, "+15550001111", mock.MatchedBy(func(msg gateway.OtpMessage) bool {
			return len(msg.Code) == 6 && msg.VendorName == "Corner Grocery" && msg.Amount == "25.00"
		})).Return(true).Once()

		result, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.PendingTransactionID)
		assert.Equal(t, fixedTime.Add(5*time.Minute), result.OtpExpiresAt)
		assert.True(t, result.OtpDelivered)
		assert.Empty(t, result.DisplayFallback)
	})

	t.Run("Notification failure falls back to display delivery", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{fx.sponsorship}, nil).Once()
		m.walletRepo.EXPECT().GetByID(mock.Anything, fx.wallet.ID).Return(fx.wallet, nil).Once()
		m.funds.EXPECT().GetBalances(mock.Anything, "0xsponsor").
			Return(gateway.WalletBalances{SpendableCents: 50000, FeeTokenCents: 1000}, nil).Once()
		m.walletRepo.EXPECT().UpdateCachedBalances(mock.Anything, fx.wallet.ID, int64(50000), int64(1000)).Return(nil).Once()
		m.pendingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.notifier.EXPECT().SendOtp(mock.Anything, "+15550001111", mock.Anything).Return(false).Once()

		result, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		require.NoError(t, err)
		assert.False(t, result.OtpDelivered)
		assert.NotEmpty(t, result.DisplayFallback)
	})

	t.Run("Invalid amount fails before any lookup", func(t *testing.T) {
		svc, _ := newEngineWithMocks(t, fixedTime, Config{})

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             uuid.New(),
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.123",
			CategoryID:           uuid.New(),
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		svc, _ := newEngineWithMocks(t, fixedTime, Config{})

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             uuid.New(),
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "0.00",
			CategoryID:           uuid.New(),
		})

		assert.Equal(t, errs.ErrInvalidAmount, err)
	})

	t.Run("Vendor not approved for the category", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)
		otherCategory := uuid.New()

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           otherCategory,
		})

		assert.Equal(t, errs.ErrForbiddenCategory, err)
	})

	t.Run("No eligible sponsorship", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return(nil, nil).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		assert.Equal(t, errs.ErrNoEligibleFunds, err)
	})

	t.Run("Eligible sponsorships exist but none covers the amount", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{fx.sponsorship}, nil).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "150.00",
			CategoryID:           fx.category.ID,
		})

		assert.Error(t, err)
		assert.True(t, errs.IsInsufficientFundsError(err))
	})

	t.Run("First covering sponsorship wins in creation order", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		small, err := entity.NewSponsorship(uuid.New(), fx.beneficiary.ID, fx.wallet.ID, "10.00",
			[]uuid.UUID{fx.category.ID}, "", nil, m.timeProvider)
		require.NoError(t, err)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{small, fx.sponsorship}, nil).Once()
		m.walletRepo.EXPECT().GetByID(mock.Anything, fx.wallet.ID).Return(fx.wallet, nil).Once()
		m.funds.EXPECT().GetBalances(mock.Anything, "0xsponsor").
			Return(gateway.WalletBalances{SpendableCents: 50000, FeeTokenCents: 1000}, nil).Once()
		m.walletRepo.EXPECT().UpdateCachedBalances(mock.Anything, fx.wallet.ID, int64(50000), int64(1000)).Return(nil).Once()
		m.pendingRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *entity.PendingTransaction) bool {
			// The older, smaller allocation cannot cover 25.00; the larger one is chosen
			return p.SponsorshipID == fx.sponsorship.ID
		})).Return(nil).Once()
		m.notifier.EXPECT().SendOtp(mock.Anything, mock.Anything, mock.Anything).Return(true).Once()

		result, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		require.NoError(t, err)
		assert.True(t, result.OtpDelivered)
	})

	t.Run("Sponsor wallet cannot fund the transfer", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{MinFeeTokenCents: 500})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{fx.sponsorship}, nil).Once()
		m.walletRepo.EXPECT().GetByID(mock.Anything, fx.wallet.ID).Return(fx.wallet, nil).Once()
		m.funds.EXPECT().GetBalances(mock.Anything, "0xsponsor").
			Return(gateway.WalletBalances{SpendableCents: 50000, FeeTokenCents: 100}, nil).Once()
		m.walletRepo.EXPECT().UpdateCachedBalances(mock.Anything, fx.wallet.ID, int64(50000), int64(100)).Return(nil).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		assert.Equal(t, errs.ErrSponsorWalletInsufficient, err)
	})

	t.Run("Gateway unavailable during balance refresh", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})
		fx := newInitiateFixture(t, m)

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(fx.beneficiary, nil).Once()
		m.vendorRepo.EXPECT().GetByID(mock.Anything, fx.vendor.ID).Return(fx.vendor, nil).Once()
		m.categoryRepo.EXPECT().GetByID(mock.Anything, fx.category.ID).Return(fx.category, nil).Once()
		m.ledger.EXPECT().FindActiveForBeneficiary(mock.Anything, fx.beneficiary.ID, mock.Anything).
			Return([]*entity.Sponsorship{fx.sponsorship}, nil).Once()
		m.walletRepo.EXPECT().GetByID(mock.Anything, fx.wallet.ID).Return(fx.wallet, nil).Once()
		m.funds.EXPECT().GetBalances(mock.Anything, "0xsponsor").
			Return(gateway.WalletBalances{}, errs.ErrGatewayUnavailable).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             fx.vendor.ID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "25.00",
			CategoryID:           fx.category.ID,
		})

		assert.Error(t, err)
		assert.True(t, errs.IsGatewayError(err))
	})

	t.Run("Unknown beneficiary", func(t *testing.T) {
		svc, m := newEngineWithMocks(t, fixedTime, Config{})

		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15559999999").
			Return(nil, errs.ErrBeneficiaryNotFound).Once()

		_, err := svc.Initiate(ctx, InitiateRequest{
			VendorID:             uuid.New(),
			BeneficiaryLookupKey: "+15559999999",
			Amount:               "25.00",
			CategoryID:           uuid.New(),
		})

		assert.Equal(t, errs.ErrBeneficiaryNotFound, err)
	})
}
