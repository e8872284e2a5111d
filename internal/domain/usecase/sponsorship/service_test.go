package sponsorship

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/persistence"
)

type serviceMocks struct {
	sponsorshipRepo *persistencemocks.MockSponsorshipRepository
	beneficiaryRepo *persistencemocks.MockBeneficiaryRepository
	categoryRepo    *persistencemocks.MockCategoryRepository
	timeProvider    *coremocks.MockTimeProvider
	logger          *coremocks.MockLogger
}

func newServiceWithMocks(t *testing.T, fixedTime time.Time) (*Service, serviceMocks) {
	m := serviceMocks{
		sponsorshipRepo: persistencemocks.NewMockSponsorshipRepository(t),
		beneficiaryRepo: persistencemocks.NewMockBeneficiaryRepository(t),
		categoryRepo:    persistencemocks.NewMockCategoryRepository(t),
		timeProvider:    coremocks.NewMockTimeProvider(t),
		logger:          coremocks.NewMockLogger(t),
	}
	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(m.sponsorshipRepo, m.beneficiaryRepo, m.categoryRepo, m.timeProvider, m.logger)
	return svc, m
}

func TestCreateSponsorship(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	sponsorID := uuid.New()
	walletID := uuid.New()
	categoryIDs := []uuid.UUID{uuid.New()}

	t.Run("Successful creation with existing beneficiary", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		beneficiary := &entity.Beneficiary{ID: uuid.New(), LookupKey: "+15550001111"}

		m.categoryRepo.EXPECT().AllExist(mock.Anything, categoryIDs).Return(true, nil).Once()
		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(beneficiary, nil).Once()
		m.sponsorshipRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Sponsorship) bool {
			return s.SponsorID == sponsorID && s.BeneficiaryID == beneficiary.ID && s.RemainingCents() == 15000
		})).Return(nil).Once()
		m.sponsorshipRepo.EXPECT().LinkCategories(mock.Anything, mock.Anything, categoryIDs).Return(nil).Once()

		s, err := svc.Create(ctx, CreateRequest{
			SponsorID:            sponsorID,
			WalletID:             walletID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "150.00",
			CategoryIDs:          categoryIDs,
		})

		require.NoError(t, err)
		assert.Equal(t, "150.00", s.GetTotal())
		assert.Equal(t, entity.SponsorshipActive, s.Status)
	})

	t.Run("Unknown beneficiary is registered on the fly", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)

		m.categoryRepo.EXPECT().AllExist(mock.Anything, categoryIDs).Return(true, nil).Once()
		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550002222").
			Return(nil, errs.ErrBeneficiaryNotFound).Once()
		m.beneficiaryRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Beneficiary) bool {
			return b.LookupKey == "+15550002222" && b.Contact == "+15550002222"
		})).Return(nil).Once()
		m.sponsorshipRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.sponsorshipRepo.EXPECT().LinkCategories(mock.Anything, mock.Anything, categoryIDs).Return(nil).Once()

		s, err := svc.Create(ctx, CreateRequest{
			SponsorID:            sponsorID,
			WalletID:             walletID,
			BeneficiaryLookupKey: "+15550002222",
			Amount:               "80.00",
			CategoryIDs:          categoryIDs,
		})

		require.NoError(t, err)
		assert.Equal(t, "80.00", s.GetRemaining())
	})

	t.Run("Unknown category rejects the request", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)

		m.categoryRepo.EXPECT().AllExist(mock.Anything, categoryIDs).Return(false, nil).Once()

		s, err := svc.Create(ctx, CreateRequest{
			SponsorID:            sponsorID,
			WalletID:             walletID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "150.00",
			CategoryIDs:          categoryIDs,
		})

		assert.Error(t, err)
		assert.Equal(t, errs.ErrCategoryNotFound, err)
		assert.Nil(t, s)
	})

	t.Run("Empty category set rejects the request", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, fixedTime)

		s, err := svc.Create(ctx, CreateRequest{
			SponsorID:            sponsorID,
			WalletID:             walletID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "150.00",
		})

		assert.Error(t, err)
		assert.Equal(t, errs.ErrCategoryNotFound, err)
		assert.Nil(t, s)
	})

	t.Run("Failed category link compensates the created row", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		beneficiary := &entity.Beneficiary{ID: uuid.New(), LookupKey: "+15550001111"}
		linkErr := errors.New("constraint violation")

		m.categoryRepo.EXPECT().AllExist(mock.Anything, categoryIDs).Return(true, nil).Once()
		m.beneficiaryRepo.EXPECT().GetByLookupKey(mock.Anything, "+15550001111").Return(beneficiary, nil).Once()
		m.sponsorshipRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.sponsorshipRepo.EXPECT().LinkCategories(mock.Anything, mock.Anything, categoryIDs).Return(linkErr).Once()
		m.sponsorshipRepo.EXPECT().Remove(mock.Anything, mock.Anything).Return(nil).Once()

		s, err := svc.Create(ctx, CreateRequest{
			SponsorID:            sponsorID,
			WalletID:             walletID,
			BeneficiaryLookupKey: "+15550001111",
			Amount:               "150.00",
			CategoryIDs:          categoryIDs,
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, linkErr)
		assert.Nil(t, s)
	})
}

func TestDebitAndCredit(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("Debit delegates to the conditional update", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		debited, err := entity.NewSponsorship(uuid.New(), uuid.New(), uuid.New(), "100.00",
			[]uuid.UUID{uuid.New()}, "", nil, m.timeProvider)
		require.NoError(t, err)
		require.NoError(t, debited.ApplyDebit(2500, m.timeProvider))

		m.sponsorshipRepo.EXPECT().DebitRemaining(mock.Anything, id, int64(2500)).Return(debited, nil).Once()

		s, err := svc.Debit(ctx, id, 2500)

		require.NoError(t, err)
		assert.Equal(t, "75.00", s.GetRemaining())
	})

	t.Run("Debit rejects non-positive amounts without touching the store", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, fixedTime)

		_, err := svc.Debit(ctx, id, 0)
		assert.Equal(t, errs.ErrInvalidAmount, err)

		_, err = svc.Debit(ctx, id, -100)
		assert.Equal(t, errs.ErrInvalidAmount, err)
	})

	t.Run("Debit surfaces insufficient funds", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		insufficientErr := errs.NewInsufficientFundsError(id.String(), "25.00", "10.00")

		m.sponsorshipRepo.EXPECT().DebitRemaining(mock.Anything, id, int64(2500)).
			Return(nil, insufficientErr).Once()

		_, err := svc.Debit(ctx, id, 2500)

		assert.Error(t, err)
		assert.True(t, errs.IsInsufficientFundsError(err))
	})

	t.Run("Credit delegates to the conditional update", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		credited, err := entity.NewSponsorship(uuid.New(), uuid.New(), uuid.New(), "100.00",
			[]uuid.UUID{uuid.New()}, "", nil, m.timeProvider)
		require.NoError(t, err)

		m.sponsorshipRepo.EXPECT().CreditRemaining(mock.Anything, id, int64(2500)).Return(credited, nil).Once()

		s, err := svc.Credit(ctx, id, 2500)

		require.NoError(t, err)
		assert.Equal(t, entity.SponsorshipActive, s.Status)
	})

	t.Run("Credit rejects non-positive amounts", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t, fixedTime)

		_, err := svc.Credit(ctx, id, 0)
		assert.Equal(t, errs.ErrInvalidAmount, err)
	})
}

func TestCancelSponsorship(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	sponsorID := uuid.New()

	newOwned := func(t *testing.T, m serviceMocks) *entity.Sponsorship {
		s, err := entity.NewSponsorship(sponsorID, uuid.New(), uuid.New(), "40.00",
			[]uuid.UUID{uuid.New()}, "", nil, m.timeProvider)
		require.NoError(t, err)
		return s
	}

	t.Run("Owner cancels an active sponsorship", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		s := newOwned(t, m)

		m.sponsorshipRepo.EXPECT().GetByID(mock.Anything, s.ID).Return(s, nil).Once()
		m.sponsorshipRepo.EXPECT().UpdateStatus(mock.Anything, s.ID, entity.SponsorshipCancelled).Return(nil).Once()

		cancelled, err := svc.Cancel(ctx, s.ID, sponsorID)

		require.NoError(t, err)
		assert.Equal(t, entity.SponsorshipCancelled, cancelled.Status)
	})

	t.Run("Cancel is idempotent", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		s := newOwned(t, m)
		s.Cancel(m.timeProvider)

		m.sponsorshipRepo.EXPECT().GetByID(mock.Anything, s.ID).Return(s, nil).Once()

		cancelled, err := svc.Cancel(ctx, s.ID, sponsorID)

		require.NoError(t, err)
		assert.Equal(t, entity.SponsorshipCancelled, cancelled.Status)
	})

	t.Run("Foreign sponsorship looks like a missing one", func(t *testing.T) {
		svc, m := newServiceWithMocks(t, fixedTime)
		s := newOwned(t, m)

		m.sponsorshipRepo.EXPECT().GetByID(mock.Anything, s.ID).Return(s, nil).Once()

		cancelled, err := svc.Cancel(ctx, s.ID, uuid.New())

		assert.Error(t, err)
		assert.Equal(t, errs.ErrSponsorshipNotFound, err)
		assert.Nil(t, cancelled)
	})
}

func TestFindActiveForBeneficiary(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	beneficiaryID := uuid.New()
	categoryID := uuid.New()

	svc, m := newServiceWithMocks(t, fixedTime)
	s, err := entity.NewSponsorship(uuid.New(), beneficiaryID, uuid.New(), "60.00",
		[]uuid.UUID{categoryID}, "", nil, m.timeProvider)
	require.NoError(t, err)

	m.sponsorshipRepo.EXPECT().
		FindActiveForBeneficiary(mock.Anything, beneficiaryID, &categoryID, fixedTime).
		Return([]*entity.Sponsorship{s}, nil).Once()

	eligible, err := svc.FindActiveForBeneficiary(ctx, beneficiaryID, &categoryID)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, s.ID, eligible[0].ID)
}
