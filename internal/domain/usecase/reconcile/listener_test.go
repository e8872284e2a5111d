package reconcile

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

func newDispatchedExecution(t *testing.T) *entity.ExecutedTransaction {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	pending, err := entity.NewPendingTransaction(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		3000, "hashed-otp", 5*time.Minute, "", mockTime)
	require.NoError(t, err)
	executed, err := entity.NewExecutedTransaction(pending, uuid.New(), "0xvendor", mockTime)
	require.NoError(t, err)
	require.NoError(t, executed.MarkDispatched("tr_123", mockTime))
	return executed
}

type listenerMocks struct {
	executedRepo    *persistencemocks.MockExecutedTransactionRepository
	sponsorshipRepo *persistencemocks.MockSponsorshipRepository
	uow             *persistencemocks.MockUnitOfWork
}

func newListenerWithMocks(t *testing.T) (*Listener, *listenerMocks) {
	m := &listenerMocks{
		executedRepo:    persistencemocks.NewMockExecutedTransactionRepository(t),
		sponsorshipRepo: persistencemocks.NewMockSponsorshipRepository(t),
		uow:             persistencemocks.NewMockUnitOfWork(t),
	}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewListener(m.executedRepo, m.uow, logger), m
}

// expectCompensationTx wires the unit of work to hand the test's repositories
// back inside the transaction scope
func (m *listenerMocks) expectCompensationTx(ctx context.Context) {
	m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil)
	m.uow.EXPECT().GetExecutedTransactionRepository(mock.Anything).Return(m.executedRepo)
}

func TestHandleOutcomeSuccess(t *testing.T) {
	ctx := context.Background()

	t.Run("Success event completes the execution", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		m.executedRepo.EXPECT().MarkCompleted(mock.Anything, executed.ID, "0xblockref").Return(true, nil).Once()

		transitioned, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeSuccess,
			OnchainRef: "0xblockref",
		})

		assert.NoError(t, err)
		assert.True(t, transitioned)
	})

	t.Run("Duplicate success event is swallowed without a transition", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		m.executedRepo.EXPECT().MarkCompleted(mock.Anything, executed.ID, "0xblockref").Return(false, nil).Once()

		transitioned, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeSuccess,
			OnchainRef: "0xblockref",
		})

		assert.NoError(t, err)
		assert.False(t, transitioned)
	})
}

func TestHandleOutcomeFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure event flips and credits in one transaction", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		m.expectCompensationTx(ctx)
		m.executedRepo.EXPECT().MarkFailed(mock.Anything, executed.ID, entity.ExecutionFailedOnchain, "reverted").
			Return(true, nil).Once()
		m.uow.EXPECT().GetSponsorshipRepository(mock.Anything).Return(m.sponsorshipRepo).Once()
		m.sponsorshipRepo.EXPECT().CreditRemaining(mock.Anything, executed.SponsorshipID, int64(3000)).
			Return(nil, nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		transitioned, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeFailure,
			Reason:     "reverted",
		})

		assert.NoError(t, err)
		assert.True(t, transitioned)
	})

	t.Run("Duplicate failure event does not credit again", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		m.expectCompensationTx(ctx)
		m.executedRepo.EXPECT().MarkFailed(mock.Anything, executed.ID, entity.ExecutionFailedOnchain, "reverted").
			Return(false, nil).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		// No CreditRemaining expectation: the flip was already performed earlier

		transitioned, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeFailure,
			Reason:     "reverted",
		})

		assert.NoError(t, err)
		assert.False(t, transitioned)
	})

	t.Run("Failed credit rolls the flip back and redelivery compensates", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)
		creditErr := errors.New("connection reset")
		event := TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeFailure,
			Reason:     "reverted",
		}

		// First delivery: the credit fails inside the transaction, so the
		// whole scope rolls back and the error surfaces as non-2xx
		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Times(2)
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(2)
		m.uow.EXPECT().GetExecutedTransactionRepository(mock.Anything).Return(m.executedRepo).Times(2)
		m.executedRepo.EXPECT().MarkFailed(mock.Anything, executed.ID, entity.ExecutionFailedOnchain, "reverted").
			Return(true, nil).Times(2)
		m.uow.EXPECT().GetSponsorshipRepository(mock.Anything).Return(m.sponsorshipRepo).Times(2)
		m.sponsorshipRepo.EXPECT().CreditRemaining(mock.Anything, executed.SponsorshipID, int64(3000)).
			Return(nil, creditErr).Once()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		transitioned, err := listener.HandleOutcome(ctx, event)
		assert.ErrorIs(t, err, creditErr)
		assert.False(t, transitioned)

		// Redelivery: the record is still non-terminal because the flip was
		// rolled back, so the same event retries the full compensation
		m.sponsorshipRepo.EXPECT().CreditRemaining(mock.Anything, executed.SponsorshipID, int64(3000)).
			Return(nil, nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		transitioned, err = listener.HandleOutcome(ctx, event)
		assert.NoError(t, err)
		assert.True(t, transitioned)
	})
}

func TestHandleOutcomeStaleAndInvalid(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown transfer id is logged and swallowed", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_unknown").
			Return(nil, errs.ErrExecutedTransactionNotFound).Once()

		transitioned, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_unknown",
			Outcome:    OutcomeSuccess,
		})

		assert.NoError(t, err)
		assert.False(t, transitioned)
	})

	t.Run("Store error is surfaced", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").
			Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    OutcomeSuccess,
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Missing transfer id", func(t *testing.T) {
		listener, _ := newListenerWithMocks(t)

		_, err := listener.HandleOutcome(ctx, TransferOutcome{Outcome: OutcomeSuccess})

		assert.Equal(t, errs.ErrInvalidRequest, err)
	})

	t.Run("Unknown outcome value", func(t *testing.T) {
		listener, m := newListenerWithMocks(t)
		executed := newDispatchedExecution(t)

		m.executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()

		_, err := listener.HandleOutcome(ctx, TransferOutcome{
			TransferID: "tr_123",
			Outcome:    "maybe",
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
