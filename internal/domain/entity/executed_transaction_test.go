package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/core"
)

func newVerifiedChallenge(t *testing.T, mockTime *coremocks.MockTimeProvider) *PendingTransaction {
	p, err := NewPendingTransaction(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		2000, "hashed-otp", 5*time.Minute, "", mockTime)
	require.NoError(t, err)
	require.NoError(t, p.MarkVerified(mockTime))
	return p
}

func TestNewExecutedTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid execution record", func(t *testing.T) {
		pending := newVerifiedChallenge(t, mockTime)
		walletID := uuid.New()

		e, err := NewExecutedTransaction(pending, walletID, "0xvendor", mockTime)

		require.NoError(t, err)
		assert.Equal(t, pending.ID, e.PendingTransactionID)
		assert.Equal(t, pending.SponsorshipID, e.SponsorshipID)
		assert.Equal(t, walletID, e.SourceWalletID)
		assert.Equal(t, "0xvendor", e.DestinationAddress)
		assert.Equal(t, int64(2000), e.AmountCents)
		assert.Equal(t, "20.00", e.GetAmount())
		assert.Equal(t, ExecutionInitiated, e.Status)
		assert.False(t, e.IsTerminal())
	})

	t.Run("Nil challenge", func(t *testing.T) {
		e, err := NewExecutedTransaction(nil, uuid.New(), "0xvendor", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrPendingTransactionNotFound, err)
		assert.Nil(t, e)
	})

	t.Run("Missing destination address", func(t *testing.T) {
		pending := newVerifiedChallenge(t, mockTime)

		e, err := NewExecutedTransaction(pending, uuid.New(), "", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, e)
	})
}

func TestExecutedTransactionLifecycle(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newExecution := func(t *testing.T) *ExecutedTransaction {
		e, err := NewExecutedTransaction(newVerifiedChallenge(t, mockTime), uuid.New(), "0xvendor", mockTime)
		require.NoError(t, err)
		return e
	}

	t.Run("Happy path: dispatched then completed", func(t *testing.T) {
		e := newExecution(t)

		require.NoError(t, e.MarkDispatched("tr_123", mockTime))
		assert.Equal(t, ExecutionPendingConfirmation, e.Status)
		assert.Equal(t, "tr_123", e.TransferID)
		assert.False(t, e.IsTerminal())

		require.NoError(t, e.MarkCompleted("0xabc", mockTime))
		assert.Equal(t, ExecutionCompleted, e.Status)
		assert.Equal(t, "0xabc", e.OnchainRef)
		assert.True(t, e.IsTerminal())
	})

	t.Run("Platform failure before dispatch", func(t *testing.T) {
		e := newExecution(t)

		require.NoError(t, e.MarkFailedPlatform("gateway timeout", mockTime))
		assert.Equal(t, ExecutionFailedPlatform, e.Status)
		assert.Equal(t, "gateway timeout", e.FailureNotes)
		assert.True(t, e.IsTerminal())
	})

	t.Run("On-chain failure after dispatch", func(t *testing.T) {
		e := newExecution(t)
		require.NoError(t, e.MarkDispatched("tr_456", mockTime))

		require.NoError(t, e.MarkFailedOnchain("reverted", mockTime))
		assert.Equal(t, ExecutionFailedOnchain, e.Status)
		assert.Equal(t, "reverted", e.FailureNotes)
		assert.True(t, e.IsTerminal())
	})

	t.Run("Dispatch requires a transfer id", func(t *testing.T) {
		e := newExecution(t)

		assert.Equal(t, errs.ErrInvalidRequest, e.MarkDispatched("", mockTime))
		assert.Equal(t, ExecutionInitiated, e.Status)
	})

	t.Run("Completed records reject further transitions", func(t *testing.T) {
		e := newExecution(t)
		require.NoError(t, e.MarkDispatched("tr_789", mockTime))
		require.NoError(t, e.MarkCompleted("0xdef", mockTime))

		assert.Equal(t, errs.ErrInvalidState, e.MarkCompleted("0xother", mockTime))
		assert.Equal(t, errs.ErrInvalidState, e.MarkFailedOnchain("late failure", mockTime))
		assert.Equal(t, errs.ErrInvalidState, e.MarkFailedPlatform("late failure", mockTime))
		assert.Equal(t, "0xdef", e.OnchainRef)
	})

	t.Run("Platform failure only from initiated", func(t *testing.T) {
		e := newExecution(t)
		require.NoError(t, e.MarkDispatched("tr_999", mockTime))

		assert.Equal(t, errs.ErrInvalidState, e.MarkFailedPlatform("too late", mockTime))
		assert.Equal(t, ExecutionPendingConfirmation, e.Status)
	})

	t.Run("On-chain failure only from pending_confirmation", func(t *testing.T) {
		e := newExecution(t)

		assert.Equal(t, errs.ErrInvalidState, e.MarkFailedOnchain("too early", mockTime))
		assert.Equal(t, ExecutionInitiated, e.Status)
	})
}
