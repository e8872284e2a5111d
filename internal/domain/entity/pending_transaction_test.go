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

func TestNewPendingTransaction(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	vendorID := uuid.New()
	beneficiaryID := uuid.New()
	categoryID := uuid.New()
	sponsorshipID := uuid.New()

	t.Run("Valid challenge creation", func(t *testing.T) {
		p, err := NewPendingTransaction(vendorID, beneficiaryID, categoryID, sponsorshipID,
			1250, "hashed-otp", 5*time.Minute, "bread and milk", mockTime)

		require.NoError(t, err)
		assert.Equal(t, vendorID, p.VendorID)
		assert.Equal(t, beneficiaryID, p.BeneficiaryID)
		assert.Equal(t, categoryID, p.CategoryID)
		assert.Equal(t, sponsorshipID, p.SponsorshipID)
		assert.Equal(t, int64(1250), p.AmountCents)
		assert.Equal(t, "12.50", p.GetAmount())
		assert.Equal(t, PendingOtp, p.Status)
		assert.Equal(t, fixedTime, p.OtpIssuedAt)
		assert.Equal(t, fixedTime.Add(5*time.Minute), p.OtpExpiresAt)
		assert.True(t, p.IsAwaitingOtp())
		assert.True(t, p.IsLive())
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		p, err := NewPendingTransaction(vendorID, beneficiaryID, categoryID, sponsorshipID,
			0, "hashed-otp", 5*time.Minute, "", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidAmount, err)
		assert.Nil(t, p)
	})

	t.Run("Missing passcode hash", func(t *testing.T) {
		p, err := NewPendingTransaction(vendorID, beneficiaryID, categoryID, sponsorshipID,
			1000, "", 5*time.Minute, "", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidRequest, err)
		assert.Nil(t, p)
	})
}

func TestOtpWindowElapsed(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	p, err := NewPendingTransaction(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		1000, "hashed-otp", 5*time.Minute, "", mockTime)
	require.NoError(t, err)

	assert.False(t, p.OtpWindowElapsed(fixedTime))
	assert.False(t, p.OtpWindowElapsed(fixedTime.Add(5*time.Minute)))
	assert.True(t, p.OtpWindowElapsed(fixedTime.Add(5*time.Minute+time.Second)))
}

func TestPendingTransactionTransitions(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	newChallenge := func(t *testing.T) *PendingTransaction {
		p, err := NewPendingTransaction(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			1000, "hashed-otp", 5*time.Minute, "", mockTime)
		require.NoError(t, err)
		return p
	}

	t.Run("MarkVerified", func(t *testing.T) {
		p := newChallenge(t)

		require.NoError(t, p.MarkVerified(mockTime))
		assert.Equal(t, OtpVerified, p.Status)
		assert.False(t, p.IsAwaitingOtp())
		assert.True(t, p.IsLive())
	})

	t.Run("MarkExpired", func(t *testing.T) {
		p := newChallenge(t)

		require.NoError(t, p.MarkExpired(mockTime))
		assert.Equal(t, PendingExpired, p.Status)
		assert.False(t, p.IsLive())
	})

	t.Run("MarkFailedVerification", func(t *testing.T) {
		p := newChallenge(t)

		require.NoError(t, p.MarkFailedVerification(mockTime))
		assert.Equal(t, FailedVerification, p.Status)
		assert.False(t, p.IsLive())
	})

	t.Run("MarkCancelled", func(t *testing.T) {
		p := newChallenge(t)

		require.NoError(t, p.MarkCancelled(mockTime))
		assert.Equal(t, PendingCancelled, p.Status)
		assert.False(t, p.IsLive())
	})

	t.Run("Transitions only leave pending_otp once", func(t *testing.T) {
		p := newChallenge(t)
		require.NoError(t, p.MarkVerified(mockTime))

		assert.Equal(t, errs.ErrInvalidState, p.MarkVerified(mockTime))
		assert.Equal(t, errs.ErrInvalidState, p.MarkExpired(mockTime))
		assert.Equal(t, errs.ErrInvalidState, p.MarkFailedVerification(mockTime))
		assert.Equal(t, errs.ErrInvalidState, p.MarkCancelled(mockTime))
		assert.Equal(t, OtpVerified, p.Status)
	})
}
