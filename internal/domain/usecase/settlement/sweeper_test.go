package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/persistence"
)

func TestSweepOnce(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newSweeper := func(t *testing.T) (*Sweeper, *persistencemocks.MockPendingTransactionRepository) {
		pendingRepo := persistencemocks.NewMockPendingTransactionRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		logger := coremocks.NewMockLogger(t)
		logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

		return NewSweeper(pendingRepo, mockTime, logger, time.Minute), pendingRepo
	}

	t.Run("Sweeps stale challenges", func(t *testing.T) {
		sweeper, pendingRepo := newSweeper(t)

		pendingRepo.EXPECT().ExpireStale(mock.Anything, fixedTime).Return(int64(3), nil).Once()

		assert.Equal(t, int64(3), sweeper.SweepOnce(ctx))
	})

	t.Run("Nothing to sweep", func(t *testing.T) {
		sweeper, pendingRepo := newSweeper(t)

		pendingRepo.EXPECT().ExpireStale(mock.Anything, fixedTime).Return(int64(0), nil).Once()

		assert.Equal(t, int64(0), sweeper.SweepOnce(ctx))
	})

	t.Run("Store failure is logged, not fatal", func(t *testing.T) {
		sweeper, pendingRepo := newSweeper(t)

		pendingRepo.EXPECT().ExpireStale(mock.Anything, fixedTime).Return(int64(0), errs.ErrDatabaseConnection).Once()

		assert.Equal(t, int64(0), sweeper.SweepOnce(ctx))
	})
}

func TestSweeperLifecycle(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	pendingRepo := persistencemocks.NewMockPendingTransactionRepository(t)
	pendingRepo.EXPECT().ExpireStale(mock.Anything, fixedTime).Return(int64(0), nil).Maybe()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	sweeper := NewSweeper(pendingRepo, mockTime, logger, 10*time.Millisecond)

	sweeper.Start()
	// Starting twice is a no-op
	sweeper.Start()

	time.Sleep(35 * time.Millisecond)

	sweeper.Stop()
	// Stopping twice is a no-op
	sweeper.Stop()
}
