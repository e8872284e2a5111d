package gateway_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	simgateway "github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/logger"
)

func TestSimulatedGatewayBalances(t *testing.T) {
	g := simgateway.NewSimulatedGateway(logger.NewNoopLogger())

	t.Run("unknown wallet reports default balances", func(t *testing.T) {
		balances, err := g.GetBalances(context.Background(), "0xunknown")
		require.NoError(t, err)
		assert.Equal(t, int64(100_000_00), balances.SpendableCents)
		assert.Equal(t, int64(100_00), balances.FeeTokenCents)
	})

	t.Run("seeded wallet reports seeded balances", func(t *testing.T) {
		g.SeedWallet("0xseeded", 500_00, 10_00)

		balances, err := g.GetBalances(context.Background(), "0xseeded")
		require.NoError(t, err)
		assert.Equal(t, int64(500_00), balances.SpendableCents)
		assert.Equal(t, int64(10_00), balances.FeeTokenCents)
	})
}

func TestSimulatedGatewayTransfer(t *testing.T) {
	t.Run("transfer debits seeded wallet and returns sequential ids", func(t *testing.T) {
		g := simgateway.NewSimulatedGateway(logger.NewNoopLogger())
		g.SeedWallet("0xsource", 100_00, 5_00)

		first, err := g.Transfer(context.Background(), "0xsource", "0xvendor", 30_00)
		require.NoError(t, err)
		assert.Equal(t, "sim_tr_000001", first.TransferID)
		assert.Equal(t, "accepted", first.ImmediateStatus)

		second, err := g.Transfer(context.Background(), "0xsource", "0xvendor", 30_00)
		require.NoError(t, err)
		assert.Equal(t, "sim_tr_000002", second.TransferID)

		balances, err := g.GetBalances(context.Background(), "0xsource")
		require.NoError(t, err)
		assert.Equal(t, int64(40_00), balances.SpendableCents)
	})

	t.Run("transfer exceeding seeded balance is rejected", func(t *testing.T) {
		g := simgateway.NewSimulatedGateway(logger.NewNoopLogger())
		g.SeedWallet("0xpoor", 10_00, 5_00)

		_, err := g.Transfer(context.Background(), "0xpoor", "0xvendor", 20_00)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		g := simgateway.NewSimulatedGateway(logger.NewNoopLogger())

		_, err := g.Transfer(context.Background(), "0xsource", "0xvendor", 0)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("cancelled context fails fast", func(t *testing.T) {
		g := simgateway.NewSimulatedGateway(logger.NewNoopLogger())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Transfer(ctx, "0xsource", "0xvendor", 10_00)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}
