package gateway

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
)

// SimulatedGateway is a deterministic in-memory FundsGateway for local runs
// and tests. Unknown wallets report a generous default balance so a fresh
// environment works without seeding; seeded wallets behave like real accounts
// and are debited on transfer.
type SimulatedGateway struct {
	mu        sync.Mutex
	balances  map[string]gateway.WalletBalances
	transfers int64
	logger    coreport.Logger
}

// NewSimulatedGateway creates an in-memory custody gateway
func NewSimulatedGateway(logger coreport.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		balances: make(map[string]gateway.WalletBalances),
		logger:   logger,
	}
}

// SeedWallet sets the balances reported for a wallet address
func (g *SimulatedGateway) SeedWallet(walletAddress string, spendableCents, feeTokenCents int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balances[walletAddress] = gateway.WalletBalances{
		SpendableCents: spendableCents,
		FeeTokenCents:  feeTokenCents,
	}
}

// GetBalances reports the seeded balances, or a default snapshot for unknown wallets
func (g *SimulatedGateway) GetBalances(ctx context.Context, walletAddress string) (gateway.WalletBalances, error) {
	if err := ctx.Err(); err != nil {
		return gateway.WalletBalances{}, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if balances, ok := g.balances[walletAddress]; ok {
		return balances, nil
	}
	return gateway.WalletBalances{
		SpendableCents: 100_000_00,
		FeeTokenCents:  100_00,
	}, nil
}

// Transfer debits a seeded source wallet and hands back a deterministic
// transfer identifier. Seeded wallets with insufficient spendable balance
// reject the transfer the way the real provider would.
func (g *SimulatedGateway) Transfer(ctx context.Context, sourceWalletAddress, destAddress string, amountCents int64) (gateway.TransferReceipt, error) {
	if err := ctx.Err(); err != nil {
		return gateway.TransferReceipt{}, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	if amountCents <= 0 {
		return gateway.TransferReceipt{}, fmt.Errorf("%w: non-positive transfer amount", errs.ErrGatewayUnavailable)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if balances, ok := g.balances[sourceWalletAddress]; ok {
		if balances.SpendableCents < amountCents {
			return gateway.TransferReceipt{}, fmt.Errorf("%w: simulated wallet balance too low", errs.ErrGatewayUnavailable)
		}
		balances.SpendableCents -= amountCents
		g.balances[sourceWalletAddress] = balances
	}

	g.transfers++
	transferID := fmt.Sprintf("sim_tr_%06d", g.transfers)

	g.logger.Debug("Simulated transfer accepted", map[string]any{
		"transfer_id": transferID,
		"source":      sourceWalletAddress,
		"destination": destAddress,
	})
	return gateway.TransferReceipt{
		TransferID:      transferID,
		ImmediateStatus: "accepted",
	}, nil
}
