package gateway

import (
	"context"
)

// WalletBalances is a point-in-time balance snapshot reported by the custody provider
type WalletBalances struct {
	SpendableCents int64 // stablecoin balance available for transfers
	FeeTokenCents  int64 // gas/fee-token balance required to execute transfers
}

// TransferReceipt is the gateway's immediate answer to a transfer request.
// The final outcome arrives asynchronously through the webhook.
type TransferReceipt struct {
	TransferID      string
	ImmediateStatus string
}

// FundsGateway is the external wallet/custody provider. Transfer calls may
// block for several seconds; callers must not hold any sponsorship-level lock
// across them.
type FundsGateway interface {
	// GetBalances reports the wallet's current spendable and fee-token balances
	//
	// Possible errors:
	// - ErrGatewayUnavailable: If the provider cannot be reached or rejects the call
	GetBalances(ctx context.Context, walletAddress string) (WalletBalances, error)

	// Transfer executes an asynchronous transfer and returns a provisional
	// transfer identifier immediately. A timeout is treated as a synchronous
	// failure by callers, never as an implied success.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: If the provider rejects the transfer or times out
	Transfer(ctx context.Context, sourceWalletAddress, destAddress string, amountCents int64) (TransferReceipt, error)
}
