package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
)

// HTTPClient talks to the custody provider's REST API. It implements
// gateway.FundsGateway; the caller owns call timeouts through the context.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// NewHTTPClient creates a custody gateway client
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type balancesResponse struct {
	Spendable string `json:"spendable"`
	FeeToken  string `json:"feeToken"`
}

type transferRequest struct {
	SourceAddress      string `json:"sourceAddress"`
	DestinationAddress string `json:"destinationAddress"`
	Amount             string `json:"amount"`
}

type transferResponse struct {
	TransferID string `json:"transferId"`
	Status     string `json:"status"`
}

// GetBalances reports the wallet's current spendable and fee-token balances
func (c *HTTPClient) GetBalances(ctx context.Context, walletAddress string) (gateway.WalletBalances, error) {
	endpoint := fmt.Sprintf("%s/v1/wallets/%s/balances", c.baseURL, url.PathEscape(walletAddress))

	body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return gateway.WalletBalances{}, err
	}

	var resp balancesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return gateway.WalletBalances{}, fmt.Errorf("%w: malformed balances response: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	spendable, err := entity.ValidateAndConvertAmount(resp.Spendable)
	if err != nil {
		return gateway.WalletBalances{}, fmt.Errorf("%w: invalid spendable balance %q", errs.ErrGatewayUnavailable, resp.Spendable)
	}
	feeToken, err := entity.ValidateAndConvertAmount(resp.FeeToken)
	if err != nil {
		return gateway.WalletBalances{}, fmt.Errorf("%w: invalid fee-token balance %q", errs.ErrGatewayUnavailable, resp.FeeToken)
	}

	return gateway.WalletBalances{
		SpendableCents: spendable,
		FeeTokenCents:  feeToken,
	}, nil
}

// Transfer submits an asynchronous transfer and returns the provisional
// receipt. A transport failure or non-2xx answer surfaces as
// ErrGatewayUnavailable; the caller treats it as a synchronous failure.
func (c *HTTPClient) Transfer(ctx context.Context, sourceWalletAddress, destAddress string, amountCents int64) (gateway.TransferReceipt, error) {
	payload, err := json.Marshal(transferRequest{
		SourceAddress:      sourceWalletAddress,
		DestinationAddress: destAddress,
		Amount:             entity.AmountInCentsToString(amountCents),
	})
	if err != nil {
		return gateway.TransferReceipt{}, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	body, err := c.do(ctx, http.MethodPost, c.baseURL+"/v1/transfers", payload)
	if err != nil {
		return gateway.TransferReceipt{}, err
	}

	var resp transferResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return gateway.TransferReceipt{}, fmt.Errorf("%w: malformed transfer response: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	if resp.TransferID == "" {
		return gateway.TransferReceipt{}, fmt.Errorf("%w: transfer accepted without an identifier", errs.ErrGatewayUnavailable)
	}

	c.logger.Debug("Transfer submitted to custody gateway", map[string]any{
		"transfer_id": resp.TransferID,
		"status":      resp.Status,
	})
	return gateway.TransferReceipt{
		TransferID:      resp.TransferID,
		ImmediateStatus: resp.Status,
	}, nil
}

// do executes one request and returns the response body. Every failure mode
// collapses into ErrGatewayUnavailable so callers handle a single sentinel.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("Custody gateway request failed", map[string]any{
			"method":   method,
			"endpoint": endpoint,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrGatewayUnavailable, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Custody gateway rejected request", map[string]any{
			"method":   method,
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: gateway returned status %d", errs.ErrGatewayUnavailable, resp.StatusCode)
	}

	return body, nil
}
