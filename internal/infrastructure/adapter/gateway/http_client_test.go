package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	httpgateway "github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/logger"
)

func TestHTTPClientGetBalances(t *testing.T) {
	t.Run("parses balances and sends bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/wallets/0xabc/balances", r.URL.Path)
			assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"spendable":"1250.50","feeToken":"3.00"}`))
		}))
		defer server.Close()

		client := httpgateway.NewHTTPClient(server.URL, "secret-key", 5*time.Second, logger.NewNoopLogger())

		balances, err := client.GetBalances(context.Background(), "0xabc")
		require.NoError(t, err)
		assert.Equal(t, int64(1250_50), balances.SpendableCents)
		assert.Equal(t, int64(3_00), balances.FeeTokenCents)
	})

	t.Run("non-2xx response surfaces as gateway unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := httpgateway.NewHTTPClient(server.URL, "", 5*time.Second, logger.NewNoopLogger())

		_, err := client.GetBalances(context.Background(), "0xabc")
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("malformed balance amounts surface as gateway unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"spendable":"not-a-number","feeToken":"3.00"}`))
		}))
		defer server.Close()

		client := httpgateway.NewHTTPClient(server.URL, "", 5*time.Second, logger.NewNoopLogger())

		_, err := client.GetBalances(context.Background(), "0xabc")
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}

func TestHTTPClientTransfer(t *testing.T) {
	t.Run("submits transfer with formatted amount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/transfers", r.URL.Path)

			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "0xsource", req["sourceAddress"])
			assert.Equal(t, "0xvendor", req["destinationAddress"])
			assert.Equal(t, "75.25", req["amount"])

			w.WriteHeader(http.StatusAccepted)
			_, _ = w.Write([]byte(`{"transferId":"tr_789","status":"accepted"}`))
		}))
		defer server.Close()

		client := httpgateway.NewHTTPClient(server.URL, "", 5*time.Second, logger.NewNoopLogger())

		receipt, err := client.Transfer(context.Background(), "0xsource", "0xvendor", 75_25)
		require.NoError(t, err)
		assert.Equal(t, "tr_789", receipt.TransferID)
		assert.Equal(t, "accepted", receipt.ImmediateStatus)
	})

	t.Run("response without transfer id is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"accepted"}`))
		}))
		defer server.Close()

		client := httpgateway.NewHTTPClient(server.URL, "", 5*time.Second, logger.NewNoopLogger())

		_, err := client.Transfer(context.Background(), "0xsource", "0xvendor", 10_00)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("unreachable gateway surfaces as gateway unavailable", func(t *testing.T) {
		client := httpgateway.NewHTTPClient("http://127.0.0.1:1", "", time.Second, logger.NewNoopLogger())

		_, err := client.Transfer(context.Background(), "0xsource", "0xvendor", 10_00)
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})
}
