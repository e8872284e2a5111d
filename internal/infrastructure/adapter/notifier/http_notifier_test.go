package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/notifier"
)

func TestHTTPNotifierSendOtp(t *testing.T) {
	t.Run("delivers passcode with purchase context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)

			var msg map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
			assert.Equal(t, "otp", msg["kind"])
			assert.Equal(t, "+15550001111", msg["contact"])
			assert.Equal(t, "123456", msg["code"])
			assert.Equal(t, "Corner Pharmacy", msg["vendor"])
			assert.Equal(t, "42.00", msg["amount"])

			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		n := notifier.NewHTTPNotifier(server.URL, "push-key", 2*time.Second, logger.NewNoopLogger())

		delivered := n.SendOtp(context.Background(), "+15550001111", gateway.OtpMessage{
			Code:       "123456",
			VendorName: "Corner Pharmacy",
			Category:   "medicine",
			Amount:     "42.00",
			ExpiresIn:  "5m0s",
		})
		assert.True(t, delivered)
	})

	t.Run("rejected message reports false without erroring", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		n := notifier.NewHTTPNotifier(server.URL, "", 2*time.Second, logger.NewNoopLogger())

		delivered := n.SendOtp(context.Background(), "+15550001111", gateway.OtpMessage{Code: "123456"})
		assert.False(t, delivered)
	})

	t.Run("unreachable channel reports false", func(t *testing.T) {
		n := notifier.NewHTTPNotifier("http://127.0.0.1:1", "", time.Second, logger.NewNoopLogger())

		delivered := n.SendOtp(context.Background(), "+15550001111", gateway.OtpMessage{Code: "123456"})
		assert.False(t, delivered)
	})
}

func TestHTTPNotifierSendConfirmation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "confirmation", msg["kind"])
		assert.Equal(t, "Purchase of 42.00 at Corner Pharmacy is being settled.", msg["summary"])

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := notifier.NewHTTPNotifier(server.URL, "", 2*time.Second, logger.NewNoopLogger())

	delivered := n.SendConfirmation(context.Background(), "+15550001111", "Purchase of 42.00 at Corner Pharmacy is being settled.")
	assert.True(t, delivered)
}
