package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/logger"
)

const testSigningSecret = "webhook-signing-secret"

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "custody-gateway",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func webhookTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/transfers",
		middleware.WebhookAuth(testSigningSecret, logger.NewNoopLogger()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestWebhookAuth(t *testing.T) {
	router := webhookTestRouter()

	t.Run("valid token passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSigningSecret))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with wrong secret is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "wrong-secret"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		})
		signed, err := token.SignedString([]byte(testSigningSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", nil)
		req.Header.Set("Authorization", "Bearer "+signed)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
