package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/metrics"
	coremocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/sponsorship-engine/mocks/port/persistence"
)

func newWebhookTestServer(t *testing.T) (*gin.Engine, *persistencemocks.MockExecutedTransactionRepository, *persistencemocks.MockUnitOfWork) {
	gin.SetMode(gin.TestMode)

	executedRepo := persistencemocks.NewMockExecutedTransactionRepository(t)
	uow := persistencemocks.NewMockUnitOfWork(t)
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	listener := reconcile.NewListener(executedRepo, uow, logger)
	h := NewWebhookHandler(listener, logger)

	router := gin.New()
	router.POST("/webhooks/transfers", h.TransferOutcome)
	return router, executedRepo, uow
}

func newWebhookExecution(t *testing.T) *entity.ExecutedTransaction {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	pending, err := entity.NewPendingTransaction(uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		3000, "hashed-otp", 5*time.Minute, "", mockTime)
	require.NoError(t, err)
	executed, err := entity.NewExecutedTransaction(pending, uuid.New(), "0xvendor", mockTime)
	require.NoError(t, err)
	require.NoError(t, executed.MarkDispatched("tr_123", mockTime))
	return executed
}

func postWebhook(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/transfers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookTransferOutcome(t *testing.T) {
	t.Run("Completed event moves the counters and the gauge", func(t *testing.T) {
		router, executedRepo, _ := newWebhookTestServer(t)
		executed := newWebhookExecution(t)

		executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		executedRepo.EXPECT().MarkCompleted(mock.Anything, executed.ID, "0xblockref").Return(true, nil).Once()

		completedBefore := testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("completed"))
		inFlightBefore := testutil.ToFloat64(metrics.InFlightTransfers)

		w := postWebhook(router, `{"transferId":"tr_123","outcome":"success","onchainRef":"0xblockref"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, completedBefore+1, testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("completed")))
		assert.Equal(t, inFlightBefore-1, testutil.ToFloat64(metrics.InFlightTransfers))
	})

	t.Run("Duplicate event is answered 200 but leaves metrics untouched", func(t *testing.T) {
		router, executedRepo, _ := newWebhookTestServer(t)
		executed := newWebhookExecution(t)

		executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		executedRepo.EXPECT().MarkCompleted(mock.Anything, executed.ID, "0xblockref").Return(false, nil).Once()

		completedBefore := testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("completed"))
		inFlightBefore := testutil.ToFloat64(metrics.InFlightTransfers)

		w := postWebhook(router, `{"transferId":"tr_123","outcome":"success","onchainRef":"0xblockref"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, completedBefore, testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("completed")))
		assert.Equal(t, inFlightBefore, testutil.ToFloat64(metrics.InFlightTransfers))
	})

	t.Run("Unknown transfer event does not drift the gauge", func(t *testing.T) {
		router, executedRepo, _ := newWebhookTestServer(t)

		executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_unknown").
			Return(nil, errs.ErrExecutedTransactionNotFound).Once()

		inFlightBefore := testutil.ToFloat64(metrics.InFlightTransfers)

		w := postWebhook(router, `{"transferId":"tr_unknown","outcome":"success"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, inFlightBefore, testutil.ToFloat64(metrics.InFlightTransfers))
	})

	t.Run("Duplicate failure event does not count a compensation", func(t *testing.T) {
		router, executedRepo, uow := newWebhookTestServer(t)
		executed := newWebhookExecution(t)

		executedRepo.EXPECT().GetByTransferID(mock.Anything, "tr_123").Return(executed, nil).Once()
		uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil).Once()
		uow.EXPECT().GetExecutedTransactionRepository(mock.Anything).Return(executedRepo).Once()
		executedRepo.EXPECT().MarkFailed(mock.Anything, executed.ID, entity.ExecutionFailedOnchain, "reverted").
			Return(false, nil).Once()
		uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		compensationsBefore := testutil.ToFloat64(metrics.CompensationsTotal)
		failedBefore := testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("failed_onchain"))

		w := postWebhook(router, `{"transferId":"tr_123","outcome":"failure","reason":"reverted"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, compensationsBefore, testutil.ToFloat64(metrics.CompensationsTotal))
		assert.Equal(t, failedBefore, testutil.ToFloat64(metrics.SettlementsTotal.WithLabelValues("failed_onchain")))
	})
}
