package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/reconcile"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/metrics"
)

// WebhookHandler receives transfer-status events from the funds gateway.
// Authentication happens in middleware; by the time a request reaches this
// handler the sender is trusted.
type WebhookHandler struct {
	listener *reconcile.Listener
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(listener *reconcile.Listener, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		listener: listener,
		logger:   logger,
	}
}

// TransferOutcome handles the POST /webhooks/transfers endpoint. A non-2xx
// response makes the gateway redeliver the event, so persistent failures
// (notably a failed compensating credit) must surface as errors rather than
// being swallowed.
func (h *WebhookHandler) TransferOutcome(c *gin.Context) {
	var event dto.TransferOutcomeEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		respondBindingError(c, "Invalid event format: "+err.Error())
		return
	}

	transitioned, err := h.listener.HandleOutcome(c.Request.Context(), reconcile.TransferOutcome{
		TransferID: event.TransferID,
		Outcome:    event.Outcome,
		OnchainRef: event.OnchainRef,
		Reason:     event.Reason,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Duplicate and unknown-transfer events are answered 200 but change
	// nothing, so they must not move the counters or drift the gauge
	if transitioned {
		switch event.Outcome {
		case reconcile.OutcomeSuccess:
			metrics.SettlementsTotal.WithLabelValues("completed").Inc()
		case reconcile.OutcomeFailure:
			metrics.SettlementsTotal.WithLabelValues("failed_onchain").Inc()
			metrics.CompensationsTotal.Inc()
		}
		metrics.InFlightTransfers.Dec()
	}

	c.Status(http.StatusOK)
}
