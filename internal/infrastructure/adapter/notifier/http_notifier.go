package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
)

// HTTPNotifier pushes messages to the beneficiary's device through an
// out-of-band push channel. Delivery is best-effort: every failure mode is
// logged and reported as a plain false so the settlement pipeline never
// blocks on notification problems.
type HTTPNotifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// NewHTTPNotifier creates a push-channel notifier
func NewHTTPNotifier(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *HTTPNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPNotifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type pushMessage struct {
	Contact  string `json:"contact"`
	Kind     string `json:"kind"`
	Code     string `json:"code,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
	Category string `json:"category,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Expires  string `json:"expiresIn,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// SendOtp delivers the one-time passcode to the beneficiary's contact
func (n *HTTPNotifier) SendOtp(ctx context.Context, contact string, msg gateway.OtpMessage) bool {
	return n.push(ctx, pushMessage{
		Contact:  contact,
		Kind:     "otp",
		Code:     msg.Code,
		Vendor:   msg.VendorName,
		Category: msg.Category,
		Amount:   msg.Amount,
		Expires:  msg.ExpiresIn,
	})
}

// SendConfirmation delivers a settlement summary after a dispatch
func (n *HTTPNotifier) SendConfirmation(ctx context.Context, contact string, summary string) bool {
	return n.push(ctx, pushMessage{
		Contact: contact,
		Kind:    "confirmation",
		Summary: summary,
	})
}

func (n *HTTPNotifier) push(ctx context.Context, msg pushMessage) bool {
	payload, err := json.Marshal(msg)
	if err != nil {
		n.logger.Warn("Failed to encode notification payload", map[string]any{
			"kind":  msg.Kind,
			"error": err.Error(),
		})
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		n.logger.Warn("Failed to build notification request", map[string]any{
			"kind":  msg.Kind,
			"error": err.Error(),
		})
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("Notification delivery failed", map[string]any{
			"kind":  msg.Kind,
			"error": err.Error(),
		})
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		n.logger.Warn("Notification channel rejected message", map[string]any{
			"kind":   msg.Kind,
			"status": resp.StatusCode,
		})
		return false
	}

	return true
}
