package gateway

import (
	"context"
)

// OtpMessage carries the passcode and the purchase context shown to the beneficiary
type OtpMessage struct {
	Code       string
	VendorName string
	Category   string
	Amount     string
	ExpiresIn  string
}

// Notifier delivers messages to a beneficiary through an out-of-band channel.
// Delivery is best-effort and may fail silently; non-delivery never blocks
// the settlement state machine, so both methods report delivery as a plain
// boolean instead of an error.
type Notifier interface {
	// SendOtp delivers the one-time passcode to the beneficiary's contact
	SendOtp(ctx context.Context, contact string, msg OtpMessage) bool

	// SendConfirmation delivers a settlement summary after a dispatch
	SendConfirmation(ctx context.Context, contact string, summary string) bool
}
