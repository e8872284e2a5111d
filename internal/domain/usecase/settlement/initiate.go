package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
)

// InitiateRequest represents a vendor's request to start a redemption
type InitiateRequest struct {
	VendorID             uuid.UUID
	BeneficiaryLookupKey string
	Amount               string
	CategoryID           uuid.UUID
	Notes                string
}

// InitiateResult is returned to the vendor after the OTP challenge is issued.
// DisplayFallback carries a human-readable message when the notification
// channel could not deliver the passcode, so the vendor can relay it
// out-of-band.
type InitiateResult struct {
	PendingTransactionID uuid.UUID
	OtpExpiresAt         time.Time
	OtpDelivered         bool
	DisplayFallback      string
}

// Initiate validates vendor, beneficiary and category, selects an eligible
// sponsorship, verifies the backing wallet through the gateway and issues the
// OTP challenge. Validation failures return synchronously with no side
// effects; only a fully validated request persists a pending transaction.
func (s *Service) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error) {
	amountCents, err := entity.ValidateAndConvertAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if amountCents == 0 {
		return nil, errs.ErrInvalidAmount
	}

	beneficiary, err := s.beneficiaryRepo.GetByLookupKey(ctx, req.BeneficiaryLookupKey)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}
	if !vendor.ApprovedFor(req.CategoryID) {
		return nil, errs.ErrForbiddenCategory
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	sponsorship, err := s.selectSponsorship(ctx, beneficiary.ID, req.CategoryID, amountCents)
	if err != nil {
		return nil, err
	}

	if _, err := s.refreshWallet(ctx, sponsorship.WalletID, amountCents); err != nil {
		return nil, err
	}

	code, err := GenerateOtp(s.cfg.OtpDigits)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	hash, err := HashOtp(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	pending, err := entity.NewPendingTransaction(
		vendor.ID, beneficiary.ID, req.CategoryID, sponsorship.ID,
		amountCents, hash, s.cfg.OtpTTL, req.Notes,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		return nil, fmt.Errorf("failed to persist pending transaction: %w", err)
	}

	// Delivery is best-effort: a silent notification failure must not fail
	// the initiation, the vendor relays the code from the fallback instead
	delivered := s.notifier.SendOtp(ctx, beneficiary.Contact, gateway.OtpMessage{
		Code:       code,
		VendorName: vendor.Name,
		Category:   category.Name,
		Amount:     pending.GetAmount(),
		ExpiresIn:  s.cfg.OtpTTL.String(),
	})

	result := &InitiateResult{
		PendingTransactionID: pending.ID,
		OtpExpiresAt:         pending.OtpExpiresAt,
		OtpDelivered:         delivered,
	}
	if !delivered {
		result.DisplayFallback = fmt.Sprintf(
			"Passcode could not be delivered to the beneficiary. Share code %s with them directly; it expires at %s.",
			code, pending.OtpExpiresAt.Format(time.RFC3339),
		)
		s.logger.Warn("OTP delivery failed, returning display fallback", map[string]any{
			"pending_transaction_id": pending.ID.String(),
			"beneficiary_id":         beneficiary.ID.String(),
		})
	}

	s.logger.Info("Redemption initiated", map[string]any{
		"pending_transaction_id": pending.ID.String(),
		"vendor_id":              vendor.ID.String(),
		"beneficiary_id":         beneficiary.ID.String(),
		"sponsorship_id":         sponsorship.ID.String(),
		"amount":                 pending.GetAmount(),
		"otp_delivered":          delivered,
		"otp_expires_at":         pending.OtpExpiresAt,
	})
	return result, nil
}
