package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientFunds.Error() != "insufficient sponsorship funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrOtpExpired.Error() != "one-time passcode expired" {
		t.Errorf("ErrOtpExpired has unexpected message: %s", ErrOtpExpired.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidRequest", ErrInvalidRequest, 4003},
		{"ForbiddenCategory", ErrForbiddenCategory, 4004},
		{"InvalidOtp", ErrInvalidOtp, 4010},
		{"OtpExpired", ErrOtpExpired, 4011},
		{"NoEligibleFunds", ErrNoEligibleFunds, 4013},
		{"BeneficiaryNotFound", ErrBeneficiaryNotFound, 4040},
		{"SponsorshipNotFound", ErrSponsorshipNotFound, 4041},
		{"SponsorWalletTooLow", ErrSponsorWalletInsufficient, 4220},
		{"GatewayUnavailable", ErrGatewayUnavailable, 5020},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidRequest), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("sp-123", "300.00", "150.00")
	if err == nil {
		t.Fatal("NewInsufficientFundsError returned nil")
	}

	// Test Error method
	expectedErrMsg := "insufficient funds on sponsorship sp-123: required 300.00, remaining 150.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	// Test through helper function
	if !IsInsufficientFundsError(err) {
		t.Errorf("IsInsufficientFundsError(err) = false, want true")
	}
}

func TestGatewayError(t *testing.T) {
	baseErr := errors.New("connection refused")
	err := NewGatewayError("transfer", "0xabc", baseErr)
	if err == nil {
		t.Fatal("NewGatewayError returned nil")
	}

	// Test Error method
	expectedErrMsg := "funds gateway transfer failed for wallet 0xabc: connection refused"
	if err.Error() != expectedErrMsg {
		t.Errorf("GatewayError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Unwrap method
	if !errors.Is(err, baseErr) {
		t.Errorf("errors.Is(err, baseErr) = false, want true")
	}

	// Test Is method and helper function
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Errorf("errors.Is(err, ErrGatewayUnavailable) = false, want true")
	}
	if !IsGatewayError(err) {
		t.Errorf("IsGatewayError(err) = false, want true")
	}
}

func TestSettlementError(t *testing.T) {
	baseErr := ErrInvalidState
	settlementErr := NewSettlementError(
		"pt-789",
		"sp-123",
		"pending_otp",
		"50.00",
		"invalid state transition",
		baseErr,
	)

	if settlementErr == nil {
		t.Fatal("NewSettlementError returned nil")
	}

	var cast *SettlementError
	if !errors.As(settlementErr, &cast) {
		t.Fatalf("errors.As failed: not a *SettlementError")
	}

	if cast.PendingTransactionID != "pt-789" {
		t.Errorf("PendingTransactionID = %s, want pt-789", cast.PendingTransactionID)
	}

	if cast.SponsorshipID != "sp-123" {
		t.Errorf("SponsorshipID = %s, want sp-123", cast.SponsorshipID)
	}

	if cast.Amount != "50.00" {
		t.Errorf("Amount = %s, want 50.00", cast.Amount)
	}

	// Test unwrapping
	if !errors.Is(settlementErr, baseErr) {
		t.Errorf("errors.Is(settlementErr, baseErr) = false, want true")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientFundsError(ErrInvalidRequest) {
		t.Errorf("IsInsufficientFundsError(ErrInvalidRequest) = true, want false")
	}

	if IsGatewayError(ErrInvalidAmount) {
		t.Errorf("IsGatewayError(ErrInvalidAmount) = true, want false")
	}

	// Wrapped errors
	wrappedInsufficientErr := fmt.Errorf("wrapped: %w", ErrInsufficientFunds)
	if !IsInsufficientFundsError(wrappedInsufficientErr) {
		t.Errorf("IsInsufficientFundsError(wrappedInsufficientErr) = false, want true")
	}

	// Every not-found sentinel is recognized by the generic helper
	notFound := []error{
		ErrNotFound,
		ErrSponsorshipNotFound,
		ErrBeneficiaryNotFound,
		ErrVendorNotFound,
		ErrCategoryNotFound,
		ErrWalletNotFound,
		ErrPendingTransactionNotFound,
		ErrExecutedTransactionNotFound,
	}
	for _, err := range notFound {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}
	if IsNotFoundError(ErrInvalidState) {
		t.Errorf("IsNotFoundError(ErrInvalidState) = true, want false")
	}

	if !IsOtpError(ErrInvalidOtp) || !IsOtpError(ErrOtpExpired) {
		t.Errorf("IsOtpError should accept both passcode sentinels")
	}
	if IsOtpError(ErrInvalidRequest) {
		t.Errorf("IsOtpError(ErrInvalidRequest) = true, want false")
	}
}
