package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidRequest      = 4003
	CodeForbiddenCategory   = 4004
	CodeConstraintViolation = 4005
	CodeAmountOverflow      = 4006
	CodeInvalidOtp          = 4010
	CodeOtpExpired          = 4011
	CodeInvalidState        = 4012
	CodeNoEligibleFunds     = 4013
	CodeSponsorshipInactive = 4014
	CodeBeneficiaryNotFound = 4040
	CodeSponsorshipNotFound = 4041
	CodeVendorNotFound      = 4042
	CodeCategoryNotFound    = 4043
	CodeWalletNotFound      = 4044
	CodePendingTxNotFound   = 4045
	CodeExecutedTxNotFound  = 4046
	CodeSponsorWalletTooLow = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGatewayUnavailable = 5020
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a sponsorship cannot cover the requested amount
	ErrInsufficientFunds = errors.New("insufficient sponsorship funds")

	// ErrInvalidAmount is returned when the amount format is invalid or non-positive
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large and would cause overflow
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidState is returned when a record is not in a state that allows the transition
	ErrInvalidState = errors.New("invalid record state for this operation")

	// ErrInvalidOtp is returned when the presented passcode does not match the challenge
	ErrInvalidOtp = errors.New("invalid one-time passcode")

	// ErrOtpExpired is returned when the confirmation window has elapsed
	ErrOtpExpired = errors.New("one-time passcode expired")

	// ErrNoEligibleFunds is returned when no active sponsorship covers the beneficiary and category
	ErrNoEligibleFunds = errors.New("no eligible sponsorship for beneficiary")

	// ErrForbiddenCategory is returned when the vendor is not enrolled for the requested category
	ErrForbiddenCategory = errors.New("vendor not enrolled for this category")

	// ErrSponsorshipInactive is returned when the sponsorship is cancelled, depleted or expired
	ErrSponsorshipInactive = errors.New("sponsorship is not active")

	// ErrSponsorWalletInsufficient is returned when the custody wallet cannot fund the transfer
	ErrSponsorWalletInsufficient = errors.New("sponsor wallet cannot fund this transfer")

	// ErrSponsorshipNotFound is returned when the requested sponsorship doesn't exist
	ErrSponsorshipNotFound = errors.New("sponsorship not found")

	// ErrBeneficiaryNotFound is returned when the requested beneficiary doesn't exist
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")

	// ErrVendorNotFound is returned when the requested vendor doesn't exist
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrCategoryNotFound is returned when a referenced category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrWalletNotFound is returned when the requested custody wallet doesn't exist
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrPendingTransactionNotFound is returned when the requested challenge doesn't exist
	ErrPendingTransactionNotFound = errors.New("pending transaction not found")

	// ErrExecutedTransactionNotFound is returned when the requested execution doesn't exist
	ErrExecutedTransactionNotFound = errors.New("executed transaction not found")

	// ErrGatewayUnavailable is returned when the funds gateway cannot be reached
	ErrGatewayUnavailable = errors.New("funds gateway unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrInvalidOtp):
		return CodeInvalidOtp
	case errors.Is(err, ErrOtpExpired):
		return CodeOtpExpired
	case errors.Is(err, ErrNoEligibleFunds):
		return CodeNoEligibleFunds
	case errors.Is(err, ErrForbiddenCategory):
		return CodeForbiddenCategory
	case errors.Is(err, ErrSponsorshipInactive):
		return CodeSponsorshipInactive
	case errors.Is(err, ErrSponsorWalletInsufficient):
		return CodeSponsorWalletTooLow
	case errors.Is(err, ErrSponsorshipNotFound):
		return CodeSponsorshipNotFound
	case errors.Is(err, ErrBeneficiaryNotFound):
		return CodeBeneficiaryNotFound
	case errors.Is(err, ErrVendorNotFound):
		return CodeVendorNotFound
	case errors.Is(err, ErrCategoryNotFound):
		return CodeCategoryNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrPendingTransactionNotFound):
		return CodePendingTxNotFound
	case errors.Is(err, ErrExecutedTransactionNotFound):
		return CodeExecutedTxNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information when a
// sponsorship cannot cover the requested amount
type InsufficientFundsError struct {
	SponsorshipID string
	Amount        string
	Remaining     string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on sponsorship %s: required %s, remaining %s",
		e.SponsorshipID, e.Amount, e.Remaining)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "insufficient_funds",
		"sponsorship_id": e.SponsorshipID,
		"amount":         e.Amount,
		"remaining":      e.Remaining,
		"error_code":     CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(sponsorshipID, amount, remaining string) error {
	return &InsufficientFundsError{
		SponsorshipID: sponsorshipID,
		Amount:        amount,
		Remaining:     remaining,
	}
}

// GatewayError wraps a failure from the custody funds gateway
type GatewayError struct {
	Operation string
	Address   string
	Err       error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	return fmt.Sprintf("funds gateway %s failed for wallet %s: %v",
		e.Operation, e.Address, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrGatewayUnavailable
func (e *GatewayError) Is(target error) bool {
	return target == ErrGatewayUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "gateway_error",
		"operation":  e.Operation,
		"wallet":     e.Address,
		"error":      e.Err.Error(),
		"error_code": CodeGatewayUnavailable,
	}
}

// NewGatewayError creates a detailed gateway error
func NewGatewayError(operation, address string, err error) error {
	return &GatewayError{
		Operation: operation,
		Address:   address,
		Err:       err,
	}
}

// SettlementError represents an error during the two-phase settlement flow
type SettlementError struct {
	PendingTransactionID string
	SponsorshipID        string
	State                string
	Amount               string
	Reason               string
	Err                  error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement error for challenge %s (sponsorship: %s, amount: %s): %s - %v",
		e.PendingTransactionID, e.SponsorshipID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":             "settlement_error",
		"pending_transaction_id": e.PendingTransactionID,
		"sponsorship_id":         e.SponsorshipID,
		"state":                  e.State,
		"amount":                 e.Amount,
		"reason":                 e.Reason,
		"error":                  e.Err.Error(),
		"error_code":             ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement error
func NewSettlementError(pendingTransactionID, sponsorshipID, state, amount, reason string, err error) error {
	return &SettlementError{
		PendingTransactionID: pendingTransactionID,
		SponsorshipID:        sponsorshipID,
		State:                state,
		Amount:               amount,
		Reason:               reason,
		Err:                  err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient sponsorship funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsGatewayError checks if the error originated at the funds gateway
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrSponsorshipNotFound) ||
		errors.Is(err, ErrBeneficiaryNotFound) ||
		errors.Is(err, ErrVendorNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrPendingTransactionNotFound) ||
		errors.Is(err, ErrExecutedTransactionNotFound)
}

// IsOtpError checks if the error is a passcode verification failure
func IsOtpError(err error) bool {
	return errors.Is(err, ErrInvalidOtp) || errors.Is(err, ErrOtpExpired)
}
