package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to an HTTP status and the standard error
// body. The numeric code comes from the domain taxonomy; the HTTP status only
// groups errors by how the caller should react.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := httpStatusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

func httpStatusFor(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrInvalidOtp):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrOtpExpired):
		return http.StatusGone
	case errors.Is(err, domainerr.ErrForbiddenCategory):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrInvalidState),
		errors.Is(err, domainerr.ErrSponsorshipInactive),
		errors.Is(err, domainerr.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrNoEligibleFunds),
		errors.Is(err, domainerr.ErrSponsorWalletInsufficient):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrGatewayUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondBindingError reports a malformed request body or path parameter
func respondBindingError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}
