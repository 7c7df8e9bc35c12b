package models

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorizedCode = "UNAUTHORIZED"
	ErrForbiddenCode    = "FORBIDDEN"
	ErrNotFoundCode     = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Order-specific errors
	ErrOrderNotFoundCode  = "ORDER_NOT_FOUND"
	ErrOrderDeliveredCode = "ORDER_DELIVERED"

	// Catalog-specific errors
	ErrPizzaNotFoundCode = "PIZZA_NOT_FOUND"
	ErrPizzaInvalidData  = "PIZZA_INVALID_DATA"

	// OAuth/Auth errors (maintain RFC 6749 compatibility)
	ErrInvalidRequest       = "invalid_request"
	ErrInvalidClient        = "invalid_client"
	ErrInvalidGrant         = "invalid_grant"
	ErrUnsupportedGrantType = "unsupported_grant_type"
)

// Sentinel domain errors. Services wrap these with context via %w so
// controllers can map them to HTTP statuses with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")

	ErrEmailRequired  = fmt.Errorf("%w: email is required", ErrValidation)
	ErrEmailTaken     = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrFlavourEmpty   = fmt.Errorf("%w: flavour cannot be empty", ErrValidation)
	ErrFlavourExists  = fmt.Errorf("%w: flavour already exists", ErrValidation)
	ErrOrderDelivered = fmt.Errorf("%w: order has been delivered", ErrForbidden)
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// MapDomainError translates a domain error into an HTTP status and a
// wire-level APIError.
func MapDomainError(err error) (int, APIError) {
	switch {
	case errors.Is(err, ErrOrderDelivered):
		return http.StatusForbidden, NewAPIError(ErrOrderDeliveredCode, "Order has been delivered!")
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, NewAPIError(ErrValidationFailed, err.Error())
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, NewAPIError(ErrUnauthorizedCode, err.Error())
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, NewAPIError(ErrForbiddenCode, err.Error())
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, NewAPIError(ErrNotFoundCode, err.Error())
	default:
		return http.StatusInternalServerError, NewAPIError(ErrInternalServer, "internal server error")
	}
}
