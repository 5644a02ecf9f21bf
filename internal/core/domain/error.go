package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")

	// * Business errors.
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidAmount      = errors.New("payment amount must be positive")
	ErrPhoneRequired      = errors.New("customer phone is required by the payment gateway")
	ErrGatewayResponse    = errors.New("malformed payment gateway response")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// IsRetryable reports whether the operation that produced err left no side
// effect and may be safely repeated with backoff.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable)
}
