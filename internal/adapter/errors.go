package adapter

import "errors"

var (
	// ErrDelivery wraps every failure of [ReportAdapter.Send].
	ErrDelivery = errors.New("report delivery failed")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrEmptyTransfer is returned when a speed test moved no bytes.
	ErrEmptyTransfer = errors.New("speed test transferred no data")

	// ErrNoPublicAddress is returned when no STUN server answered.
	ErrNoPublicAddress = errors.New("public address not resolved")
)
