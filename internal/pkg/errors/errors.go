package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindForbidden      Kind = "forbidden"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindRateLimited    Kind = "rate_limited"
	KindInternal       Kind = "internal"
	KindGatewayDown    Kind = "gateway_unavailable"
	KindGatewayReject  Kind = "gateway_rejected"
	KindReconciliation Kind = "reconciliation"
)

type CustomError struct {
	Code    int
	Kind    Kind
	Message string
	cause   error
}

func (e *CustomError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

func BadRequest(msg string) error {
	return &CustomError{Code: http.StatusBadRequest, Kind: KindValidation, Message: msg}
}

func UnauthorizedError(msg string) error {
	return &CustomError{Code: http.StatusUnauthorized, Kind: KindAuthentication, Message: msg}
}

func Forbidden(msg string) error {
	return &CustomError{Code: http.StatusForbidden, Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &CustomError{Code: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &CustomError{Code: http.StatusConflict, Kind: KindConflict, Message: msg}
}

func TooManyRequests(msg string) error {
	return &CustomError{Code: http.StatusTooManyRequests, Kind: KindRateLimited, Message: msg}
}

func InternalServerError(msg string) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: msg}
}

// GatewayUnavailable is retryable: nothing reached the gateway or no answer came back.
func GatewayUnavailable(msg string, cause error) error {
	return &CustomError{Code: http.StatusBadGateway, Kind: KindGatewayDown, Message: msg, cause: cause}
}

func GatewayTimeout(msg string, cause error) error {
	return &CustomError{Code: http.StatusGatewayTimeout, Kind: KindGatewayDown, Message: msg, cause: cause}
}

func GatewayRejected(reason string) error {
	return &CustomError{Code: http.StatusUnprocessableEntity, Kind: KindGatewayReject, Message: "gateway rejected: " + reason}
}

// ReconciliationError means money may have moved without a recorded booking.
func ReconciliationError(msg string, cause error) error {
	return &CustomError{Code: http.StatusInternalServerError, Kind: KindReconciliation, Message: msg, cause: cause}
}

func KindOf(err error) Kind {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Kind == kind
}

func StatusCode(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return "internal server error"
}
