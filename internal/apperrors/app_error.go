package apperrors

import (
	"errors"
	"net/http"
)

// AppError is the structured error handlers return to the gateway's own
// clients. Code is the HTTP status to respond with.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates an AppError with status 400.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates an AppError with status 401.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewNotFoundError creates an AppError with status 404. Access-denied on
// entity views also maps here so the response does not confirm that a
// restricted resource exists.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewConflictError creates an AppError with status 409.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewInternalServerError creates an AppError with status 500.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewBadGatewayError creates an AppError with status 502, used when the
// upstream journal API fails in a way we cannot attribute to the caller.
func NewBadGatewayError(message string) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message}
}

// FromError maps service-layer sentinel errors onto AppErrors. Unrecognized
// errors become a 502 because in this client everything unexpected comes from
// the upstream API.
func FromError(err error) *AppError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionExpired), errors.Is(err, ErrNoSession):
		return NewUnauthorizedError(err.Error())
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotFound):
		return NewNotFoundError("resource not found")
	case errors.Is(err, ErrBackendUnavailable):
		return NewBadGatewayError("journal service unavailable")
	default:
		return NewBadGatewayError("journal service error")
	}
}
