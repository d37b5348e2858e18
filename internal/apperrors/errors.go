package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the current operator lacks the capability for an action.
var ErrForbidden = errors.New("forbidden")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrBackendUnavailable indicates the remote journal API could not be reached.
var ErrBackendUnavailable = errors.New("backend unavailable")

// ErrSessionExpired indicates the stored bearer token is no longer usable.
var ErrSessionExpired = errors.New("session expired")

// ErrNoSession indicates an operation that needs an operator session was
// called while logged out.
var ErrNoSession = errors.New("no active session")
