package apperrors

import "errors"

// ErrMissingInput indicates that a required input field was not supplied.
var ErrMissingInput = errors.New("required input missing")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrNotAuthenticated indicates that no identity was attached to the request,
// or the identity's token version no longer matches the stored one.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrForbidden indicates the authenticated user lacks a required role.
var ErrForbidden = errors.New("not authorized")

// ErrTokenInvalid indicates a token failed signature, shape, or expiry checks.
var ErrTokenInvalid = errors.New("token invalid")

// ErrVersionMismatch indicates a refresh token carries a stale token version,
// i.e. it was already exchanged or revoked.
var ErrVersionMismatch = errors.New("token version mismatch")

// ErrNotificationFailed indicates the mail provider did not accept a message.
var ErrNotificationFailed = errors.New("notification failed")

// ErrUpstream indicates a store or external collaborator failure.
var ErrUpstream = errors.New("upstream failure")
