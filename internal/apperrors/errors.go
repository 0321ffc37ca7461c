package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or bad credentials, or an invalid/expired token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenReused indicates a refresh token that verified cryptographically but no longer
// matches the one stored for the user. Treated as a possible replay.
var ErrTokenReused = errors.New("refresh token is expired or already used")

// ErrUploadFailed indicates the external media upload did not yield a URL.
var ErrUploadFailed = errors.New("media upload failed")

// ErrInternal indicates an unexpected store failure or a failed post-write consistency check.
var ErrInternal = errors.New("internal error")
