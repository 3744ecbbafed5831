package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned by the auth service when credentials or tokens
// do not check out (wrong admin password, bad or expired bearer token).
// Handlers should map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")
