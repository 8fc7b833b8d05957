package apperrors

import "errors"

// Sentinel errors shared by the repository, service and controller layers.
// Controllers map these to HTTP status codes; anything unrecognized is
// reported as a generic server error.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email has already been taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrLinkNotFound       = errors.New("short link not found")
	ErrLinkExpired        = errors.New("link has expired")
	ErrNothingToUpdate    = errors.New("no data to update")
)
