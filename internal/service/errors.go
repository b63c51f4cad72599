package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrOAuthClientIDMissing is returned when the Google OAuth client id is
	// not configured.
	ErrOAuthClientIDMissing = errors.New("google oauth client id is not configured")

	// ErrInvalidLeadPayload is returned when a lead body is not a JSON object.
	ErrInvalidLeadPayload = errors.New("lead must be a JSON object")

	// ErrLeadStoreFailed wraps failures of the shared lead store.
	ErrLeadStoreFailed = errors.New("lead store failure")
)

// Client-side errors.
var (
	ErrNotSignedIn       = errors.New("not signed in")
	ErrRegisterOnServer  = errors.New("registration on server failed")
	ErrLoginOnServer     = errors.New("login on server failed")
	ErrServerUnavailable = errors.New("server database is unavailable")
)
