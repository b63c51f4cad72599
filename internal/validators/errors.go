package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin    = errors.New("login is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidSince  = errors.New("since must be an RFC 3339 timestamp or a YYYY-MM-DD date")
)
