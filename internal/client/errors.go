package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/service"
)

var (
	// ErrUnknownCommand is returned for an unrecognised sub-command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a required flag is absent.
	ErrMissingArgument = errors.New("missing argument")
)

// humanizeError turns transport failures into a hint for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrNotSignedIn) {
		return "not signed in: run `chiro-client login -login <name>` first"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}
