// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the body is not valid JSON for the
	// endpoint.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body is too large")
)
