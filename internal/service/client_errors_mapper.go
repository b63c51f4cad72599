// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server's message is kept in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", store.ErrUserAlreadyExists, err)
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}
