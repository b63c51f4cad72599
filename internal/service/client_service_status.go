package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/models"
)

type clientStatusService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientStatusService(serverAdapter adapter.ServerAdapter) ClientStatusService {
	return &clientStatusService{serverAdapter: serverAdapter}
}

// Status fetches the server version and the registration diagnostics.
func (s *clientStatusService) Status(ctx context.Context) (models.ServerStatus, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("error fetching server version: %w", mapAdapterError(err))
	}

	diag, err := s.serverAdapter.Diagnostics(ctx)
	if err != nil {
		return models.ServerStatus{}, fmt.Errorf("error fetching diagnostics: %w", mapAdapterError(err))
	}

	return models.ServerStatus{Version: version, Diagnostics: diag}, nil
}
