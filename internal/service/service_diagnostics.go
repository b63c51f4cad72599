package service

import (
	"context"

	"github.com/MKhiriev/chiro-hub/internal/app"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
)

type diagnosticsService struct {
	connector      *store.Connector
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewDiagnosticsService(connector *store.Connector, userRepository store.UserRepository, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		connector:      connector,
		userRepository: userRepository,
		logger:         logger,
	}
}

// Check reports configuration presence and runs a read-only probe of the
// users table when the database is configured.
func (s *diagnosticsService) Check(ctx context.Context) models.Diagnostics {
	settings := s.connector.Settings()

	diag := models.Diagnostics{
		HasURL:        settings.DSN != "",
		HasServiceKey: settings.ServiceRoleKey != "",
	}

	if !settings.IsConfigured() {
		diag.Message = app.MsgDBNotConfigured
		return diag
	}

	if err := s.userRepository.ProbeUsers(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("users table probe failed")
		errMsg := err.Error()
		diag.Error = &errMsg
		diag.Message = app.MsgUsersTableProblem
		return diag
	}

	diag.TableOK = true
	diag.OK = true
	diag.Message = app.MsgRegistrationOperational
	return diag
}
