package service

import (
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
)

type Services struct {
	UserService        UserService
	DiagnosticsService DiagnosticsService
	OAuthService       OAuthService
	LeadService        LeadService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		UserService:        NewUserValidationService().Wrap(NewUserService(storages.UserRepository, logger)),
		DiagnosticsService: NewDiagnosticsService(storages.Connector, storages.UserRepository, logger),
		OAuthService:       NewOAuthService(cfg.App, logger),
		LeadService:        NewLeadValidationService().Wrap(NewLeadService(storages.LeadStore, logger)),
		AppInfoService:     appInfo,
	}, nil
}
