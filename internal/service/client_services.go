package service

import (
	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	LeadService   ClientLeadService
	StatusService ClientStatusService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, auditor AuditRunner, app config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(storages, serverAdapter, app.Chiropractor, logger),
		LeadService:   NewClientLeadService(storages, serverAdapter, auditor, app.Chiropractor, logger),
		StatusService: NewClientStatusService(serverAdapter),
	}
}
