// Package tui implements the terminal lead browser of chiro-client.
package tui

import (
	"context"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	leads     service.ClientLeadService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		leads:     services.LeadService,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// BrowseLeads shows the leads saved on this device in a table until the
// user quits. An empty chiropractor shows all of them.
func (t *TUI) BrowseLeads(ctx context.Context, chiropractor string) error {
	load := func() ([]models.Lead, error) {
		return t.leads.ListLocal(ctx, chiropractor)
	}

	model := newLeadBrowserModel(load, t.buildInfo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Error().Err(err).Msg("lead browser failed")
		return err
	}
	return nil
}
