package tui

import (
	"github.com/MKhiriev/chiro-hub/models"
)

type leadsLoadedMsg struct {
	leads []models.Lead
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
