package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/app"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
)

type leadService struct {
	leadStore store.LeadStore
	logger    *logger.Logger
}

func NewLeadService(leadStore store.LeadStore, logger *logger.Logger) LeadService {
	return &leadService{
		leadStore: leadStore,
		logger:    logger,
	}
}

// ListLeads reads every stored lead and keeps those matching q. An
// unconfigured store yields an empty list.
func (s *leadService) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error) {
	leads, err := s.leadStore.ListLeads(ctx)
	if err != nil {
		return models.LeadList{}, fmt.Errorf("%w: %w", ErrLeadStoreFailed, err)
	}

	filter := q.Filter()
	matched := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if filter.Match(lead) {
			matched = append(matched, lead)
		}
	}

	return models.LeadList{Leads: matched, Count: len(matched)}, nil
}

// ReceiveLead checks that raw is a JSON object and echoes it.
func (s *leadService) ReceiveLead(ctx context.Context, raw json.RawMessage) (models.LeadAck, error) {
	var lead models.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		return models.LeadAck{}, fmt.Errorf("%w: %w", ErrInvalidLeadPayload, err)
	}

	logger.FromContext(ctx).Info().
		Str("chiropractor", lead.Chiropractor).
		Str("name", lead.Name).
		Msg("lead received")

	return models.LeadAck{
		Success: true,
		Message: app.MsgLeadReceived,
		Lead:    raw,
	}, nil
}
