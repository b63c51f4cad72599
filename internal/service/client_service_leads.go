package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

type clientLeadService struct {
	serverAdapter adapter.ServerAdapter
	localLeads    store.LocalLeadRepository
	sharedLeads   store.LeadStore
	identities    store.LocalIdentityRepository
	auditor       AuditRunner

	chiropractor string
	now          func() time.Time

	logger *logger.Logger
}

func NewClientLeadService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, auditor AuditRunner, chiropractor string, logger *logger.Logger) ClientLeadService {
	return &clientLeadService{
		serverAdapter: serverAdapter,
		localLeads:    storages.Leads,
		sharedLeads:   storages.SharedLeads,
		identities:    storages.Identities,
		auditor:       auditor,
		chiropractor:  chiropractor,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientLeadService) Add(ctx context.Context, raw json.RawMessage) (models.LeadAck, error) {
	prepared, err := s.prepareLead(ctx, raw)
	if err != nil {
		return models.LeadAck{}, err
	}

	ack, err := s.serverAdapter.PostLead(ctx, prepared)
	if err != nil {
		return models.LeadAck{}, fmt.Errorf("error sending lead: %w", mapAdapterError(err))
	}

	err = s.auditor.Run(ctx, func(ctx context.Context) error {
		if err := s.localLeads.SaveLead(ctx, ack.Lead); err != nil {
			return fmt.Errorf("error saving lead locally: %w", err)
		}
		if s.sharedLeads != nil && s.sharedLeads.Configured() {
			if err := s.sharedLeads.AppendLead(ctx, ack.Lead); err != nil {
				return fmt.Errorf("%w: %w", ErrLeadStoreFailed, err)
			}
		}

		event := logger.FromContext(ctx).Info()
		if auditCtx, ok := utils.GetAuditContextFromContext(ctx); ok {
			event = event.Str("session_id", auditCtx.SessionID)
			s.touchLastSeen(ctx, auditCtx.Login)
		}
		event.Msg("lead stored")
		return nil
	})
	if err != nil {
		return models.LeadAck{}, err
	}

	return ack, nil
}

func (s *clientLeadService) ListRemote(ctx context.Context, q models.LeadQuery) (models.LeadList, error) {
	list, err := s.serverAdapter.ListLeads(ctx, q)
	if err != nil {
		return models.LeadList{}, fmt.Errorf("error listing leads: %w", mapAdapterError(err))
	}
	return list, nil
}

func (s *clientLeadService) ListLocal(ctx context.Context, chiropractor string) ([]models.Lead, error) {
	leads, err := s.localLeads.GetLeads(ctx, chiropractor)
	if err != nil {
		return nil, fmt.Errorf("error listing local leads: %w", err)
	}
	return leads, nil
}

// touchLastSeen records activity of login on the hosted database through
// the connection bound by the auditor, so the change is attributed. Without
// a bound connection nothing is written. Failures are logged only: the lead
// is already stored.
func (s *clientLeadService) touchLastSeen(ctx context.Context, login string) {
	conn, ok := store.AuditedConnFromContext(ctx)
	if !ok || login == "" {
		return
	}

	if _, err := conn.TouchLastSeen(ctx, login, s.now().UTC()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("login", login).Msg("recording activity failed")
	}
}

// prepareLead checks that raw is a JSON object and fills in the clinic tag
// and creation time when they are absent.
func (s *clientLeadService) prepareLead(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, ErrInvalidLeadPayload
	}

	if _, ok := fields[models.LeadFieldChiropractor]; !ok {
		if chiropractor := s.currentChiropractor(ctx); chiropractor != "" {
			fields[models.LeadFieldChiropractor], _ = json.Marshal(chiropractor)
		}
	}
	if _, ok := fields[models.LeadFieldCreatedAt]; !ok {
		fields[models.LeadFieldCreatedAt], _ = json.Marshal(s.now().UTC().Format(time.RFC3339))
	}

	prepared, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLeadPayload, err)
	}
	return prepared, nil
}

func (s *clientLeadService) currentChiropractor(ctx context.Context) string {
	identity, err := s.identities.GetIdentity(ctx)
	if err == nil && identity.Chiropractor != "" {
		return identity.Chiropractor
	}
	return s.chiropractor
}
