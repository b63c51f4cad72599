// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit attributes client-side mutations to the signed-in user.
//
// Before a mutating operation runs, [Helper.Run] resolves the session
// identifier, looks up the public IP address and binds the resulting
// [models.AuditContext] to a pinned hosted database connection that the
// operation receives through its context (see [store.AuditedConnFromContext]).
// Every step is best-effort: failures are logged and the operation always
// runs.
package audit

import (
	"context"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

// DefaultTimeout bounds the enrichment when no timeout is configured.
const DefaultTimeout = 3 * time.Second

// Operation is a mutating call guarded by [Helper.Run].
type Operation func(ctx context.Context) error

type idGenerator interface {
	Generate() string
}

// Helper binds audit metadata before mutating operations.
type Helper struct {
	identities store.LocalIdentityRepository
	sessions   store.LocalSessionRepository
	binder     store.AuditRepository
	ipLookup   adapter.IPLookup
	ids        idGenerator

	chiropractor string
	userAgent    string
	timeout      time.Duration

	logger *logger.Logger
}

// NewHelper wires a Helper to the client storages. chiropractor is used
// when the cached identity carries no clinic tag.
func NewHelper(storages *store.ClientStorages, ipLookup adapter.IPLookup, cfg config.Audit, app config.ClientApp, logger *logger.Logger) *Helper {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Helper{
		identities:   storages.Identities,
		sessions:     storages.Sessions,
		binder:       storages.Audit,
		ipLookup:     ipLookup,
		ids:          utils.NewUUIDGenerator(),
		chiropractor: app.Chiropractor,
		userAgent:    utils.UserAgent(app.Version),
		timeout:      timeout,
		logger:       logger,
	}
}

// Run binds the audit context and then runs op. Only op's error is
// returned.
//
// Without a cached identity op runs unattributed. Otherwise the session id,
// IP address and binding are attempted within the configured timeout. The
// ctx passed to op carries the audit context and, when binding succeeded,
// the bound connection, which is released once op returns.
func (h *Helper) Run(ctx context.Context, op Operation) error {
	log := logger.FromContext(ctx)

	identity, err := h.identities.GetIdentity(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("audit: reading cached identity failed")
		return op(ctx)
	}
	if identity.IsEmpty() {
		log.Debug().Msg("audit: no signed-in user, skipping attribution")
		return op(ctx)
	}

	auditCtx, conn := h.bind(ctx, identity)
	if conn != nil {
		defer func() {
			if err := conn.Close(); err != nil {
				log.Warn().Err(err).Msg("audit: releasing bound connection failed")
			}
		}()
		ctx = store.WithAuditedConn(ctx, conn)
	}

	return op(utils.WithAuditContext(ctx, auditCtx))
}

func (h *Helper) bind(ctx context.Context, identity models.Identity) (models.AuditContext, store.AuditedConn) {
	log := logger.FromContext(ctx)

	enrichCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	// The lookup gets half of the budget so that binding can still run.
	ipCtx, ipCancel := context.WithTimeout(enrichCtx, h.timeout/2)
	defer ipCancel()

	var ipResult <-chan *string
	if h.binder.Configured() {
		ipResult = h.lookupIP(ipCtx)
	}

	chiropractor := identity.Chiropractor
	if chiropractor == "" {
		chiropractor = h.chiropractor
	}

	auditCtx := models.AuditContext{
		UserID:       identity.UserID,
		Login:        identity.Login,
		Email:        identity.Email,
		Chiropractor: chiropractor,
		Source:       models.AuditSourceUI,
		SessionID:    h.sessionID(enrichCtx),
		UserAgent:    h.userAgent,
	}

	if ipResult == nil {
		log.Debug().Msg("audit: hosted database not configured, skipping binding")
		return auditCtx, nil
	}

	select {
	case auditCtx.IPAddress = <-ipResult:
	case <-ipCtx.Done():
		log.Warn().Err(ipCtx.Err()).Msg("audit: ip lookup did not finish in time")
	}

	// enrichCtx only bounds binding; the connection outlives it.
	conn, err := h.binder.Bind(enrichCtx, auditCtx)
	if err != nil {
		log.Warn().Err(err).Str("session_id", auditCtx.SessionID).Msg("audit: binding audit context failed")
		return auditCtx, nil
	}

	return auditCtx, conn
}

// lookupIP starts the IP lookup in the background. The channel yields nil
// when the lookup fails.
func (h *Helper) lookupIP(ctx context.Context) <-chan *string {
	result := make(chan *string, 1)

	go func() {
		ip, err := h.ipLookup.LookupIP(ctx)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("audit: ip lookup failed")
			result <- nil
			return
		}
		result <- &ip
	}()

	return result
}

// sessionID returns the cached session id, generating and caching a new
// one when none is cached. A failing cache still yields a usable id.
func (h *Helper) sessionID(ctx context.Context) string {
	log := logger.FromContext(ctx)

	id, err := h.sessions.GetSessionID(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("audit: reading session id failed")
	}
	if id != "" {
		return id
	}

	id = h.ids.Generate()
	if err = h.sessions.SaveSessionID(ctx, id); err != nil {
		log.Warn().Err(err).Msg("audit: caching session id failed")
	}

	return id
}
