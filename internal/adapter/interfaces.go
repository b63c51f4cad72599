// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the chiro-hub server and the external IP lookup service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/chiro-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chiro-hub
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Register creates an account on the server and returns its public view.
	Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error)

	// TouchLogin stamps the last login of req.Login on the server.
	TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Diagnostics fetches the registration backend diagnostics.
	Diagnostics(ctx context.Context) (models.Diagnostics, error)

	// PostLead sends a lead to the relay and returns the acknowledgement,
	// which carries the lead exactly as the server received it.
	PostLead(ctx context.Context, lead json.RawMessage) (models.LeadAck, error)

	// ListLeads fetches the leads held by the shared aggregation store.
	ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)
}

// IPLookup resolves the public IP address of this machine.
type IPLookup interface {
	LookupIP(ctx context.Context) (string, error)
}
