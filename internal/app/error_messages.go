// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// chiro-hub server handlers and services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgMethodNotAllowed is returned when the path exists but does not
	// handle the request method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgNotFound is returned for unknown paths.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when a failure has no message that
	// is safe to show.
	MsgInternalServerError = "internal server error"

	// MsgLeadReceived acknowledges a relayed lead.
	MsgLeadReceived = "Lead received"

	// MsgDBNotConfigured tells the operator which settings are missing.
	MsgDBNotConfigured = "Database is not configured: set STORAGE_DB_DATABASE_URI and STORAGE_DB_SERVICE_ROLE_KEY"

	// MsgUsersTableProblem is reported when the database answers but the
	// users table cannot be queried. Running the migrations usually fixes it.
	MsgUsersTableProblem = "Database is configured but the users table is not reachable: run the migrations"

	// MsgRegistrationOperational is reported when registration can work.
	MsgRegistrationOperational = "Registration backend is fully operational"
)
