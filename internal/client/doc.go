// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of chiro-client.
//
// It dispatches sub-commands to the client services, prints results as
// JSON and opens the terminal lead browser.
package client
