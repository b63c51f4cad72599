// Package server wires and runs the application's transport servers.
//
// It runs the HTTP API, the optional gRPC health endpoint and the background
// workers, and stops all of them on SIGTERM, SIGINT or SIGQUIT.
package server
