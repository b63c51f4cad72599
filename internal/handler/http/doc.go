// Package http implements the HTTP transport layer of chiro-hub.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, request tracing, access logging
// and panic recovery are handled in this package before requests are
// delegated to the service layer.
package http
