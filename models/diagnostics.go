package models

// Diagnostics is the body of the registration diagnostics endpoint.
// It is always returned with HTTP 200; failures are reported here.
type Diagnostics struct {
	// OK is true only when the connection is configured and the users
	// table answered the probe query.
	OK bool `json:"ok"`

	HasURL        bool `json:"hasUrl"`
	HasServiceKey bool `json:"hasServiceKey"`
	TableOK       bool `json:"tableOk"`

	// Error is the underlying failure, nil when everything works.
	Error *string `json:"error"`

	// Message tells the operator what to do next.
	Message string `json:"message"`
}

// ServerStatus is what the client reports about the server it talks to.
type ServerStatus struct {
	Version     string      `json:"version"`
	Diagnostics Diagnostics `json:"diagnostics"`
}
