package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/utils"
)

// DefaultIPLookupURL answers with {"ip": "<address>"}.
const DefaultIPLookupURL = "https://api.ipify.org?format=json"

type ipLookupResponse struct {
	IP string `json:"ip"`
}

type httpIPLookup struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewHTTPIPLookup returns an [IPLookup] querying cfg.IPLookupURL, or
// [DefaultIPLookupURL] when none is configured. cfg.Timeout bounds every
// lookup.
func NewHTTPIPLookup(cfg config.Audit, logger *logger.Logger) IPLookup {
	lookupURL := strings.TrimSpace(cfg.IPLookupURL)
	if lookupURL == "" {
		lookupURL = DefaultIPLookupURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &httpIPLookup{client: client, url: lookupURL, logger: logger}
}

func (l *httpIPLookup) LookupIP(ctx context.Context) (string, error) {
	var body ipLookupResponse

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&body).
		Get(l.url)
	if err != nil {
		return "", fmt.Errorf("ip lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", ErrEmptyIPAddress
	}

	return ip, nil
}
