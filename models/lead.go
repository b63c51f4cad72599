package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Lead field names that have a meaning for the relay. Every other field of a
// lead payload is carried through untouched in [Lead.Extra].
const (
	LeadFieldName         = "name"
	LeadFieldChiropractor = "chiropractor"
	LeadFieldCreatedAt    = "createdAt"
)

// Lead is a prospective-customer record originating from an advertising
// integration. Only Name, Chiropractor and CreatedAt are interpreted; the
// rest of the payload is preserved verbatim.
type Lead struct {
	Name         string
	Chiropractor string
	CreatedAt    string

	// Extra holds every field of the payload as received, known fields
	// included. Values are kept undecoded so numbers keep their precision.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON decodes an arbitrary JSON object into a Lead.
// Known fields are only picked up when they are JSON strings.
func (l *Lead) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("lead must be a JSON object")
	}

	*l = Lead{Extra: raw}
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			continue
		}
		switch k {
		case LeadFieldName:
			l.Name = s
		case LeadFieldChiropractor:
			l.Chiropractor = s
		case LeadFieldCreatedAt:
			l.CreatedAt = s
		}
	}

	return nil
}

// MarshalJSON encodes the Lead back into a flat JSON object. Fields present
// in Extra are written as received.
func (l Lead) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(l.Extra)+3)
	for k, v := range l.Extra {
		out[k] = v
	}
	for k, v := range map[string]string{
		LeadFieldName:         l.Name,
		LeadFieldChiropractor: l.Chiropractor,
		LeadFieldCreatedAt:    l.CreatedAt,
	} {
		if _, ok := l.Extra[k]; !ok && v != "" {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// CreatedTime parses CreatedAt as RFC 3339 (with or without fractional
// seconds) or as a bare YYYY-MM-DD date.
func (l Lead) CreatedTime() (time.Time, bool) {
	return ParseLeadTime(l.CreatedAt)
}

// ParseLeadTime parses a lead timestamp in any of the accepted layouts.
func ParseLeadTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LeadFilter narrows the leads returned by the relay.
// Zero values disable the corresponding filter.
type LeadFilter struct {
	// Chiropractor must match the lead's tag exactly.
	Chiropractor string

	// Since keeps only leads created strictly after it.
	Since time.Time
}

// Match reports whether lead passes the filter.
func (f LeadFilter) Match(lead Lead) bool {
	if f.Chiropractor != "" && lead.Chiropractor != f.Chiropractor {
		return false
	}
	if !f.Since.IsZero() {
		created, ok := lead.CreatedTime()
		if !ok || !created.After(f.Since) {
			return false
		}
	}
	return true
}

// LeadList is the body returned by GET on the lead relay.
type LeadList struct {
	Leads []Lead `json:"leads"`
	Count int    `json:"count"`
}

// LeadAck is the body returned by POST on the lead relay. Lead is the
// payload exactly as it was received.
type LeadAck struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Lead    json.RawMessage `json:"lead"`
}

// LeadQuery holds the raw query parameters of a lead listing.
type LeadQuery struct {
	Chiropractor string
	Since        string
}

// Filter converts q into a [LeadFilter]. An unparsable Since yields a
// zero Since; validate q first.
func (q LeadQuery) Filter() LeadFilter {
	since, _ := ParseLeadTime(q.Since)
	return LeadFilter{Chiropractor: q.Chiropractor, Since: since}
}
