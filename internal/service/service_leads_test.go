package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/mock"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustLead(t *testing.T, raw string) models.Lead {
	t.Helper()
	var l models.Lead
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	return l
}

func newTestLeadService(t *testing.T) (LeadService, *mock.MockLeadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	leadStore := mock.NewMockLeadStore(ctrl)
	return NewLeadValidationService().Wrap(NewLeadService(leadStore, logger.Nop())), leadStore
}

func TestLeadService_ListLeads_Filters(t *testing.T) {
	stored := []models.Lead{
		mustLead(t, `{"name":"Ann","chiropractor":"dr-a","createdAt":"2026-01-01T00:00:00Z"}`),
		mustLead(t, `{"name":"Bob","chiropractor":"dr-b","createdAt":"2026-02-01T00:00:00Z"}`),
		mustLead(t, `{"name":"Cid","chiropractor":"dr-a","createdAt":"2026-03-01"}`),
		mustLead(t, `{"name":"Dee","chiropractor":"dr-a"}`),
	}

	tests := []struct {
		name  string
		query models.LeadQuery
		want  []string
	}{
		{"no filter", models.LeadQuery{}, []string{"Ann", "Bob", "Cid", "Dee"}},
		{"chiropractor", models.LeadQuery{Chiropractor: "dr-a"}, []string{"Ann", "Cid", "Dee"}},
		{"since is strict", models.LeadQuery{Since: "2026-01-01T00:00:00Z"}, []string{"Bob", "Cid"}},
		{"since date only", models.LeadQuery{Since: "2026-01-15"}, []string{"Bob", "Cid"}},
		{"both", models.LeadQuery{Chiropractor: "dr-a", Since: "2026-01-15"}, []string{"Cid"}},
		{"nothing matches", models.LeadQuery{Chiropractor: "dr-z"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, leadStore := newTestLeadService(t)
			leadStore.EXPECT().ListLeads(gomock.Any()).Return(stored, nil)

			got, err := svc.ListLeads(context.Background(), tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(got.Leads))
			for _, l := range got.Leads {
				names = append(names, l.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, len(tt.want), got.Count)
		})
	}
}

func TestLeadService_ListLeads_EmptyStoreGivesEmptyList(t *testing.T) {
	svc, leadStore := newTestLeadService(t)
	leadStore.EXPECT().ListLeads(gomock.Any()).Return(nil, nil)

	got, err := svc.ListLeads(context.Background(), models.LeadQuery{})

	require.NoError(t, err)
	assert.NotNil(t, got.Leads)
	assert.Zero(t, got.Count)
}

func TestLeadService_ListLeads_MalformedSince(t *testing.T) {
	svc, _ := newTestLeadService(t)

	_, err := svc.ListLeads(context.Background(), models.LeadQuery{Since: "yesterday"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLeadService_ListLeads_StoreFailure(t *testing.T) {
	svc, leadStore := newTestLeadService(t)
	leadStore.EXPECT().ListLeads(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.ListLeads(context.Background(), models.LeadQuery{})

	assert.ErrorIs(t, err, ErrLeadStoreFailed)
}

func TestLeadService_ReceiveLead_EchoesPayload(t *testing.T) {
	svc, _ := newTestLeadService(t)
	raw := json.RawMessage(`{"name":"Ann","chiropractor":"dr-a","utm":{"source":"fb"}}`)

	got, err := svc.ReceiveLead(context.Background(), raw)

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "Lead received", got.Message)
	assert.JSONEq(t, string(raw), string(got.Lead))
}

func TestLeadService_ReceiveLead_RejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"lead"`, `42`, `{broken`} {
		t.Run(body, func(t *testing.T) {
			svc, _ := newTestLeadService(t)

			_, err := svc.ReceiveLead(context.Background(), json.RawMessage(body))

			assert.ErrorIs(t, err, ErrInvalidLeadPayload)
		})
	}
}
