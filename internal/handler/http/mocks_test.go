package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/models"
)

type mockUserService struct {
	registerFn   func(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error)
	touchLoginFn func(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
}

func (m *mockUserService) Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error) {
	if m.registerFn == nil {
		return models.RegisteredUser{ID: "id-1", Login: req.Login, Email: req.Email}, nil
	}
	return m.registerFn(ctx, req)
}

func (m *mockUserService) TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if m.touchLoginFn == nil {
		return models.LoginResult{Success: true, Login: req.Login, Updated: 1}, nil
	}
	return m.touchLoginFn(ctx, req)
}

type mockDiagnosticsService struct {
	diag models.Diagnostics
}

func (m *mockDiagnosticsService) Check(_ context.Context) models.Diagnostics {
	return m.diag
}

type mockOAuthService struct {
	redirectURI string
	authURLFn   func(ctx context.Context, redirectURI, state string) (models.OAuthDebug, error)
}

func (m *mockOAuthService) RedirectURI(_ *http.Request) string {
	return m.redirectURI
}

func (m *mockOAuthService) AuthURL(ctx context.Context, redirectURI, state string) (models.OAuthDebug, error) {
	if m.authURLFn == nil {
		return models.OAuthDebug{
			AuthURL:     "https://accounts.example.com/auth?state=" + state,
			RedirectURI: redirectURI,
			State:       state,
		}, nil
	}
	return m.authURLFn(ctx, redirectURI, state)
}

type mockLeadService struct {
	listFn    func(ctx context.Context, q models.LeadQuery) (models.LeadList, error)
	receiveFn func(ctx context.Context, raw json.RawMessage) (models.LeadAck, error)
}

func (m *mockLeadService) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error) {
	if m.listFn == nil {
		return models.LeadList{Leads: []models.Lead{}}, nil
	}
	return m.listFn(ctx, q)
}

func (m *mockLeadService) ReceiveLead(ctx context.Context, raw json.RawMessage) (models.LeadAck, error) {
	if m.receiveFn == nil {
		return models.LeadAck{Success: true, Message: "Lead received", Lead: raw}, nil
	}
	return m.receiveFn(ctx, raw)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestServices returns services backed by mocks with default behaviour.
func newTestServices() *service.Services {
	return &service.Services{
		UserService:        &mockUserService{},
		DiagnosticsService: &mockDiagnosticsService{diag: models.Diagnostics{OK: true}},
		OAuthService:       &mockOAuthService{redirectURI: "http://localhost/cb"},
		LeadService:        &mockLeadService{},
		AppInfoService:     &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, logger.Nop()).Init()
}
