package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/chiro-hub/internal/adapter"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/mock"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc creates a clientAuthService backed by mocks.
func newTestAuthSvc(t *testing.T) (
	ClientAuthService,
	*mock.MockServerAdapter,
	*mock.MockLocalIdentityRepository,
	*mock.MockLocalSessionRepository,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockIdentities := mock.NewMockLocalIdentityRepository(ctrl)
	mockSessions := mock.NewMockLocalSessionRepository(ctrl)

	storages := &store.ClientStorages{Identities: mockIdentities, Sessions: mockSessions}
	svc := NewClientAuthService(storages, mockAdapter, "dr-a", logger.Nop())

	return svc, mockAdapter, mockIdentities, mockSessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_CachesIdentity(t *testing.T) {
	svc, mockAdapter, mockIdentities, mockSessions := newTestAuthSvc(t)
	ctx := context.Background()
	req := models.RegistrationRequest{Login: "drsmith", Email: "dr@clinic.example", Password: "p"}
	user := models.RegisteredUser{ID: "u-1", Login: "drsmith", Email: "dr@clinic.example"}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, req).Return(user, nil),
		mockSessions.EXPECT().ClearSession(ctx).Return(nil),
		mockIdentities.EXPECT().SaveIdentity(ctx, models.Identity{
			UserID: "u-1", Login: "drsmith", Email: "dr@clinic.example", Chiropractor: "dr-a",
		}).Return(nil),
	)

	got, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	svc, mockAdapter, _, _ := newTestAuthSvc(t)
	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegisteredUser{}, fmt.Errorf("%w: %s", adapter.ErrConflict, "user already exists"))

	_, err := svc.Register(context.Background(), models.RegistrationRequest{Login: "drsmith"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestClientAuthService_Register_ServerUnavailable(t *testing.T) {
	svc, mockAdapter, _, _ := newTestAuthSvc(t)
	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.RegisteredUser{}, fmt.Errorf("%w: %s", adapter.ErrServiceUnavailable, "database is not configured"))

	_, err := svc.Register(context.Background(), models.RegistrationRequest{Login: "drsmith"})

	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Contains(t, err.Error(), "database is not configured")
}

func TestClientAuthService_Register_CacheFailure(t *testing.T) {
	svc, mockAdapter, mockIdentities, mockSessions := newTestAuthSvc(t)
	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.RegisteredUser{ID: "u-1", Login: "a"}, nil)
	mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil)
	mockIdentities.EXPECT().SaveIdentity(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))

	_, err := svc.Register(context.Background(), models.RegistrationRequest{Login: "a"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error caching identity")
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_SameUserKeepsIdentity(t *testing.T) {
	svc, mockAdapter, mockIdentities, _ := newTestAuthSvc(t)
	ctx := context.Background()
	cached := models.Identity{UserID: "u-1", Login: "drsmith", Email: "dr@clinic.example"}

	mockAdapter.EXPECT().TouchLogin(ctx, models.LoginRequest{Login: "drsmith"}).
		Return(models.LoginResult{Success: true, Login: "drsmith", Updated: 1}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx).Return(cached, nil)
	mockIdentities.EXPECT().SaveIdentity(ctx, models.Identity{
		UserID: "u-1", Login: "drsmith", Email: "dr@clinic.example", Chiropractor: "dr-a",
	}).Return(nil)

	got, err := svc.Login(ctx, models.LoginRequest{Login: "drsmith"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Updated)
}

func TestClientAuthService_Login_OtherUserSwitchesIdentity(t *testing.T) {
	svc, mockAdapter, mockIdentities, mockSessions := newTestAuthSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().TouchLogin(ctx, gomock.Any()).Return(models.LoginResult{Success: true, Login: "drjones"}, nil)
	mockIdentities.EXPECT().GetIdentity(ctx).Return(models.Identity{UserID: "u-1", Login: "drsmith"}, nil)
	gomock.InOrder(
		mockSessions.EXPECT().ClearSession(ctx).Return(nil),
		mockIdentities.EXPECT().SaveIdentity(ctx, models.Identity{Login: "drjones", Chiropractor: "dr-a"}).Return(nil),
	)

	_, err := svc.Login(ctx, models.LoginRequest{Login: "drjones"})

	require.NoError(t, err)
}

func TestClientAuthService_Login_UnknownUserStillSignsIn(t *testing.T) {
	svc, mockAdapter, mockIdentities, mockSessions := newTestAuthSvc(t)

	mockAdapter.EXPECT().TouchLogin(gomock.Any(), gomock.Any()).Return(models.LoginResult{Success: true, Updated: 0}, nil)
	mockIdentities.EXPECT().GetIdentity(gomock.Any()).Return(models.Identity{}, nil)
	mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil)
	mockIdentities.EXPECT().SaveIdentity(gomock.Any(), models.Identity{Login: "ghost", Chiropractor: "dr-a"}).Return(nil)

	got, err := svc.Login(context.Background(), models.LoginRequest{Login: " ghost "})

	require.NoError(t, err)
	assert.Zero(t, got.Updated)
}

func TestClientAuthService_Login_BadRequest(t *testing.T) {
	svc, mockAdapter, _, _ := newTestAuthSvc(t)
	mockAdapter.EXPECT().TouchLogin(gomock.Any(), gomock.Any()).
		Return(models.LoginResult{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "invalid data provided"))

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Logout / WhoAmI ──────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	svc, _, mockIdentities, mockSessions := newTestAuthSvc(t)
	mockIdentities.EXPECT().ClearIdentity(gomock.Any()).Return(nil)
	mockSessions.EXPECT().ClearSession(gomock.Any()).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}

func TestClientAuthService_Logout_ClearIdentityError(t *testing.T) {
	svc, _, mockIdentities, _ := newTestAuthSvc(t)
	mockIdentities.EXPECT().ClearIdentity(gomock.Any()).Return(errors.New("readonly database"))

	err := svc.Logout(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error clearing identity")
}

func TestClientAuthService_WhoAmI(t *testing.T) {
	svc, _, mockIdentities, _ := newTestAuthSvc(t)
	want := models.Identity{UserID: "u-1", Login: "drsmith"}
	mockIdentities.EXPECT().GetIdentity(gomock.Any()).Return(want, nil)

	got, err := svc.WhoAmI(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuthService_WhoAmI_NotSignedIn(t *testing.T) {
	svc, _, mockIdentities, _ := newTestAuthSvc(t)
	mockIdentities.EXPECT().GetIdentity(gomock.Any()).Return(models.Identity{}, nil)

	_, err := svc.WhoAmI(context.Background())

	assert.ErrorIs(t, err, ErrNotSignedIn)
}
