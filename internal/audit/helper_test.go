package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/mock"
	"github.com/MKhiriev/chiro-hub/internal/store"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

type helperMocks struct {
	identities *mock.MockLocalIdentityRepository
	sessions   *mock.MockLocalSessionRepository
	binder     *mock.MockAuditRepository
	conn       *mock.MockAuditedConn
	ipLookup   *mock.MockIPLookup
}

func newTestHelper(t *testing.T, timeout time.Duration) (*Helper, helperMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := helperMocks{
		identities: mock.NewMockLocalIdentityRepository(ctrl),
		sessions:   mock.NewMockLocalSessionRepository(ctrl),
		binder:     mock.NewMockAuditRepository(ctrl),
		conn:       mock.NewMockAuditedConn(ctrl),
		ipLookup:   mock.NewMockIPLookup(ctrl),
	}

	storages := &store.ClientStorages{
		Identities: m.identities,
		Sessions:   m.sessions,
		Audit:      m.binder,
	}
	h := NewHelper(storages, m.ipLookup,
		config.Audit{Timeout: timeout},
		config.ClientApp{Chiropractor: "dr-default", Version: "1.0.0"},
		logger.Nop(),
	)
	h.ids = fixedIDs("0192f0c1-0000-7000-8000-000000000001")

	return h, m
}

var signedIn = models.Identity{UserID: "u-1", Login: "drsmith", Email: "dr@clinic.example", Chiropractor: "dr-a"}

func TestHelper_Run_NoIdentitySkipsAttribution(t *testing.T) {
	h, m := newTestHelper(t, time.Second)
	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(models.Identity{}, nil)

	called := false
	err := h.Run(context.Background(), func(ctx context.Context) error {
		called = true
		_, ok := utils.GetAuditContextFromContext(ctx)
		assert.False(t, ok)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestHelper_Run_IdentityReadFailureStillRunsOp(t *testing.T) {
	h, m := newTestHelper(t, time.Second)
	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(models.Identity{}, errors.New("database is locked"))

	opErr := errors.New("op failed")
	err := h.Run(context.Background(), func(ctx context.Context) error { return opErr })

	assert.ErrorIs(t, err, opErr)
}

func TestHelper_Run_BindsFullContext(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess-cached", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("203.0.113.7", nil)

	var bound models.AuditContext
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AuditContext) (store.AuditedConn, error) {
			bound = a
			return m.conn, nil
		},
	)
	m.conn.EXPECT().Close().Return(nil)

	err := h.Run(context.Background(), func(ctx context.Context) error {
		got, ok := utils.GetAuditContextFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "sess-cached", got.SessionID)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "u-1", bound.UserID)
	assert.Equal(t, "drsmith", bound.Login)
	assert.Equal(t, "dr@clinic.example", bound.Email)
	assert.Equal(t, "dr-a", bound.Chiropractor)
	assert.Equal(t, models.AuditSourceUI, bound.Source)
	assert.Equal(t, "sess-cached", bound.SessionID)
	assert.Equal(t, "chiro-client/1.0.0", bound.UserAgent)
	require.NotNil(t, bound.IPAddress)
	assert.Equal(t, "203.0.113.7", *bound.IPAddress)
}

func TestHelper_Run_GeneratesAndCachesSessionID(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(models.Identity{UserID: "u-1", Login: "drsmith"}, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("", nil)
	m.sessions.EXPECT().SaveSessionID(gomock.Any(), "0192f0c1-0000-7000-8000-000000000001").Return(nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("203.0.113.7", nil)
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AuditContext) (store.AuditedConn, error) {
			assert.Equal(t, "0192f0c1-0000-7000-8000-000000000001", a.SessionID)
			assert.Equal(t, "dr-default", a.Chiropractor)
			return m.conn, nil
		},
	)
	m.conn.EXPECT().Close().Return(nil)

	require.NoError(t, h.Run(context.Background(), func(ctx context.Context) error { return nil }))
}

func TestHelper_Run_IPLookupFailureBindsNilIP(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("", errors.New("no route to host"))
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AuditContext) (store.AuditedConn, error) {
			assert.Nil(t, a.IPAddress)
			return m.conn, nil
		},
	)
	m.conn.EXPECT().Close().Return(nil)

	require.NoError(t, h.Run(context.Background(), func(ctx context.Context) error { return nil }))
}

func TestHelper_Run_SlowIPLookupIsBounded(t *testing.T) {
	h, m := newTestHelper(t, 100*time.Millisecond)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).DoAndReturn(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.AuditContext) (store.AuditedConn, error) {
			assert.Nil(t, a.IPAddress)
			return m.conn, nil
		},
	)
	m.conn.EXPECT().Close().Return(nil)

	start := time.Now()
	require.NoError(t, h.Run(context.Background(), func(ctx context.Context) error { return nil }))
	assert.Less(t, time.Since(start), time.Second)
}

func TestHelper_Run_BindingFailureIsSwallowed(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("203.0.113.7", nil)
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).Return(nil, store.ErrDBUnreachable)

	called := false
	err := h.Run(context.Background(), func(ctx context.Context) error {
		called = true
		_, ok := store.AuditedConnFromContext(ctx)
		assert.False(t, ok)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestHelper_Run_OpUsesBoundConnection(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("203.0.113.7", nil)
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).Return(m.conn, nil)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	gomock.InOrder(
		m.conn.EXPECT().TouchLastSeen(gomock.Any(), "drsmith", at).Return(int64(1), nil),
		m.conn.EXPECT().Close().Return(nil),
	)

	err := h.Run(context.Background(), func(ctx context.Context) error {
		conn, ok := store.AuditedConnFromContext(ctx)
		require.True(t, ok)
		_, err := conn.TouchLastSeen(ctx, "drsmith", at)
		return err
	})

	require.NoError(t, err)
}

func TestHelper_Run_ReleaseFailureIsSwallowed(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(true)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)
	m.ipLookup.EXPECT().LookupIP(gomock.Any()).Return("203.0.113.7", nil)
	m.binder.EXPECT().Bind(gomock.Any(), gomock.Any()).Return(m.conn, nil)
	m.conn.EXPECT().Close().Return(store.ErrExecutingStatement)

	require.NoError(t, h.Run(context.Background(), func(ctx context.Context) error { return nil }))
}

func TestHelper_Run_UnconfiguredBinderIsSkipped(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(false)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)

	err := h.Run(context.Background(), func(ctx context.Context) error {
		got, ok := utils.GetAuditContextFromContext(ctx)
		assert.True(t, ok)
		assert.Nil(t, got.IPAddress)
		return nil
	})

	require.NoError(t, err)
}

func TestHelper_Run_ReturnsOpError(t *testing.T) {
	h, m := newTestHelper(t, time.Second)

	m.identities.EXPECT().GetIdentity(gomock.Any()).Return(signedIn, nil)
	m.binder.EXPECT().Configured().Return(false)
	m.sessions.EXPECT().GetSessionID(gomock.Any()).Return("sess", nil)

	opErr := errors.New("insert failed")
	err := h.Run(context.Background(), func(ctx context.Context) error { return opErr })

	assert.ErrorIs(t, err, opErr)
}

func TestNewHelper_DefaultTimeout(t *testing.T) {
	h := NewHelper(&store.ClientStorages{}, nil, config.Audit{}, config.ClientApp{}, logger.Nop())

	assert.Equal(t, DefaultTimeout, h.timeout)
	assert.Equal(t, "chiro-client/dev", h.userAgent)
}
