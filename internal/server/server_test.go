package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/handler"
	myGRPC "github.com/MKhiriev/chiro-hub/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/chiro-hub/internal/handler/http"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"github.com/MKhiriev/chiro-hub/internal/workers"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type okDiagnostics struct{}

func (okDiagnostics) Check(_ context.Context) models.Diagnostics {
	return models.Diagnostics{OK: true}
}

func newTestHandlers() *handler.Handlers {
	services := &service.Services{DiagnosticsService: okDiagnostics{}}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(newTestHandlers(), &workers.Workers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	_, err := NewServer(newTestHandlers(), nil, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	require.Error(t, err)
}

func TestNewHTTPServer_RequestTimeoutSetsDeadline(t *testing.T) {
	var deadlineSet bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, deadlineSet = r.Context().Deadline()
	})

	srv := newHTTPServer(inner, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	srv.server.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, deadlineSet)
}

func TestServer_RunServesHealthAndStops(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	s, err := NewServer(newTestHandlers(), &workers.Workers{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.run(ctx)
		close(done)
	}()

	conn, err := grpc.NewClient(srv.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer callCancel()
	resp, err := healthpb.NewHealthClient(conn).Check(callCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
