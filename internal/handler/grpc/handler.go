package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall ("")
// status.
const ServiceName = "chirohub.v1.Relay"

// Handler is the root gRPC transport handler. It serves
// grpc.health.v1.Health and derives the serving status from the database
// diagnostics on every Check.
type Handler struct {
	*health.Server

	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall and the named service
// start in NOT_SERVING until the first Check.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		Server:   health.NewServer(),
		services: services,
		logger:   logger,
	}
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h)
}

// Check refreshes the status from the diagnostics service, then answers
// like the stock health server.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	h.Refresh(ctx)
	return h.Server.Check(ctx, req)
}

// Refresh runs the diagnostics and publishes the result to Check and Watch
// callers. SERVING is reported only when the diagnostics are ok.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_NOT_SERVING

	diag := h.services.DiagnosticsService.Check(ctx)
	if diag.OK {
		status = healthpb.HealthCheckResponse_SERVING
	} else {
		logger.FromContext(ctx).Warn().Str("message", diag.Message).Msg("health check: not serving")
	}

	h.SetServingStatus("", status)
	h.SetServingStatus(ServiceName, status)

	return status
}

// UnaryLoggingInterceptor attaches h's logger to the call context and logs
// every unary call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	ctx = h.logger.WithContext(ctx)

	resp, err := next(ctx, req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Error().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Msg("gRPC call")

	return resp, err
}
