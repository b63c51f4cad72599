package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/handler"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/workers"
)

// shutdownTimeout bounds the graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers: bgWorkers,
		logger:  logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until a stop signal arrives and everything has shut down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches the servers and the workers, then stops them once ctx is
// done.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.httpServer.RunServer()
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.gRPCServer.RunServer()
		}()
	}

	<-ctx.Done()
	s.Shutdown()

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
}
