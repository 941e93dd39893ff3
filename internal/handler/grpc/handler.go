// Package grpc holds the gRPC transport handler. The quote API itself is
// HTTP only; gRPC exposes the standard health service so that load
// balancers and orchestrators can probe the server.
package grpc

import (
	"context"

	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported by the health endpoint in addition to
// the overall "" service.
const ServiceName = "quote-sync"

// Handler is the root gRPC transport handler.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// health tracks the serving status reported to probes.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status starts as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Health returns the health server, mainly for tests and probes in-process.
func (h *Handler) Health() healthpb.HealthServer {
	return h.health
}

// Probe runs ping and reports ServiceName as SERVING when it succeeds and
// NOT_SERVING otherwise. The overall "" status is left alone.
func (h *Handler) Probe(ctx context.Context, ping func(context.Context) error) error {
	if err := ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Probe").Msg("dependency check failed")
		h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown flips every service to NOT_SERVING so that probes see the server
// draining before it stops accepting connections.
func (h *Handler) Shutdown() {
	h.logger.Info().Str("func", "*Handler.Shutdown").Msg("health status set to NOT_SERVING")
	h.health.Shutdown()
}
