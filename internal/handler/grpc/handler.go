// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health service. The reported status
// follows the reachability of the server's storages.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// ServiceName is the health service name clients may query besides the
// overall "" status.
const ServiceName = "eco-ideas"

// Pinger reports whether the backing storages are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

// NewHandler returns a handler whose status is NOT_SERVING until the first
// successful RefreshStatus.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshStatus pings the storages and updates the reported status. It returns the
// ping error, if any.
func (h *Handler) RefreshStatus(ctx context.Context) error {
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage ping failed, reporting NOT_SERVING")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Check answers a health check without going through the network.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
