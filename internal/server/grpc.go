// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/eco-ideas/internal/handler/grpc"
	"github.com/MKhiriev/eco-ideas/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) serve(listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	return g.server.Serve(listener)
}

// shutdown flips the health status first so load balancers drain, then
// stops gracefully. A stop that outlives ctx is forced.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
