// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/handler"
	"github.com/MKhiriev/eco-ideas/internal/logger"
)

const (
	readHeaderTimeout  = 10 * time.Second
	shutdownTimeout    = 15 * time.Second
	healthCheckTimeout = 5 * time.Second
)

type server struct {
	cfg config.Server

	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	// listen is net.Listen; tests replace it to bind ephemeral ports.
	listen func(network, address string) (net.Listener, error)
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{cfg: cfg, logger: logger, listen: net.Listen}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.gRPCServer = newGRPCServer(handlers.GRPC, logger)
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

// RunServer binds every enabled transport and serves until ctx is done, a
// stop signal arrives or a transport fails.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	var listeners []net.Listener
	closeAll := func() {
		for _, l := range listeners {
			_ = l.Close()
		}
	}

	var httpListener, grpcListener net.Listener
	var err error
	if s.httpServer != nil {
		if httpListener, err = s.listen("tcp", s.cfg.HTTPAddress); err != nil {
			return fmt.Errorf("listen http %s: %w", s.cfg.HTTPAddress, err)
		}
		listeners = append(listeners, httpListener)
	}
	if s.gRPCServer != nil {
		if grpcListener, err = s.listen("tcp", s.cfg.GRPCAddress); err != nil {
			closeAll()
			return fmt.Errorf("listen grpc %s: %w", s.cfg.GRPCAddress, err)
		}
		listeners = append(listeners, grpcListener)

		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		_ = s.gRPCServer.handler.RefreshStatus(checkCtx)
		cancel()
	}

	errCh := make(chan error, 2)
	if s.httpServer != nil {
		go func() { errCh <- s.httpServer.serve(httpListener) }()
	}
	if s.gRPCServer != nil {
		go func() { errCh <- s.gRPCServer.serve(grpcListener) }()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case serveErr = <-errCh:
		s.logger.Error().Err(serveErr).Msg("transport stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		serveErr = errors.Join(serveErr, err)
	}
	s.logger.Info().Msg("server shutdown gracefully")

	return serveErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.shutdown(ctx))
	}
	return errors.Join(errs...)
}
