// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger

	// addr is the bound listener address once started.
	addr atomic.Pointer[net.Addr]
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// start binds the listener and serves in the background. The channel
// receives the serve error, if the server stops other than by Shutdown.
func (h *httpServer) start() (<-chan error, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	addr := ln.Addr()
	h.addr.Store(&addr)
	h.logger.Info().Str("address", addr.String()).Msg("HTTP server listening")

	serveErr := make(chan error, 1)
	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("HTTP server Serve: %w", err)
		}
	}()

	return serveErr, nil
}

func (h *httpServer) Shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

// boundAddr returns the listener address, or nil before start.
func (h *httpServer) boundAddr() net.Addr {
	if p := h.addr.Load(); p != nil {
		return *p
	}
	return nil
}
