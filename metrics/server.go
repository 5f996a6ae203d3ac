// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/logger"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

// Configuration - metrics section of the configuration file
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Server - background process serving the prometheus handler
type Server struct {
	log      *logger.L
	listener net.Listener
	server   *http.Server
}

// New - bind the listen address, serving starts when Run is called
func New(configuration *Configuration) (*Server, error) {
	log := logger.New("metrics")

	if nil == configuration || "" == configuration.Listen {
		return nil, fault.ErrMissingParameters
	}

	listener, err := net.Listen("tcp", configuration.Listen)
	if nil != err {
		log.Errorf("listen: %q  error: %s", configuration.Listen, err)
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())

	return &Server{
		log:      log,
		listener: listener,
		server: &http.Server{
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
	}, nil
}

// Addr - the bound address
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	s.log.Infof("serving: %s%s", s.listener.Addr(), metricsPath)

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := s.server.Serve(s.listener)
		if nil != err && http.ErrServerClosed != err {
			s.log.Errorf("serve error: %s", err)
		}
	}()

	select {
	case <-shutdown:
	case <-done:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.server.Shutdown(ctx)
	<-done

	s.log.Info("stopped")
}
