// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// Listener - a started network front end
type Listener interface {
	Serve() error
	Close()
}

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// CodecWrapper - decorate the codec of each accepted connection
type CodecWrapper func(rpc.ServerCodec) rpc.ServerCodec

// Option - optional listener setting
type Option func(*rpcListener)

// WithCodec - serve every connection through wrap
func WithCodec(wrap CodecWrapper) Option {
	return func(r *rpcListener) {
		r.wrap = wrap
	}
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	wrap            CodecWrapper
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate the configuration and prepare a JSON-RPC over TLS
// listener, nothing is bound until Serve
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
	options ...Option,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	addresses, ipType, err := parseListenAddress(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	r := &rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: addresses,
		ipType:          ipType,
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}
	for _, option := range options {
		option(r)
	}
	return r, nil
}

// Serve - bind every address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Close - stop accepting, open connections finish their requests
func (r *rpcListener) Close() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !r.count.Acquire(r.maxConnections) {
			r.log.Warnf("connection limit: %d reached, reject: %s", r.maxConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			codec := jsonrpc.NewServerCodec(conn)
			if nil != r.wrap {
				codec = r.wrap(codec)
			}
			r.server.ServeCodec(codec)
			_ = conn.Close()
			r.count.Decrement()
		}()
	}
	_ = listen.Close()
}

// convert "*:PORT" to "[::]:PORT" and pick the network for each address
func parseListenAddress(addrs []string) ([]string, []string, error) {
	addresses := make([]string, len(addrs))
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			return nil, nil, fault.ErrInvalidAddress
		}

		switch {
		case "*" == host:
			host = "::"
			parsed[i] = "tcp"
		case strings.Contains(host, ":"):
			parsed[i] = "tcp6"
		default:
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			return nil, nil, fault.ErrInvalidAddress
		}
		addresses[i] = net.JoinHostPort(host, port)
	}

	return addresses, parsed, nil
}
