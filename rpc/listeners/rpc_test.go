// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net/rpc"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/rpc/certificate"
	"github.com/bitmark-inc/gallery/rpc/fixtures"
	"github.com/bitmark-inc/gallery/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}

type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func tlsConfig(t *testing.T) (*tls.Config, [32]byte) {
	dir := t.TempDir()
	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")
	require.NoError(t, certificate.MakeSelfSigned("test", cer, key, false, nil))
	c, fin, err := certificate.Read(logger.New(fixtures.LogCategory), "test", cer, key)
	require.NoError(t, err)
	return c, fin
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	count := counter.Counter(0)

	s := rpc.NewServer()
	require.NoError(t, s.Register(Add{}))

	c, fin := tlsConfig(t)
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, c, fin)
	require.NoError(t, err)
	require.NoError(t, l.Serve())
	defer l.Close()

	clientConfig := &tls.Config{
		InsecureSkipVerify: true,
	}
	conn, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), clientConfig)
	require.NoError(t, err)

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply int
	err = client.Call("Add.Add", &AddArg{A: 2, B: 5}, &reply)
	assert.NoError(t, err)
	assert.Equal(t, 7, reply)
	assert.Equal(t, uint64(1), count.Uint64())

	// second connection exceeds the limit and is dropped
	conn2, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), clientConfig)
	if nil == err {
		client2 := jsonrpc.NewClient(conn2)
		call := client2.Go("Add.Add", &AddArg{A: 1, B: 1}, &reply, nil)
		select {
		case <-call.Done:
			assert.Error(t, call.Error, "over limit call succeeded")
		case <-time.After(5 * time.Second):
			t.Error("over limit call did not terminate")
		}
		client2.Close()
	}
}

func TestNewRPCInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	count := counter.Counter(0)
	s := rpc.NewServer()

	invalid := []struct {
		con listeners.RPCConfiguration
		err error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:2130"}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:2130"}}, fault.ErrInvalidAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"127.0.0.1"}}, fault.ErrInvalidAddress},
	}
	for i, item := range invalid {
		_, err := listeners.NewRPC(&item.con, logger.New(fixtures.LogCategory), &count, s, &tls.Config{}, [32]byte{})
		assert.Equal(t, item.err, err, "item: %d", i)
	}

	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{"*:2130", "[::1]:2130", "127.0.0.1:2130"},
	}
	_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, s, &tls.Config{}, [32]byte{})
	assert.NoError(t, err)
}
