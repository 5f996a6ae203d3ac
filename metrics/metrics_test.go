// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics_test

import (
	"io/ioutil"
	"net/http"
	"net/rpc"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/background"
	"github.com/bitmark-inc/gallery/counter"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/metrics"
	"github.com/bitmark-inc/logger"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	})
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestSinkCountsEvents(t *testing.T) {
	created := metrics.EventsTotal.WithLabelValues(event.ArtCreatedName)
	sold := metrics.EventsTotal.WithLabelValues(event.ArtSoldName)
	beforeCreated := testutil.ToFloat64(created)
	beforeSold := testutil.ToFloat64(sold)
	beforeValue := testutil.ToFloat64(metrics.SalesValue)
	beforeEscrow := testutil.ToFloat64(metrics.EscrowSales)

	var sink metrics.Sink
	sink.Emit(&event.ArtCreated{Title: "one"})
	sink.Emit(&event.ArtSold{Price: 40})
	sink.Emit(&event.ArtSold{Price: 2, Escrow: true})

	assert.Equal(t, beforeCreated+1, testutil.ToFloat64(created), "created")
	assert.Equal(t, beforeSold+2, testutil.ToFloat64(sold), "sold")
	assert.Equal(t, beforeValue+42, testutil.ToFloat64(metrics.SalesValue), "value")
	assert.Equal(t, beforeEscrow+1, testutil.ToFloat64(metrics.EscrowSales), "escrow")
}

type fakeCodec struct {
	written int
}

func (f *fakeCodec) ReadRequestHeader(*rpc.Request) error { return nil }
func (f *fakeCodec) ReadRequestBody(interface{}) error    { return nil }
func (f *fakeCodec) Close() error                         { return nil }

func (f *fakeCodec) WriteResponse(*rpc.Response, interface{}) error {
	f.written++
	return nil
}

func TestCodecCountsResults(t *testing.T) {
	ok := metrics.RPCCallsTotal.WithLabelValues("Node.Info", "ok")
	failed := metrics.RPCCallsTotal.WithLabelValues("Node.Info", "error")
	unknown := metrics.RPCCallsTotal.WithLabelValues("unknown", "error")
	beforeOK := testutil.ToFloat64(ok)
	beforeFailed := testutil.ToFloat64(failed)
	beforeUnknown := testutil.ToFloat64(unknown)

	inner := &fakeCodec{}
	c := metrics.Codec(inner)

	require.NoError(t, c.WriteResponse(&rpc.Response{ServiceMethod: "Node.Info"}, nil))
	require.NoError(t, c.WriteResponse(&rpc.Response{ServiceMethod: "Node.Info", Error: "rate limiting"}, nil))
	require.NoError(t, c.WriteResponse(&rpc.Response{Error: "bad request"}, nil))

	assert.Equal(t, 3, inner.written, "forwarded")
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(ok), "ok")
	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed), "error")
	assert.Equal(t, beforeUnknown+1, testutil.ToFloat64(unknown), "unknown")
}

func TestNewRequiresListen(t *testing.T) {
	_, err := metrics.New(nil)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil")

	_, err = metrics.New(&metrics.Configuration{})
	assert.Equal(t, fault.ErrMissingParameters, err, "empty")

	_, err = metrics.New(&metrics.Configuration{Listen: "no-port"})
	assert.Error(t, err, "bad address")
}

func TestServerExports(t *testing.T) {
	count := counter.Counter(0)
	count.Increment()
	require.NoError(t, metrics.RegisterConnections(&count))

	metrics.Sink{}.Emit(&event.RegistryCreated{})

	s, err := metrics.New(&metrics.Configuration{Listen: "127.0.0.1:0"})
	require.NoError(t, err)

	processes := background.Start(background.Processes{s}, nil)
	defer processes.Stop()

	response, err := http.Get("http://" + s.Addr().String() + "/metrics")
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode, "status")
	body, err := ioutil.ReadAll(response.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "gallery_events_total", "events")
	assert.Contains(t, string(body), "gallery_rpc_connections 1", "connections")
	assert.Contains(t, string(body), "gallery_bus_dropped_events", "dropped")
}
