// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/messagebus"
	"github.com/bitmark-inc/gallery/publish"
	"github.com/bitmark-inc/gallery/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName   = "testing"
	broadcastAddress = "127.0.0.1:22150"
)

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

func configuration(t *testing.T, broadcast ...string) *publish.Configuration {
	dir := t.TempDir()
	c := &publish.Configuration{
		Broadcast:  broadcast,
		PrivateKey: filepath.Join(dir, "publisher.private"),
		PublicKey:  filepath.Join(dir, "publisher.public"),
	}
	require.NoError(t, zmqutil.MakeKeyPair(c.PublicKey, c.PrivateKey))
	return c
}

func TestInitialiseErrors(t *testing.T) {
	assert.Equal(t, fault.ErrNotInitialised, publish.Finalise())

	c := configuration(t)
	assert.Equal(t, fault.ErrMissingParameters, publish.Initialise(c), "no broadcast address")

	c = configuration(t, broadcastAddress)
	c.PrivateKey = c.PublicKey
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, publish.Initialise(c))
}

func TestBroadcast(t *testing.T) {
	c := configuration(t, broadcastAddress)
	require.NoError(t, publish.Initialise(c))
	defer publish.Finalise()

	assert.Equal(t, fault.ErrAlreadyInitialised, publish.Initialise(c))

	serverKey := publish.PublicKey()
	require.Equal(t, 32, len(serverKey))

	public, private, err := zmq.NewCurveKeypair()
	require.NoError(t, err)

	s, err := zmqutil.NewSubscriber([]byte(zmq.Z85decode(private)), []byte(zmq.Z85decode(public)), 5*time.Second)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Connect(broadcastAddress, serverKey, publish.Topic))

	// subscriptions take a moment to propagate so keep sending
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			messagebus.Bus.Events.Send(&event.ArtListed{Price: 99})
			select {
			case <-done:
				return
			case <-time.After(50 * time.Millisecond):
			}
		}
	}()

	frames, err := s.Receive()
	require.NoError(t, err)
	require.Equal(t, 3, len(frames))
	assert.Equal(t, publish.Topic, string(frames[0]))
	assert.Equal(t, event.ArtListedName, string(frames[1]))

	var m publish.Message
	require.NoError(t, proto.Unmarshal(frames[2], &m))
	assert.Equal(t, uint64(99), m.Price)
}
