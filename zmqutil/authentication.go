// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

var zap struct {
	once sync.Once
	err  error
}

// StartAuthentication - run the ZAP handler that CURVE sockets need
//
// later calls return the result of the first
func StartAuthentication() error {
	zap.once.Do(func() {
		zmq.AuthSetVerbose(false)
		zap.err = zmq.AuthStart()
	})
	return zap.err
}
