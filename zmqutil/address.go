// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strconv"

	"github.com/bitmark-inc/gallery/fault"
)

// CanonicalAddress - convert "host:port" to a ZeroMQ TCP endpoint
//
// host must be a literal IP address or "*" for all IPv4 interfaces;
// the second result is true for IPv6
func CanonicalAddress(hostPort string) (string, bool, error) {
	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return "", false, fault.ErrInvalidAddress
	}
	n, err := strconv.Atoi(port)
	if nil != err || n < 1 || n > 65535 {
		return "", false, fault.ErrInvalidAddress
	}

	if "*" == host {
		return "tcp://*:" + port, false, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.ErrInvalidAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + port, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + port, true, nil
}
