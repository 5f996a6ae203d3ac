// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed registry events over a CURVE
// secured ZeroMQ PUB socket
//
// every event is sent as three frames: the topic, the event name and a
// protobuf encoded Message; a heartbeat is sent on its own topic when
// no event has been sent for a while
package publish
