// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan out of committed registry events to
// background consumers such as the publisher
//
// senders never block: a listener whose queue is full loses the
// message and the loss is counted
package messagebus
