// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus counters for the gallery daemon
//
// events are counted through Sink, which is attached to the gallery
// emitter fanout; RPC calls are counted by wrapping each server codec
// with Codec. The collected values are served over HTTP by a
// background process created by New.
package metrics
