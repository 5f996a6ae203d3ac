// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"net/rpc"
)

// result labels
const (
	resultOK    = "ok"
	resultError = "error"
)

type codec struct {
	rpc.ServerCodec
}

// Codec - count every response written through c
func Codec(c rpc.ServerCodec) rpc.ServerCodec {
	return &codec{ServerCodec: c}
}

// WriteResponse - count then forward
//
// requests that fail to decode arrive here with an empty method
func (c *codec) WriteResponse(r *rpc.Response, body interface{}) error {
	method := r.ServiceMethod
	if "" == method {
		method = "unknown"
	}
	result := resultOK
	if "" != r.Error {
		result = resultError
	}
	RPCCallsTotal.WithLabelValues(method, result).Inc()
	return c.ServerCodec.WriteResponse(r, body)
}
