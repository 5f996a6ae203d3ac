// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/rpc/auth"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	keyPair *account.KeyPair
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a galleryd
//
// keyPair signs mutating calls and may be nil for read only use
func NewClient(connect string, keyPair *account.KeyPair, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, keyPair, verbose, handle), nil
}

func newClient(conn net.Conn, keyPair *account.KeyPair, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		keyPair: keyPair,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the galleryd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Account - the signing account
func (c *Client) Account() (*account.Account, error) {
	if nil == c.keyPair {
		return nil, fault.ErrMissingParameters
	}
	return c.keyPair.Account, nil
}

func (c *Client) sign(method string, request interface{}) (auth.Signature, error) {
	if nil == c.keyPair {
		return nil, fault.ErrMissingParameters
	}
	return auth.Sign(c.keyPair, method, request)
}

// call and restore known server errors to their fault instances
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if c.verbose {
		fmt.Fprintf(c.handle, "%s: %+v\n", method, arguments)
	}
	err := c.client.Call(method, arguments, reply)
	if e, ok := err.(rpc.ServerError); ok {
		if known, found := fault.Lookup(string(e)); found {
			return known
		}
	}
	return err
}
