// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - caller authentication for state changing RPC calls
//
// a request is signed with the caller's ed25519 key over the method
// name and the JSON form of the request body
package auth

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
)

const domain = "gallery:"

// Signature - ed25519 signature, hex in JSON
type Signature []byte

// MarshalText - hex form
func (s Signature) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(s)))
	hex.Encode(buffer, s)
	return buffer, nil
}

// UnmarshalText - from hex
func (s *Signature) UnmarshalText(text []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(buffer, text)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*s = buffer[:n]
	return nil
}

// the bytes that are signed
func message(method string, request interface{}) ([]byte, error) {
	body, err := json.Marshal(request)
	if nil != err {
		return nil, err
	}
	m := make([]byte, 0, len(domain)+len(method)+1+len(body))
	m = append(m, domain...)
	m = append(m, method...)
	m = append(m, 0x00)
	return append(m, body...), nil
}

// Sign - sign a request for a method, e.g. "Artworks.Create"
func Sign(keyPair *account.KeyPair, method string, request interface{}) (Signature, error) {
	if nil == keyPair {
		return nil, fault.ErrMissingParameters
	}
	m, err := message(method, request)
	if nil != err {
		return nil, err
	}
	return ed25519.Sign(keyPair.PrivateKey, m), nil
}

// Verify - check that caller signed request for method
//
// the caller's key variant must match the chain
func Verify(testing bool, caller *account.Account, method string, request interface{}, signature Signature) error {
	if nil == caller {
		return fault.ErrMissingParameters
	}
	if caller.IsTesting() != testing {
		return fault.ErrWrongNetworkForPublicKey
	}
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	m, err := message(method, request)
	if nil != err {
		return err
	}
	if !ed25519.Verify(caller.PublicKeyBytes(), m, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
