// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/gallery/fault"
)

// KeyPair - an ed25519 key pair and its account
type KeyPair struct {
	Account    *Account
	PrivateKey ed25519.PrivateKey
}

// NewKeyPair - generate a fresh key pair
func NewKeyPair(test bool) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	a, err := New(publicKey, test)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}

// KeyPairFromHex - rebuild a key pair from a hex private key
//
// accepts either the 32 byte seed or the full 64 byte private key
func KeyPairFromHex(privateKeyHex string, test bool) (*KeyPair, error) {
	b, err := hex.DecodeString(privateKeyHex)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	var privateKey ed25519.PrivateKey
	switch len(b) {
	case ed25519.SeedSize:
		privateKey = ed25519.NewKeyFromSeed(b)
	case ed25519.PrivateKeySize:
		privateKey = ed25519.NewKeyFromSeed(b[:ed25519.SeedSize])
		if hex.EncodeToString(privateKey) != hex.EncodeToString(b) {
			return nil, fault.ErrInvalidPrivateKey
		}
	default:
		return nil, fault.ErrInvalidKeyLength
	}
	a, err := New(privateKey.Public().(ed25519.PublicKey), test)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    a,
		PrivateKey: privateKey,
	}, nil
}
