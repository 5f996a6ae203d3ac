// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/util"
)

// key files hold one line: a tag then 32 bytes of hex
const (
	publicTag  = "PUBLIC:"
	privateTag = "PRIVATE:"
	keyBytes   = 32
)

// MakeKeyPair - create a CURVE key pair, one half per file
//
// neither file may exist beforehand; the private file is owner only
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	for _, name := range []string{publicKeyFileName, privateKeyFileName} {
		if util.EnsureFileExists(name) {
			return fault.ErrKeyFileAlreadyExists
		}
	}

	z85Public, z85Private, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(publicKeyFileName, encodeKey(publicTag, z85Public), 0644)
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(privateKeyFileName, encodeKey(privateTag, z85Private), 0600)
	if nil != err {
		os.Remove(publicKeyFileName)
	}
	return err
}

func encodeKey(tag string, z85 string) []byte {
	return []byte(tag + hex.EncodeToString([]byte(zmq.Z85decode(z85))) + "\n")
}

// ParseKey - decode "PUBLIC:<hex>" or "PRIVATE:<hex>"
//
// the second result is true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := strings.HasPrefix(s, privateTag)
	invalid := fault.ErrInvalidPublicKeyFile
	var encoded string
	switch {
	case private:
		encoded = s[len(privateTag):]
		invalid = fault.ErrInvalidPrivateKeyFile
	case strings.HasPrefix(s, publicTag):
		encoded = s[len(publicTag):]
	default:
		return nil, false, fault.ErrInvalidPublicKeyFile
	}

	key, err := hex.DecodeString(encoded)
	if nil != err {
		return nil, false, err
	}
	if keyBytes != len(key) {
		return nil, false, invalid
	}
	return key, private, nil
}

// ReadPublicKey - decode a key that must be public
func ReadPublicKey(key string) ([]byte, error) {
	return readKey(key, false)
}

// ReadPrivateKey - decode a key that must be private
func ReadPrivateKey(key string) ([]byte, error) {
	return readKey(key, true)
}

func readKey(key string, wantPrivate bool) ([]byte, error) {
	data, private, err := ParseKey(key)
	switch {
	case nil != err:
		return nil, err
	case private == wantPrivate:
		return data, nil
	case wantPrivate:
		return nil, fault.ErrInvalidPrivateKeyFile
	default:
		return nil, fault.ErrInvalidPublicKeyFile
	}
}

// ReadPublicKeyFile - read and decode a public key file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPublicKey(string(data))
}

// ReadPrivateKeyFile - read and decode a private key file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return ReadPrivateKey(string(data))
}
