// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/gallery/fault"
)

// Length - number of bytes in an identity
const Length = 32

// Identity - a SHA3-256 digest used to name registries, artworks and capabilities
//
// to convert to bytes just use id[:]
type Identity [Length]byte

// Derive - hash the concatenation of all parts
func Derive(parts ...[]byte) Identity {
	h := sha3.New256()
	for _, p := range parts {
		h.Write(p)
	}
	var id Identity
	copy(id[:], h.Sum(nil))
	return id
}

// Random - an identity that cannot be predicted by a caller
func Random() (Identity, error) {
	var id Identity
	if _, err := rand.Read(id[:]); nil != err {
		return id, err
	}
	return id, nil
}

// FromBytes - convert and validate a binary byte slice
func FromBytes(id *Identity, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidIdentity
	}
	copy(id[:], buffer)
	return nil
}

// FromHex - convert a hex string to an identity
func FromHex(s string) (Identity, error) {
	var id Identity
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// IsZero - true for the uninitialised value
func (id Identity) IsZero() bool {
	return Identity{} == id
}

// String - hex for the fmt package (for %s)
func (id Identity) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for the fmt package (for %#v)
func (id Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - for the fmt package scan routines
func (id *Identity) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
	})
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}

// MarshalText - convert identity to hex text
func (id Identity) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identity
func (id *Identity) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidIdentity
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidIdentity
	}
	copy(id[:], buffer)
	return nil
}
