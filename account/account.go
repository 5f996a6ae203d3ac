// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/util"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an address on the ledger
//
// callers, artists, holders and registry owners are all accounts; the
// binary form is used for storage keys and the base58 form for text
type Account struct {
	test      bool
	publicKey []byte
}

// New - create an account from an ed25519 public key
func New(publicKey []byte, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	k := make([]byte, ed25519.PublicKeySize)
	copy(k, publicKey)
	return &Account{
		test:      test,
		publicKey: k,
	}, nil
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || len(accountDecoded) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - convert the binary form back to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	return New(accountBytes[keyVariantLength:], isTest)
}

// Bytes - binary form: key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.publicKey...)
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.publicKey
}

// IsTesting - return whether the public key is in test mode or not
func (account *Account) IsTesting() bool {
	return account.test
}

// Equal - true if both refer to the same address
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.test == other.test && bytes.Equal(account.publicKey, other.publicKey)
}

// String - base58 encoding of encoded key
func (account *Account) String() string {
	if nil == account {
		return "<nil>"
	}
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
