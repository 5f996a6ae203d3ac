// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
)

// Valid account
var testAccount = []struct {
	testnet       bool
	publicKey     string
	base58Account string
}{
	{
		testnet:       false,
		publicKey:     "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     "731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db",
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
}

func TestValidBase58(t *testing.T) {
	for i, item := range testAccount {
		publicKey, _ := hex.DecodeString(item.publicKey)
		a, err := account.New(publicKey, item.testnet)
		require.NoError(t, err, "%d: new account", i)

		assert.Equal(t, item.base58Account, a.String(), "%d: base58", i)
		assert.Equal(t, item.testnet, a.IsTesting(), "%d: test flag", i)

		b, err := account.AccountFromBase58(item.base58Account)
		require.NoError(t, err, "%d: decode", i)
		assert.True(t, a.Equal(b), "%d: round trip mismatch", i)

		c, err := account.AccountFromBytes(a.Bytes())
		require.NoError(t, err, "%d: from bytes", i)
		assert.True(t, a.Equal(c), "%d: bytes mismatch", i)
	}
}

func TestInvalidBase58(t *testing.T) {
	_, err := account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCk")
	assert.Equal(t, fault.ErrChecksumMismatch, err, "altered checksum")

	_, err = account.AccountFromBase58("0OIl")
	assert.Equal(t, fault.ErrCannotDecodeAccount, err, "not base58")

	_, err = account.New([]byte{1, 2, 3}, true)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")
}

func TestJSON(t *testing.T) {
	kp, err := account.NewKeyPair(true)
	require.NoError(t, err)

	type holder struct {
		Owner *account.Account `json:"owner"`
	}

	buffer, err := json.Marshal(holder{Owner: kp.Account})
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"`+kp.Account.String()+`"}`, string(buffer))

	var h holder
	require.NoError(t, json.Unmarshal(buffer, &h))
	assert.True(t, kp.Account.Equal(h.Owner), "JSON round trip")
}

func TestKeyPairFromHex(t *testing.T) {
	kp, err := account.NewKeyPair(false)
	require.NoError(t, err)

	seed := hex.EncodeToString(kp.PrivateKey.Seed())
	again, err := account.KeyPairFromHex(seed, false)
	require.NoError(t, err)
	assert.True(t, kp.Account.Equal(again.Account), "seed did not regenerate account")

	full, err := account.KeyPairFromHex(hex.EncodeToString(kp.PrivateKey), false)
	require.NoError(t, err)
	assert.True(t, kp.Account.Equal(full.Account), "private key did not regenerate account")

	_, err = account.KeyPairFromHex("abcd", false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err)
}
