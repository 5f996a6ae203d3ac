// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/accounts"
)

// Balance - balance of an account
func (c *Client) Balance(a *account.Account) (*accounts.BalanceReply, error) {
	var reply accounts.BalanceReply
	if err := c.call("Accounts.Balance", &accounts.BalanceArguments{Account: a}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Deposit - fund an account on a test chain
func (c *Client) Deposit(a *account.Account, amount uint64) (*accounts.BalanceReply, error) {
	var reply accounts.BalanceReply
	if err := c.call("Accounts.Deposit", &accounts.DepositArguments{Account: a, Amount: amount}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Holdings - one page of the records held by an account
func (c *Client) Holdings(holder *account.Account, start identity.Identity, count int) (*accounts.HoldingsReply, error) {
	arguments := accounts.HoldingsArguments{
		Holder: holder,
		Start:  start,
		Count:  count,
	}
	var reply accounts.HoldingsReply
	if err := c.call("Accounts.Holdings", &arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
