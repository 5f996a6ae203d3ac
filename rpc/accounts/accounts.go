// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	// MaximumHoldingsCount - largest page of held records
	MaximumHoldingsCount = 100

	rateLimitAccounts = 200
	rateBurstAccounts = 100
)

// Core - balance and holdings operations used by this service
type Core interface {
	Balance(*account.Account) uint64
	Deposit(*account.Account, uint64) (uint64, error)
	Holdings(*account.Account, identity.Identity, int) ([]*artwork.Record, error)
}

// Accounts - type for the RPC
type Accounts struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Gallery Core
}

// New - create the accounts service
func New(log *logger.L, core Core) *Accounts {
	return &Accounts{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAccounts, rateBurstAccounts),
		Gallery: core,
	}
}

// BalanceArguments - arguments for Accounts.Balance
type BalanceArguments struct {
	Account *account.Account `json:"account"`
}

// BalanceReply - result of Accounts.Balance and Accounts.Deposit
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - committed balance of an account
func (a *Accounts) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}
	reply.Balance = a.Gallery.Balance(arguments.Account)
	return nil
}

// DepositArguments - arguments for Accounts.Deposit
type DepositArguments struct {
	Account *account.Account `json:"account"`
	Amount  uint64           `json:"amount"`
}

// Deposit - credit an account; refused outside test chains
func (a *Accounts) Deposit(arguments *DepositArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a.Log.Infof("Accounts.Deposit: account: %s  amount: %d", arguments.Account, arguments.Amount)

	balance, err := a.Gallery.Deposit(arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}

// HoldingsArguments - arguments for Accounts.Holdings
//
// Start is exclusive; pass the Next of the previous page
type HoldingsArguments struct {
	Holder *account.Account  `json:"holder"`
	Start  identity.Identity `json:"start"`
	Count  int               `json:"count"`
}

// HoldingsReply - result of Accounts.Holdings
//
// Next is zero on the last page
type HoldingsReply struct {
	Records []*artwork.Record `json:"records"`
	Next    identity.Identity `json:"next"`
}

// Holdings - page through the records held by an account
func (a *Accounts) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if nil == arguments {
		return fault.ErrMissingParameters
	}
	if err := ratelimit.LimitN(a.Limiter, arguments.Count, MaximumHoldingsCount); nil != err {
		return err
	}

	records, err := a.Gallery.Holdings(arguments.Holder, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Records = records
	if len(records) == arguments.Count {
		reply.Next = records[len(records)-1].Identity
	}
	return nil
}
