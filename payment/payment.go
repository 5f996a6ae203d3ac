// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payment - per-account balance book
//
// all movements happen inside the caller's storage transaction so
// they commit or abort together with the operation that caused them
package payment

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/storage"
)

// Payment - the coin handed to an operation
type Payment struct {
	Payer  *account.Account `json:"payer"`
	Amount uint64           `json:"amount"`
}

// Balance - committed balance of an account
//
// writes staged by an open transaction are not included
func Balance(a *account.Account) uint64 {
	if nil == a {
		return 0
	}
	n, _ := storage.Pool.Balances.GetN(a.Bytes())
	return n
}

// BalanceIn - balance including writes staged in trx
func BalanceIn(trx storage.Transaction, a *account.Account) uint64 {
	n, _ := trx.GetN(storage.Pool.Balances, a.Bytes())
	return n
}

// Credit - add to an account
func Credit(trx storage.Transaction, a *account.Account, amount uint64) error {
	if nil == a {
		return fault.ErrInvalidOwner
	}
	if 0 == amount {
		return nil
	}
	balance := BalanceIn(trx, a)
	if balance+amount < balance {
		return fault.ErrValueOverflow
	}
	trx.PutN(storage.Pool.Balances, a.Bytes(), balance+amount)
	return nil
}

// Debit - remove from an account
//
// the balance record is removed when it reaches zero
func Debit(trx storage.Transaction, a *account.Account, amount uint64) error {
	if nil == a {
		return fault.ErrInvalidOwner
	}
	if 0 == amount {
		return nil
	}
	balance := BalanceIn(trx, a)
	if balance < amount {
		return fault.ErrInsufficientBalance
	}
	if balance == amount {
		trx.Delete(storage.Pool.Balances, a.Bytes())
		return nil
	}
	trx.PutN(storage.Pool.Balances, a.Bytes(), balance-amount)
	return nil
}

// Transfer - move amount between two accounts
func Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	err := Debit(trx, from, amount)
	if nil != err {
		return err
	}
	return Credit(trx, to, amount)
}

// Collect - take the payment from its payer
//
// the amount is then held by the operation until credited elsewhere
func (p *Payment) Collect(trx storage.Transaction) error {
	if nil == p || nil == p.Payer {
		return fault.ErrMissingParameters
	}
	return Debit(trx, p.Payer, p.Amount)
}
