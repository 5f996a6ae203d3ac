// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery_test

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/artwork"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/payment"
)

// a payment drawn on whatever the payer already has
func unfunded(payer *account.Account, amount uint64) *payment.Payment {
	return &payment.Payment{
		Payer:  payer,
		Amount: amount,
	}
}

func properties(title string, price uint64, forSale bool) *artwork.Properties {
	return &artwork.Properties{
		Title:       title,
		Description: "updated",
		Year:        2025,
		Price:       price,
		ForSale:     forSale,
	}
}

func countNames(r *event.Recorder, name string) int {
	n := 0
	for _, s := range r.Names() {
		if s == name {
			n += 1
		}
	}
	return n
}
