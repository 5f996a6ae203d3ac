// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gallery - artwork registries and their marketplace
//
// a registry owns a counter indexed set of artwork records, a custody
// table of records listed for sale and an escrow balance; every
// record lives in exactly one place at a time:
//
//   holdings  - held directly by an account
//   index     - indexed in a registry under a sequence key
//   custody   - held by a registry while listed for sale
//
// each operation runs under one storage transaction and emits exactly
// one event after that transaction has committed; a failed operation
// leaves no trace
//
// only one Gallery should be created over the storage pools
package gallery
