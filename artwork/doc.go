// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package artwork - the uniquely owned artwork record
//
// a record is created exactly once and then moves between a holder's
// holdings, a registry index and a registry's custody; the binary
// form is a varint tagged field list so that it can be stored in any
// of those pools unchanged
package artwork
