// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - records of registry state changes
//
// exactly one event is emitted for each successful operation and only
// after its storage transaction has been committed; each event carries
// the registry it belongs to and that registry's event sequence number
// so a consumer can detect gaps
package event
