// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package artwork

import (
	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/util"
)

// Pack - Varint64(tag) followed by fields in order as the struct
//
// the for sale flag is packed as a 0/1 varint
func (record *Record) Pack() (Packed, error) {
	if nil == record.Artist || nil == record.Owner {
		return nil, fault.ErrInvalidOwner
	}

	message := util.ToVarint64(uint64(RecordTag))
	message = util.AppendBytes(message, record.Identity[:])
	message = util.AppendString(message, record.Title)
	message = util.AppendString(message, record.Description)
	message = util.AppendBytes(message, record.Artist.Bytes())
	message = util.AppendBytes(message, record.Owner.Bytes())
	message = util.AppendVarint64(message, record.Year)
	message = util.AppendVarint64(message, record.Price)
	message = util.AppendString(message, record.ImageReference)
	forSale := uint64(0)
	if record.ForSale {
		forSale = 1
	}
	message = util.AppendVarint64(message, forSale)
	return message, nil
}

// Unpack - turn a byte slice into a record
//
// returns the number of bytes consumed
func (record Packed) Unpack() (*Record, int, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrRecordTruncated
	}
	if RecordTag != TagType(recordType) {
		return nil, 0, fault.ErrUnknownRecord
	}

	r := &Record{}

	// identity
	b, l := util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	err := identity.FromBytes(&r.Identity, b)
	if nil != err {
		return nil, 0, err
	}
	n += l

	// title
	b, l = util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.Title = string(b)
	n += l

	// description
	b, l = util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.Description = string(b)
	n += l

	// artist
	b, l = util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.Artist, err = account.AccountFromBytes(b)
	if nil != err {
		return nil, 0, err
	}
	n += l

	// owner
	b, l = util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.Owner, err = account.AccountFromBytes(b)
	if nil != err {
		return nil, 0, err
	}
	n += l

	// year
	r.Year, l = util.FromVarint64(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	n += l

	// price
	r.Price, l = util.FromVarint64(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	n += l

	// image reference
	b, l = util.FromBytes(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.ImageReference = string(b)
	n += l

	// for sale
	forSale, l := util.FromVarint64(record[n:])
	if 0 == l {
		return nil, 0, fault.ErrRecordTruncated
	}
	r.ForSale = 0 != forSale
	n += l

	return r, n, nil
}
