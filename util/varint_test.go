// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/gallery/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
		value, count := util.FromVarint64(append(item.encoded, 0xff, 0x23))
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, item.encoded, value, count, item.value, len(item.encoded))
		}
	}
}

func TestVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(b)
		if 0 != value || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, b, value, count)
		}
	}
}

func TestCountedBytes(t *testing.T) {
	buffer := util.AppendString(nil, "Sunset")
	buffer = util.AppendBytes(buffer, []byte{1, 2, 3})

	s, n := util.FromBytes(buffer)
	if "Sunset" != string(s) || 7 != n {
		t.Fatalf("first item: %q, %d", s, n)
	}
	b, m := util.FromBytes(buffer[n:])
	if !bytes.Equal([]byte{1, 2, 3}, b) || 4 != m {
		t.Fatalf("second item: %x, %d", b, m)
	}

	// length claims more bytes than remain
	if d, c := util.FromBytes([]byte{0x05, 'a', 'b'}); nil != d || 0 != c {
		t.Errorf("truncated item returned: %x, %d", d, c)
	}
}
