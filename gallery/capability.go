// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"bytes"
	"crypto/subtle"

	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
)

// Capability - authority to list and delist in one registry
//
// minted once by Init; its secret part is only known to the holder
type Capability struct {
	id     identity.Identity
	target identity.Identity
}

// Target - the registry this capability is bound to
func (c *Capability) Target() identity.Identity {
	return c.target
}

// authorises - check the capability against a registry header
func (c *Capability) authorises(r *Registry) bool {
	if nil == c || nil == r {
		return false
	}
	if c.target != r.Identity {
		return false
	}
	return 1 == subtle.ConstantTimeCompare(c.id[:], r.capability[:])
}

// MarshalText - "<target>:<secret>" in hex
func (c Capability) MarshalText() ([]byte, error) {
	target, _ := c.target.MarshalText()
	id, _ := c.id.MarshalText()
	buffer := make([]byte, 0, len(target)+1+len(id))
	buffer = append(buffer, target...)
	buffer = append(buffer, ':')
	return append(buffer, id...), nil
}

// UnmarshalText - parse "<target>:<secret>"
func (c *Capability) UnmarshalText(s []byte) error {
	parts := bytes.Split(s, []byte{':'})
	if 2 != len(parts) {
		return fault.ErrInvalidCapability
	}
	var target identity.Identity
	var id identity.Identity
	if nil != target.UnmarshalText(parts[0]) || nil != id.UnmarshalText(parts[1]) {
		return fault.ErrInvalidCapability
	}
	c.target = target
	c.id = id
	return nil
}

// String - text form
func (c Capability) String() string {
	s, _ := c.MarshalText()
	return string(s)
}
