// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gallery

import (
	"crypto/rand"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
	"github.com/bitmark-inc/gallery/identity"
	"github.com/bitmark-inc/gallery/storage"
	"github.com/bitmark-inc/gallery/util"
	"github.com/bitmark-inc/logger"
)

// registry header record tag
const registryTag = 0x52

// Registry - header of a registry
//
// Sequence is the source of index keys and never decreases; Active is
// the number of records the registry currently holds in its index and
// custody together
type Registry struct {
	Identity identity.Identity `json:"identity"`
	Owner    *account.Account  `json:"owner"`
	Escrow   uint64            `json:"escrow"`
	Sequence uint64            `json:"sequence"`
	Active   uint64            `json:"active"`
	Events   uint64            `json:"events"`

	capability identity.Identity
}

// Init - create a registry owned by caller and mint its capability
//
// the capability is returned exactly once
func (g *Gallery) Init(caller *account.Account) (*Registry, *Capability, error) {
	if nil == caller {
		return nil, nil, fault.ErrInvalidOwner
	}

	var result *Registry
	var capability *Capability

	err := g.execute("init", func(trx storage.Transaction) (*Registry, event.Event, error) {

		nonce := make([]byte, 16)
		if _, err := rand.Read(nonce); nil != err {
			return nil, nil, err
		}
		id := identity.Derive([]byte("registry"), caller.Bytes(), nonce)
		if trx.Has(storage.Pool.Registries, id[:]) {
			return nil, nil, fault.ErrAlreadyExists
		}

		secret, err := identity.Random()
		if nil != err {
			return nil, nil, err
		}

		r := &Registry{
			Identity:   id,
			Owner:      caller,
			capability: secret,
		}

		result = r
		capability = &Capability{
			id:     secret,
			target: id,
		}

		return r, &event.RegistryCreated{
			Owner: caller,
		}, nil
	})
	if nil != err {
		return nil, nil, err
	}
	return result.clone(), capability, nil
}

// GetOwner - owner of a registry
func (g *Gallery) GetOwner(registryID identity.Identity) (*account.Account, error) {
	r, err := g.Registry(registryID)
	if nil != err {
		return nil, err
	}
	return r.Owner, nil
}

// Registry - read a registry header
func (g *Gallery) Registry(registryID identity.Identity) (*Registry, error) {
	g.RLock()
	defer g.RUnlock()

	return loadRegistry(storage.Pool.Registries.Get(registryID[:]))
}

// fetch a registry header inside a transaction
func getRegistry(trx storage.Transaction, registryID identity.Identity) (*Registry, error) {
	return loadRegistry(trx.Get(storage.Pool.Registries, registryID[:]))
}

func loadRegistry(packed []byte) (*Registry, error) {
	if nil == packed {
		return nil, fault.ErrRegistryNotFound
	}
	r, err := unpackRegistry(packed)
	if nil != err {
		logger.Panicf("gallery: corrupt registry record: %x  error: %s", packed, err)
	}
	return r, nil
}

// store the header in the transaction
func (r *Registry) save(trx storage.Transaction) error {
	packed, err := r.pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Registries, r.Identity[:], packed)
	return nil
}

// copy without the secret
func (r *Registry) clone() *Registry {
	c := *r
	c.capability = identity.Identity{}
	return &c
}

// add to the escrow balance
func (r *Registry) deposit(amount uint64) error {
	if r.Escrow+amount < r.Escrow {
		return fault.ErrValueOverflow
	}
	r.Escrow += amount
	return nil
}

// next index key
func (r *Registry) nextKey() uint64 {
	r.Sequence += 1
	r.Active += 1
	return r.Sequence
}

// a record left the registry
func (r *Registry) release() {
	if 0 == r.Active {
		logger.Panicf("gallery: registry: %s  active count underflow", r.Identity)
	}
	r.Active -= 1
}

func (r *Registry) pack() ([]byte, error) {
	if nil == r.Owner {
		return nil, fault.ErrInvalidOwner
	}
	message := util.ToVarint64(registryTag)
	message = util.AppendBytes(message, r.Identity[:])
	message = util.AppendBytes(message, r.Owner.Bytes())
	message = util.AppendVarint64(message, r.Escrow)
	message = util.AppendVarint64(message, r.Sequence)
	message = util.AppendVarint64(message, r.Active)
	message = util.AppendVarint64(message, r.Events)
	message = util.AppendBytes(message, r.capability[:])
	return message, nil
}

func unpackRegistry(packed []byte) (*Registry, error) {
	tag, n := util.FromVarint64(packed)
	if 0 == n {
		return nil, fault.ErrRecordTruncated
	}
	if registryTag != tag {
		return nil, fault.ErrUnknownRecord
	}

	r := &Registry{}

	b, l := util.FromBytes(packed[n:])
	if 0 == l {
		return nil, fault.ErrRecordTruncated
	}
	if err := identity.FromBytes(&r.Identity, b); nil != err {
		return nil, err
	}
	n += l

	b, l = util.FromBytes(packed[n:])
	if 0 == l {
		return nil, fault.ErrRecordTruncated
	}
	owner, err := account.AccountFromBytes(b)
	if nil != err {
		return nil, err
	}
	r.Owner = owner
	n += l

	for _, v := range []*uint64{&r.Escrow, &r.Sequence, &r.Active, &r.Events} {
		*v, l = util.FromVarint64(packed[n:])
		if 0 == l {
			return nil, fault.ErrRecordTruncated
		}
		n += l
	}

	b, l = util.FromBytes(packed[n:])
	if 0 == l {
		return nil, fault.ErrRecordTruncated
	}
	if err := identity.FromBytes(&r.capability, b); nil != err {
		return nil, err
	}

	return r, nil
}
