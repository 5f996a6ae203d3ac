// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"github.com/golang/protobuf/proto"

	"github.com/bitmark-inc/gallery/account"
	"github.com/bitmark-inc/gallery/event"
	"github.com/bitmark-inc/gallery/fault"
)

// Message - wire form of any event
//
// fields an event does not carry are left at their zero value
type Message struct {
	Registry     []byte `protobuf:"bytes,1,opt,name=registry,proto3" json:"registry,omitempty"`
	Sequence     uint64 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Name         string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Identity     []byte `protobuf:"bytes,4,opt,name=identity,proto3" json:"identity,omitempty"`
	Key          uint64 `protobuf:"varint,5,opt,name=key,proto3" json:"key,omitempty"`
	Owner        string `protobuf:"bytes,6,opt,name=owner,proto3" json:"owner,omitempty"`
	Counterparty string `protobuf:"bytes,7,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	Title        string `protobuf:"bytes,8,opt,name=title,proto3" json:"title,omitempty"`
	Description  string `protobuf:"bytes,9,opt,name=description,proto3" json:"description,omitempty"`
	Year         uint64 `protobuf:"varint,10,opt,name=year,proto3" json:"year,omitempty"`
	Price        uint64 `protobuf:"varint,11,opt,name=price,proto3" json:"price,omitempty"`
	ForSale      bool   `protobuf:"varint,12,opt,name=for_sale,json=forSale,proto3" json:"for_sale,omitempty"`
	Escrow       bool   `protobuf:"varint,13,opt,name=escrow,proto3" json:"escrow,omitempty"`
	Indexed      bool   `protobuf:"varint,14,opt,name=indexed,proto3" json:"indexed,omitempty"`
}

// Reset - proto.Message
func (m *Message) Reset() { *m = Message{} }

// String - proto.Message
func (m *Message) String() string { return proto.CompactTextString(m) }

// ProtoMessage - proto.Message
func (*Message) ProtoMessage() {}

// NewMessage - convert an event to its wire form
//
// Owner is the account that holds the record after the event; for a
// sale Counterparty is the seller, for a creation or deletion it is
// the artist
func NewMessage(e event.Event) (*Message, error) {
	h := e.Head()
	m := &Message{
		Sequence: h.Sequence,
		Name:     e.Name(),
	}
	if !h.Registry.IsZero() {
		m.Registry = append([]byte{}, h.Registry[:]...)
	}

	switch ev := e.(type) {
	case *event.RegistryCreated:
		m.Owner = text(ev.Owner)

	case *event.ArtCreated:
		m.Identity = ev.Identity[:]
		m.Owner = text(ev.Artist)
		m.Counterparty = text(ev.Artist)
		m.Title = ev.Title
		m.Year = ev.Year
		m.Description = ev.Description
		m.Indexed = ev.Indexed

	case *event.ArtAdded:
		m.Identity = ev.Identity[:]
		m.Key = ev.Key
		m.Owner = text(ev.Owner)

	case *event.ArtUpdated:
		m.Identity = ev.Identity[:]
		m.Owner = text(ev.Owner)
		m.Title = ev.Title
		m.Year = ev.Year
		m.Description = ev.Description
		m.Price = ev.Price
		m.ForSale = ev.ForSale

	case *event.ArtListed:
		m.Identity = ev.Identity[:]
		m.Owner = text(ev.Owner)
		m.Price = ev.Price

	case *event.ArtDelisted:
		m.Identity = ev.Identity[:]
		m.Owner = text(ev.Owner)

	case *event.ArtSold:
		m.Identity = ev.Identity[:]
		m.Owner = text(ev.Buyer)
		m.Counterparty = text(ev.Seller)
		m.Price = ev.Price
		m.Escrow = ev.Escrow

	case *event.ArtDeleted:
		m.Identity = ev.Identity[:]
		m.Counterparty = text(ev.Artist)
		m.Title = ev.Title

	default:
		return nil, fault.ErrUnknownRecord
	}
	return m, nil
}

// Encode - protobuf bytes of an event
func Encode(e event.Event) ([]byte, error) {
	m, err := NewMessage(e)
	if nil != err {
		return nil, err
	}
	return proto.Marshal(m)
}

func text(a *account.Account) string {
	if nil == a {
		return ""
	}
	return a.String()
}
