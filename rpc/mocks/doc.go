// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles of the RPC service back ends
package mocks

//go:generate mockgen -source=../accounts/accounts.go -destination=accounts.go -package=mocks -mock_names=Core=MockAccounts
//go:generate mockgen -source=../artworks/artworks.go -destination=artworks.go -package=mocks -mock_names=Core=MockArtworks
//go:generate mockgen -source=../market/market.go -destination=market.go -package=mocks -mock_names=Core=MockMarket
//go:generate mockgen -source=../registries/registries.go -destination=registries.go -package=mocks -mock_names=Core=MockRegistries
//go:generate mockgen -source=../node/node.go -destination=pricing.go -package=mocks -mock_names=Pricing=MockPricing
