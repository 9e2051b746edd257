// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - descriptor of the asset a transaction moves
//
// the descriptor is carried by a transaction so that an offline
// signer can display what is being transferred; it is identified by
// the SHA3-256 of an issuer supplied fingerprint
package asset
