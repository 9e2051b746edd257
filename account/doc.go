// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - opaque address and key material types
//
// Addresses are carried as text and are never parsed here. Public
// keys and signatures are byte blobs produced by the signing device;
// their text form is hex.
package account
