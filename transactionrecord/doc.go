// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - validated transaction model for offline signing
//
// a Transaction moves value from previous outputs (Inputs) to new
// Outputs and collects InputSignatures from an offline signer
//
// every value is created by a constructor (or a decoder that ends in
// the same constructor) which runs the complete check, so any value
// that can be observed is valid; values are never modified after
// construction
//
// three encodings are provided:
//
//	Fields  - generic map form, the basis of the JSON encoding
//	JSON    - Fields rendered with text forms for blobs and amounts
//	Packed  - compact Varint64 prefixed binary, with hex and base58
//	          text forms for transfer by file or QR code
package transactionrecord
