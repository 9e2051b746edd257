// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/airgap/digest"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	if recordType >= uint64(InvalidTag) {
		return InvalidTag
	}
	return TagType(recordType)
}

// Digest - SHA3-256 fingerprint of the record
//
// both sides of the air gap display this to confirm they hold the
// same transaction
func (record Packed) Digest() digest.Digest {
	return digest.NewDigest(record)
}

// MarshalText - convert a packed record to hex for JSON
func (record Packed) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(record)))
	hex.Encode(buffer, record)
	return buffer, nil
}

// UnmarshalText - convert a hex string to a packed record
func (record *Packed) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrNotTransactionPack
	}
	*record = buffer[:n]
	return nil
}

// Base58 - text form for QR codes and copy and paste
func (record Packed) Base58() string {
	return base58.Encode(record)
}

// PackedFromBase58 - convert base58 text to a packed record
func PackedFromBase58(s string) (Packed, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return nil, fault.ErrNotTransactionPack
	}
	return buffer, nil
}
