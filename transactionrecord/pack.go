// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/util"
)

// TagType - type code of a packed record
type TagType uint64

// record types, encoded as Varint64 at the start of "Packed"
const (
	// null marks an empty record - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	TransactionTag = TagType(iota) // unsigned or partially signed transaction

	// this item must be last
	InvalidTag = TagType(iota)
)

// Pack - compact binary form of a transaction
//
// Varint64(tag) uid asset? inputs outputs inputSignatures, where
// each list is Varint64(count) followed by the elements and every
// variable length field is prefixed by Varint64(length)
func (tx *Transaction) Pack() (Packed, error) {
	if err := tx.check(transactionContext); nil != err {
		return nil, err
	}

	message := util.ToVarint64(uint64(TransactionTag))
	message = appendBytes(message, tx.uid[:])
	message = appendAsset(message, tx.asset)

	message = appendUint64(message, uint64(len(tx.inputs)))
	for _, input := range tx.inputs {
		message = appendBytes(message, input.uid[:])
		message = appendString(message, input.txHash)
		message = appendUint64(message, uint64(input.index))
		message = appendDerivation(message, input.derivation)
		message = appendUint64(message, uint64(input.amount))
		message = appendString(message, string(input.sender))
	}

	message = appendUint64(message, uint64(len(tx.outputs)))
	for _, output := range tx.outputs {
		message = appendBytes(message, output.uid[:])
		switch payload := output.payload.(type) {
		case *Spendable:
			message = appendUint64(message, uint64(payload.amount))
			message = appendString(message, string(payload.receiver))
			if nil == payload.derivation {
				message = append(message, 0)
			} else {
				message = append(message, 1)
				message = appendDerivation(message, payload.derivation)
			}
		case *Data:
			// zero amount marks data
			message = appendUint64(message, 0)
			message = appendBytes(message, payload.data)
		}
	}

	message = appendUint64(message, uint64(len(tx.inputSignatures)))
	for _, s := range tx.inputSignatures {
		message = appendBytes(message, s.uid[:])
		message = appendBytes(message, s.publicKey)
		message = appendBytes(message, s.signature)
	}

	return message, nil
}

func appendAsset(buffer Packed, descriptor *asset.Descriptor) Packed {
	if nil == descriptor {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	buffer = appendBytes(buffer, descriptor.Identifier[:])
	return appendString(buffer, descriptor.Name)
}

func appendDerivation(buffer Packed, d *Derivation) Packed {
	buffer = appendUint64(buffer, uint64(d.accountIndex))
	buffer = appendUint64(buffer, uint64(d.addressIndex))
	return appendUint64(buffer, d.chainType.Uint64())
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return util.AppendVarint64(buffer, value)
}
