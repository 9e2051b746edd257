// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/google/uuid"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/fragments"
	"github.com/bitmark-inc/airgap/util"
	"github.com/bitmark-inc/airgap/validation"
)

// Unpack - turn a packed record into a transaction
//
// also returns the number of bytes consumed; every element is
// rebuilt by its constructor so the result is fully checked
func (record Packed) Unpack() (*Transaction, int, error) {
	u := &unpacker{record: record}

	if TransactionTag != TagType(u.varint()) {
		return nil, 0, fault.ErrNotTransactionPack
	}

	uid := u.uid()
	var descriptor *asset.Descriptor
	if u.flag() {
		descriptor = &asset.Descriptor{}
		if nil != asset.IdentifierFromBytes(&descriptor.Identifier, u.bytes()) {
			u.fail()
		}
		descriptor.Name = u.text()
	}
	if nil != u.err {
		return nil, 0, u.err
	}
	if nil != descriptor {
		if err := descriptor.Check(validation.Field(transactionContext, assetField)); nil != err {
			return nil, 0, err
		}
	}

	inputs := make([]*Input, u.count())
	for i := range inputs {
		context := validation.Element(transactionContext, inputsField, i)
		inputUID := u.uid()
		txHash := u.text()
		index := u.signed()
		derivation, err := u.derivation(validation.Field(context, derivationField))
		if nil != err {
			return nil, 0, err
		}
		amount := u.signed()
		sender := u.text()
		if nil != u.err {
			return nil, 0, u.err
		}
		inputs[i], err = newInput(context, inputUID, txHash, index, account.Address(sender), derivation, fragments.Fragments(amount))
		if nil != err {
			return nil, 0, err
		}
	}

	outputs := make([]*Output, u.count())
	for i := range outputs {
		context := validation.Element(transactionContext, outputsField, i)
		outputUID := u.uid()
		amount := u.signed()
		if 0 == amount {
			data := u.bytes()
			if nil != u.err {
				return nil, 0, u.err
			}
			output, err := newDataOutput(context, outputUID, data)
			if nil != err {
				return nil, 0, err
			}
			outputs[i] = output
			continue
		}

		receiver := u.text()
		var derivation *Derivation
		if u.flag() {
			var err error
			derivation, err = u.derivation(validation.Field(context, derivationField))
			if nil != err {
				return nil, 0, err
			}
		}
		if nil != u.err {
			return nil, 0, u.err
		}
		output, err := newSpendableOutput(context, outputUID, account.Address(receiver), fragments.Fragments(amount), derivation)
		if nil != err {
			return nil, 0, err
		}
		outputs[i] = output
	}

	inputSignatures := make([]*InputSignature, u.count())
	for i := range inputSignatures {
		context := validation.Element(transactionContext, inputSignaturesField, i)
		signatureUID := u.uid()
		publicKey := u.bytes()
		signature := u.bytes()
		if nil != u.err {
			return nil, 0, u.err
		}
		s, err := newInputSignature(context, signatureUID, publicKey, signature)
		if nil != err {
			return nil, 0, err
		}
		inputSignatures[i] = s
	}
	if nil != u.err {
		return nil, 0, u.err
	}

	tx, err := newTransaction(transactionContext, uid, descriptor, inputs, outputs, inputSignatures)
	if nil != err {
		return nil, 0, err
	}
	return tx, u.n, nil
}

// sequential reader over a packed record
//
// the first failure is kept and every later read returns a zero value
type unpacker struct {
	record Packed
	n      int
	err    error
}

func (u *unpacker) fail() {
	if nil == u.err {
		u.err = fault.ErrNotTransactionPack
	}
}

func (u *unpacker) remaining() int {
	return len(u.record) - u.n
}

func (u *unpacker) varint() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := util.FromVarint64(u.record[u.n:])
	if 0 == count {
		u.fail()
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) signed() int64 {
	value := u.varint()
	if value > math.MaxInt64 {
		u.fail()
		return 0
	}
	return int64(value)
}

// a list length, bounded by the bytes left since every element
// occupies at least one byte
func (u *unpacker) count() int {
	value := u.varint()
	if value > uint64(u.remaining()) {
		u.fail()
		return 0
	}
	return int(value)
}

func (u *unpacker) bytes() []byte {
	length := u.varint()
	if nil != u.err {
		return nil
	}
	if length > uint64(u.remaining()) {
		u.fail()
		return nil
	}
	data := make([]byte, length)
	copy(data, u.record[u.n:])
	u.n += int(length)
	return data
}

func (u *unpacker) text() string {
	return string(u.bytes())
}

func (u *unpacker) flag() bool {
	if nil != u.err {
		return false
	}
	if 0 == u.remaining() {
		u.fail()
		return false
	}
	b := u.record[u.n]
	u.n++
	switch b {
	case 0:
		return false
	case 1:
		return true
	}
	u.fail()
	return false
}

func (u *unpacker) uid() uuid.UUID {
	data := u.bytes()
	if nil != u.err {
		return uuid.Nil
	}
	uid, err := uuid.FromBytes(data)
	if nil != err {
		u.fail()
		return uuid.Nil
	}
	return uid
}

func (u *unpacker) derivation(context string) (*Derivation, error) {
	accountIndex := u.signed()
	addressIndex := u.signed()
	chainType := chain.Type(u.varint())
	if nil != u.err {
		return nil, u.err
	}
	return newDerivation(context, accountIndex, addressIndex, chainType)
}
