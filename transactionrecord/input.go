// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/fragments"
	"github.com/bitmark-inc/airgap/validation"
)

// Input - spend of a previous output
type Input struct {
	uid        uuid.UUID
	txHash     string
	index      int64
	sender     account.Address
	derivation *Derivation
	amount     fragments.Fragments
}

// NewInput - create a validated input
//
// txHash and index identify the output being spent, derivation
// locates the key the offline signer must use for sender
func NewInput(uid uuid.UUID, txHash string, index int64, sender account.Address, derivation *Derivation, amount fragments.Fragments) (*Input, error) {
	return newInput(inputContext, uid, txHash, index, sender, derivation, amount)
}

func newInput(context string, uid uuid.UUID, txHash string, index int64, sender account.Address, derivation *Derivation, amount fragments.Fragments) (*Input, error) {
	input := &Input{
		uid:        uid,
		txHash:     txHash,
		index:      index,
		sender:     sender,
		derivation: derivation,
		amount:     amount,
	}
	if err := input.check(context); nil != err {
		return nil, err
	}
	return input, nil
}

// UID - caller supplied identifier
func (input *Input) UID() uuid.UUID {
	return input.uid
}

// TxHash - hash of the transaction holding the spent output
func (input *Input) TxHash() string {
	return input.txHash
}

// Index - position of the spent output in its transaction
func (input *Input) Index() int64 {
	return input.index
}

// Sender - owner of the spent output
func (input *Input) Sender() account.Address {
	return input.sender
}

// Derivation - key location of the sender
func (input *Input) Derivation() *Derivation {
	return input.derivation
}

// Amount - value of the spent output
func (input *Input) Amount() fragments.Fragments {
	return input.amount
}

func (input *Input) check(context string) error {
	derivationPath := validation.Field(context, derivationField)
	if nil == input.derivation {
		return fault.EmptyValue(derivationPath)
	}
	if err := input.derivation.check(derivationPath); nil != err {
		return err
	}
	if err := validation.CheckNotEmpty(input.txHash, validation.Field(context, txHashField)); nil != err {
		return err
	}
	if err := validation.CheckNotNegative(input.index, validation.Field(context, indexField)); nil != err {
		return err
	}
	if err := validation.CheckNotEmpty(input.sender, validation.Field(context, senderField)); nil != err {
		return err
	}
	return validation.CheckPositive(input.amount.Int64(), validation.Field(context, amountField))
}
