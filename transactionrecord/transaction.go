// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/validation"
)

// root contexts used in error paths
const (
	derivationContext     = "derivation"
	inputContext          = "input"
	outputContext         = "output"
	inputSignatureContext = "inputSignature"
	transactionContext    = "transaction"
)

// Transaction - the aggregate passed to and from the offline signer
type Transaction struct {
	uid             uuid.UUID
	asset           *asset.Descriptor
	inputs          []*Input
	outputs         []*Output
	inputSignatures []*InputSignature
}

// NewTransaction - create a validated transaction
//
// asset may be nil; empty lists are stored as nil
func NewTransaction(uid uuid.UUID, descriptor *asset.Descriptor, inputs []*Input, outputs []*Output, inputSignatures []*InputSignature) (*Transaction, error) {
	return newTransaction(transactionContext, uid, descriptor, inputs, outputs, inputSignatures)
}

func newTransaction(context string, uid uuid.UUID, descriptor *asset.Descriptor, inputs []*Input, outputs []*Output, inputSignatures []*InputSignature) (*Transaction, error) {
	tx := &Transaction{
		uid:             uid,
		inputs:          cloneList(inputs),
		outputs:         cloneList(outputs),
		inputSignatures: cloneList(inputSignatures),
	}
	if nil != descriptor {
		d := *descriptor
		tx.asset = &d
	}
	if err := tx.check(context); nil != err {
		return nil, err
	}
	return tx, nil
}

// WithInputSignatures - a new transaction with signatures appended
// to those already present
func (tx *Transaction) WithInputSignatures(inputSignatures ...*InputSignature) (*Transaction, error) {
	all := make([]*InputSignature, 0, len(tx.inputSignatures)+len(inputSignatures))
	all = append(all, tx.inputSignatures...)
	all = append(all, inputSignatures...)
	return newTransaction(transactionContext, tx.uid, tx.asset, tx.inputs, tx.outputs, all)
}

// UID - caller supplied identifier
func (tx *Transaction) UID() uuid.UUID {
	return tx.uid
}

// Asset - a copy of the asset descriptor, nil if absent
func (tx *Transaction) Asset() *asset.Descriptor {
	if nil == tx.asset {
		return nil
	}
	d := *tx.asset
	return &d
}

// Inputs - the inputs in order
func (tx *Transaction) Inputs() []*Input {
	return cloneList(tx.inputs)
}

// Outputs - the outputs in order
func (tx *Transaction) Outputs() []*Output {
	return cloneList(tx.outputs)
}

// InputSignatures - the signatures collected so far, in order
func (tx *Transaction) InputSignatures() []*InputSignature {
	return cloneList(tx.inputSignatures)
}

// asset, then each input, then each output, then each signature
func (tx *Transaction) check(context string) error {
	if nil != tx.asset {
		if err := tx.asset.Check(validation.Field(context, assetField)); nil != err {
			return err
		}
	}
	for i, input := range tx.inputs {
		elementContext := validation.Element(context, inputsField, i)
		if nil == input {
			return fault.EmptyValue(elementContext)
		}
		if err := input.check(elementContext); nil != err {
			return err
		}
	}
	for i, output := range tx.outputs {
		elementContext := validation.Element(context, outputsField, i)
		if nil == output {
			return fault.EmptyValue(elementContext)
		}
		if err := output.check(elementContext); nil != err {
			return err
		}
	}
	for i, s := range tx.inputSignatures {
		elementContext := validation.Element(context, inputSignaturesField, i)
		if nil == s {
			return fault.EmptyValue(elementContext)
		}
		if err := s.check(elementContext); nil != err {
			return err
		}
	}
	return nil
}

// copy of a list, empty becomes nil
func cloneList[T any](list []T) []T {
	if 0 == len(list) {
		return nil
	}
	return append([]T(nil), list...)
}
