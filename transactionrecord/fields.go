// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/fragments"
	"github.com/bitmark-inc/airgap/util"
	"github.com/bitmark-inc/airgap/validation"
)

// Fields - generic field map form of a model value
//
// leaf values are either the model's own types (from Encode) or the
// generic values produced by a JSON decoder using json.Number
type Fields map[string]interface{}

// field names
const (
	uidField             = "uid"
	assetField           = "asset"
	inputsField          = "inputs"
	outputsField         = "outputs"
	inputSignaturesField = "inputSignatures"
	accountIndexField    = "accountIndex"
	addressIndexField    = "addressIndex"
	chainTypeField       = "chainType"
	txHashField          = "txHash"
	indexField           = "index"
	senderField          = "sender"
	derivationField      = "derivation"
	amountField          = "amount"
	receiverField        = "receiver"
	dataField            = "data"
	publicKeyField       = "ecPublicKey"
	signatureField       = "ecSignature"
)

// Encode - field map form of a derivation
func (d *Derivation) Encode() Fields {
	return Fields{
		accountIndexField: d.accountIndex,
		addressIndexField: d.addressIndex,
		chainTypeField:    d.chainType,
	}
}

// Encode - field map form of an input
func (input *Input) Encode() Fields {
	return Fields{
		uidField:        input.uid,
		txHashField:     input.txHash,
		indexField:      input.index,
		senderField:     input.sender,
		derivationField: input.derivation.Encode(),
		amountField:     input.amount,
	}
}

// Encode - field map form of an output
//
// the payload variant is implied by the fields present
func (output *Output) Encode() Fields {
	fields := Fields{
		uidField: output.uid,
	}
	switch payload := output.payload.(type) {
	case *Spendable:
		fields[receiverField] = payload.receiver
		fields[amountField] = payload.amount
		if nil != payload.derivation {
			fields[derivationField] = payload.derivation.Encode()
		}
	case *Data:
		fields[dataField] = Blob(payload.Bytes())
	}
	return fields
}

// Encode - field map form of an input signature
func (s *InputSignature) Encode() Fields {
	return Fields{
		uidField:       s.uid,
		publicKeyField: s.PublicKey(),
		signatureField: s.Signature(),
	}
}

// Encode - field map form of a transaction
//
// absent asset and empty lists are omitted
func (tx *Transaction) Encode() Fields {
	fields := Fields{
		uidField: tx.uid,
	}
	if nil != tx.asset {
		fields[assetField] = Fields(tx.asset.Encode())
	}
	if 0 != len(tx.inputs) {
		list := make([]Fields, len(tx.inputs))
		for i, input := range tx.inputs {
			list[i] = input.Encode()
		}
		fields[inputsField] = list
	}
	if 0 != len(tx.outputs) {
		list := make([]Fields, len(tx.outputs))
		for i, output := range tx.outputs {
			list[i] = output.Encode()
		}
		fields[outputsField] = list
	}
	if 0 != len(tx.inputSignatures) {
		list := make([]Fields, len(tx.inputSignatures))
		for i, s := range tx.inputSignatures {
			list[i] = s.Encode()
		}
		fields[inputSignaturesField] = list
	}
	return fields
}

// DecodeDerivation - create a derivation from its field map form
func DecodeDerivation(fields Fields) (*Derivation, error) {
	return decodeDerivation(fields, derivationContext)
}

// DecodeInput - create an input from its field map form
func DecodeInput(fields Fields) (*Input, error) {
	return decodeInput(fields, inputContext)
}

// DecodeOutput - create an output from its field map form
//
// a positive amount selects a spendable output, otherwise the output
// holds data
func DecodeOutput(fields Fields) (*Output, error) {
	return decodeOutput(fields, outputContext)
}

// DecodeInputSignature - create an input signature from its field map form
func DecodeInputSignature(fields Fields) (*InputSignature, error) {
	return decodeInputSignature(fields, inputSignatureContext)
}

// DecodeTransaction - create a transaction from its field map form
func DecodeTransaction(fields Fields) (*Transaction, error) {
	return decodeTransaction(fields, transactionContext)
}

func decodeDerivation(value interface{}, context string) (*Derivation, error) {
	fields, err := asFields(value, context)
	if nil != err {
		return nil, err
	}

	var accountIndex int64
	var addressIndex int64
	var chainType chain.Type
	if err := required(fields, accountIndexField, context, &accountIndex); nil != err {
		return nil, err
	}
	if err := required(fields, addressIndexField, context, &addressIndex); nil != err {
		return nil, err
	}
	if err := required(fields, chainTypeField, context, &chainType); nil != err {
		return nil, err
	}
	return newDerivation(context, accountIndex, addressIndex, chainType)
}

func decodeInput(value interface{}, context string) (*Input, error) {
	fields, err := asFields(value, context)
	if nil != err {
		return nil, err
	}

	var uid uuid.UUID
	var txHash string
	var index int64
	var sender account.Address
	var amount fragments.Fragments
	if err := required(fields, uidField, context, &uid); nil != err {
		return nil, err
	}
	if err := required(fields, txHashField, context, &txHash); nil != err {
		return nil, err
	}
	if err := required(fields, indexField, context, &index); nil != err {
		return nil, err
	}
	if err := required(fields, senderField, context, &sender); nil != err {
		return nil, err
	}
	if err := required(fields, amountField, context, &amount); nil != err {
		return nil, err
	}

	derivationPath := validation.Field(context, derivationField)
	if nil == fields[derivationField] {
		return nil, fault.DecodeShape(derivationPath, "missing")
	}
	derivation, err := decodeDerivation(fields[derivationField], derivationPath)
	if nil != err {
		return nil, err
	}
	return newInput(context, uid, txHash, index, sender, derivation, amount)
}

func decodeOutput(value interface{}, context string) (*Output, error) {
	fields, err := asFields(value, context)
	if nil != err {
		return nil, err
	}

	var uid uuid.UUID
	if err := required(fields, uidField, context, &uid); nil != err {
		return nil, err
	}

	var amount fragments.Fragments
	if _, err := optional(fields, amountField, context, &amount); nil != err {
		return nil, err
	}

	if !amount.IsPositive() {
		var data Blob
		if err := required(fields, dataField, context, &data); nil != err {
			return nil, err
		}
		return newDataOutput(context, uid, data)
	}

	var receiver account.Address
	if err := required(fields, receiverField, context, &receiver); nil != err {
		return nil, err
	}

	var derivation *Derivation
	if nil != fields[derivationField] {
		derivation, err = decodeDerivation(fields[derivationField], validation.Field(context, derivationField))
		if nil != err {
			return nil, err
		}
	}
	return newSpendableOutput(context, uid, receiver, amount, derivation)
}

func decodeInputSignature(value interface{}, context string) (*InputSignature, error) {
	fields, err := asFields(value, context)
	if nil != err {
		return nil, err
	}

	var uid uuid.UUID
	var publicKey account.PublicKey
	var signature account.Signature
	if err := required(fields, uidField, context, &uid); nil != err {
		return nil, err
	}
	if err := required(fields, publicKeyField, context, &publicKey); nil != err {
		return nil, err
	}
	if err := required(fields, signatureField, context, &signature); nil != err {
		return nil, err
	}
	return newInputSignature(context, uid, publicKey, signature)
}

func decodeTransaction(value interface{}, context string) (*Transaction, error) {
	fields, err := asFields(value, context)
	if nil != err {
		return nil, err
	}

	var uid uuid.UUID
	if err := required(fields, uidField, context, &uid); nil != err {
		return nil, err
	}

	var descriptor *asset.Descriptor
	if nil != fields[assetField] {
		assetContext := validation.Field(context, assetField)
		descriptor, err = asset.Decode(fields[assetField], assetContext)
		if nil != err {
			return nil, err
		}
		if err := descriptor.Check(assetContext); nil != err {
			return nil, err
		}
	}

	inputList, err := asList(fields[inputsField], validation.Field(context, inputsField))
	if nil != err {
		return nil, err
	}
	inputs := make([]*Input, len(inputList))
	for i, item := range inputList {
		inputs[i], err = decodeInput(item, validation.Element(context, inputsField, i))
		if nil != err {
			return nil, err
		}
	}

	outputList, err := asList(fields[outputsField], validation.Field(context, outputsField))
	if nil != err {
		return nil, err
	}
	outputs := make([]*Output, len(outputList))
	for i, item := range outputList {
		outputs[i], err = decodeOutput(item, validation.Element(context, outputsField, i))
		if nil != err {
			return nil, err
		}
	}

	signatureList, err := asList(fields[inputSignaturesField], validation.Field(context, inputSignaturesField))
	if nil != err {
		return nil, err
	}
	inputSignatures := make([]*InputSignature, len(signatureList))
	for i, item := range signatureList {
		inputSignatures[i], err = decodeInputSignature(item, validation.Element(context, inputSignaturesField, i))
		if nil != err {
			return nil, err
		}
	}

	return newTransaction(context, uid, descriptor, inputs, outputs, inputSignatures)
}

// accept both Encode output and generic JSON objects
func asFields(value interface{}, context string) (Fields, error) {
	switch v := value.(type) {
	case Fields:
		return v, nil
	case map[string]interface{}:
		return Fields(v), nil
	case nil:
		return nil, fault.DecodeShape(context, "missing")
	default:
		return nil, fault.DecodeShape(context, "not an object")
	}
}

// nil is an empty list
func asList(value interface{}, context string) ([]interface{}, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return v, nil
	case []Fields:
		list := make([]interface{}, len(v))
		for i, item := range v {
			list[i] = item
		}
		return list, nil
	case []map[string]interface{}:
		list := make([]interface{}, len(v))
		for i, item := range v {
			list[i] = item
		}
		return list, nil
	default:
		return nil, fault.DecodeShape(context, "not a list")
	}
}

// decode a field that must be present and not null
func required(fields Fields, name string, context string, target interface{}) error {
	present, err := optional(fields, name, context, target)
	if nil != err {
		return err
	}
	if !present {
		return fault.DecodeShape(validation.Field(context, name), "missing")
	}
	return nil
}

// decode a field if present and not null
func optional(fields Fields, name string, context string, target interface{}) (bool, error) {
	value := fields[name]
	if nil == value {
		return false, nil
	}
	if err := util.DecodeField(value, target); nil != err {
		return false, fault.DecodeShape(validation.Field(context, name), err.Error())
	}
	return true, nil
}
