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

// OutputKind - which payload an output carries
type OutputKind int

// the possible payloads
const (
	SpendableKind OutputKind = iota
	DataKind
)

// String - name of the kind
func (kind OutputKind) String() string {
	switch kind {
	case SpendableKind:
		return "spendable"
	case DataKind:
		return "data"
	default:
		return "unknown"
	}
}

// byte sizes of a data payload
const (
	minDataLength = 1
	maxDataLength = 80
)

// Payload - the body of an output
//
// only *Spendable and *Data implement this
type Payload interface {
	Kind() OutputKind
	check(context string) error
}

// Spendable - value sent to a receiver
type Spendable struct {
	receiver   account.Address
	amount     fragments.Fragments
	derivation *Derivation
}

// Data - arbitrary bytes embedded in the transaction
type Data struct {
	data []byte
}

// Output - one output of a transaction
type Output struct {
	uid     uuid.UUID
	payload Payload
}

// NewSpendableOutput - create an output paying amount to receiver
//
// derivation is optional and is given when the receiver belongs to
// the signing wallet (e.g. change)
func NewSpendableOutput(uid uuid.UUID, receiver account.Address, amount fragments.Fragments, derivation *Derivation) (*Output, error) {
	return newSpendableOutput(outputContext, uid, receiver, amount, derivation)
}

func newSpendableOutput(context string, uid uuid.UUID, receiver account.Address, amount fragments.Fragments, derivation *Derivation) (*Output, error) {
	return newOutput(context, uid, &Spendable{
		receiver:   receiver,
		amount:     amount,
		derivation: derivation,
	})
}

// NewDataOutput - create an output carrying 1 to 80 bytes of data
func NewDataOutput(uid uuid.UUID, data []byte) (*Output, error) {
	return newDataOutput(outputContext, uid, data)
}

func newDataOutput(context string, uid uuid.UUID, data []byte) (*Output, error) {
	return newOutput(context, uid, &Data{
		data: append([]byte(nil), data...),
	})
}

func newOutput(context string, uid uuid.UUID, payload Payload) (*Output, error) {
	output := &Output{
		uid:     uid,
		payload: payload,
	}
	if err := output.check(context); nil != err {
		return nil, err
	}
	return output, nil
}

// UID - caller supplied identifier
func (output *Output) UID() uuid.UUID {
	return output.uid
}

// Kind - which payload is present
func (output *Output) Kind() OutputKind {
	return output.payload.Kind()
}

// Payload - the payload, use a type switch or Kind to distinguish
func (output *Output) Payload() Payload {
	return output.payload
}

// Spendable - the spendable payload if present
func (output *Output) Spendable() (*Spendable, bool) {
	s, ok := output.payload.(*Spendable)
	return s, ok
}

// Data - the data payload if present
func (output *Output) Data() (*Data, bool) {
	d, ok := output.payload.(*Data)
	return d, ok
}

func (output *Output) check(context string) error {
	if nil == output.payload {
		return fault.EmptyValue(context)
	}
	return output.payload.check(context)
}

// Kind - SpendableKind
func (s *Spendable) Kind() OutputKind {
	return SpendableKind
}

// Receiver - destination address
func (s *Spendable) Receiver() account.Address {
	return s.receiver
}

// Amount - value sent
func (s *Spendable) Amount() fragments.Fragments {
	return s.amount
}

// Derivation - key location of the receiver, nil if not known
func (s *Spendable) Derivation() *Derivation {
	return s.derivation
}

func (s *Spendable) check(context string) error {
	if nil != s.derivation {
		if err := s.derivation.check(validation.Field(context, derivationField)); nil != err {
			return err
		}
	}
	if err := validation.CheckNotEmpty(s.receiver, validation.Field(context, receiverField)); nil != err {
		return err
	}
	return validation.CheckPositive(s.amount.Int64(), validation.Field(context, amountField))
}

// Kind - DataKind
func (d *Data) Kind() OutputKind {
	return DataKind
}

// Bytes - a copy of the data
func (d *Data) Bytes() []byte {
	return append([]byte(nil), d.data...)
}

func (d *Data) check(context string) error {
	return validation.CheckRange(
		len(d.data),
		validation.Range{Minimum: minDataLength, Maximum: maxDataLength},
		validation.Field(context, dataField),
	)
}
