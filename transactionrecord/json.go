// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bitmark-inc/airgap/fault"
)

// FromJSON - create a transaction from its JSON form
func FromJSON(data []byte) (*Transaction, error) {
	fields, err := jsonFields(data, transactionContext)
	if nil != err {
		return nil, err
	}
	return DecodeTransaction(fields)
}

// JSON - compact JSON form of a transaction
func (tx *Transaction) JSON() ([]byte, error) {
	return tx.MarshalJSON()
}

// MarshalJSON - convert a transaction to JSON
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.Encode())
}

// UnmarshalJSON - convert JSON to a transaction
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data, transactionContext)
	if nil != err {
		return err
	}
	decoded, err := DecodeTransaction(fields)
	if nil != err {
		return err
	}
	*tx = *decoded
	return nil
}

// MarshalJSON - convert an input to JSON
func (input *Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(input.Encode())
}

// UnmarshalJSON - convert JSON to an input
func (input *Input) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data, inputContext)
	if nil != err {
		return err
	}
	decoded, err := DecodeInput(fields)
	if nil != err {
		return err
	}
	*input = *decoded
	return nil
}

// MarshalJSON - convert an output to JSON
func (output *Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(output.Encode())
}

// UnmarshalJSON - convert JSON to an output
func (output *Output) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data, outputContext)
	if nil != err {
		return err
	}
	decoded, err := DecodeOutput(fields)
	if nil != err {
		return err
	}
	*output = *decoded
	return nil
}

// MarshalJSON - convert a derivation to JSON
func (d *Derivation) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Encode())
}

// UnmarshalJSON - convert JSON to a derivation
func (d *Derivation) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data, derivationContext)
	if nil != err {
		return err
	}
	decoded, err := DecodeDerivation(fields)
	if nil != err {
		return err
	}
	*d = *decoded
	return nil
}

// MarshalJSON - convert an input signature to JSON
func (s *InputSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Encode())
}

// UnmarshalJSON - convert JSON to an input signature
func (s *InputSignature) UnmarshalJSON(data []byte) error {
	fields, err := jsonFields(data, inputSignatureContext)
	if nil != err {
		return err
	}
	decoded, err := DecodeInputSignature(fields)
	if nil != err {
		return err
	}
	*s = *decoded
	return nil
}

// numbers are kept as json.Number so integers never pass through float64
func jsonFields(data []byte, context string) (Fields, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); nil != err {
		return nil, fault.DecodeShape(context, err.Error())
	}
	// only white space may follow the value
	var extra interface{}
	if err := decoder.Decode(&extra); io.EOF != err {
		return nil, fault.DecodeShape(context, "trailing data")
	}
	return asFields(value, context)
}
