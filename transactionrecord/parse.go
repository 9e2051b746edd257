// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"

	"github.com/bitmark-inc/airgap/fault"
)

// Parse - create a transaction from any of its text forms
//
// a leading '{' selects JSON, otherwise the text is taken as a hex
// packed record and then as a base58 packed record; the whole of the
// packed record must be consumed
func Parse(data []byte) (*Transaction, error) {
	text := bytes.TrimSpace(data)
	if 0 == len(text) {
		return nil, fault.ErrUnknownInputFormat
	}

	if '{' == text[0] {
		return FromJSON(text)
	}

	var hexErr error
	var packed Packed
	if nil == packed.UnmarshalText(text) {
		tx, err := unpackAll(packed)
		if nil == err {
			return tx, nil
		}
		hexErr = err
	}

	packed, err := PackedFromBase58(string(text))
	if nil == err {
		return unpackAll(packed)
	}
	if nil != hexErr {
		return nil, hexErr
	}
	return nil, fault.ErrUnknownInputFormat
}

func unpackAll(packed Packed) (*Transaction, error) {
	tx, n, err := packed.Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.ErrNotTransactionPack
	}
	return tx, nil
}
