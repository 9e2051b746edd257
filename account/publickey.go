// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"
)

// PublicKey - the type for an EC public key
type PublicKey []byte

// String - convert a binary publicKey to hex string for use by the fmt package (for %s)
func (publicKey PublicKey) String() string {
	return hex.EncodeToString(publicKey)
}

// GoString - convert a binary publicKey to hex string for use by the fmt package (for %#v)
func (publicKey PublicKey) GoString() string {
	return "<public-key:" + hex.EncodeToString(publicKey) + ">"
}

// Scan - convert a text representation to a publicKey for use by the format package scan routines
func (publicKey *PublicKey) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexDigit)
	if nil != err {
		return err
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	*publicKey = buffer[:byteCount]
	return nil
}

// MarshalText - convert publicKey to text
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(publicKey))
	b := make([]byte, size)
	hex.Encode(b, publicKey)
	return b, nil
}

// UnmarshalText - convert text into a publicKey
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*publicKey = buffer[:byteCount]
	return nil
}
