// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/airgap/fault"
)

// IdentifierLength - number of bytes in an asset identifier
const IdentifierLength = 32

// Identifier - the type for an asset identifier
// to get bytes value just use id[:]
type Identifier [IdentifierLength]byte

// NewIdentifier - create an asset identifier from a fingerprint
//
// SHA3-256 Hash
func NewIdentifier(fingerprint []byte) Identifier {
	return Identifier(sha3.Sum256(fingerprint))
}

// IdentifierFromBytes - convert and validate a binary byte slice to an identifier
func IdentifierFromBytes(id *Identifier, buffer []byte) error {
	if IdentifierLength != len(buffer) {
		return fault.ErrNotAssetIdentifier
	}
	copy(id[:], buffer)
	return nil
}

// IsZero - true if no identifier has been set
func (id Identifier) IsZero() bool {
	return Identifier{} == id
}

// String - hex form for the fmt package (for %s)
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - hex form for the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<asset:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - convert a hex representation to an identifier for use by the format package scan routines
func (id *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
	})
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(IdentifierLength))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(IdentifierLength) {
		return fault.ErrNotAssetIdentifier
	}
	buffer := make([]byte, IdentifierLength)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrNotAssetIdentifier
	}
	copy(id[:], buffer)
	return nil
}
