// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
)

// Blob - bytes with a hex text form
type Blob []byte

// String - hex form for the fmt package (for %s)
func (b Blob) String() string {
	return hex.EncodeToString(b)
}

// GoString - hex form for the fmt package (for %#v)
func (b Blob) GoString() string {
	return "<blob:" + hex.EncodeToString(b) + ">"
}

// MarshalText - convert to hex text
func (b Blob) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer, nil
}

// UnmarshalText - convert hex text to bytes
func (b *Blob) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}
