// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - key derivation chain types
//
// The chain is the third coordinate of a derivation path: external
// keys receive payments, internal keys receive change.
package chain

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/airgap/fault"
)

// Type - chain type enumeration
type Type uint64

// possible chain types, values match the BIP-44 change level
const (
	External     Type = iota // receiving addresses
	Internal     Type = iota // change addresses
	maximumValue Type = iota // this must be the last value
	First        Type = External
	Last         Type = maximumValue - 1
)

// internal conversion
func toString(c Type) (string, error) {
	switch c {
	case External:
		return "external", nil
	case Internal:
		return "internal", nil
	default:
		return "", fault.ErrInvalidChainType
	}
}

// FromString - convert a name or a decimal code to a chain type
func FromString(in string) (Type, error) {
	switch strings.ToLower(in) {
	case "external", "receive", "0":
		return External, nil
	case "internal", "change", "1":
		return Internal, nil
	default:
		return External, fault.ErrInvalidChainType
	}
}

// FromUint64 - convert a code to a chain type
func FromUint64(code uint64) (Type, error) {
	c := Type(code)
	if !c.IsValid() {
		return External, fault.ErrInvalidChainType
	}
	return c, nil
}

// IsValid - chain type is in range First to Last
func (c Type) IsValid() bool {
	return c >= First && c <= Last
}

// Uint64 - the numeric code
func (c Type) Uint64() uint64 {
	return uint64(c)
}

// String - convert a chain type to its name
func (c Type) String() string {
	s, err := toString(c)
	if nil != err {
		return fmt.Sprintf("chain#%d", uint64(c))
	}
	return s
}

// GoString - both value and name, for debugging
func (c Type) GoString() string {
	return fmt.Sprintf("<Chain#%d:%q>", uint64(c), c.String())
}

// MarshalText - convert a chain type to its name for JSON
func (c Type) MarshalText() ([]byte, error) {
	s, err := toString(c)
	if nil != err {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText - convert a name or code to a chain type from JSON
func (c *Type) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*c = parsed
	return nil
}
