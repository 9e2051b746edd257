// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

// Address - a payment address in the format of the target chain
type Address string

// IsEmpty - true if no address is present
func (address Address) IsEmpty() bool {
	return "" == address
}

// String - the address as text
func (address Address) String() string {
	return string(address)
}

// GoString - for debugging (for %#v)
func (address Address) GoString() string {
	return "<address:" + string(address) + ">"
}

// Len - length in bytes, so validation can treat it as any other string
func (address Address) Len() int {
	return len(address)
}

// MarshalText - convert address to text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address), nil
}

// UnmarshalText - convert text into an address
func (address *Address) UnmarshalText(s []byte) error {
	*address = Address(s)
	return nil
}
