// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fragments - monetary amounts in the smallest unit
package fragments

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/airgap/fault"
)

// Fragments - a quantity of the smallest currency unit
//
// signed so that a negative amount read from an encoded transaction
// reaches validation and is rejected there
type Fragments int64

// FromString - convert decimal text to a fragments value
func FromString(s string) (Fragments, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, fault.ErrInvalidFragments
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidFragments
	}
	return Fragments(n), nil
}

// IsPositive - amount > 0
func (f Fragments) IsPositive() bool {
	return f > 0
}

// Int64 - numeric value
func (f Fragments) Int64() int64 {
	return int64(f)
}

// String - decimal text
func (f Fragments) String() string {
	return strconv.FormatInt(int64(f), 10)
}

// GoString - for debugging
func (f Fragments) GoString() string {
	return "<fragments:" + f.String() + ">"
}

// MarshalText - JSON as a decimal string so no precision is lost
func (f Fragments) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText - convert decimal text from JSON
func (f *Fragments) UnmarshalText(s []byte) error {
	n, err := FromString(string(s))
	if nil != err {
		return err
	}
	*f = n
	return nil
}
