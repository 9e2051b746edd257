// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validation

import (
	"reflect"
	"strconv"

	"github.com/bitmark-inc/airgap/fault"
)

// Range - inclusive bounds for a length or count
type Range struct {
	Minimum int
	Maximum int
}

// Contains - true if value is within the inclusive bounds
func (r Range) Contains(value int) bool {
	return value >= r.Minimum && value <= r.Maximum
}

// anything that can report its own length
type lengther interface {
	Len() int
}

// CheckNotEmpty - fail with EmptyValue for an empty string, byte
// slice, slice, map or any value with a Len method
//
// a nil value is empty
func CheckNotEmpty(value interface{}, context string) error {
	if 0 == length(value) {
		return fault.EmptyValue(context)
	}
	return nil
}

// CheckNotNegative - fail with InvalidRange if value < 0
func CheckNotNegative(value int64, context string) error {
	if value < 0 {
		return fault.InvalidRange(context)
	}
	return nil
}

// CheckPositive - fail with InvalidRange if value <= 0
func CheckPositive(value int64, context string) error {
	if value <= 0 {
		return fault.InvalidRange(context)
	}
	return nil
}

// CheckRange - fail with InvalidRange if value is outside bounds
func CheckRange(value int, bounds Range, context string) error {
	if !bounds.Contains(value) {
		return fault.InvalidRange(context)
	}
	return nil
}

// Field - path of a named field below context
func Field(context string, name string) string {
	if "" == context {
		return name
	}
	return context + "." + name
}

// Element - path of an element of a list field below context
func Element(context string, name string, index int) string {
	return Field(context, name) + "[" + strconv.Itoa(index) + "]"
}

func length(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		return len(v)
	case []byte:
		return len(v)
	case lengther:
		return v.Len()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len()
	case reflect.Ptr:
		if rv.IsNil() {
			return 0
		}
		return length(rv.Elem().Interface())
	}
	return 1
}
