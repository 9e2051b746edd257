// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// EmptyValueError - a required string, blob or collection was empty
type EmptyValueError struct {
	Context string
}

// InvalidRangeError - a numeric value or a length violated a
// non-negativity, positivity or bounded-length rule
type InvalidRangeError struct {
	Context string
}

// DecodeShapeError - an encoded value lacked a field required by its
// shape, or held a field of the wrong type
type DecodeShapeError struct {
	Context string
	Reason  string
}

// EmptyValue - create an empty value error for a field path
func EmptyValue(context string) error {
	return &EmptyValueError{Context: context}
}

// InvalidRange - create a range error for a field path
func InvalidRange(context string) error {
	return &InvalidRangeError{Context: context}
}

// DecodeShape - create a shape error for a field path
func DecodeShape(context string, reason string) error {
	return &DecodeShapeError{Context: context, Reason: reason}
}

func (e *EmptyValueError) Error() string {
	return "empty value: " + e.Context
}

func (e *InvalidRangeError) Error() string {
	return "invalid range: " + e.Context
}

func (e *DecodeShapeError) Error() string {
	if "" == e.Reason {
		return "decode shape: " + e.Context
	}
	return "decode shape: " + e.Context + ": " + e.Reason
}

// determine the class of a contextual error
func IsErrEmptyValue(e error) bool {
	var target *EmptyValueError
	return errors.As(e, &target)
}

func IsErrInvalidRange(e error) bool {
	var target *InvalidRangeError
	return errors.As(e, &target)
}

func IsErrDecodeShape(e error) bool {
	var target *DecodeShapeError
	return errors.As(e, &target)
}

// ContextOf - the field path carried by a contextual error, or an
// empty string for any other error
func ContextOf(e error) string {
	var empty *EmptyValueError
	if errors.As(e, &empty) {
		return empty.Context
	}
	var invalid *InvalidRangeError
	if errors.As(e, &invalid) {
		return invalid.Context
	}
	var shape *DecodeShapeError
	if errors.As(e, &shape) {
		return shape.Context
	}
	return ""
}
