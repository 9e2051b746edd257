// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"unicode/utf8"

	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/util"
	"github.com/bitmark-inc/airgap/validation"
)

// limits
const (
	minNameLength = 1
	maxNameLength = 64
)

// field names of the encoded form
const (
	identifierField = "identifier"
	nameField       = "name"
)

// Descriptor - the asset a transaction refers to
type Descriptor struct {
	Identifier Identifier `mapstructure:"identifier" json:"identifier"`
	Name       string     `mapstructure:"name" json:"name"`
}

// Check - validate the descriptor, context is the field path used in errors
func (d *Descriptor) Check(context string) error {
	if d.Identifier.IsZero() {
		return fault.EmptyValue(validation.Field(context, identifierField))
	}
	nameContext := validation.Field(context, nameField)
	if err := validation.CheckNotEmpty(d.Name, nameContext); nil != err {
		return err
	}
	return validation.CheckRange(
		utf8.RuneCountInString(d.Name),
		validation.Range{Minimum: minNameLength, Maximum: maxNameLength},
		nameContext,
	)
}

// Encode - generic field map form of the descriptor
func (d *Descriptor) Encode() map[string]interface{} {
	return map[string]interface{}{
		identifierField: d.Identifier,
		nameField:       d.Name,
	}
}

// Decode - build a descriptor from its field map form
//
// only the shape is checked here, the caller runs Check
func Decode(value interface{}, context string) (*Descriptor, error) {
	fields := map[string]interface{}{}
	if err := util.DecodeField(value, &fields); nil != err {
		return nil, fault.DecodeShape(context, err.Error())
	}

	for _, name := range []string{identifierField, nameField} {
		if nil == fields[name] {
			return nil, fault.DecodeShape(validation.Field(context, name), "missing")
		}
	}

	d := &Descriptor{}
	if err := util.DecodeField(fields[identifierField], &d.Identifier); nil != err {
		return nil, fault.DecodeShape(validation.Field(context, identifierField), err.Error())
	}
	if err := util.DecodeField(fields[nameField], &d.Name); nil != err {
		return nil, fault.DecodeShape(validation.Field(context, nameField), err.Error())
	}
	return d, nil
}
