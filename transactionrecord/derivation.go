// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/validation"
)

// Derivation - location of a key in a hierarchical wallet
type Derivation struct {
	accountIndex int64
	addressIndex int64
	chainType    chain.Type
}

// NewDerivation - create a validated derivation
func NewDerivation(accountIndex int64, addressIndex int64, chainType chain.Type) (*Derivation, error) {
	return newDerivation(derivationContext, accountIndex, addressIndex, chainType)
}

func newDerivation(context string, accountIndex int64, addressIndex int64, chainType chain.Type) (*Derivation, error) {
	d := &Derivation{
		accountIndex: accountIndex,
		addressIndex: addressIndex,
		chainType:    chainType,
	}
	if err := d.check(context); nil != err {
		return nil, err
	}
	return d, nil
}

// AccountIndex - the account level index
func (d *Derivation) AccountIndex() int64 {
	return d.accountIndex
}

// AddressIndex - the address level index
func (d *Derivation) AddressIndex() int64 {
	return d.addressIndex
}

// ChainType - external (receive) or internal (change) chain
func (d *Derivation) ChainType() chain.Type {
	return d.chainType
}

func (d *Derivation) check(context string) error {
	err := validation.CheckNotNegative(d.accountIndex, validation.Field(context, accountIndexField))
	if nil != err {
		return err
	}
	err = validation.CheckNotNegative(d.addressIndex, validation.Field(context, addressIndexField))
	if nil != err {
		return err
	}
	if !d.chainType.IsValid() {
		return fault.InvalidRange(validation.Field(context, chainTypeField))
	}
	return nil
}
