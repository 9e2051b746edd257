// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/validation"
)

// InputSignature - endorsement of an input by the offline signer
type InputSignature struct {
	uid       uuid.UUID
	publicKey account.PublicKey
	signature account.Signature
}

// NewInputSignature - create a validated input signature
//
// the key and signature are carried as opaque blobs, they are not
// verified here
func NewInputSignature(uid uuid.UUID, publicKey account.PublicKey, signature account.Signature) (*InputSignature, error) {
	return newInputSignature(inputSignatureContext, uid, publicKey, signature)
}

func newInputSignature(context string, uid uuid.UUID, publicKey account.PublicKey, signature account.Signature) (*InputSignature, error) {
	s := &InputSignature{
		uid:       uid,
		publicKey: append(account.PublicKey(nil), publicKey...),
		signature: append(account.Signature(nil), signature...),
	}
	if err := s.check(context); nil != err {
		return nil, err
	}
	return s, nil
}

// UID - caller supplied identifier
func (s *InputSignature) UID() uuid.UUID {
	return s.uid
}

// PublicKey - a copy of the signer's public key
func (s *InputSignature) PublicKey() account.PublicKey {
	return append(account.PublicKey(nil), s.publicKey...)
}

// Signature - a copy of the signature
func (s *InputSignature) Signature() account.Signature {
	return append(account.Signature(nil), s.signature...)
}

func (s *InputSignature) check(context string) error {
	if err := validation.CheckNotEmpty(s.publicKey, validation.Field(context, publicKeyField)); nil != err {
		return err
	}
	return validation.CheckNotEmpty(s.signature, validation.Field(context, signatureField))
}
