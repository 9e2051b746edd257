// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/airgap/account"
	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fragments"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

var (
	transactionUID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	inputUID       = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	spendableUID   = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	changeUID      = uuid.MustParse("6ba7b813-9dad-11d1-80b4-00c04fd430c8")
	dataUID        = uuid.MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
	signatureUID   = uuid.MustParse("6ba7b815-9dad-11d1-80b4-00c04fd430c8")

	senderAddress   = account.Address("addr1qx2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3")
	receiverAddress = account.Address("addr1q9ld5wlkhxd5vu2dl7vdm4nkrzc4jtwd2nz0yph33dlhxa")
	changeAddress   = account.Address("addr1qxk0r9tqh3uqp9n8dwrw8yjv5jfk8cq4lj9y0xk0ctz7ms")

	previousTxHash = "9f2c5b7e0d1a4c3b8e6f7a2d5c1b0e9f8a7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b"

	testAsset = &asset.Descriptor{
		Identifier: asset.NewIdentifier([]byte("Bitmark Test Asset")),
		Name:       "Test Asset",
	}
)

// a real secp256k1 key and DER endorsement over the previous hash
func makeEndorsement(t *testing.T) (account.PublicKey, account.Signature) {
	seed := sha3.Sum256([]byte("air gap test key"))
	privateKey, publicKey := btcec.PrivKeyFromBytes(seed[:])
	hash := sha3.Sum256([]byte(previousTxHash))
	signature := ecdsa.Sign(privateKey, hash[:])
	if !signature.Verify(hash[:], publicKey) {
		t.Fatal("fixture signature does not verify")
	}
	return account.PublicKey(publicKey.SerializeCompressed()), account.Signature(signature.Serialize())
}

func makeDerivation(t *testing.T, accountIndex int64, addressIndex int64, chainType chain.Type) *transactionrecord.Derivation {
	d, err := transactionrecord.NewDerivation(accountIndex, addressIndex, chainType)
	if nil != err {
		t.Fatalf("new derivation error: %s", err)
	}
	return d
}

func makeInput(t *testing.T) *transactionrecord.Input {
	input, err := transactionrecord.NewInput(
		inputUID,
		previousTxHash,
		1,
		senderAddress,
		makeDerivation(t, 0, 7, chain.External),
		fragments.Fragments(1500000),
	)
	if nil != err {
		t.Fatalf("new input error: %s", err)
	}
	return input
}

func makeSpendable(t *testing.T, withDerivation bool) *transactionrecord.Output {
	uid := spendableUID
	receiver := receiverAddress
	amount := fragments.Fragments(1000000)
	var derivation *transactionrecord.Derivation
	if withDerivation {
		uid = changeUID
		receiver = changeAddress
		amount = fragments.Fragments(499000)
		derivation = makeDerivation(t, 0, 3, chain.Internal)
	}
	output, err := transactionrecord.NewSpendableOutput(uid, receiver, amount, derivation)
	if nil != err {
		t.Fatalf("new spendable output error: %s", err)
	}
	return output
}

func makeData(t *testing.T) *transactionrecord.Output {
	output, err := transactionrecord.NewDataOutput(dataUID, []byte("invoice 2020-0042"))
	if nil != err {
		t.Fatalf("new data output error: %s", err)
	}
	return output
}

func makeInputSignature(t *testing.T) *transactionrecord.InputSignature {
	publicKey, signature := makeEndorsement(t)
	s, err := transactionrecord.NewInputSignature(signatureUID, publicKey, signature)
	if nil != err {
		t.Fatalf("new input signature error: %s", err)
	}
	return s
}

// every combination of optional parts
func makeTransactions(t *testing.T) []*transactionrecord.Transaction {
	type parts struct {
		asset      *asset.Descriptor
		inputs     []*transactionrecord.Input
		outputs    []*transactionrecord.Output
		signatures []*transactionrecord.InputSignature
	}
	input := makeInput(t)
	spendable := makeSpendable(t, false)
	change := makeSpendable(t, true)
	data := makeData(t)
	signature := makeInputSignature(t)

	items := []parts{
		{},
		{asset: testAsset},
		{inputs: []*transactionrecord.Input{input}},
		{outputs: []*transactionrecord.Output{spendable}},
		{outputs: []*transactionrecord.Output{data}},
		{outputs: []*transactionrecord.Output{change, data}},
		{inputs: []*transactionrecord.Input{input}, outputs: []*transactionrecord.Output{spendable, change}},
		{
			asset:      testAsset,
			inputs:     []*transactionrecord.Input{input, input},
			outputs:    []*transactionrecord.Output{spendable, change, data},
			signatures: []*transactionrecord.InputSignature{signature},
		},
		{signatures: []*transactionrecord.InputSignature{signature, signature}},
	}

	result := make([]*transactionrecord.Transaction, len(items))
	for i, item := range items {
		tx, err := transactionrecord.NewTransaction(transactionUID, item.asset, item.inputs, item.outputs, item.signatures)
		if nil != err {
			t.Fatalf("%d: new transaction error: %s", i, err)
		}
		result[i] = tx
	}
	return result
}
