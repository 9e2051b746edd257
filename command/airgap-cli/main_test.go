// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

func makeTransaction(t *testing.T) *transactionrecord.Transaction {
	derivation, err := transactionrecord.NewDerivation(0, 4, chain.External)
	if nil != err {
		t.Fatalf("new derivation error: %s", err)
	}
	input, err := transactionrecord.NewInput(uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301"), "0a1b2c", 0, "addrA", derivation, 900)
	if nil != err {
		t.Fatalf("new input error: %s", err)
	}
	output, err := transactionrecord.NewSpendableOutput(uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3302"), "addrB", 800, nil)
	if nil != err {
		t.Fatalf("new output error: %s", err)
	}
	descriptor := &asset.Descriptor{
		Identifier: asset.NewIdentifier([]byte("cli test")),
		Name:       "CLI <test>",
	}
	tx, err := transactionrecord.NewTransaction(uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3300"), descriptor, []*transactionrecord.Input{input}, []*transactionrecord.Output{output}, nil)
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	return tx
}

func run(t *testing.T, args ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"airgap-cli"}, args...))
	return w.String(), err
}

func writeTransaction(t *testing.T, tx *transactionrecord.Transaction) string {
	data, err := tx.JSON()
	if nil != err {
		t.Fatalf("json error: %s", err)
	}
	fileName := filepath.Join(t.TempDir(), "tx.json")
	if err := os.WriteFile(fileName, data, 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestValidate(t *testing.T) {
	tx := makeTransaction(t)
	packed, _ := tx.Pack()
	fileName := writeTransaction(t, tx)

	out, err := run(t, "validate", "--file", fileName)
	if nil != err {
		t.Fatalf("validate error: %s", err)
	}

	var result map[string]interface{}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "output json")
	assert.Equal(t, fileName, result["file_name"], "file name")
	assert.Equal(t, tx.UID().String(), result["uid"], "uid")
	assert.Equal(t, float64(1), result["inputs"], "inputs")
	assert.Equal(t, float64(1), result["outputs"], "outputs")
	assert.Equal(t, float64(0), result["inputSignatures"], "signatures")
	assert.Equal(t, packed.Digest().String(), result["digest"], "digest")
	assert.Contains(t, out, `"name": "CLI <test>"`, "asset name printed as given")

	_, err = run(t, "validate")
	assert.Equal(t, fault.ErrRequiredFileName, err, "no file")
}

func TestPackUnpack(t *testing.T) {
	tx := makeTransaction(t)
	packed, _ := tx.Pack()
	fileName := writeTransaction(t, tx)

	out, err := run(t, "pack", "--file", fileName)
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	var result packResult
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "pack output")
	assert.Equal(t, packed.Base58(), result.Packed, "base58")
	assert.Equal(t, "base58", result.Format, "format")
	assert.Equal(t, packed.Digest(), result.Digest, "digest")

	out, err = run(t, "pack", "--hex", "--file", fileName)
	if nil != err {
		t.Fatalf("pack hex error: %s", err)
	}
	err = json.Unmarshal([]byte(out), &result)
	assert.Nil(t, err, "pack hex output")
	hexText, _ := packed.MarshalText()
	assert.Equal(t, string(hexText), result.Packed, "hex")

	out, err = run(t, "unpack", "--packed", packed.Base58())
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	unpacked, err := transactionrecord.FromJSON([]byte(out))
	assert.Nil(t, err, "unpack output")
	assert.Equal(t, tx, unpacked, "unpacked transaction")

	_, err = run(t, "unpack")
	assert.Equal(t, fault.ErrRequiredPacked, err, "nothing to unpack")

	_, err = run(t, "unpack", "--packed", "!!")
	assert.Equal(t, fault.ErrUnknownInputFormat, err, "bad packed text")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "version output")
}
