// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/airgap/chain"
	"github.com/bitmark-inc/airgap/fault"
)

func TestFromString(t *testing.T) {
	items := []struct {
		in       string
		expected chain.Type
	}{
		{"external", chain.External},
		{"External", chain.External},
		{"receive", chain.External},
		{"0", chain.External},
		{"internal", chain.Internal},
		{"CHANGE", chain.Internal},
		{"1", chain.Internal},
	}

	for i, item := range items {
		c, err := chain.FromString(item.in)
		if nil != err {
			t.Errorf("%d: %q  error: %s", i, item.in, err)
			continue
		}
		if item.expected != c {
			t.Errorf("%d: %q  actual: %#v  expected: %#v", i, item.in, c, item.expected)
		}
	}

	for i, in := range []string{"", "2", "external ", "savings"} {
		_, err := chain.FromString(in)
		if fault.ErrInvalidChainType != err {
			t.Errorf("%d: %q  expected ErrInvalidChainType but got: %v", i, in, err)
		}
	}
}

func TestFromUint64(t *testing.T) {
	if c, err := chain.FromUint64(1); nil != err || chain.Internal != c {
		t.Errorf("code 1: %#v  error: %v", c, err)
	}
	if _, err := chain.FromUint64(2); fault.ErrInvalidChainType != err {
		t.Errorf("code 2: expected ErrInvalidChainType but got: %v", err)
	}
}

func TestJSON(t *testing.T) {
	item := struct {
		Chain chain.Type `json:"chainType"`
	}{
		Chain: chain.Internal,
	}
	b, err := json.Marshal(item)
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	if `{"chainType":"internal"}` != string(b) {
		t.Errorf("JSON converted: %s", b)
	}

	item.Chain = chain.External
	err = json.Unmarshal(b, &item)
	if nil != err {
		t.Fatalf("unmarshal json error: %s", err)
	}
	if chain.Internal != item.Chain {
		t.Errorf("chain: %#v  expected: %#v", item.Chain, chain.Internal)
	}

	_, err = json.Marshal(struct{ C chain.Type }{chain.Type(7)})
	if nil == err {
		t.Error("unexpected success marshalling an invalid chain type")
	}
}
