// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/bitmark-inc/airgap/digest"
	"github.com/bitmark-inc/airgap/fault"
)

// SHA3-256("")
const emptyDigest = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

func TestNewDigest(t *testing.T) {
	d := digest.NewDigest([]byte{})
	if emptyDigest != d.String() {
		t.Errorf("digest: %s  expected: %s", d, emptyDigest)
	}
	if fmt.Sprintf("%#v", d) != "<SHA3-256:"+emptyDigest+">" {
		t.Errorf("digest(%%#v): %#v", d)
	}
	if d.IsZero() {
		t.Error("digest is zero")
	}
	if !(digest.Digest{}).IsZero() {
		t.Error("zero digest is not zero")
	}
}

func TestScanAndJSON(t *testing.T) {
	var d digest.Digest
	n, err := fmt.Sscan(emptyDigest, &d)
	if nil != err {
		t.Fatalf("hex to digest error: %s", err)
	}
	if 1 != n {
		t.Fatalf("hex to digest scanned: %d  expected: 1", n)
	}
	if digest.NewDigest(nil) != d {
		t.Errorf("digest: %#v  expected: %#v", d, digest.NewDigest(nil))
	}

	b, err := json.Marshal(struct{ D digest.Digest }{d})
	if nil != err {
		t.Fatalf("marshal json error: %s", err)
	}
	expected := `{"D":"` + emptyDigest + `"}`
	if expected != string(b) {
		t.Errorf("JSON converted: %s  expected: %s", b, expected)
	}

	invalid := []string{
		"",
		"a7ff",
		emptyDigest + "00",
		"x7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
	}
	for i, s := range invalid {
		var item digest.Digest
		err := item.UnmarshalText([]byte(s))
		if fault.ErrNotDigest != err {
			t.Errorf("%d: %q  expected ErrNotDigest but got: %v", i, s, err)
		}
	}
}

func TestFromBytes(t *testing.T) {
	var d digest.Digest
	if err := digest.FromBytes(&d, make([]byte, 31)); fault.ErrNotDigest != err {
		t.Errorf("expected ErrNotDigest but got: %v", err)
	}
	buffer := make([]byte, digest.Length)
	buffer[0] = 0x5a
	if err := digest.FromBytes(&d, buffer); nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if 0x5a != d[0] {
		t.Errorf("first byte: %02x  expected: 5a", d[0])
	}
}
