// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/airgap/digest"
	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

// reports the outcome of each inbox file to the operator
//
// only called from the inbox goroutine, counters are read after it stops
type reportHandler struct {
	log      *logger.L
	w        io.Writer
	accepted int
	rejected int
}

func (h *reportHandler) Accepted(name string, tx *transactionrecord.Transaction, fingerprint digest.Digest) {
	h.accepted += 1
	h.log.Debugf("report accepted: %q", name)
	if nil != h.w {
		fmt.Fprintf(h.w, "accepted: %s  uid: %s  digest: %s\n", name, tx.UID(), fingerprint)
	}
}

func (h *reportHandler) Rejected(name string, err error) {
	h.rejected += 1
	h.log.Debugf("report rejected: %q", name)
	if nil == h.w {
		return
	}
	if context := fault.ContextOf(err); "" != context {
		fmt.Fprintf(h.w, "rejected: %s  field: %s  error: %s\n", name, context, err)
		return
	}
	fmt.Fprintf(h.w, "rejected: %s  error: %s\n", name, err)
}

func (h *reportHandler) summary() string {
	return fmt.Sprintf("accepted: %d  rejected: %d", h.accepted, h.rejected)
}
