// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

func runUnpack(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	text := c.String("packed")
	fileName := c.String("file")

	var tx *transactionrecord.Transaction
	var err error
	switch {
	case "" != text && "" != fileName:
		return fmt.Errorf("only one of --packed or --file is allowed")
	case "" != text:
		tx, err = transactionrecord.Parse([]byte(text))
	case "" != fileName:
		tx, err = readTransaction(m, fileName)
	default:
		return fault.ErrRequiredPacked
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "unpacked transaction: %s\n", tx.UID())
	}
	return writeResult(m, tx)
}
