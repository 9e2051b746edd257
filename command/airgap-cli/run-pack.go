// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/airgap/digest"
)

type packResult struct {
	Digest digest.Digest `json:"digest"`
	Format string        `json:"format"`
	Packed string        `json:"packed"`
}

func runPack(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	tx, err := readTransaction(m, fileName)
	if nil != err {
		return err
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}

	result := packResult{
		Digest: packed.Digest(),
		Format: "base58",
		Packed: packed.Base58(),
	}
	if c.Bool("hex") {
		text, err := packed.MarshalText()
		if nil != err {
			return err
		}
		result.Format = "hex"
		result.Packed = string(text)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %d bytes as: %d %s characters\n", len(packed), len(result.Packed), result.Format)
	}
	return writeResult(m, result)
}
