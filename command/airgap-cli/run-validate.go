// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/airgap/asset"
	"github.com/bitmark-inc/airgap/digest"
)

type validateResult struct {
	FileName        string            `json:"file_name"`
	UID             uuid.UUID         `json:"uid"`
	Asset           *asset.Descriptor `json:"asset,omitempty"`
	Inputs          int               `json:"inputs"`
	Outputs         int               `json:"outputs"`
	InputSignatures int               `json:"inputSignatures"`
	Digest          digest.Digest     `json:"digest"`
}

func runValidate(c *cli.Context) error {
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

	if m.verbose {
		fmt.Fprintf(m.e, "valid transaction: %s  packed size: %d bytes\n", tx.UID(), len(packed))
	}

	return writeResult(m, validateResult{
		FileName:        fileName,
		UID:             tx.UID(),
		Asset:           tx.Asset(),
		Inputs:          len(tx.Inputs()),
		Outputs:         len(tx.Outputs()),
		InputSignatures: len(tx.InputSignatures()),
		Digest:          packed.Digest(),
	})
}
