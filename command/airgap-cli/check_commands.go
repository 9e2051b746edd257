// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/airgap/fault"
	"github.com/bitmark-inc/airgap/transactionrecord"
)

func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", fault.ErrRequiredFileName
	}
	return fileName, nil
}

// read and parse a transaction file
func readTransaction(m *metadata, fileName string) (*transactionrecord.Transaction, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "reading file: %s\n", fileName)
	}

	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	tx, err := transactionrecord.Parse(data)
	if nil != err {
		return nil, fmt.Errorf("file: %s: %w", fileName, err)
	}
	return tx, nil
}
