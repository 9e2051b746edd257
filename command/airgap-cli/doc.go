// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// airgap-cli - check and convert transactions for offline signing
//
//	airgap-cli validate --file=tx.json
//	airgap-cli pack --file=tx.json [--hex]
//	airgap-cli unpack --packed=TEXT
//	airgap-cli unpack --file=tx.b58
//
// all output is JSON on stdout, --verbose writes progress to stderr
package main
