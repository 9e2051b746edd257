// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inbox - check transaction files dropped into a directory
//
// the directory is typically the mount point of removable media
// carried across the air gap; each file holds one transaction as
// JSON, hex or base58 packed text and is reported to a Handler as
// accepted (with its packed digest) or rejected
//
// the same transaction is reported once within the expiry time no
// matter how many files carry it
package inbox
