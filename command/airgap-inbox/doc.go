// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// airgap-inbox watches a drop directory on the offline side of an
// air gap and logs every transaction file that arrives as accepted
// (with its digest) or rejected (with the failing field)
//
// usage:
//
//	airgap-inbox --config-file=airgap-inbox.conf [start]
//	airgap-inbox --config-file=airgap-inbox.conf --once
package main
