// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Validation failures carry the path of the field that caused them,
// e.g. "transaction.inputs[1].txHash", and are classified with the
// IsErrEmptyValue, IsErrInvalidRange and IsErrDecodeShape predicates.
package fault
