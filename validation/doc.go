// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validation - stateless field checks
//
// Each check takes the value and the path of the field being checked
// and returns nil or a contextual error from the fault package.
// Composite records call these in field order and return the first
// failure.
package validation
