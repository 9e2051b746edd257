// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
)

// write a command result as indented JSON on the output writer
//
// strings encoded here are not HTML escaped, so an asset name such as
// "A<B" is printed as given
func writeResult(m *metadata, result interface{}) error {
	encoder := json.NewEncoder(m.w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
