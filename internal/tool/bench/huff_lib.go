// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/rsukul/huff"
)

func init() {
	// The huff format has a single compression level; lvl is ignored.
	RegisterEncoder(FormatHuff, "huff",
		func(w io.Writer, lvl int) io.WriteCloser {
			return huff.NewWriter(w)
		})
	RegisterDecoder(FormatHuff, "huff",
		func(r io.Reader) io.ReadCloser {
			return huff.NewReader(r)
		})
}
