// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_icza_lib

package bench

import (
	"io"

	"github.com/icza/huffman/hufio"
)

// The hufio codec is an adaptive Huffman stream coder. It shares no wire
// format with this repo's static container, so it registers under its own
// format and serves as a point of comparison for coding efficiency.

func init() {
	RegisterEncoder(FormatHufio, "icza",
		func(w io.Writer, lvl int) io.WriteCloser {
			return hufio.NewWriter(w)
		})
	RegisterDecoder(FormatHufio, "icza",
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(hufio.NewReader(r))
		})
}
