// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/rsukul/huff/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid
// input for each registered decoder of the same format.
func TestCodecs(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := map[string][]byte{
		"empty":   nil,
		"zeros":   make([]byte, 1<<14),
		"text":    testutil.ResizeData([]byte("the quick brown fox jumped over the lazy dog. "), 1<<14),
		"random":  rand.Bytes(1 << 14),
		"repeats": testutil.ResizeData([]byte{0xde, 0xad, 0xbe, 0xef}, 1<<14),
	}
	for name, dd := range inputs {
		dd := dd
		t.Run(fmt.Sprintf("File:%v", name), func(t *testing.T) { testFormats(t, dd) })
	}
}

func testFormats(t *testing.T, dd []byte) {
	t.Parallel()
	formats := []Format{FormatHuff, FormatFlate, FormatZstd, FormatXZ, FormatHufio}
	for _, ft := range formats {
		if len(Encoders[ft]) == 0 || len(Decoders[ft]) == 0 {
			continue
		}
		ft := ft
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testEncoders(t, ft, dd) })
	}
}

func testEncoders(t *testing.T, ft Format, dd []byte) {
	const level = 6 // Default compression on all encoders
	for encName := range Encoders[ft] {
		encName := encName
		t.Run(fmt.Sprintf("Encoder:%v", encName), func(t *testing.T) {
			be := new(bytes.Buffer)
			zw := Encoders[ft][encName](be, level)
			if _, err := io.Copy(zw, bytes.NewReader(dd)); err != nil {
				t.Fatalf("unexpected Write error: %v", err)
			}
			if err := zw.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			testDecoders(t, ft, dd, be.Bytes())
		})
	}
}

func testDecoders(t *testing.T, ft Format, dd, de []byte) {
	for decName := range Decoders[ft] {
		decName := decName
		t.Run(fmt.Sprintf("Decoder:%v", decName), func(t *testing.T) {
			zr := Decoders[ft][decName](bytes.NewReader(de))
			db, err := io.ReadAll(zr)
			if err != nil {
				t.Fatalf("unexpected Read error: %v", err)
			}
			if err := zr.Close(); err != nil {
				t.Fatalf("unexpected Close error: %v", err)
			}
			if !bytes.Equal(db, dd) {
				t.Errorf("decoded output mismatch: got %d bytes, want %d bytes", len(db), len(dd))
			}
		})
	}
}

func TestCompressRatio(t *testing.T) {
	// Highly skewed data must compress below one byte per symbol under the
	// static Huffman codec once the container overhead is amortized.
	dd := bytes.Repeat([]byte("aaaaaaab"), 1<<13)
	ratio, err := CompressRatio(dd, Encoders[FormatHuff]["huff"], 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ratio <= 1.0 {
		t.Errorf("compression ratio %0.2f, expected > 1.0", ratio)
	}
}
