// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the huff codec against other compression
// implementations with respect to encode speed, decode speed, and ratio.
// Individual implementations are referred to as codecs.
package bench

import (
	"bufio"
	"bytes"
	"io"
	"runtime"
	"testing"
)

// Format identifies a compressed data format. Codecs registered under the
// same format are expected to be interoperable.
type Format int

const (
	FormatHuff Format = iota
	FormatFlate
	FormatZstd
	FormatXZ
	FormatHufio
)

func (f Format) String() string {
	switch f {
	case FormatHuff:
		return "huff"
	case FormatFlate:
		return "fl"
	case FormatZstd:
		return "zstd"
	case FormatXZ:
		return "xz"
	case FormatHufio:
		return "hufio"
	default:
		return "unknown"
	}
}

type Encoder func(io.Writer, int) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[Format]map[string]Encoder
	Decoders map[Format]map[string]Decoder
)

func RegisterEncoder(format Format, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[Format]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format Format, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[Format]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// CompressRatio returns the ratio of input size to compressed size for the
// given encoder at the given level.
func CompressRatio(input []byte, enc Encoder, lvl int) (float64, error) {
	buf := new(bytes.Buffer)
	zw := enc(buf, lvl)
	if _, err := io.Copy(zw, bytes.NewReader(input)); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return float64(len(input)) / float64(buf.Len()), nil
}

// BenchmarkEncoder benchmarks a single encoder on the given input data using
// the selected compression level and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder, lvl int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			zw := enc(io.Discard, lvl)
			_, err := io.Copy(zw, bytes.NewReader(input))
			if err := zw.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-compressed
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			zr := dec(bufio.NewReader(bytes.NewReader(input)))
			cnt, err := io.Copy(io.Discard, zr)
			if err := zr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(cnt)
		}
	})
}
