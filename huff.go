// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huff implements a lossless byte-stream compressor based on
// static Huffman coding.
//
// The compressed container is self-describing: it carries a serialized copy
// of the coding tree alongside the packed bitstream, so decompression needs
// no out-of-band information. The container layout is:
//
//	Offset 0, 4 bytes:  format marker "HUF1"
//	Variable length:    pre-order serialized tree, zero padded to a byte
//	                    boundary, followed by one delimiter byte '#'
//	8 bytes:            original byte count, unsigned little-endian
//	1 byte:             padding length (0..7)
//	Remaining bytes:    packed code bits, most-significant bit first
//
// The tree serialization is self-delimiting: an internal node emits a 0
// marker bit followed by both subtrees, and a leaf emits a 1 marker bit
// followed by its 8-bit symbol value.
//
// Encoding is a single static pass: byte frequencies are counted over the
// whole input, a prefix-free code is derived from them, and each input byte
// is replaced by its code. Decoding walks the deserialized tree bit by bit
// until the declared number of symbols has been emitted.
package huff

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/golib/errs"
	"github.com/icza/bitio"
)

const (
	magic    = "HUF1"
	magicLen = 4

	treeDelim = '#'

	// Fixed-width little-endian original byte count.
	countLen = 8

	// Size of the container produced for an empty input: the tree section is
	// empty, so the delimiter byte immediately follows the marker. Any
	// container holding at least one symbol is strictly larger (its tree
	// section alone occupies two or more bytes, and its payload at least one),
	// which keeps the empty shape unambiguous.
	emptyContainerLen = magicLen + 1 + countLen + 1
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huff: " + string(e) }

var (
	// ErrEmptyInput is reported when a coding tree is requested for an input
	// that contains no symbols at all.
	ErrEmptyInput error = Error("empty input")

	// ErrInvalidFormat is reported when a container does not begin with the
	// format marker.
	ErrInvalidFormat error = Error("invalid format marker")

	// ErrTruncatedTree is reported when the container ends in the middle of
	// the serialized tree structure.
	ErrTruncatedTree error = Error("truncated tree")

	// ErrTruncatedPayload is reported when the packed payload holds fewer
	// bits than the declared original byte count requires.
	ErrTruncatedPayload error = Error("truncated payload")

	// ErrInvalidPadding is reported when the declared padding length is
	// outside 0..7 or exceeds the number of payload bits.
	ErrInvalidPadding error = Error("invalid padding length")

	// ErrMalformedTree is reported when the deserialized tree violates the
	// two-children-per-internal-node invariant or the container structure
	// around it is inconsistent.
	ErrMalformedTree error = Error("malformed tree")

	errClosed error = Error("stream is closed")
)

// Encode compresses data and returns the complete container.
//
// An empty input is valid: it produces a minimal container with an empty
// tree section and a zero original byte count.
func Encode(data []byte) (out []byte, err error) {
	defer errs.Recover(&err)

	bb := new(bytes.Buffer)
	bb.WriteString(magic)
	if len(data) == 0 {
		bb.WriteByte(treeDelim)
		var hdr [countLen + 1]byte // Zero count, zero padding
		bb.Write(hdr[:])
		return bb.Bytes(), nil
	}

	ft := CountBytes(data)
	root, err := buildTree(ft)
	errs.Panic(err)
	codes, err := buildCodes(root)
	errs.Panic(err)

	// Tree section, zero padded to a byte boundary.
	bw := bitio.NewWriter(bb)
	errs.Panic(writeTree(bw, root))
	if _, err := bw.Align(); err != nil {
		errs.Panic(err)
	}
	bb.WriteByte(treeDelim)

	var cnt [countLen]byte
	binary.LittleEndian.PutUint64(cnt[:], uint64(len(data)))
	bb.Write(cnt[:])

	// The total payload bit count is known up front from the frequency table,
	// so the padding length can be recorded before the payload is written.
	var numBits int64
	for sym, n := range ft {
		numBits += n * int64(codes[sym].len)
	}
	bb.WriteByte(byte(numPads(uint(numBits))))

	for _, sym := range data {
		c := codes[sym]
		errs.Panic(bw.WriteBits(c.bits, c.len))
	}
	errs.Panic(bw.Close()) // Pads the final partial byte with zero bits
	return bb.Bytes(), nil
}

// Decode decompresses a container produced by Encode and returns the
// original byte sequence.
func Decode(data []byte) (out []byte, err error) {
	defer errs.Recover(&err)

	if len(data) < magicLen || string(data[:magicLen]) != magic {
		return nil, ErrInvalidFormat
	}
	if isEmptyContainer(data) {
		return nil, nil
	}

	rd := bytes.NewReader(data[magicLen:])
	br := bitio.NewReader(rd)
	root, err := readTree(br)
	errs.Panic(err)
	br.Align()

	// The bit reader is byte aligned and holds no cached bits, so the fixed
	// header fields can be read from the underlying reader directly.
	var hdr [1 + countLen + 1]byte
	if _, err := io.ReadFull(rd, hdr[:]); err != nil {
		return nil, ErrTruncatedPayload
	}
	errs.Assert(hdr[0] == treeDelim, ErrMalformedTree)
	count := binary.LittleEndian.Uint64(hdr[1 : 1+countLen])
	pads := uint(hdr[1+countLen])
	errs.Assert(pads <= 7, ErrInvalidPadding)

	numBits := uint64(rd.Len()) * 8
	errs.Assert(uint64(pads) <= numBits, ErrInvalidPadding)
	numBits -= uint64(pads)

	// Every symbol occupies at least one bit, so a count beyond the payload
	// bit budget can never be satisfied. Checking here also bounds the output
	// allocation by the container size.
	errs.Assert(count <= numBits, ErrTruncatedPayload)

	out = make([]byte, 0, count)
	br = bitio.NewReader(rd)
	cur, bitsRead := root, uint64(0)
	for uint64(len(out)) < count {
		errs.Assert(bitsRead < numBits, ErrTruncatedPayload)
		bit, err := br.ReadBool()
		errs.Panic(err)
		bitsRead++

		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		errs.Assert(cur != nil, ErrMalformedTree)
		if cur.isLeaf() {
			out = append(out, cur.sym)
			cur = root
		}
	}
	return out, nil
}

// isEmptyContainer reports whether data holds the exact container shape
// produced by encoding an empty input.
func isEmptyContainer(data []byte) bool {
	if len(data) != emptyContainerLen || data[magicLen] != treeDelim {
		return false
	}
	for _, b := range data[magicLen+1:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// numPads computes number of bits needed to pad n-bits to a byte alignment.
func numPads(n uint) uint {
	return -n & 7
}
