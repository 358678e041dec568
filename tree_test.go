// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/rsukul/huff/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBuildTreeEmpty(t *testing.T) {
	var ft FrequencyTable
	_, err := buildTree(ft)
	assert.Equal(t, ErrEmptyInput, err)
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	ft := CountBytes([]byte("aaaa"))
	root, err := buildTree(ft)
	assert.Nil(t, err)

	// The lone leaf hangs off a synthesized wrapper so the symbol still
	// receives a one-bit code.
	assert.False(t, root.isLeaf())
	assert.NotNil(t, root.left)
	assert.Nil(t, root.right)
	assert.True(t, root.left.isLeaf())
	assert.Equal(t, byte('a'), root.left.sym)
	assert.Equal(t, int64(4), root.weight)

	codes, err := buildCodes(root)
	assert.Nil(t, err)
	assert.Equal(t, prefixCode{bits: 0, len: 1}, codes['a'])
}

func TestTieBreak(t *testing.T) {
	// Four symbols of equal weight merge in FIFO insertion order, so the
	// resulting codes are fully determined.
	ft := CountBytes([]byte("abcd"))
	root, err := buildTree(ft)
	assert.Nil(t, err)
	codes, err := buildCodes(root)
	assert.Nil(t, err)
	assert.Equal(t, prefixCode{bits: 0, len: 2}, codes['a'])
	assert.Equal(t, prefixCode{bits: 1, len: 2}, codes['b'])
	assert.Equal(t, prefixCode{bits: 2, len: 2}, codes['c'])
	assert.Equal(t, prefixCode{bits: 3, len: 2}, codes['d'])
}

func TestWeightConservation(t *testing.T) {
	rand := testutil.NewRand(2)
	for _, input := range [][]byte{
		[]byte("a"),
		[]byte("abracadabra"),
		rand.Bytes(100),
		rand.Bytes(1 << 14),
	} {
		root, err := buildTree(CountBytes(input))
		assert.Nil(t, err)
		assert.Equal(t, int64(len(input)), sumLeafWeights(root))
		assert.Equal(t, int64(len(input)), root.weight)
	}
}

func sumLeafWeights(n *node) int64 {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return n.weight
	}
	return sumLeafWeights(n.left) + sumLeafWeights(n.right)
}

func TestPrefixFree(t *testing.T) {
	rand := testutil.NewRand(3)
	for _, input := range [][]byte{
		[]byte("ab"),
		[]byte("abracadabra"),
		[]byte("mississippi river basin"),
		rand.Bytes(1 << 12),
	} {
		ft := CountBytes(input)
		root, err := buildTree(ft)
		assert.Nil(t, err)
		codes, err := buildCodes(root)
		assert.Nil(t, err)

		var present []prefixCode
		for sym, cnt := range ft {
			if cnt > 0 {
				assert.True(t, codes[sym].len > 0)
				present = append(present, codes[sym])
			}
		}
		for i, a := range present {
			for j, b := range present {
				if i == j {
					continue
				}
				if a.len > b.len {
					continue
				}
				// The shorter code must not match the leading bits of the
				// longer one.
				assert.NotEqual(t, a.bits, b.bits>>(b.len-a.len),
					"code %d is a prefix of code %d", i, j)
			}
		}
	}
}

func TestTreeSerialization(t *testing.T) {
	rand := testutil.NewRand(4)
	for _, input := range [][]byte{
		[]byte("a"),
		[]byte("ab"),
		[]byte("abracadabra"),
		rand.Bytes(1 << 12),
	} {
		root, err := buildTree(CountBytes(input))
		assert.Nil(t, err)

		bb := new(bytes.Buffer)
		bw := bitio.NewWriter(bb)
		assert.Nil(t, writeTree(bw, root))
		assert.Nil(t, bw.Close())

		got, err := readTree(bitio.NewReader(bytes.NewReader(bb.Bytes())))
		assert.Nil(t, err)
		assert.True(t, sameShape(root, got))
	}
}

// sameShape compares two trees structurally, ignoring weights, which are not
// part of the serialized form.
func sameShape(a, b *node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.isLeaf() != b.isLeaf() {
		return false
	}
	if a.isLeaf() {
		return a.sym == b.sym
	}
	return sameShape(a.left, b.left) && sameShape(a.right, b.right)
}

func TestReadTreeErrors(t *testing.T) {
	// A lone internal marker with no children.
	_, err := readTree(bitio.NewReader(bytes.NewReader([]byte{0x00})))
	assert.Equal(t, ErrTruncatedTree, err)

	// A leaf marker with a truncated symbol.
	_, err = readTree(bitio.NewReader(bytes.NewReader([]byte{0x80})))
	assert.Equal(t, ErrTruncatedTree, err)

	// No input at all.
	_, err = readTree(bitio.NewReader(bytes.NewReader(nil)))
	assert.Equal(t, ErrTruncatedTree, err)

	// An endless run of internal markers.
	_, err = readTree(bitio.NewReader(bytes.NewReader(make([]byte, 64))))
	assert.Equal(t, ErrMalformedTree, err)
}
