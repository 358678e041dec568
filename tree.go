// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"container/heap"

	"github.com/icza/bitio"
)

const (
	maxSymbols = 256 // Size of the closed byte alphabet

	// The longest prefix code that fits the fixed-width code storage.
	// Reaching this bound requires a Fibonacci-like frequency distribution
	// over an input of several terabytes, far beyond what a single in-memory
	// pass can hold.
	maxCodeLen = 64
)

// node is a single node of the coding tree. A node is a leaf if and only if
// both children are nil; a leaf carries the symbol it encodes. Ownership is
// strictly hierarchical and each encode or decode pass builds its own tree.
type node struct {
	sym    byte
	weight int64
	left   *node
	right  *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// prefixCode is a single Huffman code, stored in the bottom len bits of bits
// with the first (root-most) edge in the most significant position.
type prefixCode struct {
	bits uint64
	len  uint8
}

type codeTable [maxSymbols]prefixCode

// weightedNode pairs a tree node with its insertion sequence number, which
// breaks weight ties FIFO so that tree construction is reproducible.
type weightedNode struct {
	node *node
	seq  int
}

type nodeHeap []weightedNode

func (h nodeHeap) Len() int      { return len(h) }
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(weightedNode)) }
func (h *nodeHeap) Pop() interface{} {
	last := len(*h) - 1
	x := (*h)[last]
	*h = (*h)[:last]
	return x
}

// buildTree constructs the coding tree for the given frequency table by
// repeated minimum-pair merging. Nodes of equal weight are merged in
// insertion order, with the per-symbol leaves inserted in ascending symbol
// order, so the same table always yields the same tree.
//
// A table with a single distinct symbol yields a wrapping internal node with
// the lone leaf as its left child, so the symbol still receives a one-bit
// code rather than an empty one. An empty table yields ErrEmptyInput.
func buildTree(ft FrequencyTable) (*node, error) {
	h := make(nodeHeap, 0, maxSymbols)
	seq := 0
	for sym, cnt := range ft {
		if cnt > 0 {
			h = append(h, weightedNode{&node{sym: byte(sym), weight: cnt}, seq})
			seq++
		}
	}
	if len(h) == 0 {
		return nil, ErrEmptyInput
	}
	heap.Init(&h)

	if len(h) == 1 {
		leaf := h[0].node
		return &node{weight: leaf.weight, left: leaf}, nil
	}
	for len(h) > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)
		merged := &node{
			weight: a.node.weight + b.node.weight,
			left:   a.node,
			right:  b.node,
		}
		heap.Push(&h, weightedNode{merged, seq})
		seq++
	}
	return h[0].node, nil
}

// buildCodes derives the per-symbol codes by a full traversal of the tree:
// bit 0 on left descent, bit 1 on right descent. A leaf hanging directly off
// the root, as in the degenerate single-symbol tree, receives the code "0".
func buildCodes(root *node) (codeTable, error) {
	var codes codeTable
	if root.isLeaf() {
		codes[root.sym] = prefixCode{bits: 0, len: 1}
		return codes, nil
	}
	if err := walkCodes(&codes, root, 0, 0); err != nil {
		return codes, err
	}
	return codes, nil
}

func walkCodes(codes *codeTable, n *node, bits uint64, depth uint8) error {
	if n.isLeaf() {
		if depth == 0 {
			depth, bits = 1, 0
		}
		codes[n.sym] = prefixCode{bits: bits, len: depth}
		return nil
	}
	if n.left == nil {
		return ErrMalformedTree
	}
	if depth >= maxCodeLen {
		return Error("prefix code overflow")
	}
	if err := walkCodes(codes, n.left, bits<<1, depth+1); err != nil {
		return err
	}
	// A nil right child only occurs on the synthesized single-symbol wrapper.
	if n.right == nil {
		return nil
	}
	return walkCodes(codes, n.right, bits<<1|1, depth+1)
}

// writeTree emits the pre-order serialization of the tree: a 0 marker bit
// for an internal node followed by both subtrees, or a 1 marker bit and the
// 8-bit symbol value for a leaf. The single-symbol wrapper is collapsed to
// its bare leaf; readTree re-synthesizes it.
func writeTree(bw *bitio.Writer, n *node) error {
	if n.right == nil && n.left != nil {
		n = n.left
	}
	return writeNode(bw, n)
}

func writeNode(bw *bitio.Writer, n *node) error {
	if n.isLeaf() {
		if err := bw.WriteBool(true); err != nil {
			return err
		}
		return bw.WriteBits(uint64(n.sym), 8)
	}
	if err := bw.WriteBool(false); err != nil {
		return err
	}
	if err := writeNode(bw, n.left); err != nil {
		return err
	}
	return writeNode(bw, n.right)
}

// readTree consumes the self-delimiting tree serialization and rebuilds the
// tree. A stream that ends mid-structure yields ErrTruncatedTree, and a
// structure that could not have come from a 256-symbol alphabet yields
// ErrMalformedTree. The returned root is always an internal node: a bare
// leaf at the top level is wrapped the same way buildTree wraps it.
func readTree(br *bitio.Reader) (*node, error) {
	tr := treeReader{br: br}
	root, err := tr.next()
	if err != nil {
		return nil, err
	}
	if root.isLeaf() {
		root = &node{left: root}
	}
	return root, nil
}

type treeReader struct {
	br        *bitio.Reader
	leaves    int
	internals int
}

func (tr *treeReader) next() (*node, error) {
	marker, err := tr.br.ReadBool()
	if err != nil {
		return nil, ErrTruncatedTree
	}
	if marker {
		sym, err := tr.br.ReadBits(8)
		if err != nil {
			return nil, ErrTruncatedTree
		}
		if tr.leaves++; tr.leaves > maxSymbols {
			return nil, ErrMalformedTree
		}
		return &node{sym: byte(sym)}, nil
	}

	// A valid tree over at most 256 leaves has at most 255 internal nodes.
	// Checking the bound up front also caps the recursion depth.
	if tr.internals++; tr.internals > maxSymbols-1 {
		return nil, ErrMalformedTree
	}
	left, err := tr.next()
	if err != nil {
		return nil, err
	}
	right, err := tr.next()
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
