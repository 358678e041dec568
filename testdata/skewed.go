// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Generates skewed.bin. This test file has a heavily skewed symbol
// distribution and no long-range repetition, so it favors prefix encoding
// over LZ77 based compression.
package main

import (
	"math/rand"
	"os"
)

const (
	name = "skewed.bin"
	size = 1 << 18
)

func main() {
	var b []byte
	var r = rand.New(rand.NewSource(0))

	// Roughly geometric symbol distribution over a 64-symbol alphabet.
	// Shuffle the alphabet so symbol identity does not correlate with rank.
	alpha := make([]byte, 64)
	for i := range alpha {
		alpha[i] = byte(i * 4)
	}
	r.Shuffle(len(alpha), func(i, j int) {
		alpha[i], alpha[j] = alpha[j], alpha[i]
	})

	randSym := func() byte {
		i := 0
		for i < len(alpha)-1 && r.Float32() < 0.5 {
			i++
		}
		return alpha[i]
	}

	for len(b) < size {
		b = append(b, randSym())
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
