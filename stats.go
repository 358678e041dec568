// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"math"
	"sort"
)

// SymbolCount is a single symbol together with its occurrence count.
type SymbolCount struct {
	Sym byte
	Cnt int64
}

// A Report summarizes the symbol distribution of an input. It is purely
// informational and has no effect on the compressed representation.
type Report struct {
	Size       int64         // Total input size in bytes
	NumSymbols int           // Number of distinct symbols
	Entropy    float64       // Shannon entropy in bits per symbol
	Top        []SymbolCount // Most frequent symbols, highest count first
}

// MinSize returns the theoretical minimum size in bytes of the input under
// an ideal entropy coder, excluding any container overhead.
func (r Report) MinSize() int64 {
	return int64(math.Ceil(r.Entropy * float64(r.Size) / 8))
}

// Analyze builds a Report over data, listing at most topN of the most
// frequent symbols. Ties are broken by ascending symbol value.
func Analyze(data []byte, topN int) Report {
	ft := CountBytes(data)
	r := Report{
		Size:       ft.Total(),
		NumSymbols: ft.NumSymbols(),
		Entropy:    ft.Entropy(),
	}

	top := make([]SymbolCount, 0, r.NumSymbols)
	for sym, cnt := range ft {
		if cnt > 0 {
			top = append(top, SymbolCount{Sym: byte(sym), Cnt: cnt})
		}
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Cnt != top[j].Cnt {
			return top[i].Cnt > top[j].Cnt
		}
		return top[i].Sym < top[j].Sym
	})
	if len(top) > topN {
		top = top[:topN]
	}
	r.Top = top
	return r
}
