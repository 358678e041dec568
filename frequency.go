// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import "math"

// FrequencyTable holds the number of occurrences for each possible byte
// value. A zero count means the symbol is absent from the input.
type FrequencyTable [256]int64

// CountBytes builds a FrequencyTable from a full read of data.
// An empty input yields the zero table.
func CountBytes(data []byte) (ft FrequencyTable) {
	for _, sym := range data {
		ft[sym]++
	}
	return ft
}

// Total returns the total number of symbols counted.
func (ft *FrequencyTable) Total() (n int64) {
	for _, cnt := range ft {
		n += cnt
	}
	return n
}

// NumSymbols returns the number of distinct symbols counted.
func (ft *FrequencyTable) NumSymbols() (n int) {
	for _, cnt := range ft {
		if cnt > 0 {
			n++
		}
	}
	return n
}

// Entropy returns the Shannon entropy of the counted distribution in bits
// per symbol. An empty table has zero entropy.
func (ft *FrequencyTable) Entropy() float64 {
	total := ft.Total()
	if total == 0 {
		return 0
	}
	var entropy float64
	for _, cnt := range ft {
		if cnt == 0 {
			continue
		}
		p := float64(cnt) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
