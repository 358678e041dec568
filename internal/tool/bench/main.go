// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Benchmark tool to compare performance between multiple compression
// implementations. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark -files twain.txt -levels 6 -sizes 1e4,1e5,1e6
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/rsukul/huff/internal/tool/bench"
	"github.com/rsukul/huff/internal/testutil"
)

func main() {
	files := flag.String("files", "", "Comma-separated list of input files")
	levels := flag.String("levels", "6", "Comma-separated list of compression levels")
	sizes := flag.String("sizes", "1e5", "Comma-separated list of input sizes")
	flag.Parse()
	if *files == "" {
		fmt.Fprintln(os.Stderr, "no input files specified")
		os.Exit(1)
	}

	var szs []int
	for _, s := range strings.Split(*sizes, ",") {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid size: %v\n", s)
			os.Exit(1)
		}
		szs = append(szs, int(n))
	}
	var lvls []int
	for _, s := range strings.Split(*levels, ",") {
		n, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid level: %v\n", s)
			os.Exit(1)
		}
		lvls = append(lvls, int(n))
	}

	for _, file := range strings.Split(*files, ",") {
		input := testutil.MustLoadFile(file)
		for _, sz := range szs {
			data := testutil.ResizeData(input, sz)
			for _, lvl := range lvls {
				runOne(file, data, lvl)
			}
		}
	}
}

func runOne(file string, data []byte, lvl int) {
	var formats []bench.Format
	for ft := range bench.Encoders {
		formats = append(formats, ft)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })

	for _, ft := range formats {
		var names []string
		for name := range bench.Encoders[ft] {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			enc := bench.Encoders[ft][name]
			ratio, err := bench.CompressRatio(data, enc, lvl)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%v:%v: %v\n", ft, name, err)
				continue
			}
			r := bench.BenchmarkEncoder(data, enc, lvl)
			rate := float64(r.Bytes) * float64(r.N) / r.T.Seconds()
			fmt.Printf("%s:%d:%s  %v:%v  ratio=%0.3f  encRate=%sB/s\n",
				file, lvl, strconv.FormatPrefix(float64(len(data)), strconv.Base1024, 1),
				ft, name, ratio, strconv.FormatPrefix(rate, strconv.Base1024, 2))
		}
	}
}
