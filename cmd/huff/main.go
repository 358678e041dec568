// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huff compresses and decompresses files using a static
// Huffman code.
//
// Example usage:
//	$ huff -c input.txt              # writes input.txt.huf
//	$ huff -d input.txt.huf          # writes input.txt
//	$ huff -a input.txt              # prints an entropy report
//	$ huff -batch srcdir -o outdir   # compresses every file in srcdir
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/rsukul/huff"
)

const compressExt = ".huf"

var (
	compress   = flag.String("c", "", "compress the named file")
	decompress = flag.String("d", "", "decompress the named file")
	analyze    = flag.String("a", "", "print an entropy report for the named file")
	batch      = flag.String("batch", "", "compress every regular file in the named directory")
	output     = flag.String("o", "", "output file or directory (default: derived from input)")
	workers    = flag.Int("j", runtime.NumCPU(), "number of parallel workers in batch mode")
	topN       = flag.Int("top", 10, "number of symbols to show in the analysis report")
)

func main() {
	flag.Parse()
	var err error
	switch {
	case *compress != "":
		err = compressFile(*compress, *output, true)
	case *decompress != "":
		err = decompressFile(*decompress, *output)
	case *analyze != "":
		err = analyzeFile(*analyze)
	case *batch != "":
		err = batchCompress(*batch, *output, *workers)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		os.Exit(1)
	}
}

func compressFile(name, out string, verbose bool) error {
	if out == "" {
		out = name + compressExt
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	start := time.Now()
	enc, err := huff.Encode(data)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := os.WriteFile(out, enc, 0664); err != nil {
		return err
	}
	if verbose {
		printStats(name, len(data), len(enc), elapsed)
	}
	return nil
}

func decompressFile(name, out string) error {
	if out == "" {
		out = strings.TrimSuffix(name, compressExt)
		if out == name {
			return fmt.Errorf("cannot derive output name from %q", name)
		}
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	dec, err := huff.Decode(data)
	if err != nil {
		return err
	}
	return os.WriteFile(out, dec, 0664)
}

func analyzeFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	r := huff.Analyze(data, *topN)
	fmt.Printf("%s: %sB, %d distinct symbols\n",
		name, strconv.FormatPrefix(float64(r.Size), strconv.Base1024, 1), r.NumSymbols)
	fmt.Printf("entropy: %0.4f bits/symbol, theoretical minimum %sB\n",
		r.Entropy, strconv.FormatPrefix(float64(r.MinSize()), strconv.Base1024, 1))
	for _, sc := range r.Top {
		fmt.Printf("  %-6q %10d  %6.2f%%\n", sc.Sym, sc.Cnt, 100*float64(sc.Cnt)/float64(r.Size))
	}
	return nil
}

func batchCompress(dir, out string, numWorkers int) error {
	if out == "" {
		out = dir + "-huf"
	}
	if err := os.MkdirAll(out, 0775); err != nil {
		return err
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	names := make(chan string)
	errc := make(chan error, len(ents))
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range names {
				dst := filepath.Join(out, name+compressExt)
				if err := compressFile(filepath.Join(dir, name), dst, false); err != nil {
					errc <- fmt.Errorf("%s: %v", name, err)
				}
			}
		}()
	}
	var total int
	for _, ent := range ents {
		if !ent.Type().IsRegular() {
			continue
		}
		names <- ent.Name()
		total++
	}
	close(names)
	wg.Wait()
	close(errc)

	var failed int
	for err := range errc {
		fmt.Fprintf(os.Stderr, "huff: %v\n", err)
		failed++
	}
	fmt.Printf("compressed %d of %d files into %s\n", total-failed, total, out)
	if failed > 0 {
		return fmt.Errorf("%d files failed", failed)
	}
	return nil
}

func printStats(name string, rawLen, encLen int, d time.Duration) {
	ratio, saved := 0.0, 0.0
	if rawLen > 0 {
		ratio = float64(rawLen) / float64(encLen)
		saved = 100 * (1 - float64(encLen)/float64(rawLen))
	}
	fmt.Printf("%s: %sB -> %sB  ratio=%0.3f  saved=%0.1f%%  in %v\n",
		name,
		strconv.FormatPrefix(float64(rawLen), strconv.Base1024, 1),
		strconv.FormatPrefix(float64(encLen), strconv.Base1024, 1),
		ratio, saved, d.Round(time.Microsecond))
}
