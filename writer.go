// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"io"
)

// A Writer is an io.WriteCloser that compresses everything written to it
// into a single container on the underlying io.Writer.
//
// Static Huffman coding needs the complete input before any code can be
// assigned, so the Writer buffers all written bytes and emits the container
// when Close is called.
type Writer struct {
	InputOffset  int64 // Total number of raw bytes buffered by Write
	OutputOffset int64 // Total number of container bytes written out

	wr  io.Writer
	buf bytes.Buffer
	err error
}

// NewWriter creates a new Writer compressing to wr.
func NewWriter(wr io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(wr)
	return hw
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to wr instead.
func (hw *Writer) Reset(wr io.Writer) {
	*hw = Writer{wr: wr}
}

// Write buffers data for compression.
func (hw *Writer) Write(data []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	cnt, err := hw.buf.Write(data)
	hw.InputOffset += int64(cnt)
	return cnt, err
}

// Close performs the single-pass encode of the buffered input and writes the
// resulting container to the underlying io.Writer.
func (hw *Writer) Close() error {
	if hw.err == errClosed {
		return nil
	}
	if hw.err != nil {
		return hw.err
	}

	out, err := Encode(hw.buf.Bytes())
	if err != nil {
		hw.err = err
		return err
	}
	cnt, err := hw.wr.Write(out)
	hw.OutputOffset += int64(cnt)
	if err != nil {
		hw.err = err
		return err
	}
	hw.err = errClosed
	hw.wr = nil // Release reference to underlying Writer
	return nil
}
