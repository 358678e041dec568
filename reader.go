// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import "io"

// A Reader is an io.ReadCloser that decompresses a container read from the
// underlying io.Reader.
//
// The container carries its coding tree up front and its payload cannot be
// interpreted before the tree is complete, so the Reader consumes the whole
// underlying stream on the first call to Read and serves the decoded bytes
// from memory.
type Reader struct {
	InputOffset  int64 // Total number of container bytes read
	OutputOffset int64 // Total number of decoded bytes emitted from Read

	rd  io.Reader
	buf []byte
	err error
}

// NewReader creates a new Reader decompressing from rd.
func NewReader(rd io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(rd)
	return hr
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from rd instead.
func (hr *Reader) Reset(rd io.Reader) {
	*hr = Reader{rd: rd}
}

// Read returns the decompressed bytes, decoding the entire container on the
// first call.
func (hr *Reader) Read(data []byte) (int, error) {
	if hr.err == nil && hr.rd != nil {
		hr.err = hr.decode()
	}
	if len(hr.buf) > 0 {
		cnt := copy(data, hr.buf)
		hr.buf = hr.buf[cnt:]
		hr.OutputOffset += int64(cnt)
		return cnt, nil
	}
	if hr.err != nil {
		return 0, hr.err
	}
	return 0, io.EOF
}

// Close closes the Reader. It does not close the underlying io.Reader.
func (hr *Reader) Close() error {
	if hr.err == errClosed {
		return nil
	}
	if hr.err != nil && hr.err != io.EOF {
		return hr.err
	}
	hr.err = errClosed
	hr.rd, hr.buf = nil, nil
	return nil
}

func (hr *Reader) decode() error {
	container, err := io.ReadAll(hr.rd)
	hr.rd = nil
	hr.InputOffset += int64(len(container))
	if err != nil {
		return err
	}
	hr.buf, err = Decode(container)
	return err
}
