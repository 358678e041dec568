// Copyright 2025, Rohit Sukul. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"io"
	"testing"

	"github.com/rsukul/huff/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWriterInterfaces(t *testing.T) {
	assert.Implements(t, (*io.WriteCloser)(nil), new(Writer))
	assert.Implements(t, (*io.ReadCloser)(nil), new(Reader))
}

func TestWriter(t *testing.T) {
	input := []byte("the quick brown fox jumped over the lazy dog")
	buf := new(bytes.Buffer)
	hw := NewWriter(buf)

	// Chunked writes accumulate until Close emits the container.
	for i := 0; i < len(input); i += 7 {
		end := i + 7
		if end > len(input) {
			end = len(input)
		}
		cnt, err := hw.Write(input[i:end])
		assert.Equal(t, end-i, cnt)
		assert.Nil(t, err)
	}
	assert.Equal(t, 0, buf.Len())
	assert.Nil(t, hw.Close())
	assert.Equal(t, int64(len(input)), hw.InputOffset)
	assert.Equal(t, int64(buf.Len()), hw.OutputOffset)

	dec, err := Decode(buf.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, input, dec)

	// Close is idempotent, but writes after Close must fail.
	assert.Nil(t, hw.Close())
	_, err = hw.Write([]byte("x"))
	assert.Equal(t, errClosed, err)
}

func TestWriterEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	hw := NewWriter(buf)
	assert.Nil(t, hw.Close())

	dec, err := Decode(buf.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, []byte(nil), nb(dec))
}

func TestWriterFailure(t *testing.T) {
	errFail := Error("write failed")
	bw := &testutil.BuggyWriter{W: io.Discard, N: 4, Err: errFail}
	hw := NewWriter(bw)
	_, err := hw.Write([]byte("abracadabra"))
	assert.Nil(t, err)
	assert.Equal(t, errFail, hw.Close())

	// The error is persistent.
	assert.Equal(t, errFail, hw.Close())
}

func TestWriterReset(t *testing.T) {
	buf := new(bytes.Buffer)
	hw := NewWriter(io.Discard)
	assert.Nil(t, hw.Close())

	hw.Reset(buf)
	_, err := hw.Write([]byte("aaaa"))
	assert.Nil(t, err)
	assert.Nil(t, hw.Close())

	dec, err := Decode(buf.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, []byte("aaaa"), dec)
}
