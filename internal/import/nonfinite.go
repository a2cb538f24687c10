// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package eventimport

import (
	"bufio"
	"bytes"
	"io"
)

var (
	nullToken    = []byte("null")
	nanRest      = []byte("aN")
	infinityRest = []byte("nfinity")
	negInfinity  = []byte("Infinity")
)

// nonFiniteReader rewrites the bare NaN, Infinity and -Infinity tokens that
// pandas writes for missing values into JSON null. Text inside strings is
// passed through untouched.
type nonFiniteReader struct {
	src      *bufio.Reader
	pending  []byte
	one      [1]byte
	inString bool
	escaped  bool
	err      error
}

func newNonFiniteReader(r io.Reader) *nonFiniteReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &nonFiniteReader{src: br}
}

func (r *nonFiniteReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) > 0 {
			c := copy(p[n:], r.pending)
			r.pending = r.pending[c:]
			n += c
			continue
		}
		if r.err != nil {
			break
		}
		c, err := r.src.ReadByte()
		if err != nil {
			r.err = err
			break
		}
		r.pending = r.scan(c)
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

// scan returns the bytes to emit for c, consuming the rest of a non-finite
// token from src when c starts one.
func (r *nonFiniteReader) scan(c byte) []byte {
	if r.inString {
		switch {
		case r.escaped:
			r.escaped = false
		case c == '\\':
			r.escaped = true
		case c == '"':
			r.inString = false
		}
		return r.emit(c)
	}

	switch c {
	case '"':
		r.inString = true
	case 'N':
		if r.consume(nanRest) {
			return nullToken
		}
	case 'I':
		if r.consume(infinityRest) {
			return nullToken
		}
	case '-':
		if r.consume(negInfinity) {
			return nullToken
		}
	}
	return r.emit(c)
}

// consume discards rest from src if it is next in the stream.
func (r *nonFiniteReader) consume(rest []byte) bool {
	next, err := r.src.Peek(len(rest))
	if err != nil || !bytes.Equal(next, rest) {
		return false
	}
	_, _ = r.src.Discard(len(rest))
	return true
}

func (r *nonFiniteReader) emit(c byte) []byte {
	r.one[0] = c
	return r.one[:]
}
