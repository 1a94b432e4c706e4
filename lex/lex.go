// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package lex provides a byte oriented lexer for whitespace separated
// integer streams such as dimacs cnf files and guard files.
package lex

import (
	"bufio"
	"io"
	"math"

	"github.com/pkg/errors"
)

// EOF is returned by Peek at the end of the input.
const EOF = -1

// Reader tracks a single byte of lookahead over an underlying reader.
type Reader struct {
	r    *bufio.Reader
	cur  int
	err  error
	line int
}

// New creates a Reader reading from r.
func New(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}
	res := &Reader{r: br, line: 1}
	res.Advance()
	return res
}

// Peek returns the current byte or EOF.
func (r *Reader) Peek() int {
	return r.cur
}

// EOF reports whether the input is exhausted.
func (r *Reader) EOF() bool {
	return r.cur == EOF
}

// Err returns the first read error other than io.EOF.
func (r *Reader) Err() error {
	return r.err
}

// Line returns the 1-based line number of the current byte.
func (r *Reader) Line() int {
	return r.line
}

// Advance moves past the current byte.
func (r *Reader) Advance() {
	if r.cur == '\n' {
		r.line++
	}
	if r.err != nil {
		r.cur = EOF
		return
	}
	b, e := r.r.ReadByte()
	if e != nil {
		if e != io.EOF {
			r.err = e
		}
		r.cur = EOF
		return
	}
	r.cur = int(b)
}

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// SkipWhitespace advances past any whitespace, including newlines.
func (r *Reader) SkipWhitespace() {
	for isSpace(r.cur) {
		r.Advance()
	}
}

// SkipLine advances past the next newline or to EOF.
func (r *Reader) SkipLine() {
	for r.cur != EOF {
		if r.cur == '\n' {
			r.Advance()
			return
		}
		r.Advance()
	}
}

// MatchPrefix consumes bytes as long as they match s and reports
// whether all of s matched.  On a mismatch, the matched part stays
// consumed.
func (r *Reader) MatchPrefix(s string) bool {
	for i := 0; i < len(s); i++ {
		if r.cur != int(s[i]) {
			return false
		}
		r.Advance()
	}
	return true
}

// ParseInt skips whitespace and parses an optionally signed
// decimal integer.
func (r *Reader) ParseInt() (int, error) {
	r.SkipWhitespace()
	if r.err != nil {
		return 0, errors.Wrapf(r.err, "line %d", r.line)
	}
	if r.cur == EOF {
		return 0, errors.Wrapf(io.ErrUnexpectedEOF, "line %d: expected integer", r.line)
	}
	neg := false
	switch r.cur {
	case '-':
		neg = true
		r.Advance()
	case '+':
		r.Advance()
	}
	if r.cur < '0' || r.cur > '9' {
		return 0, r.unexpected()
	}
	var v int64
	for r.cur >= '0' && r.cur <= '9' {
		v = v*10 + int64(r.cur-'0')
		if v > math.MaxInt32 {
			return 0, errors.Errorf("line %d: integer overflow", r.line)
		}
		r.Advance()
	}
	if r.cur != EOF && !isSpace(r.cur) {
		return 0, r.unexpected()
	}
	if neg {
		v = -v
	}
	return int(v), nil
}

func (r *Reader) unexpected() error {
	if r.cur == EOF {
		return errors.Wrapf(io.ErrUnexpectedEOF, "line %d: expected digit", r.line)
	}
	return errors.Errorf("line %d: unexpected char %q", r.line, rune(r.cur))
}
