// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated indicates that the input ended before one complete TLV
	// could be decoded. Callers reading from a stream can treat this as a
	// signal to buffer more bytes and retry.
	ErrTruncated = errors.New("truncated data value")

	// ErrIndefiniteLength indicates that the input uses the indefinite-length
	// encoding (a length octet of 0x80), which this codec does not support.
	ErrIndefiniteLength = errors.New("indefinite-length encoding not supported")

	// errExceedsParent indicates a child tag whose encoding extends past the
	// declared length of its enclosing constructed tag.
	errExceedsParent = errors.New("element exceeds parent's declared length")

	// errLengthTooLarge indicates a long-form length with more octets than fit
	// into a uint64.
	errLengthTooLarge = errors.New("length too large")

	// errMalformedMessage indicates a decoded tag that does not have the shape
	// of a protocol message envelope.
	errMalformedMessage = errors.New("ber: malformed protocol message")
)

// UniversalTypeError indicates a tag number in the universal class that does
// not name one of the defined universal types.
type UniversalTypeError struct {
	Code uint64
}

func (e *UniversalTypeError) Error() string {
	return "invalid universal type code " + strconv.FormatUint(e.Code, 10)
}

// SyntaxError represents an error in the BER encoding of a decoded input. The
// error value contains the location of the error within the input and wraps
// the specific failure, so sentinel errors such as [ErrTruncated] remain
// matchable via [errors.Is].
type SyntaxError struct {
	Err error // underlying error

	// ByteOffset is the location of the error. The location is the start of
	// the TLV whose encoding is malformed.
	ByteOffset int64
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Error() string {
	b := []byte("ber: syntax error")
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
