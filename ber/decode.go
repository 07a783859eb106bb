// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"

	"codello.dev/ldap/internal/vlq"
)

// Decode parses a single BER tag from the beginning of data and returns it
// together with the number of bytes consumed. Trailing bytes are not an
// error; callers parsing a stream use the consumed count to locate the next
// tag. If data does not yet contain one complete TLV, the returned error
// matches [ErrTruncated] so callers can buffer more input and retry.
//
// Decode never trusts its input: every malformed encoding results in a
// [*SyntaxError] wrapping the specific failure, and no partially decoded Tag
// is ever returned. Decoded contents are copied, so the returned Tag does not
// alias data.
func Decode(data []byte) (Tag, int, error) {
	d := &decoder{data: data, lim: len(data)}
	t, err := d.decodeTag()
	if err != nil {
		return Tag{}, 0, err
	}
	return t, d.off, nil
}

// decoder decodes tags from a byte slice. The lim field bounds reads to the
// contents region of the constructed tag currently being descended into.
type decoder struct {
	data []byte
	off  int
	lim  int
}

// ReadByte implements [io.ByteReader] within the current region.
func (d *decoder) ReadByte() (byte, error) {
	if d.off >= d.lim {
		return 0, io.EOF
	}
	b := d.data[d.off]
	d.off++
	return b, nil
}

// remaining returns the number of unread bytes in the current region.
func (d *decoder) remaining() uint64 {
	return uint64(d.lim - d.off)
}

// decodeTag parses one complete TLV at the current offset. Errors are
// reported as a [*SyntaxError] positioned at the start of the offending TLV.
func (d *decoder) decodeTag() (Tag, error) {
	start := d.off
	fail := func(err error) (Tag, error) {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncated
		}
		var se *SyntaxError
		if errors.As(err, &se) {
			// already positioned by a nested call
			return Tag{}, err
		}
		return Tag{}, &SyntaxError{Err: err, ByteOffset: int64(start)}
	}

	// identifier octets
	b, err := d.ReadByte()
	if err != nil {
		return fail(err)
	}
	class := Class(b >> 6)
	structure := StructurePrimitive
	if b&0x20 != 0 {
		structure = StructureConstructed
	}
	number := uint64(b & 0x1f)
	if number == 0x1f {
		// high-tag-number form: the number follows base-128 encoded
		if number, err = vlq.Read[uint64](d); err != nil {
			return fail(err)
		}
	}
	typ, err := NewType(class, number, structure)
	if err != nil {
		return fail(err)
	}

	// length octets
	if b, err = d.ReadByte(); err != nil {
		return fail(err)
	}
	var length uint64
	if b&0x80 == 0 {
		length = uint64(b & 0x7f)
	} else {
		numBytes := int(b & 0x7f)
		if numBytes == 0 {
			return fail(ErrIndefiniteLength)
		}
		if numBytes > 8 {
			return fail(errLengthTooLarge)
		}
		for i := 0; i < numBytes; i++ {
			if b, err = d.ReadByte(); err != nil {
				return fail(err)
			}
			length = length<<8 | uint64(b)
		}
	}
	if d.remaining() < length {
		return fail(ErrTruncated)
	}

	// contents octets
	var payload Payload
	if structure == StructurePrimitive {
		payload = Primitive(append([]byte(nil), d.data[d.off:d.off+int(length)]...))
		d.off += int(length)
	} else {
		end := d.off + int(length)
		lim := d.lim
		d.lim = end
		var children Constructed
		for d.off < end {
			child, err := d.decodeTag()
			if err != nil {
				if errors.Is(err, ErrTruncated) {
					// The parent's contents are fully buffered, so running out
					// of bytes here means a child overran the parent's length.
					err = &SyntaxError{Err: errExceedsParent, ByteOffset: int64(start)}
				}
				return Tag{}, err
			}
			children = append(children, child)
		}
		d.lim = lim
		payload = children
	}

	return Tag{
		Type:   typ,
		Length: length,
		Value:  payload,
		Size:   uint64(d.off - start),
	}, nil
}

// parseInt parses the content octets of an INTEGER tag as a two's-complement
// big-endian signed integer.
func parseInt(data []byte) (int64, error) {
	if len(data) == 0 {
		return 0, errors.New("ber: empty integer")
	}
	if len(data) > 8 {
		return 0, errors.New("ber: integer too large")
	}
	v := int64(int8(data[0])) // sign-extend the leading octet
	for _, b := range data[1:] {
		v = v<<8 | int64(b)
	}
	return v, nil
}
