// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"codello.dev/ldap/internal/vlq"
)

// Encode returns the BER encoding of t. The returned slice is exactly
// [Tag.Size] bytes long. Encoding a valid Tag cannot fail; tags built through
// [NewTag] or [Decode] uphold the required invariants by construction.
func (t Tag) Encode() []byte {
	return t.append(make([]byte, 0, t.Size))
}

// append appends the encoding of t to dst: identifier octets, length octets,
// then the contents, descending depth-first into constructed payloads.
func (t Tag) append(dst []byte) []byte {
	b := byte(t.Type.Class) << 6
	if t.Type.Structure == StructureConstructed {
		b |= 0x20
	}
	if t.Type.Class == ClassUniversal || t.Type.Number <= 30 {
		// low-tag-number form: the number fits the 5-bit field
		dst = append(dst, b|byte(t.Type.Number))
	} else {
		dst = append(dst, b|0x1f)
		dst = vlq.Append(dst, t.Type.Number)
	}

	dst = appendLength(dst, t.Length)

	switch v := t.Value.(type) {
	case Primitive:
		dst = append(dst, v...)
	case Constructed:
		for _, c := range v {
			dst = c.append(dst)
		}
	}
	return dst
}

// appendLength appends the length octets for a contents length of n: the
// short form for lengths below 128, otherwise a leading octet carrying the
// count of the following octets, which hold n in minimal big-endian form.
func appendLength(dst []byte, n uint64) []byte {
	if n < 128 {
		return append(dst, byte(n))
	}
	numBytes := 0
	for l := n; l > 0; l >>= 8 {
		numBytes++
	}
	dst = append(dst, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*i)))
	}
	return dst
}

// appendInt appends the minimal two's-complement big-endian representation of
// v, the content octets of an INTEGER tag.
func appendInt(dst []byte, v int64) []byte {
	n := 1
	for x := v; x > 0x7f || x < -0x80; x >>= 8 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}
