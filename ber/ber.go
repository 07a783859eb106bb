// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements the subset of the ASN.1 Basic Encoding Rules (BER)
// needed to carry the LDAP wire protocol over a byte stream. The Basic
// Encoding Rules are defined in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// # Tags
//
// One encoded unit is a tag-length-value (TLV) triple, represented by the
// [Tag] type: the [Type] describes the identifier octets (class, tag number
// and structure), the length octets declare the size of the contents, and the
// contents are either raw bytes ([Primitive]) or a sequence of nested tags
// ([Constructed]). Tags form an owned, acyclic, immutable tree. Build tags
// with [NewTag] or [NewUniversal] and serialize them with [Tag.Encode];
// [Decode] performs the inverse transformation.
//
// # Protocol Messages
//
// LDAP wraps every operation in a SEQUENCE containing an INTEGER message
// identifier followed by the operation tag. [Encode] produces this envelope
// and [DecodeMessage] parses it back into a [Message]. Neither function
// interprets the operation tag beyond its shape.
//
// The package is stateless: all functions are pure transformations of their
// inputs, so independent encode and decode operations may run concurrently
// without coordination. The indefinite-length encoding and non-BER encoding
// rules are not supported.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import "fmt"

// Message is one decoded protocol message: the message identifier and the
// operation tag it envelops.
type Message struct {
	ID int64
	Op Tag
}

// String returns a short human-readable description of m.
func (m Message) String() string {
	return fmt.Sprintf("Message(%d, %s)", m.ID, m.Op)
}

// Encode returns the wire bytes for one protocol message: a universal
// SEQUENCE tag whose contents are an INTEGER tag holding messageID followed
// by the operation tag op.
func Encode(op Tag, messageID int64) []byte {
	id := NewUniversal(TypeInteger, Primitive(appendInt(nil, messageID)))
	return NewUniversal(TypeSequence, Constructed{id, op}).Encode()
}

// DecodeMessage parses one protocol message from the beginning of data and
// returns it together with the number of bytes consumed. Like [Decode] it
// reports incomplete input as [ErrTruncated] and leaves trailing bytes to the
// caller. A complete TLV that does not have the envelope shape produced by
// [Encode] results in an error matching errMalformedMessage.
func DecodeMessage(data []byte) (Message, int, error) {
	t, n, err := Decode(data)
	if err != nil {
		return Message{}, 0, err
	}
	if t.Type.Class != ClassUniversal || t.Type.UniversalType() != TypeSequence {
		return Message{}, 0, fmt.Errorf("%w: not a SEQUENCE: %s", errMalformedMessage, t)
	}
	seq, ok := t.Value.(Constructed)
	if !ok || len(seq) != 2 {
		return Message{}, 0, fmt.Errorf("%w: expected 2 elements, got %d", errMalformedMessage, len(seq))
	}
	idTag := seq[0]
	p, ok := idTag.Value.(Primitive)
	if !ok || idTag.Type.Class != ClassUniversal || idTag.Type.UniversalType() != TypeInteger {
		return Message{}, 0, fmt.Errorf("%w: first element is not an INTEGER: %s", errMalformedMessage, idTag)
	}
	id, err := parseInt(p)
	if err != nil {
		return Message{}, 0, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}
	return Message{ID: id, Op: seq[1]}, n, nil
}
