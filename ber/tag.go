// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "strconv"

// Payload holds the contents of a [Tag]. It is a closed sum of the two
// possible contents encodings: [Primitive] for a plain byte string and
// [Constructed] for a sequence of nested tags. The structure bit of a tag is
// always derived from the payload variant, so the two cannot diverge.
type Payload interface {
	// Len returns the length of the encoded contents in bytes. For a
	// constructed payload this is the sum of the total encoded sizes of its
	// children, not the sum of their contents lengths.
	Len() uint64

	structure() Structure
}

// Primitive is a [Payload] consisting of raw content octets.
type Primitive []byte

// Len returns the number of content octets.
func (p Primitive) Len() uint64 { return uint64(len(p)) }

func (p Primitive) structure() Structure { return StructurePrimitive }

// Constructed is a [Payload] consisting of a sequence of nested tags. The
// payload exclusively owns its children; tag trees are strictly hierarchical
// and contain no back-references.
type Constructed []Tag

// Len returns the combined encoded size of all child tags.
func (c Constructed) Len() uint64 {
	var l uint64
	for _, t := range c {
		l += t.Size
	}
	return l
}

func (c Constructed) structure() Structure { return StructureConstructed }

// Tag is one complete TLV unit: its type, the declared length of its contents,
// the contents themselves, and the total encoded footprint of the tag
// including its identifier and length octets. Keeping Size on the tag lets a
// parent constructed payload sum the footprints of its children without
// re-deriving them.
//
// A Tag is immutable once built. Use [NewTag] or [NewUniversal] to construct
// tags programmatically, or [Decode] to parse them off the wire; both paths
// guarantee that Length matches the payload and that Size is consistent with
// [TagSize].
type Tag struct {
	Type   Type
	Length uint64 // contents length as it appears in the length octets
	Value  Payload
	Size   uint64 // total encoded size including identifier and length octets
}

// NewTag builds a Tag of the given class and tag number around payload. The
// structure bit is derived from the payload variant and the length fields are
// computed, so the resulting Tag upholds all encoding invariants by
// construction. NewTag fails like [NewType] does if class is invalid or if a
// universal tag number does not name a defined universal type.
func NewTag(class Class, number uint64, payload Payload) (Tag, error) {
	typ, err := NewType(class, number, payload.structure())
	if err != nil {
		return Tag{}, err
	}
	l := payload.Len()
	return Tag{
		Type:   typ,
		Length: l,
		Value:  payload,
		Size:   TagSize(typ, l),
	}, nil
}

// NewUniversal builds a Tag in the universal class. Passing a typ that is not
// a defined [UniversalType] is a programmer error and panics; use the
// predefined constants.
func NewUniversal(typ UniversalType, payload Payload) Tag {
	t, err := NewTag(ClassUniversal, uint64(typ), payload)
	if err != nil {
		panic("ber: NewUniversal: " + err.Error())
	}
	return t
}

// String returns a short human-readable description of t.
func (t Tag) String() string {
	return t.Type.String() + ":" + strconv.FormatUint(t.Length, 10)
}
