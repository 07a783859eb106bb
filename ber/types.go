// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"codello.dev/ldap/internal/vlq"
)

// Class holds the class part of a BER identifier. The class acts as a
// namespace for the tag number. A Class value is an unsigned 2-bit integer.
// Class values whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= ClassPrivate
}

// UniversalType identifies one of the types defined in the [ClassUniversal]
// namespace by Rec. ITU-T X.680, Section 8, Table 1. Only the codes 0–13 and
// 16–30 are defined; 14 and 15 are reserved and 31 is the escape value
// signalling the high-tag-number form, so none of them are valid
// UniversalType values.
//
//go:generate stringer -type=UniversalType -trimprefix=Type
type UniversalType uint8

// The universal type codes defined in the [ClassUniversal] namespace.
const (
	TypeEndOfContents    UniversalType = 0
	TypeBoolean          UniversalType = 1
	TypeInteger          UniversalType = 2
	TypeBitString        UniversalType = 3
	TypeOctetString      UniversalType = 4
	TypeNull             UniversalType = 5
	TypeOID              UniversalType = 6
	TypeObjectDescriptor UniversalType = 7
	TypeExternal         UniversalType = 8
	TypeReal             UniversalType = 9
	TypeEnumerated       UniversalType = 10
	TypeEmbeddedPDV      UniversalType = 11
	TypeUTF8String       UniversalType = 12
	TypeRelativeOID      UniversalType = 13
	TypeSequence         UniversalType = 16
	TypeSet              UniversalType = 17
	TypeNumericString    UniversalType = 18
	TypePrintableString  UniversalType = 19
	TypeTeletexString    UniversalType = 20
	TypeVideotexString   UniversalType = 21
	TypeIA5String        UniversalType = 22
	TypeUTCTime          UniversalType = 23
	TypeGeneralizedTime  UniversalType = 24
	TypeGraphicString    UniversalType = 25
	TypeVisibleString    UniversalType = 26
	TypeGeneralString    UniversalType = 27
	TypeUniversalString  UniversalType = 28
	TypeCharacterString  UniversalType = 29
	TypeBMPString        UniversalType = 30
)

// IsValid reports whether t is one of the defined universal type codes.
func (t UniversalType) IsValid() bool {
	return t <= TypeBMPString && t != 14 && t != 15
}

// UniversalTypeFromCode maps the 5-bit type code of an identifier octet in the
// universal class to its [UniversalType] value. Codes outside the defined set
// (14, 15 and everything from 31 upwards) result in a [*UniversalTypeError].
func UniversalTypeFromCode(code uint8) (UniversalType, error) {
	t := UniversalType(code)
	if !t.IsValid() {
		return 0, &UniversalTypeError{Code: uint64(code)}
	}
	return t, nil
}

// Structure indicates whether the contents of a tag are a plain byte string
// (primitive encoding) or a sequence of nested tags (constructed encoding).
// It corresponds to bit 6 of the leading identifier octet.
//
//go:generate stringer -type=Structure -trimprefix=Structure
type Structure uint8

// The two possible [Structure] values.
const (
	StructurePrimitive Structure = iota
	StructureConstructed
)

// IsValid reports whether s is a valid Structure value.
func (s Structure) IsValid() bool {
	return s <= StructureConstructed
}

// errInvalidClass indicates a class selector outside the 2-bit range.
var errInvalidClass = errors.New("ber: invalid class")

// Type describes how the identifier octets of a tag are rendered: the class
// namespace, the tag number within that namespace, and the structure bit. For
// [ClassUniversal] the Number must be a valid [UniversalType] code.
type Type struct {
	Class     Class
	Number    uint64
	Structure Structure
}

// NewType composes a Type from its parts, validating that class is one of the
// four defined classes and that, in the universal class, number maps onto a
// defined [UniversalType]. Tag numbers in the other three classes are
// unrestricted up to the range of uint64.
func NewType(class Class, number uint64, structure Structure) (Type, error) {
	switch class {
	case ClassUniversal:
		if number > math.MaxUint8 {
			return Type{}, &UniversalTypeError{Code: number}
		}
		if _, err := UniversalTypeFromCode(uint8(number)); err != nil {
			return Type{}, err
		}
	case ClassApplication, ClassContextSpecific, ClassPrivate:
	default:
		return Type{}, errInvalidClass
	}
	return Type{Class: class, Number: number, Structure: structure}, nil
}

// UniversalType returns the universal type code of t. It must only be called
// on types in the universal class, which hold a valid code by construction.
func (t Type) UniversalType() UniversalType {
	return UniversalType(t.Number)
}

// String returns a string representation of t in a format similar to the one
// used in ASN.1 notation: the tag number enclosed by square brackets and
// prefixed with the class, followed by /p or /c for the structure. To avoid
// ambiguity the UNIVERSAL word is used for universal tags, although this is
// not valid ASN.1 syntax.
func (t Type) String() string {
	var s string
	switch t.Class {
	case ClassUniversal:
		s = "[UNIVERSAL " + t.UniversalType().String() + "]"
	case ClassContextSpecific:
		s = "[" + strconv.FormatUint(t.Number, 10) + "]"
	default:
		s = "[" + strings.ToUpper(t.Class.String()) + " " + strconv.FormatUint(t.Number, 10) + "]"
	}
	if t.Structure == StructureConstructed {
		return s + "/c"
	}
	return s + "/p"
}

// numBytes returns the number of identifier octets needed to encode t. The
// universal class always fits the 5-bit number field; other classes need the
// high-tag-number form for numbers above 30 because 31 (0x1f) is reserved as
// the escape value.
func (t Type) numBytes() uint64 {
	if t.Class != ClassUniversal && t.Number > 30 {
		return 1 + uint64(vlq.Length(t.Number))
	}
	return 1
}

// lengthBytes returns the number of length octets needed to encode a contents
// length of n: one octet in the short form, otherwise one leading octet plus
// the minimal big-endian representation of n.
func lengthBytes(n uint64) uint64 {
	if n < 128 {
		return 1
	}
	l := uint64(1)
	for ; n > 0; n >>= 8 {
		l++
	}
	return l
}

// TagSize returns the total encoded size in bytes of a tag of type typ whose
// contents are payloadLen bytes long: identifier octets plus length octets
// plus the contents themselves. TagSize is pure; both the encoder (to size
// buffers exactly) and [NewTag] (to fill in [Tag.Size]) rely on it.
func TagSize(typ Type, payloadLen uint64) uint64 {
	return typ.numBytes() + lengthBytes(payloadLen) + payloadLen
}
