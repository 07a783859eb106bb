// Copyright 2026 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestEncode(t *testing.T) {
	op := NewUniversal(TypeBoolean, Primitive([]byte{0xff}))
	got := Encode(op, 1)
	want := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x01, 0x01, 0xff}
	if !slices.Equal(got, want) {
		t.Errorf("Encode() = %# x, want %# x", got, want)
	}
}

func TestEncode_DecodeMessage(t *testing.T) {
	tests := map[string]struct {
		op Tag
		id int64
	}{
		"Boolean":    {NewUniversal(TypeBoolean, Primitive([]byte{0xff})), 1},
		"LargeID":    {NewUniversal(TypeNull, Primitive(nil)), 1 << 30},
		"BindLike":   {mustTagD(ClassApplication, 0, Constructed{NewUniversal(TypeInteger, Primitive([]byte{0x03}))}), 7},
		"NegativeID": {NewUniversal(TypeNull, Primitive(nil)), -5},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			data := Encode(tc.op, tc.id)
			msg, n, err := DecodeMessage(data)
			if err != nil {
				t.Fatalf("DecodeMessage() error = %v", err)
			}
			if n != len(data) {
				t.Errorf("consumed = %d, want %d", n, len(data))
			}
			if msg.ID != tc.id {
				t.Errorf("ID = %d, want %d", msg.ID, tc.id)
			}
			if !reflect.DeepEqual(msg.Op, tc.op) {
				t.Errorf("Op mismatch\n got = %+v\nwant = %+v", msg.Op, tc.op)
			}
		})
	}
}

func TestDecodeMessage_Malformed(t *testing.T) {
	tests := map[string]struct {
		data    []byte
		wantErr error
	}{
		"NotASequence":  {NewUniversal(TypeOctetString, Primitive([]byte{0x01})).Encode(), errMalformedMessage},
		"EmptySequence": {NewUniversal(TypeSequence, Constructed{}).Encode(), errMalformedMessage},
		"MissingOp":     {NewUniversal(TypeSequence, Constructed{NewUniversal(TypeInteger, Primitive([]byte{0x01}))}).Encode(), errMalformedMessage},
		"FirstNotInteger": {NewUniversal(TypeSequence, Constructed{
			NewUniversal(TypeBoolean, Primitive([]byte{0xff})),
			NewUniversal(TypeNull, Primitive(nil)),
		}).Encode(), errMalformedMessage},
		"Truncated": {[]byte{0x30, 0x06, 0x02, 0x01}, ErrTruncated},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeMessage(tc.data)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("DecodeMessage(%# x) error = %v, wantErr %v", tc.data, err, tc.wantErr)
			}
		})
	}
}

func TestDecodeMessage_Stream(t *testing.T) {
	first := Encode(NewUniversal(TypeBoolean, Primitive([]byte{0xff})), 1)
	second := Encode(NewUniversal(TypeNull, Primitive(nil)), 2)
	data := append(append([]byte(nil), first...), second...)

	msg, n, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}
	if msg.ID != 1 || n != len(first) {
		t.Fatalf("first message: ID = %d, consumed = %d, want 1, %d", msg.ID, n, len(first))
	}
	msg, n, err = DecodeMessage(data[n:])
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}
	if msg.ID != 2 || n != len(second) {
		t.Fatalf("second message: ID = %d, consumed = %d, want 2, %d", msg.ID, n, len(second))
	}

	// a partial prefix of a message is reported as truncation
	if _, _, err = DecodeMessage(first[:3]); !errors.Is(err, ErrTruncated) {
		t.Errorf("DecodeMessage(partial) error = %v, want %v", err, ErrTruncated)
	}
}

func TestMessage_String(t *testing.T) {
	m := Message{ID: 3, Op: NewUniversal(TypeBoolean, Primitive([]byte{0xff}))}
	if got, want := m.String(), "Message(3, [UNIVERSAL Boolean]/p:1)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkEncode(b *testing.B) {
	op := mustTagD(ClassApplication, 3, Constructed{
		NewUniversal(TypeOctetString, Primitive(bytes.Repeat([]byte{0x41}, 64))),
	})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Encode(op, 42)
	}
}
