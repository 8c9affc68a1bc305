// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package bitio

import (
	"io"
	"testing"
)

func TestMSBReaderReadBits(t *testing.T) {
	// 0xB4 = 1011_0100
	r := NewMSBReader([]byte{0xB4})
	if v, err := r.ReadBits(4); err != nil || v != 0xB {
		t.Fatalf("first nibble: got %x, %v", v, err)
	}
	if v, err := r.ReadBits(4); err != nil || v != 0x4 {
		t.Fatalf("second nibble: got %x, %v", v, err)
	}
	if _, err := r.ReadBit(); err != io.ErrUnexpectedEOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestMSBReaderAlignAndSkip(t *testing.T) {
	r := NewMSBReader([]byte{0xFF, 0xAA, 0xBB})
	if _, err := r.ReadBits(3); err != nil {
		t.Fatal(err)
	}
	r.AlignByte()
	if r.BytePos() != 1 {
		t.Fatalf("got byte pos %d, want 1", r.BytePos())
	}
	r.SkipBytes(1)
	v, err := r.ReadBits(8)
	if err != nil || v != 0xBB {
		t.Fatalf("got %x, %v, want 0xBB", v, err)
	}
	if r.Remaining() {
		t.Fatal("expected no bits remaining")
	}
}

func TestLSBReaderReadBits(t *testing.T) {
	// 0xB4 = 1011_0100; LSB-first reassembly of the low 4 bits gives 0x4,
	// then the high 4 bits give 0xB.
	r := NewLSBReader([]byte{0xB4})
	if v, err := r.ReadBits(4); err != nil || v != 0x4 {
		t.Fatalf("first nibble: got %x, %v", v, err)
	}
	if v, err := r.ReadBits(4); err != nil || v != 0xB {
		t.Fatalf("second nibble: got %x, %v", v, err)
	}
}

func TestLSBReaderEOF(t *testing.T) {
	r := NewLSBReader([]byte{0x01})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadBit(); err != io.ErrUnexpectedEOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLSBReaderSpansBytes(t *testing.T) {
	r := NewLSBReader([]byte{0xFF, 0x01})
	if v, err := r.ReadBits(9); err != nil || v != 0x1FF {
		t.Fatalf("got %x, %v, want 0x1FF", v, err)
	}
}
