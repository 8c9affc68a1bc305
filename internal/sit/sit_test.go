// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package sit

import (
	"encoding/binary"
	"testing"

	"github.com/pappadf/peeler/internal/bitio"
)

// buildClassicArchive assembles a minimal classic StuffIt archive (22-byte
// top header plus one 112-byte entry header, no compressed payload) with
// the given resource/data method bytes, for exercising parseClassic's
// per-entry flag handling in isolation from real compressed forks.
func buildClassicArchive(rm, dm byte) []byte {
	buf := make([]byte, classicHdrSize+entryHdrSize)
	copy(buf[0:4], "SIT!")
	binary.BigEndian.PutUint16(buf[4:], 1) // file count
	copy(buf[10:14], "rLau")

	hdr := buf[classicHdrSize:]
	hdr[0] = rm
	hdr[1] = dm
	hdr[2] = 1
	hdr[3] = 'f'
	return buf
}

func TestClassicEncryptedResourceForkRejected(t *testing.T) {
	buf := buildClassicArchive(0x10, 0x00)
	if _, err := Peel(buf); err == nil {
		t.Fatal("expected error decoding archive with encrypted resource fork")
	}
}

func TestClassicEncryptedDataForkRejected(t *testing.T) {
	buf := buildClassicArchive(0x00, 0x10)
	if _, err := Peel(buf); err == nil {
		t.Fatal("expected error decoding archive with encrypted data fork")
	}
}

func TestDetectClassic(t *testing.T) {
	buf := make([]byte, 22)
	copy(buf[0:4], "SIT!")
	copy(buf[10:14], "rLau")
	if !Detect(buf) {
		t.Fatal("expected classic signature to be detected")
	}
	if !LooksLikeSignature(buf) {
		t.Fatal("expected classic signature to match at offset 0")
	}
}

func TestDetectSIT5(t *testing.T) {
	buf := make([]byte, 80)
	copy(buf[0:16], "StuffIt (c)1997-")
	copy(buf[20:78], " Aladdin Systems, Inc., http://www.aladdinsys.com/StuffIt/")
	if !Detect(buf) {
		t.Fatal("expected SIT5 signature to be detected")
	}
	if !LooksLikeSignature(buf) {
		t.Fatal("expected SIT5 signature to match at offset 0")
	}
}

func TestDetectNone(t *testing.T) {
	buf := make([]byte, 100)
	if Detect(buf) {
		t.Fatal("expected zero buffer not to match any signature")
	}
	if LooksLikeSignature(buf) {
		t.Fatal("expected zero buffer not to match LooksLikeSignature")
	}
}

func TestDetectEmbedded(t *testing.T) {
	buf := make([]byte, 40)
	copy(buf[5:9], "ST60")
	copy(buf[15:19], "rLau")
	if !Detect(buf) {
		t.Fatal("expected embedded classic signature to be found")
	}
	if LooksLikeSignature(buf) {
		t.Fatal("LooksLikeSignature should require the signature at offset 0")
	}
}

func TestRLE90Literal(t *testing.T) {
	out := make([]byte, 3)
	n := decodeRLE90([]byte{0x41, 0x42, 0x43}, out)
	if n != 3 || string(out) != "ABC" {
		t.Fatalf("got %q (%d bytes)", out[:n], n)
	}
}

func TestRLE90EscapedLiteral(t *testing.T) {
	out := make([]byte, 1)
	n := decodeRLE90([]byte{0x90, 0x00}, out)
	if n != 1 || out[0] != 0x90 {
		t.Fatalf("got %v want [0x90]", out[:n])
	}
}

func TestRLE90Repeat(t *testing.T) {
	// 'A' then marker with n=4 means 3 additional copies of 'A' (total 4).
	out := make([]byte, 4)
	n := decodeRLE90([]byte{0x41, 0x90, 0x04}, out)
	want := []byte{0x41, 0x41, 0x41, 0x41}
	if n != 4 {
		t.Fatalf("got %d bytes, want 4", n)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("got %v want %v", out, want)
		}
	}
}

// packLE packs codes of the given bit width into a little-endian bitstream
// matching decodeLZW's reader: bit i of the stream lands at byte i/8, bit
// i%8 (LSB-first within each byte).
func packLE(codes []int, width int) []byte {
	var buf []byte
	bitpos := 0
	for _, c := range codes {
		byteOff := bitpos / 8
		shift := uint(bitpos % 8)
		acc := uint32(c) << shift
		for i := 0; i < 3; i++ {
			for byteOff+i >= len(buf) {
				buf = append(buf, 0)
			}
			buf[byteOff+i] |= byte(acc >> uint(8*i))
		}
		bitpos += width
	}
	return buf
}

func TestLZWRootCodesPassthrough(t *testing.T) {
	src := packLE([]int{'A', 'B', 'C'}, 9)
	out := make([]byte, 3)
	n := decodeLZW(src, out)
	if n != 3 || string(out) != "ABC" {
		t.Fatalf("got %q (%d bytes)", out[:n], n)
	}
}

// TestLZWKwKwKReferencesEntryUnderConstruction exercises the classic LZW
// "KwKwK" edge case: a code that names the dictionary entry currently being
// built (one past the last assigned code), which must expand to the
// previous string plus its own first byte repeated.
func TestLZWKwKwKReferencesEntryUnderConstruction(t *testing.T) {
	src := packLE([]int{'A', lzwFirstNew}, 9)
	out := make([]byte, 3)
	n := decodeLZW(src, out)
	if n != 3 || string(out[:n]) != "AAA" {
		t.Fatalf("got %q (%d bytes)", out[:n], n)
	}
}

func TestPredefinedTableShapes(t *testing.T) {
	for i := 0; i < 5; i++ {
		if len(predefinedFirstTable[i]) != m13SymCount {
			t.Fatalf("set %d: first table has %d entries, want %d", i, len(predefinedFirstTable[i]), m13SymCount)
		}
		if len(predefinedSecondTable[i]) != m13SymCount {
			t.Fatalf("set %d: second table has %d entries, want %d", i, len(predefinedSecondTable[i]), m13SymCount)
		}
		if len(predefinedDist[i]) == 0 {
			t.Fatalf("set %d: empty distance table", i)
		}
	}
}

// codewordStream packs a codeword's bits (MSB of the codeword first) into a
// byte buffer in the order method13's LSB-first bitstream reader consumes
// them, so a Tree built by direct insertion can be decode-tested in
// isolation from a real compressed stream.
func codewordStream(code uint32, length int) []byte {
	buf := make([]byte, (length+7)/8)
	for k := 0; k < length; k++ {
		bit := (code >> uint(length-1-k)) & 1
		if bit == 1 {
			buf[k/8] |= 1 << uint(k%8)
		}
	}
	return buf
}

func TestMetaTreeDecodesAllSymbols(t *testing.T) {
	meta := buildMetaTree()
	for i := 0; i < 37; i++ {
		br := bitio.NewLSBReader(codewordStream(m13MetaWords[i], m13MetaLens[i]))
		sym, err := meta.Decode(br)
		if err != nil {
			t.Fatalf("symbol %d: decode error: %v", i, err)
		}
		if int(sym) != i {
			t.Fatalf("codeword for symbol %d decoded as %d", i, sym)
		}
	}
}
