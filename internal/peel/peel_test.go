// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package peel

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/pappadf/peeler/internal/crc16"
	"github.com/pappadf/peeler/internal/entry"
	"github.com/stretchr/testify/require"
)

func TestDetectNone(t *testing.T) {
	name, kind := Detect([]byte("just some random bytes, not any known format"))
	require.Equal(t, "", name)
	require.Equal(t, KindNone, kind)
}

func TestDetectSIT(t *testing.T) {
	buf := make([]byte, 22)
	copy(buf[0:4], "SIT!")
	copy(buf[10:14], "rLau")
	name, kind := Detect(buf)
	require.Equal(t, "sit", name)
	require.Equal(t, KindArchive, kind)
}

func TestDetectHQX(t *testing.T) {
	buf := []byte("(This file must be converted with BinHex 4.0)\n:abc")
	name, kind := Detect(buf)
	require.Equal(t, "hqx", name)
	require.Equal(t, KindWrapper, kind)
}

func TestPeelUnknownBlobWrapsSingleFile(t *testing.T) {
	src := []byte("totally opaque binary payload")
	list, warnings, err := Peel(src)
	require.NoError(t, err)
	require.Nil(t, warnings)
	require.Len(t, list, 1)
	require.Equal(t, src, list[0].Data)
	require.Equal(t, "", list[0].Name)
}

// swapFormats temporarily replaces the handler table with a synthetic one
// for the duration of the calling test, restoring the real table on
// cleanup. Used to drive peelDepth/recursiveRepeel's depth caps with a
// format that always re-detects, which no real format in this repo does.
func swapFormats(t *testing.T, fake []format) {
	t.Helper()
	orig := formats
	formats = fake
	t.Cleanup(func() { formats = orig })
}

// A wrapper whose peelWrapper is the identity function re-detects forever
// without the depth cap. This drives peelDepth's own layer loop exactly
// maxDepth times and checks it still terminates with a single-file result,
// the externally observable half of testable property 6 (bounded
// recursion).
func TestPeelLayerLoopCapStopsInfiniteWrapperChain(t *testing.T) {
	calls := 0
	swapFormats(t, []format{{
		name:   "loop",
		kind:   KindWrapper,
		detect: func([]byte) bool { return true },
		peelWrapper: func(b []byte) ([]byte, error) {
			calls++
			return b, nil
		},
	}})

	list, warnings, err := Peel([]byte("x"))
	require.NoError(t, err)
	require.Nil(t, warnings)
	require.Len(t, list, 1)
	require.Equal(t, []byte("x"), list[0].Data)
	require.Equal(t, maxDepth, calls)
}

// An archive whose sole member re-detects as a wrapper that unwraps back
// to an archive, forever, drives peelDepth's depth parameter up through
// recursiveRepeel's recursion on every round trip. Without the depth >=
// maxDepth short-circuit in peelDepth this recurses without bound; with
// it, the chain terminates after exactly maxDepth nested calls and the
// innermost call's wrapSingleFile result bubbles back out unchanged.
func TestRecursiveRepeelDepthCapStopsInfiniteArchiveWrapperLoop(t *testing.T) {
	const marker = "loopback"
	swapFormats(t, []format{
		{
			name:   "wrap",
			kind:   KindWrapper,
			detect: func(b []byte) bool { return string(b) == marker },
			peelWrapper: func(b []byte) ([]byte, error) {
				return []byte(marker + "!"), nil
			},
		},
		{
			name:   "arc",
			kind:   KindArchive,
			detect: func(b []byte) bool { return string(b) != marker },
			peelArchive: func(b []byte) (entry.List, error) {
				return entry.List{{Data: []byte(marker)}}, nil
			},
		},
	})

	list, _, err := Peel([]byte(marker))
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, []byte(marker), list[0].Data)
}

func TestRecursiveRepeelSwallowsSubPeelFailureButReportsWarning(t *testing.T) {
	bad := []byte("(This file must be converted with BinHex 4.0)\n:")
	list, warnings := recursiveRepeel(List{{Metadata: entry.Metadata{Name: "bad.hqx"}, Data: bad}}, 0)
	require.Len(t, list, 1)
	require.Equal(t, bad, list[0].Data)
	require.Len(t, warnings, 1)
	require.Equal(t, "bad.hqx", warnings[0].Name)
	require.Error(t, warnings[0].Err)
}

func TestRecursiveRepeelDoesNotFollowArchiveSignatures(t *testing.T) {
	buf := make([]byte, 22)
	copy(buf[0:4], "SIT!")
	copy(buf[10:14], "rLau")
	list, warnings := recursiveRepeel(List{{Data: buf}}, 0)
	require.Nil(t, warnings)
	require.Len(t, list, 1)
	require.Equal(t, buf, list[0].Data)
}

// buildClassicSITArchive assembles a minimal one-file classic StuffIt
// archive (method 0, raw passthrough) directly, mirroring
// internal/sit/classic.go's field layout, for use as the payload of the
// wrapper fixtures below.
func buildClassicSITArchive(name string, data []byte) []byte {
	hdr := make([]byte, 22)
	copy(hdr[0:4], "SIT!")
	binary.BigEndian.PutUint16(hdr[4:], 1)
	copy(hdr[10:14], "rLau")

	entryHdr := make([]byte, 112)
	entryHdr[2] = byte(len(name))
	copy(entryHdr[3:], name)
	binary.BigEndian.PutUint32(entryHdr[88:], uint32(len(data)))
	binary.BigEndian.PutUint32(entryHdr[96:], uint32(len(data)))
	binary.BigEndian.PutUint16(entryHdr[102:], crc16.Reflected(data))

	buf := append([]byte{}, hdr...)
	buf = append(buf, entryHdr...)
	buf = append(buf, data...)
	return buf
}

const hqxAlphabet = "!\"#$%&'()*+,-012345689@ABCDEFGHIJKLMNPQRSTUVXYZ[`abcdefhijklmpqr"

func encode6to8(data []byte) string {
	var accum uint32
	var bits uint
	var sb strings.Builder
	for _, b := range data {
		accum = (accum << 8) | uint32(b)
		bits += 8
		for bits >= 6 {
			bits -= 6
			sb.WriteByte(hqxAlphabet[(accum>>bits)&0x3F])
		}
	}
	if bits > 0 {
		sb.WriteByte(hqxAlphabet[(accum<<(6-bits))&0x3F])
	}
	return sb.String()
}

func encodeRLE90(data []byte) []byte {
	var out []byte
	for _, b := range data {
		if b == 0x90 {
			out = append(out, 0x90, 0x00)
		} else {
			out = append(out, b)
		}
	}
	return out
}

// buildHQXFixture is a local, minimal mirror of internal/hqx's own test
// fixture builder (unexported there, so duplicated here rather than wired
// across a package boundary) used to drive the real hqx+sit pipeline
// end to end.
func buildHQXFixture(name string, macType, macCreator uint32, finderFlags uint16, data, rsrc []byte) []byte {
	hdr := make([]byte, 1+len(name)+19)
	hdr[0] = byte(len(name))
	copy(hdr[1:], name)
	n := len(name)
	binary.BigEndian.PutUint32(hdr[2+n:], macType)
	binary.BigEndian.PutUint32(hdr[6+n:], macCreator)
	binary.BigEndian.PutUint16(hdr[10+n:], finderFlags)
	binary.BigEndian.PutUint32(hdr[12+n:], uint32(len(data)))
	binary.BigEndian.PutUint32(hdr[16+n:], uint32(len(rsrc)))
	hdrCRCBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(hdrCRCBytes, crc16.XMODEM(hdr))

	dataCRC := make([]byte, 2)
	binary.BigEndian.PutUint16(dataCRC, crc16.XMODEM(data))
	rsrcCRC := make([]byte, 2)
	binary.BigEndian.PutUint16(rsrcCRC, crc16.XMODEM(rsrc))

	var pre []byte
	pre = append(pre, hdr...)
	pre = append(pre, hdrCRCBytes...)
	pre = append(pre, data...)
	pre = append(pre, dataCRC...)
	pre = append(pre, rsrc...)
	pre = append(pre, rsrcCRC...)

	rle := encodeRLE90(pre)
	encoded := encode6to8(rle)

	var sb strings.Builder
	sb.WriteString("(This file must be converted with BinHex 4.0)\r\n\r\n:")
	sb.WriteString(encoded)
	sb.WriteString(":")
	return []byte(sb.String())
}

const macBinaryBlock = 128

func pad128(n int) int {
	if n%128 == 0 {
		return 0
	}
	return 128 - n%128
}

// buildMacBinaryFixture is a local mirror of internal/macbinary's own test
// fixture builder, duplicated here for the same reason as buildHQXFixture.
func buildMacBinaryFixture(name string, macType, macCreator uint32, flags uint16, data, rsrc []byte) []byte {
	hdr := make([]byte, macBinaryBlock)
	hdr[0] = 0
	hdr[1] = byte(len(name))
	copy(hdr[2:], name)
	binary.BigEndian.PutUint32(hdr[65:], macType)
	binary.BigEndian.PutUint32(hdr[69:], macCreator)
	hdr[73] = byte(flags >> 8)
	hdr[74] = 0
	binary.BigEndian.PutUint32(hdr[83:], uint32(len(data)))
	binary.BigEndian.PutUint32(hdr[87:], uint32(len(rsrc)))
	binary.BigEndian.PutUint16(hdr[120:], 0)
	hdr[101] = byte(flags)

	binary.BigEndian.PutUint16(hdr[124:], crc16.XMODEM(hdr[:124]))

	out := append([]byte{}, hdr...)
	out = append(out, data...)
	out = append(out, make([]byte, pad128(len(data)))...)
	out = append(out, rsrc...)
	out = append(out, make([]byte, pad128(len(rsrc)))...)
	return out
}

func TestPeelNestedBinHexWrappedStuffIt(t *testing.T) {
	sitArchive := buildClassicSITArchive("inner.txt", []byte("hello from inside a classic StuffIt archive"))
	blob := buildHQXFixture("archive.sit.hqx", 0, 0, 0, sitArchive, nil)

	list, warnings, err := Peel(blob)
	require.NoError(t, err)
	require.Nil(t, warnings)
	require.Len(t, list, 1)
	require.Equal(t, []byte("hello from inside a classic StuffIt archive"), list[0].Data)
	require.Equal(t, "inner.txt", list[0].Name)
}

func TestPeelMacBinarySeaWithArchiveInResourceFork(t *testing.T) {
	sitArchive := buildClassicSITArchive("inner.rsrc", []byte("packed inside the resource fork"))
	blob := buildMacBinaryFixture("app.sea.bin", 0x5349542E, 0x41524331, 0,
		[]byte("plain stub data fork, not an archive"), sitArchive)

	list, warnings, err := Peel(blob)
	require.NoError(t, err)
	require.Nil(t, warnings)
	require.Len(t, list, 1)
	require.Equal(t, []byte("packed inside the resource fork"), list[0].Data)
	require.Equal(t, "inner.rsrc", list[0].Name)
}

func TestPeelTruncatedBinHexInputReturnsError(t *testing.T) {
	blob := buildHQXFixture("x", 0, 0, 0, []byte("some payload that will be cut off"), nil)
	truncated := blob[:len(blob)/2]
	_, _, err := Peel(truncated)
	require.Error(t, err)
}
