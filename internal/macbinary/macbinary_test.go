// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package macbinary

import (
	"encoding/binary"
	"testing"

	"github.com/pappadf/peeler/internal/crc16"
	"github.com/stretchr/testify/require"
)

// buildMacBinary constructs a valid 128-byte MacBinary II header plus
// padded forks, mirroring validate/parseHeader's field layout exactly.
func buildMacBinary(name string, macType, macCreator uint32, flags uint16, data, rsrc []byte) []byte {
	hdr := make([]byte, block)
	hdr[0] = 0
	hdr[1] = byte(len(name))
	copy(hdr[2:], name)
	binary.BigEndian.PutUint32(hdr[65:], macType)
	binary.BigEndian.PutUint32(hdr[69:], macCreator)
	hdr[73] = byte(flags >> 8)
	hdr[74] = 0
	binary.BigEndian.PutUint32(hdr[83:], uint32(len(data)))
	binary.BigEndian.PutUint32(hdr[87:], uint32(len(rsrc)))
	binary.BigEndian.PutUint16(hdr[120:], 0) // no secondary header
	hdr[101] = byte(flags)

	crc := crc16.XMODEM(hdr[:124])
	binary.BigEndian.PutUint16(hdr[124:], crc)

	out := append([]byte{}, hdr...)
	out = append(out, data...)
	out = append(out, make([]byte, pad128(len(data)))...)
	out = append(out, rsrc...)
	out = append(out, make([]byte, pad128(len(rsrc)))...)
	return out
}

func TestDetectAndPeelFile(t *testing.T) {
	blob := buildMacBinary("Hello", 0x54455854, 0x74747874, 0, []byte("some data fork bytes"), []byte("some resource bytes"))
	require.True(t, Detect(blob))

	f, err := PeelFile(blob)
	require.NoError(t, err)
	require.Equal(t, "Hello", f.Name)
	require.Equal(t, uint32(0x54455854), f.MacType)
	require.Equal(t, []byte("some data fork bytes"), f.DataFork)
	require.Equal(t, []byte("some resource bytes"), f.ResourceFork)
}

func TestPeelPrefersResourceForkWhenDataForkIsNotStuffIt(t *testing.T) {
	blob := buildMacBinary("app.sea", 0, 0, 0, []byte("plain data fork, not an archive"), []byte("compressed resource fork payload"))
	got, err := Peel(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("compressed resource fork payload"), got)
}

func TestPeelKeepsDataForkWhenItLooksLikeStuffIt(t *testing.T) {
	dataFork := make([]byte, 22)
	copy(dataFork[0:4], "SIT!")
	copy(dataFork[10:14], "rLau")
	blob := buildMacBinary("archive.sit.bin", 0, 0, 0, dataFork, []byte("resource fork present but ignored"))
	got, err := Peel(blob)
	require.NoError(t, err)
	require.Equal(t, dataFork, got)
}

func TestPeelKeepsDataForkWhenNoResourceFork(t *testing.T) {
	blob := buildMacBinary("onlydata", 0, 0, 0, []byte("only a data fork here"), nil)
	got, err := Peel(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("only a data fork here"), got)
}

func TestFinderFlagsCleared(t *testing.T) {
	in := uint16(1<<0 | 1<<1 | 1<<8 | 1<<9 | 1<<10 | 1<<3)
	blob := buildMacBinary("f", 0, 0, in, []byte("x"), nil)
	f, err := PeelFile(blob)
	require.NoError(t, err)
	require.Equal(t, uint16(1<<3), f.FinderFlags)
}

func TestInvalidHeaderRejected(t *testing.T) {
	blob := buildMacBinary("f", 0, 0, 0, []byte("x"), nil)
	blob[0] = 1 // byte 0 must be 0
	require.False(t, Detect(blob))
	_, err := PeelFile(blob)
	require.Error(t, err)
}

func TestNameLengthOutOfRangeRejected(t *testing.T) {
	blob := buildMacBinary("f", 0, 0, 0, []byte("x"), nil)
	blob[1] = 0 // name length must be 1..63
	require.False(t, Detect(blob))
}

func TestMacBinaryIFallbackWhenCRCMismatchAndByte82Zero(t *testing.T) {
	blob := buildMacBinary("old", 0, 0, 0, []byte("data"), nil)
	// Corrupt the stored CRC without byte 82 set: MacBinary I fallback.
	blob[124] ^= 0xFF
	blob[82] = 0
	require.True(t, Detect(blob))
}

func TestCRCMismatchWithByte82SetRejected(t *testing.T) {
	blob := buildMacBinary("old", 0, 0, 0, []byte("data"), nil)
	blob[124] ^= 0xFF
	blob[82] = 1
	require.False(t, Detect(blob))
}

func TestForkLengthAboveMaxRejected(t *testing.T) {
	blob := buildMacBinary("f", 0, 0, 0, nil, nil)
	binary.BigEndian.PutUint32(blob[83:], 0x80000000)
	crc := crc16.XMODEM(blob[:124])
	binary.BigEndian.PutUint16(blob[124:], crc)
	_, err := PeelFile(blob)
	require.Error(t, err)
}

func TestTruncatedForkRejected(t *testing.T) {
	blob := buildMacBinary("f", 0, 0, 0, []byte("0123456789"), nil)
	truncated := blob[:block+5]
	_, err := PeelFile(truncated)
	require.Error(t, err)
}
