// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package sit decodes StuffIt archives: classic (.sit, versions 1.x-4.x,
// sequential 112-byte entry headers) and SIT5 (version 5.x, linked-list
// entry headers with an 80-byte ASCII banner). The two layouts are
// structurally incompatible but share the .sit extension and a single
// Peel entry point.
//
// Compression methods 0 (raw), 1 (RLE90), and 2 (LZW) are decoded in this
// package; methods 13 (LZSS+Huffman) and 15 (Arsenic/BWT) live in
// method13.go and arsenic.go.
package sit

import (
	"encoding/binary"

	"github.com/pappadf/peeler/internal/crc16"
	"github.com/pappadf/peeler/internal/entry"
	"github.com/pappadf/peeler/internal/peelerr"
)

const component = "SIT"

const (
	classicHdrSize = 22
	entryHdrSize   = 112

	sit5MinSize = 100

	folderStart = 0x20
	folderEnd   = 0x21
	maxDepth    = 10

	sit5MaxDirs    = 32
	sit5EntryMagic = 0xA5A5A5A5

	maxFiles = 65536
)

var classicSigs = [...]string{
	"SIT!", "ST46", "ST50", "ST60", "ST65", "STin", "STi2", "STi3", "STi4",
}

// forkInfo is the uncompressed/compressed length, CRC, and method for one
// fork, plus a slice into the archive bytes holding the compressed data.
type forkInfo struct {
	rawLen    uint32
	packedLen uint32
	crc       uint16
	method    uint8
	data      []byte
}

// fileEntry is one parsed file (metadata plus its two forks' fork info).
type fileEntry struct {
	name        string
	macType     uint32
	macCreator  uint32
	finderFlags uint16
	data        forkInfo
	rsrc        forkInfo
	hasRsrc     bool
}

// Detect reports whether src contains a recognizable classic or SIT5
// signature anywhere in the buffer.
func Detect(src []byte) bool {
	return findClassicMagic(src) >= 0 || findSIT5Magic(src) >= 0
}

// LooksLikeSignature reports whether buf begins with (not merely contains)
// a StuffIt signature. MacBinary's sniffer uses this to decide whether a
// MacBinary data fork is itself a nested StuffIt archive worth re-peeling.
func LooksLikeSignature(buf []byte) bool {
	if len(buf) >= classicHdrSize {
		for _, sig := range classicSigs {
			if string(buf[:4]) == sig && len(buf) >= 14 && string(buf[10:14]) == "rLau" {
				return true
			}
		}
	}
	if len(buf) >= 80 &&
		string(buf[:16]) == "StuffIt (c)1997-" &&
		string(buf[20:78]) == " Aladdin Systems, Inc., http://www.aladdinsys.com/StuffIt/" {
		return true
	}
	return false
}

func findClassicMagic(src []byte) int64 {
	if len(src) < classicHdrSize {
		return -1
	}
	limit := len(src) - 14
	for off := 0; off <= limit; off++ {
		if string(src[off+10:off+14]) != "rLau" {
			continue
		}
		for _, sig := range classicSigs {
			if string(src[off:off+4]) == sig {
				return int64(off)
			}
		}
	}
	return -1
}

func findSIT5Magic(src []byte) int64 {
	if len(src) < 80 {
		return -1
	}
	limit := len(src) - 80
	for off := 0; off <= limit; off++ {
		if string(src[off:off+16]) == "StuffIt (c)1997-" &&
			string(src[off+20:off+78]) == " Aladdin Systems, Inc., http://www.aladdinsys.com/StuffIt/" {
			return int64(off)
		}
	}
	return -1
}

// Peel detects, parses, and decompresses a StuffIt archive (classic or
// SIT5, preferring whichever signature appears earliest), returning every
// member with at least one nonempty fork.
func Peel(src []byte) (list entry.List, err error) {
	defer peelerr.Guard(&err)

	classicOff := findClassicMagic(src)
	sit5Off := findSIT5Magic(src)

	var entries []fileEntry
	switch {
	case classicOff >= 0 && (sit5Off < 0 || classicOff <= sit5Off):
		entries = parseClassic(src, int(classicOff))
	case sit5Off >= 0:
		entries = parseSIT5(src, int(sit5Off))
	default:
		peelerr.Abort(component, "no valid StuffIt signature found")
	}

	for _, e := range entries {
		if e.data.rawLen == 0 && !(e.hasRsrc && e.rsrc.rawLen > 0) {
			continue
		}
		f := entry.File{
			Metadata: entry.Metadata{
				Name:        entry.TruncateName(e.name),
				Type:        e.macType,
				Creator:     e.macCreator,
				FinderFlags: e.finderFlags,
			},
		}
		if e.data.rawLen > 0 {
			f.Data = decompressFork(&e.data)
		}
		if e.hasRsrc && e.rsrc.rawLen > 0 {
			f.Rsrc = decompressFork(&e.rsrc)
		}
		list = append(list, f)
	}
	return list, nil
}

// decompressFork dispatches on fi.method and, for methods 0/1/2 and 13,
// verifies the decompressed CRC-16 against fi.crc. Method 15 is not
// CRC-checked: its block footers carry their own CRC, which the Arsenic
// decoder reads and discards (matching sit.md's method-15 integrity note).
func decompressFork(fi *forkInfo) []byte {
	switch fi.method {
	case 13:
		out := decodeMethod13(fi.data, int(fi.rawLen))
		verifyCRC(out, fi.crc)
		return out
	case 15:
		return decodeArsenic(fi.data, int(fi.rawLen))
	}

	out := make([]byte, fi.rawLen)
	var produced int
	switch fi.method {
	case 0:
		if fi.packedLen < fi.rawLen {
			peelerr.Abort(component, "method 0 packed (%d) < raw (%d)", fi.packedLen, fi.rawLen)
		}
		copy(out, fi.data[:fi.rawLen])
		produced = int(fi.rawLen)
	case 1:
		produced = decodeRLE90(fi.data, out)
	case 2:
		produced = decodeLZW(fi.data, out)
	default:
		peelerr.Abort(component, "unsupported compression method %d", fi.method)
	}
	verifyCRC(out[:produced], fi.crc)
	return out
}

func verifyCRC(buf []byte, want uint16) {
	got := crc16.Reflected(buf)
	if got != want {
		peelerr.Abort(component, "fork CRC mismatch (expected 0x%04X, got 0x%04X)", want, got)
	}
}

func rd16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func rd32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
