// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package cpt decodes Compact Pro (.cpt) archives: a random-access
// directory tree followed by a per-fork LZH+RLE decompression pipeline.
package cpt

import (
	"encoding/binary"

	"github.com/pappadf/peeler/internal/entry"
	"github.com/pappadf/peeler/internal/peelerr"
)

const component = "CPT"

const (
	magic        = 0x01
	volumeSingle = 0x01

	flagEncrypt = 0x0001
	flagRsrcLZH = 0x0002
	flagDataLZH = 0x0004
	dirMarker   = 0x80

	maxDirOffset = 0x10000000 // 256 MiB
)

// Detect reports whether src begins with a Compact Pro top header with a
// directory offset in bounds.
func Detect(src []byte) bool {
	if len(src) < 8 {
		return false
	}
	if src[0] != magic || src[1] != volumeSingle {
		return false
	}
	dirOff := binary.BigEndian.Uint32(src[4:])
	return dirOff >= 8 && dirOff <= maxDirOffset
}

type fileEntry struct {
	name         string
	fileOffset   uint32
	macType      uint32
	macCreator   uint32
	finderFlags  uint16
	flags        uint16
	rsrcUncomp   uint32
	dataUncomp   uint32
	rsrcComp     uint32
	dataComp     uint32
}

// Peel parses and decompresses a Compact Pro archive, returning every
// member with at least one nonempty fork.
func Peel(src []byte) (list entry.List, err error) {
	defer peelerr.Guard(&err)

	if len(src) < 8 {
		peelerr.Abort(component, "input too short (%d bytes)", len(src))
	}
	if src[0] != magic || src[1] != volumeSingle {
		peelerr.Abort(component, "bad magic (0x%02X 0x%02X)", src[0], src[1])
	}

	dirOff := binary.BigEndian.Uint32(src[4:])
	if dirOff < 8 || dirOff > maxDirOffset || int64(dirOff) >= int64(len(src)) {
		peelerr.Abort(component, "directory offset out of range (%d)", dirOff)
	}

	entries := parseDirectory(src, dirOff)

	for _, e := range entries {
		if e.dataUncomp == 0 && e.rsrcUncomp == 0 {
			continue
		}
		if e.flags&flagEncrypt != 0 {
			peelerr.Abort(component, "file %q is encrypted (unsupported)", e.name)
		}

		rsrcOffset := int64(e.fileOffset)
		dataOffset := rsrcOffset + int64(e.rsrcComp)

		var rsrc, data []byte
		if e.rsrcUncomp > 0 {
			if rsrcOffset+int64(e.rsrcComp) > int64(len(src)) {
				peelerr.Abort(component, "resource fork of %q extends past archive", e.name)
			}
			rsrc = decompressFork(src, rsrcOffset, int64(e.rsrcComp), int64(e.rsrcUncomp), e.flags&flagRsrcLZH != 0)
		}
		if e.dataUncomp > 0 {
			if dataOffset+int64(e.dataComp) > int64(len(src)) {
				peelerr.Abort(component, "data fork of %q extends past archive", e.name)
			}
			data = decompressFork(src, dataOffset, int64(e.dataComp), int64(e.dataUncomp), e.flags&flagDataLZH != 0)
		}

		list = append(list, entry.File{
			Metadata: entry.Metadata{
				Name:        entry.TruncateName(e.name),
				Type:        e.macType,
				Creator:     e.macCreator,
				FinderFlags: e.finderFlags,
			},
			Data: data,
			Rsrc: rsrc,
		})
	}
	return list, nil
}

// parseDirectory walks the recursive directory tree starting at dirOff,
// returning a flat depth-first list of file entries (folder names joined
// into the returned path).
func parseDirectory(src []byte, dirOff uint32) []fileEntry {
	if int64(dirOff)+7 > int64(len(src)) {
		peelerr.Abort(component, "truncated directory header")
	}
	total := binary.BigEndian.Uint16(src[dirOff+4:])
	commentLen := src[dirOff+6]
	cursor := int64(dirOff) + 7 + int64(commentLen)
	if cursor > int64(len(src)) {
		peelerr.Abort(component, "truncated directory comment")
	}

	var out []fileEntry
	walkEntries(src, &cursor, int(total), "", &out)
	return out
}

func walkEntries(src []byte, cursor *int64, remaining int, parent string, out *[]fileEntry) {
	for remaining > 0 {
		if *cursor >= int64(len(src)) {
			peelerr.Abort(component, "truncated directory entry")
		}
		nlFlag := src[*cursor]
		nlen := int(nlFlag & 0x7F)
		isDir := nlFlag&dirMarker != 0
		if *cursor+1+int64(nlen) > int64(len(src)) {
			peelerr.Abort(component, "truncated entry name")
		}
		name := string(src[*cursor+1 : *cursor+1+int64(nlen)])
		*cursor += 1 + int64(nlen)

		full := name
		if parent != "" {
			full = parent + "/" + name
		}

		if isDir {
			if *cursor+2 > int64(len(src)) {
				peelerr.Abort(component, "truncated folder header")
			}
			childCount := int(binary.BigEndian.Uint16(src[*cursor:]))
			*cursor += 2
			walkEntries(src, cursor, childCount, full, out)
			remaining -= childCount + 1
			continue
		}

		if *cursor+45 > int64(len(src)) {
			peelerr.Abort(component, "truncated file metadata")
		}
		m := src[*cursor:]
		fe := fileEntry{
			name:        full,
			fileOffset:  binary.BigEndian.Uint32(m[1:]),
			macType:     binary.BigEndian.Uint32(m[5:]),
			macCreator:  binary.BigEndian.Uint32(m[9:]),
			finderFlags: binary.BigEndian.Uint16(m[21:]),
			flags:       binary.BigEndian.Uint16(m[27:]),
			rsrcUncomp:  binary.BigEndian.Uint32(m[29:]),
			dataUncomp:  binary.BigEndian.Uint32(m[33:]),
			rsrcComp:    binary.BigEndian.Uint32(m[37:]),
			dataComp:    binary.BigEndian.Uint32(m[41:]),
		}
		*out = append(*out, fe)
		*cursor += 45
		remaining--
	}
}

// decompressFork runs the per-fork LZH(optional)+RLE(mandatory) pipeline
// over the compressed bytes at [offset, offset+compLen) and returns
// exactly uncompLen decompressed bytes.
func decompressFork(src []byte, offset, compLen, uncompLen int64, useLZH bool) []byte {
	comp := src[offset : offset+compLen]

	var source func() (byte, bool)
	if useLZH {
		lz := newLZHDecoder(comp)
		source = lz.next
	} else {
		s := &sliceSource{buf: comp}
		source = s.next
	}

	rle := &rleDecoder{src: source}
	out := make([]byte, uncompLen)
	for i := range out {
		b, ok := rle.next()
		if !ok {
			peelerr.Abort(component, "fork truncated after %d of %d bytes", i, uncompLen)
		}
		out[i] = b
	}
	return out
}

type sliceSource struct {
	buf []byte
	pos int
}

func (s *sliceSource) next() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	b := s.buf[s.pos]
	s.pos++
	return b, true
}
