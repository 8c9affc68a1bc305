// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package appledouble writes and reads the AppleDouble sidecar format the
// peeler CLI uses to carry a classic Mac resource fork and Finder metadata
// alongside a plain data-fork file on a filesystem with no fork support.
//
// The byte layout is the exact subset of the AppleDouble standard spec.md
// §6 mandates: a fixed header, one or two entry descriptors, a 32-byte
// Finder-info block, and (when present) the raw resource fork.
package appledouble

import (
	"encoding/binary"

	"github.com/pappadf/peeler/internal/entry"
	"github.com/pappadf/peeler/internal/peelerr"
)

const component = "appledouble"

const (
	magicNumber = 0x00051607
	versionNum  = 0x00020000

	headerSize = 26 // magic(4) + version(4) + filler(16) + count(2)
	descSize   = 12 // id(4) + offset(4) + length(4)
	finderSize = 32 // type(4) + creator(4) + flags(2) + 22 zeros

	entryIDResourceFork = 2
	entryIDFinderInfo   = 9
)

// NeedsSidecar reports whether meta/rsrc carry anything an AppleDouble
// sidecar would need to preserve: a nonempty resource fork, or a nonzero
// type, creator, or Finder-flags field.
func NeedsSidecar(meta entry.Metadata, rsrc []byte) bool {
	return len(rsrc) > 0 || meta.Type != 0 || meta.Creator != 0 || meta.FinderFlags != 0
}

// Write builds an AppleDouble sidecar for meta plus an optional resource
// fork, per spec.md §6's exact byte layout.
func Write(meta entry.Metadata, rsrc []byte) []byte {
	hasRsrc := len(rsrc) > 0

	count := 1
	if hasRsrc {
		count = 2
	}

	buf := make([]byte, headerSize+count*descSize+finderSize+len(rsrc))

	binary.BigEndian.PutUint32(buf[0:], magicNumber)
	binary.BigEndian.PutUint32(buf[4:], versionNum)
	// bytes 8..23 are the 16-byte filler, left zero.
	binary.BigEndian.PutUint16(buf[24:], uint16(count))

	finderOff := uint32(headerSize + count*descSize)

	descOff := headerSize
	binary.BigEndian.PutUint32(buf[descOff:], entryIDFinderInfo)
	binary.BigEndian.PutUint32(buf[descOff+4:], finderOff)
	binary.BigEndian.PutUint32(buf[descOff+8:], finderSize)
	descOff += descSize

	if hasRsrc {
		rsrcOff := finderOff + finderSize
		binary.BigEndian.PutUint32(buf[descOff:], entryIDResourceFork)
		binary.BigEndian.PutUint32(buf[descOff+4:], rsrcOff)
		binary.BigEndian.PutUint32(buf[descOff+8:], uint32(len(rsrc)))
	}

	finder := buf[finderOff : finderOff+finderSize]
	binary.BigEndian.PutUint32(finder[0:], meta.Type)
	binary.BigEndian.PutUint32(finder[4:], meta.Creator)
	binary.BigEndian.PutUint16(finder[8:], meta.FinderFlags)
	// finder[10:32] are 22 reserved zero bytes.

	if hasRsrc {
		copy(buf[finderOff+finderSize:], rsrc)
	}

	return buf
}

// Descriptor is one parsed entry descriptor from a sidecar's header.
type Descriptor struct {
	ID     uint32
	Offset uint32
	Length uint32
}

// Parsed is the structured result of decoding an AppleDouble sidecar.
type Parsed struct {
	Descriptors []Descriptor
	Meta        entry.Metadata
	Resource    []byte
}

// Parse decodes a sidecar buffer written by Write (or any compatible
// AppleDouble producer carrying a Finder-info entry) back into structured
// metadata and the resource fork, if present. Grounded in the writer's
// exact layout, not the full AppleDouble entry-ID space.
func Parse(buf []byte) (Parsed, error) {
	if len(buf) < headerSize {
		return Parsed{}, peelerr.Tag(component, "truncated sidecar (%d bytes)", len(buf))
	}
	if binary.BigEndian.Uint32(buf[0:]) != magicNumber {
		return Parsed{}, peelerr.Tag(component, "bad magic number")
	}

	count := int(binary.BigEndian.Uint16(buf[24:]))
	if count < 1 || headerSize+count*descSize > len(buf) {
		return Parsed{}, peelerr.Tag(component, "truncated entry table (%d entries)", count)
	}

	var p Parsed
	var finderDesc *Descriptor
	for i := 0; i < count; i++ {
		off := headerSize + i*descSize
		d := Descriptor{
			ID:     binary.BigEndian.Uint32(buf[off:]),
			Offset: binary.BigEndian.Uint32(buf[off+4:]),
			Length: binary.BigEndian.Uint32(buf[off+8:]),
		}
		p.Descriptors = append(p.Descriptors, d)
		if uint64(d.Offset)+uint64(d.Length) > uint64(len(buf)) {
			return Parsed{}, peelerr.Tag(component, "entry %d out of bounds", d.ID)
		}
		switch d.ID {
		case entryIDFinderInfo:
			fd := d
			finderDesc = &fd
		case entryIDResourceFork:
			p.Resource = append([]byte(nil), buf[d.Offset:d.Offset+d.Length]...)
		}
	}

	if finderDesc == nil {
		return Parsed{}, peelerr.Tag(component, "no Finder-info entry present")
	}
	if finderDesc.Length < 10 {
		return Parsed{}, peelerr.Tag(component, "Finder-info entry too short (%d bytes)", finderDesc.Length)
	}
	finder := buf[finderDesc.Offset : finderDesc.Offset+finderDesc.Length]
	p.Meta.Type = binary.BigEndian.Uint32(finder[0:])
	p.Meta.Creator = binary.BigEndian.Uint32(finder[4:])
	p.Meta.FinderFlags = binary.BigEndian.Uint16(finder[8:])

	return p, nil
}
