// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package macbinary decodes MacBinary I/II (.bin) files: a 128-byte
// CRC-16/XMODEM-checked header followed by the data and resource forks,
// each padded to a 128-byte boundary.
package macbinary

import (
	"encoding/binary"

	"github.com/pappadf/peeler/internal/crc16"
	"github.com/pappadf/peeler/internal/peelerr"
	"github.com/pappadf/peeler/internal/sit"
)

const component = "MacBinary"

const block = 128

const nameMax = 63

// finderClearMask clears kIsOnDesktop(0), bFOwnAppl(1), kHasBeenInited(8),
// kHasCustomIcon(9), kIsShared(10).
const finderClearMask = 1<<0 | 1<<1 | 1<<8 | 1<<9 | 1<<10

// File is a decoded MacBinary payload: metadata plus both forks.
type File struct {
	Name         string
	MacType      uint32
	MacCreator   uint32
	FinderFlags  uint16
	DataFork     []byte
	ResourceFork []byte
}

func pad128(n int) int {
	return (block - n%block) % block
}

// validate checks a 128-byte header for MacBinary II validity, falling
// back to MacBinary I when the CRC doesn't match but byte 82 is zero.
func validate(hdr []byte) bool {
	if hdr[0] != 0 {
		return false
	}
	if hdr[74] != 0 {
		return false
	}
	nameLen := hdr[1]
	if nameLen == 0 || nameLen > nameMax {
		return false
	}
	crcCalc := crc16.XMODEM(hdr[:124])
	crcStored := binary.BigEndian.Uint16(hdr[124:126])
	if crcCalc != crcStored {
		if hdr[82] != 0 {
			return false
		}
	}
	return true
}

type header struct {
	name       string
	nameLen    int
	macType    uint32
	macCreator uint32
	flags      uint16
	dataLen    uint32
	rsrcLen    uint32
	secHdrLen  uint16
}

func parseHeader(hdr []byte) header {
	nameLen := int(hdr[1])
	copyLen := nameLen
	if copyLen > nameMax {
		copyLen = nameMax
	}
	return header{
		name:       string(hdr[2 : 2+copyLen]),
		nameLen:    nameLen,
		macType:    binary.BigEndian.Uint32(hdr[65:]),
		macCreator: binary.BigEndian.Uint32(hdr[69:]),
		flags:      uint16(hdr[73])<<8 | uint16(hdr[101]),
		dataLen:    binary.BigEndian.Uint32(hdr[83:]),
		rsrcLen:    binary.BigEndian.Uint32(hdr[87:]),
		secHdrLen:  binary.BigEndian.Uint16(hdr[120:]),
	}
}

// Detect reports whether src begins with a valid MacBinary header.
func Detect(src []byte) bool {
	if len(src) < block {
		return false
	}
	return validate(src[:block])
}

func decode(src []byte) (f File, err error) {
	defer peelerr.Guard(&err)

	if len(src) < block {
		peelerr.Abort(component, "input too short (%d bytes)", len(src))
	}
	if !validate(src[:block]) {
		peelerr.Abort(component, "invalid header")
	}
	hdr := parseHeader(src[:block])

	if hdr.dataLen > 0x7FFFFFFF || hdr.rsrcLen > 0x7FFFFFFF {
		peelerr.Abort(component, "fork length exceeds maximum")
	}

	pos := block
	if hdr.secHdrLen > 0 {
		pos += int(hdr.secHdrLen) + pad128(int(hdr.secHdrLen))
	}

	if pos+int(hdr.dataLen) > len(src) {
		peelerr.Abort(component, "data fork truncated")
	}
	var dataFork []byte
	if hdr.dataLen > 0 {
		dataFork = append([]byte{}, src[pos:pos+int(hdr.dataLen)]...)
	}
	pos += int(hdr.dataLen) + pad128(int(hdr.dataLen))

	if pos+int(hdr.rsrcLen) > len(src) {
		peelerr.Abort(component, "resource fork truncated")
	}
	var rsrcFork []byte
	if hdr.rsrcLen > 0 {
		rsrcFork = append([]byte{}, src[pos:pos+int(hdr.rsrcLen)]...)
	}

	f = File{
		Name:         hdr.name,
		MacType:      hdr.macType,
		MacCreator:   hdr.macCreator,
		FinderFlags:  hdr.flags &^ finderClearMask,
		DataFork:     dataFork,
		ResourceFork: rsrcFork,
	}
	return f, nil
}

// Peel decodes a MacBinary file and returns a single fork, applying the
// fork-selection heuristic used when chaining into the peeling driver: if
// the data fork does not look like a StuffIt archive and a resource fork is
// present, prefer the resource fork (common for .sea.bin self-extractors).
func Peel(src []byte) ([]byte, error) {
	f, err := decode(src)
	if err != nil {
		return nil, err
	}
	if len(f.DataFork) > 0 && sit.LooksLikeSignature(f.DataFork) {
		return f.DataFork, nil
	}
	if len(f.ResourceFork) == 0 {
		return f.DataFork, nil
	}
	return f.ResourceFork, nil
}

// PeelFile decodes a MacBinary file and returns both forks plus metadata.
func PeelFile(src []byte) (File, error) {
	return decode(src)
}
