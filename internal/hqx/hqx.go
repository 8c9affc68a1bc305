// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package hqx decodes BinHex 4.0 (.hqx) files: a text envelope wrapping a
// 6-bit ASCII encoding of an RLE90-compressed, CRC-16/XMODEM-checked
// container holding one Macintosh file's metadata and both forks.
package hqx

import (
	"encoding/binary"

	"github.com/pappadf/peeler/internal/crc16"
	"github.com/pappadf/peeler/internal/peelerr"
)

const component = "BinHex"

// preamble is the mandatory identification string that precedes the
// encoded payload.
const preamble = "(This file must be converted with BinHex"

const rleMarker = 0x90

const nameMax = 63

// finderClearMask clears isInvisible (bit 14) and bits 7 and 2 on decode.
const finderClearMask = 0x4084

// alphabet is the 64-character BinHex 6-bit alphabet, index 0..63.
const alphabet = "!\"#$%&'()*+,-012345689@ABCDEFGHIJKLMNPQRSTUVXYZ[`abcdefhijklmpqr"

// File is a decoded BinHex payload: metadata plus both forks.
type File struct {
	Name         string
	MacType      uint32
	MacCreator   uint32
	FinderFlags  uint16
	DataFork     []byte
	ResourceFork []byte
}

// Detect reports whether src contains the BinHex preamble anywhere.
func Detect(src []byte) bool {
	_, ok := findPreamble(src)
	return ok
}

func findPreamble(src []byte) (int, bool) {
	p := []byte(preamble)
	for i := 0; i+len(p) <= len(src); i++ {
		if string(src[i:i+len(p)]) == preamble {
			j := i + len(p)
			for j < len(src) && src[j] != '\n' && src[j] != '\r' {
				j++
			}
			for j < len(src) && (src[j] == '\n' || src[j] == '\r') {
				j++
			}
			return j, true
		}
	}
	return 0, false
}

func findStartColon(src []byte, from int) (int, bool) {
	for i := from; i < len(src); i++ {
		if src[i] == ':' {
			return i + 1, true
		}
	}
	return 0, false
}

type decoder struct {
	src []byte
	pos int
	rev [256]byte

	accum     uint32
	accumBits uint

	markerSeen bool
	prev       byte
	pending    int
}

func newDecoder(src []byte, payloadStart int) *decoder {
	d := &decoder{src: src, pos: payloadStart}
	for i := range d.rev {
		d.rev[i] = 0xFF
	}
	for i := 0; i < 64; i++ {
		d.rev[alphabet[i]] = byte(i)
	}
	return d
}

// nextChar returns the next non-whitespace payload character, or -1 at the
// terminating colon or end of input.
func (d *decoder) nextChar() int {
	for d.pos < len(d.src) {
		ch := d.src[d.pos]
		d.pos++
		if ch == ':' {
			return -1
		}
		if ch == '\r' || ch == '\n' || ch == '\t' || ch == ' ' {
			continue
		}
		return int(ch)
	}
	return -1
}

// rawByte decodes one raw byte from the 6-bit stream, or -1 on EOF.
func (d *decoder) rawByte() int {
	for d.accumBits < 8 {
		ch := d.nextChar()
		if ch < 0 {
			return -1
		}
		val := d.rev[byte(ch)]
		if val > 63 {
			peelerr.Abort(component, "invalid character %q (0x%02X)", rune(ch), ch)
		}
		d.accum = (d.accum << 6) | uint32(val)
		d.accumBits += 6
	}
	d.accumBits -= 8
	return int((d.accum >> d.accumBits) & 0xFF)
}

// decodedByte produces the next byte after RLE90 expansion, or -1 on EOF.
func (d *decoder) decodedByte() int {
	if d.pending > 0 {
		d.pending--
		return int(d.prev)
	}
	for {
		raw := d.rawByte()
		if raw < 0 {
			return -1
		}
		if d.markerSeen {
			d.markerSeen = false
			switch {
			case raw == 0x00:
				d.prev = rleMarker
				return rleMarker
			case raw == 0x01:
				peelerr.Abort(component, "illegal RLE count of 1")
			}
			d.pending = raw - 2
			return int(d.prev)
		}
		if byte(raw) == rleMarker {
			d.markerSeen = true
			continue
		}
		d.prev = byte(raw)
		return raw
	}
}

func (d *decoder) readBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		b := d.decodedByte()
		if b < 0 {
			peelerr.Abort(component, "premature end of stream (needed %d more bytes)", n-i)
		}
		buf[i] = byte(b)
	}
	return buf
}

type header struct {
	name        string
	macType     uint32
	macCreator  uint32
	finderFlags uint16
	dataLen     uint32
	rsrcLen     uint32
}

func (d *decoder) parseHeader() header {
	nameLenByte := d.readBytes(1)[0]
	if nameLenByte == 0 || nameLenByte > nameMax {
		peelerr.Abort(component, "invalid filename length %d", nameLenByte)
	}

	payloadLen := int(nameLenByte) + 19
	totalLen := 1 + payloadLen + 2
	buf := make([]byte, totalLen)
	buf[0] = nameLenByte
	copy(buf[1:], d.readBytes(payloadLen+2))

	if crc16.XMODEM(buf) != 0 {
		peelerr.Abort(component, "header CRC mismatch")
	}

	n := int(nameLenByte)
	return header{
		name:        string(buf[1 : 1+n]),
		macType:     binary.BigEndian.Uint32(buf[2+n:]),
		macCreator:  binary.BigEndian.Uint32(buf[6+n:]),
		finderFlags: binary.BigEndian.Uint16(buf[10+n:]),
		dataLen:     binary.BigEndian.Uint32(buf[12+n:]),
		rsrcLen:     binary.BigEndian.Uint32(buf[16+n:]),
	}
}

func (d *decoder) readFork(forkLen uint32, forkName string) []byte {
	if forkLen == 0 {
		crcBytes := d.readBytes(2)
		if binary.BigEndian.Uint16(crcBytes) != 0x0000 {
			peelerr.Abort(component, "%s fork CRC mismatch (empty fork, expected 0x0000)", forkName)
		}
		return nil
	}

	content := d.readBytes(int(forkLen))
	crcBytes := d.readBytes(2)

	check := append(append([]byte{}, content...), crcBytes...)
	if crc16.XMODEM(check) != 0 {
		peelerr.Abort(component, "%s fork CRC mismatch", forkName)
	}
	return content
}

func decode(src []byte) (f File, err error) {
	defer peelerr.Guard(&err)

	afterPreamble, ok := findPreamble(src)
	if !ok {
		peelerr.Abort(component, "preamble not found")
	}
	payloadStart, ok := findStartColon(src, afterPreamble)
	if !ok {
		peelerr.Abort(component, "no starting colon found")
	}

	d := newDecoder(src, payloadStart)
	hdr := d.parseHeader()
	dataFork := d.readFork(hdr.dataLen, "data")
	rsrcFork := d.readFork(hdr.rsrcLen, "resource")

	f = File{
		Name:         hdr.name,
		MacType:      hdr.macType,
		MacCreator:   hdr.macCreator,
		FinderFlags:  hdr.finderFlags &^ finderClearMask,
		DataFork:     dataFork,
		ResourceFork: rsrcFork,
	}
	return f, nil
}

// Peel decodes a BinHex file and returns the data fork only, matching the
// driver's "wrapper" contract (one buffer in, one buffer out).
func Peel(src []byte) ([]byte, error) {
	f, err := decode(src)
	if err != nil {
		return nil, err
	}
	return f.DataFork, nil
}

// PeelFile decodes a BinHex file and returns both forks plus metadata.
func PeelFile(src []byte) (File, error) {
	return decode(src)
}
