// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package cpt

import (
	"github.com/pappadf/peeler/internal/bitio"
	"github.com/pappadf/peeler/internal/huffman"
)

const (
	winSize  = 8192
	winMask  = winSize - 1
	blockCost = 0x1FFF0

	litCount = 256
	lenCount = 64
	offCount = 128
)

// lzhDecoder is Compact Pro's block-structured LZSS+Huffman engine: an
// 8 KiB sliding window, three canonical Huffman trees (literal, length,
// offset) rebuilt at the start of each block, with blocks terminated by a
// cumulative symbol-cost counter rather than a byte count.
type lzhDecoder struct {
	bits *bitio.MSBReader

	lit, length, off *huffman.Tree
	tablesOK         bool

	win  [winSize]byte
	wpos int

	blkCost      int
	blkByteStart int

	matchSrc int
	matchRem int
}

func newLZHDecoder(buf []byte) *lzhDecoder {
	return &lzhDecoder{bits: bitio.NewMSBReader(buf)}
}

func (l *lzhDecoder) readTable(n int) ([]int, bool) {
	nb, err := l.bits.ReadBits(8)
	if err != nil || int(nb)*2 > n {
		return nil, false
	}
	lens := make([]int, n)
	for i := 0; i < int(nb); i++ {
		v, err := l.bits.ReadBits(8)
		if err != nil {
			return nil, false
		}
		lens[2*i] = int(v >> 4)
		lens[2*i+1] = int(v & 0x0F)
	}
	return lens, true
}

func (l *lzhDecoder) buildTables() bool {
	litLens, ok := l.readTable(litCount)
	if !ok {
		return false
	}
	lenLens, ok := l.readTable(lenCount)
	if !ok {
		return false
	}
	offLens, ok := l.readTable(offCount)
	if !ok {
		return false
	}

	var err error
	if l.lit, err = huffman.BuildCanonical(litLens); err != nil {
		return false
	}
	if l.length, err = huffman.BuildCanonical(lenLens); err != nil {
		return false
	}
	if l.off, err = huffman.BuildCanonical(offLens); err != nil {
		return false
	}

	l.tablesOK = true
	l.blkCost = 0
	l.blkByteStart = l.bits.BytePos()
	return true
}

// flushBlock aligns to a byte boundary and skips the 2- or 3-byte padding
// that follows a block's data portion, the parity determined by whether
// that portion (everything after the three tables) was an odd or even
// number of bytes.
func (l *lzhDecoder) flushBlock() {
	l.bits.AlignByte()
	consumed := l.bits.BytePos() - l.blkByteStart
	if consumed%2 == 1 {
		l.bits.SkipBytes(3)
	} else {
		l.bits.SkipBytes(2)
	}
	l.tablesOK = false
}

// next produces the next decompressed byte, or ok=false at end of stream
// (bitstream exhaustion is a normal final-block termination).
func (l *lzhDecoder) next() (byte, bool) {
	if l.matchRem > 0 {
		b := l.win[l.matchSrc&winMask]
		l.win[l.wpos&winMask] = b
		l.wpos++
		l.matchSrc++
		l.matchRem--
		return b, true
	}

	for {
		if l.tablesOK && l.blkCost >= blockCost {
			l.flushBlock()
		}
		if !l.tablesOK {
			if !l.buildTables() {
				return 0, false
			}
		}

		flag, err := l.bits.ReadBit()
		if err != nil {
			return 0, false
		}

		if flag == 1 {
			sym, err := l.lit.Decode(l.bits)
			if err != nil {
				return 0, false
			}
			b := byte(sym)
			l.win[l.wpos&winMask] = b
			l.wpos++
			l.blkCost += 2
			return b, true
		}

		mlenSym, err := l.length.Decode(l.bits)
		if err != nil {
			return 0, false
		}
		offSym, err := l.off.Decode(l.bits)
		if err != nil {
			return 0, false
		}
		lower6, err := l.bits.ReadBits(6)
		if err != nil {
			return 0, false
		}

		offset := (uint32(offSym) << 6) | lower6 // 1-based
		mlen := int(mlenSym)
		if mlen == 0 || int(offset) > l.wpos {
			return 0, false
		}
		l.blkCost += 3

		srcStart := l.wpos - int(offset)
		first := l.win[srcStart&winMask]
		l.win[l.wpos&winMask] = first
		l.wpos++

		if mlen > 1 {
			l.matchSrc = srcStart + 1
			l.matchRem = mlen - 1
		}
		return first, true
	}
}
