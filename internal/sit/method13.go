// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Method 13: an LZSS engine over a 64 KiB sliding window with two
// alternating literal/length canonical Huffman trees (the active tree
// reverts to the first after every literal and switches to the second once
// a match has been copied, staying there until the next literal) plus one
// distance tree. Trees are either one of
// five built-in predefined sets or serialized dynamically via a fixed
// 37-symbol meta-Huffman code.
package sit

import (
	"github.com/pappadf/peeler/internal/bitio"
	"github.com/pappadf/peeler/internal/huffman"
	"github.com/pappadf/peeler/internal/peelerr"
)

const (
	m13SymCount = 321
	m13WinSize  = 65536
	m13WinMask  = m13WinSize - 1
)

// predefinedDist holds the five built-in distance code-length tables (the
// literal/length ones are predefinedFirstTable and predefinedSecondTable in
// method13_tables.go), part of the format specification: every conformant
// encoder/decoder uses them verbatim.
var predefinedDist = [5][]int{
	{5, 6, 3, 3, 3, 3, 3, 3, 3, 4, 6},
	{5, 6, 4, 4, 3, 3, 3, 3, 3, 4, 4, 4, 6},
	{6, 7, 4, 4, 3, 3, 3, 3, 3, 4, 4, 4, 5, 7},
	{3, 6, 5, 4, 2, 3, 3, 3, 4, 4, 6},
	{6, 7, 7, 6, 4, 3, 2, 2, 3, 3, 6},
}

// m13MetaWords and m13MetaLens are the fixed (codeword, length) pairs for
// the 37-symbol meta-code used to serialize dynamic tree lengths.
var m13MetaWords = [37]uint32{
	0x00dd, 0x001a, 0x0002, 0x0003, 0x0000, 0x000f, 0x0035, 0x0005,
	0x0006, 0x0007, 0x001b, 0x0034, 0x0001, 0x0001, 0x000e, 0x000c,
	0x0036, 0x01bd, 0x0006, 0x000b, 0x000e, 0x001f, 0x001e, 0x0009,
	0x0008, 0x000a, 0x01bc, 0x01bf, 0x01be, 0x01b9, 0x01b8, 0x0004,
	0x0002, 0x0001, 0x0007, 0x000c, 0x0002,
}
var m13MetaLens = [37]int{
	0xB, 0x8, 0x8, 0x8, 0x8, 0x7, 0x6, 0x5, 0x5, 0x5, 0x5, 0x6, 0x5,
	0x6, 0x7, 0x7, 0x9, 0xC, 0xA, 0xB, 0xB, 0xC, 0xC, 0xB, 0xB, 0xB,
	0xC, 0xC, 0xC, 0xC, 0xC, 0x5, 0x2, 0x2, 0x3, 0x4, 0x5,
}

func buildMetaTree() *huffman.Tree {
	t := huffman.NewDirect()
	for i := 0; i < 37; i++ {
		t.Insert(m13MetaWords[i], m13MetaLens[i], int32(i))
	}
	return t
}

// decodeLengths decodes nsym code lengths from the bitstream using the
// meta-code. Commands 0-30 set the current length to cmd+1; 31 resets to
// 0; 32/33 increment/decrement; 34-36 are positional repeat encodings,
// each emitting one extra normal entry after the repeat run.
func decodeLengths(meta *huffman.Tree, br *bitio.LSBReader, nsym int) []int8 {
	out := make([]int8, nsym)
	length := 0
	i := 0
	for i < nsym {
		cmd, err := meta.Decode(br)
		if err != nil {
			peelerr.Abort(component, "method13: meta-code decode failed: %v", err)
		}

		switch {
		case cmd <= 30:
			length = int(cmd) + 1
		case cmd == 31:
			length = 0
		case cmd == 32:
			length++
		case cmd == 33:
			length--
		case cmd == 34:
			bit, _ := br.ReadBits(1)
			if bit != 0 {
				out[i] = int8(length)
				i++
			}
			out[i] = int8(length)
			i++
			continue
		case cmd == 35:
			reps, _ := br.ReadBits(3)
			reps += 2
			for ; reps > 0; reps-- {
				out[i] = int8(length)
				i++
			}
			out[i] = int8(length)
			i++
			continue
		case cmd == 36:
			reps, _ := br.ReadBits(6)
			reps += 10
			for ; reps > 0; reps-- {
				out[i] = int8(length)
				i++
			}
			out[i] = int8(length)
			i++
			continue
		}
		out[i] = int8(length)
		i++
	}
	return out
}

func int8sToInts(in []int8) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

type method13Decoder struct {
	br *bitio.LSBReader

	first, second, dist *huffman.Tree
	active              *huffman.Tree

	win  [m13WinSize]byte
	wpos int

	matchLeft int
	matchFrom int
}

func newMethod13Decoder(src []byte) *method13Decoder {
	d := &method13Decoder{br: bitio.NewLSBReader(src)}
	d.setup()
	return d
}

func (d *method13Decoder) setup() {
	hdr, err := d.br.ReadBits(8)
	if err != nil {
		peelerr.Abort(component, "method13: truncated header")
	}
	set := int(hdr >> 4)
	shared := (hdr>>3)&1 != 0
	distN := int(hdr&7) + 10

	switch {
	case set == 0:
		meta := buildMetaTree()

		lens := decodeLengths(meta, d.br, m13SymCount)
		d.first, _ = huffman.BuildCanonical(int8sToInts(lens))

		if shared {
			d.second = d.first
		} else {
			lens2 := decodeLengths(meta, d.br, m13SymCount)
			d.second, _ = huffman.BuildCanonical(int8sToInts(lens2))
		}

		distLens := decodeLengths(meta, d.br, distN)
		d.dist, _ = huffman.BuildCanonical(int8sToInts(distLens))

	case set >= 1 && set <= 5:
		idx := set - 1
		d.first, _ = huffman.BuildCanonical(predefinedLengths(predefinedFirstTable[idx], m13SymCount))
		d.second, _ = huffman.BuildCanonical(predefinedLengths(predefinedSecondTable[idx], m13SymCount))
		d.dist, _ = huffman.BuildCanonical(predefinedDist[idx])

	default:
		peelerr.Abort(component, "method13: invalid code-set selector %d", set)
	}

	d.active = d.first
}

func predefinedLengths(table []int8, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = int(table[i])
	}
	return out
}

// next produces the next decompressed byte, aborting on a malformed
// bitstream (exhaustion included, since the caller always knows the exact
// uncompressed length up front and never calls next() beyond it).
func (d *method13Decoder) next() byte {
	if d.matchLeft > 0 {
		b := d.win[d.matchFrom&m13WinMask]
		d.matchFrom++
		d.win[d.wpos&m13WinMask] = b
		d.wpos++
		d.matchLeft--
		if d.matchLeft == 0 {
			d.active = d.second
		}
		return b
	}

	sym, err := d.active.Decode(d.br)
	if err != nil {
		peelerr.Abort(component, "method13: symbol decode failed: %v", err)
	}

	if sym < 256 {
		b := byte(sym)
		d.win[d.wpos&m13WinMask] = b
		d.wpos++
		d.active = d.first
		return b
	}

	var mlen int
	switch {
	case sym <= 317:
		mlen = int(sym) - 253
	case sym == 318:
		v, err := d.br.ReadBits(10)
		if err != nil {
			peelerr.Abort(component, "method13: length extra bits: %v", err)
		}
		mlen = int(v) + 65
	case sym == 319:
		v, err := d.br.ReadBits(15)
		if err != nil {
			peelerr.Abort(component, "method13: length extra bits: %v", err)
		}
		mlen = int(v) + 65
	default:
		peelerr.Abort(component, "method13: invalid length symbol %d", sym)
	}

	dsym, err := d.dist.Decode(d.br)
	if err != nil {
		peelerr.Abort(component, "method13: distance decode failed: %v", err)
	}
	var dist int
	if dsym == 0 {
		dist = 1
	} else {
		extra, err := d.br.ReadBits(int(dsym) - 1)
		if err != nil {
			peelerr.Abort(component, "method13: distance extra bits: %v", err)
		}
		dist = (1 << uint(dsym-1)) + int(extra) + 1
	}

	from := d.wpos - dist
	b := d.win[from&m13WinMask]
	d.win[d.wpos&m13WinMask] = b
	d.wpos++
	from++

	if mlen > 1 {
		d.matchFrom = from
		d.matchLeft = mlen - 1
	} else {
		d.active = d.second
	}
	return b
}

// decodeMethod13 decompresses a method-13 fork into exactly n bytes.
func decodeMethod13(src []byte, n int) []byte {
	if n == 0 {
		return nil
	}
	d := newMethod13Decoder(src)
	out := make([]byte, n)
	for i := range out {
		out[i] = d.next()
	}
	return out
}
