// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Method 15 ("Arsenic"): a block-based pipeline of arithmetic decode, a
// zero-run-length expansion folded into the MTF alphabet, move-to-front
// inversion, inverse Burrows-Wheeler transform, optional randomization
// de-scrambling, and a final byte-oriented run-length expansion.
package sit

import "github.com/pappadf/peeler/internal/peelerr"

// arsenicBitReader is a 32-bit MSB-first shift-register reader supporting
// reads up to 25 bits directly, with wider reads split into two.
type arsenicBitReader struct {
	data   []byte
	pos    int
	window uint32
	avail  int
}

func newArsenicBitReader(buf []byte) *arsenicBitReader {
	return &arsenicBitReader{data: buf}
}

func (r *arsenicBitReader) refill() {
	for r.avail <= 24 && r.pos < len(r.data) {
		r.window |= uint32(r.data[r.pos]) << uint(24-r.avail)
		r.pos++
		r.avail += 8
	}
}

func (r *arsenicBitReader) read(n int) uint32 {
	if n > r.avail {
		r.refill()
		if n > r.avail {
			peelerr.Abort(component, "sit15: bitstream exhaustion")
		}
	}
	v := r.window >> uint(32-n)
	r.window <<= uint(n)
	r.avail -= n
	return v
}

func (r *arsenicBitReader) readLong(n int) uint32 {
	if n <= 25 {
		return r.read(n)
	}
	hi := r.read(25)
	lo := r.read(n - 25)
	return (hi << uint(n-25)) | lo
}

const modelMaxSyms = 128

// probModel is a per-symbol adaptive frequency model with periodic halving
// once the running total exceeds ceiling.
type probModel struct {
	nsyms   int
	baseSym int
	step    int
	ceiling int
	total   int
	freq    [modelMaxSyms]int
}

func (m *probModel) setup(lo, hi, step, ceiling int) {
	m.nsyms = hi - lo + 1
	m.baseSym = lo
	m.step = step
	m.ceiling = ceiling
	m.total = m.nsyms * step
	for i := 0; i < m.nsyms; i++ {
		m.freq[i] = step
	}
}

func (m *probModel) reset() {
	m.total = m.nsyms * m.step
	for i := 0; i < m.nsyms; i++ {
		m.freq[i] = m.step
	}
}

func (m *probModel) bump(idx int) {
	m.freq[idx] += m.step
	m.total += m.step
	if m.total > m.ceiling {
		m.total = 0
		for i := 0; i < m.nsyms; i++ {
			m.freq[i] = (m.freq[i] + 1) >> 1
			m.total += m.freq[i]
		}
	}
}

const (
	acPrec = 26
	acOne  = 1 << (acPrec - 1)
	acHalf = 1 << (acPrec - 2)
)

type acState struct {
	rangeV int
	code   int
}

type mtfTable struct {
	tbl [256]byte
}

func (m *mtfTable) init() {
	for i := 0; i < 256; i++ {
		m.tbl[i] = byte(i)
	}
}

func (m *mtfTable) decode(idx int) byte {
	val := m.tbl[idx]
	if idx > 0 {
		copy(m.tbl[1:idx+1], m.tbl[0:idx])
	}
	m.tbl[0] = val
	return val
}

// randTable is the 256-entry bzip2-lineage randomization table.
var randTable = [256]uint16{
	0xEE, 0x56, 0xF8, 0xC3, 0x9D, 0x9F, 0xAE, 0x2C, 0xAD, 0xCD, 0x24, 0x9D, 0xA6, 0x101, 0x18, 0xB9,
	0xA1, 0x82, 0x75, 0xE9, 0x9F, 0x55, 0x66, 0x6A, 0x86, 0x71, 0xDC, 0x84, 0x56, 0x96, 0x56, 0xA1,
	0x84, 0x78, 0xB7, 0x32, 0x6A, 0x03, 0xE3, 0x02, 0x11, 0x101, 0x08, 0x44, 0x83, 0x100, 0x43, 0xE3,
	0x1C, 0xF0, 0x86, 0x6A, 0x6B, 0x0F, 0x03, 0x2D, 0x86, 0x17, 0x7B, 0x10, 0xF6, 0x80, 0x78, 0x7A,
	0xA1, 0xE1, 0xEF, 0x8C, 0xF6, 0x87, 0x4B, 0xA7, 0xE2, 0x77, 0xFA, 0xB8, 0x81, 0xEE, 0x77, 0xC0,
	0x9D, 0x29, 0x20, 0x27, 0x71, 0x12, 0xE0, 0x6B, 0xD1, 0x7C, 0x0A, 0x89, 0x7D, 0x87, 0xC4, 0x101,
	0xC1, 0x31, 0xAF, 0x38, 0x03, 0x68, 0x1B, 0x76, 0x79, 0x3F, 0xDB, 0xC7, 0x1B, 0x36, 0x7B, 0xE2,
	0x63, 0x81, 0xEE, 0x0C, 0x63, 0x8B, 0x78, 0x38, 0x97, 0x9B, 0xD7, 0x8F, 0xDD, 0xF2, 0xA3, 0x77,
	0x8C, 0xC3, 0x39, 0x20, 0xB3, 0x12, 0x11, 0x0E, 0x17, 0x42, 0x80, 0x2C, 0xC4, 0x92, 0x59, 0xC8,
	0xDB, 0x40, 0x76, 0x64, 0xB4, 0x55, 0x1A, 0x9E, 0xFE, 0x5F, 0x06, 0x3C, 0x41, 0xEF, 0xD4, 0xAA,
	0x98, 0x29, 0xCD, 0x1F, 0x02, 0xA8, 0x87, 0xD2, 0xA0, 0x93, 0x98, 0xEF, 0x0C, 0x43, 0xED, 0x9D,
	0xC2, 0xEB, 0x81, 0xE9, 0x64, 0x23, 0x68, 0x1E, 0x25, 0x57, 0xDE, 0x9A, 0xCF, 0x7F, 0xE5, 0xBA,
	0x41, 0xEA, 0xEA, 0x36, 0x1A, 0x28, 0x79, 0x20, 0x5E, 0x18, 0x4E, 0x7C, 0x8E, 0x58, 0x7A, 0xEF,
	0x91, 0x02, 0x93, 0xBB, 0x56, 0xA1, 0x49, 0x1B, 0x79, 0x92, 0xF3, 0x58, 0x4F, 0x52, 0x9C, 0x02,
	0x77, 0xAF, 0x2A, 0x8F, 0x49, 0xD0, 0x99, 0x4D, 0x98, 0x101, 0x60, 0x93, 0x100, 0x75, 0x31, 0xCE,
	0x49, 0x20, 0x56, 0x57, 0xE2, 0xF5, 0x26, 0x2B, 0x8A, 0xBF, 0xDE, 0xD0, 0x83, 0x34, 0xF4, 0x17,
}

var grpLo = [7]int{2, 4, 8, 16, 32, 64, 128}
var grpHi = [7]int{3, 7, 15, 31, 63, 127, 255}
var grpStep = [7]int{8, 4, 4, 4, 2, 2, 1}

// arsenicState is the complete per-stream decoder state.
type arsenicState struct {
	bits arsenicBitReader
	ac   acState

	mPrimary probModel
	mSel     probModel
	mGrp     [7]probModel

	blockExp int
	blkCap   int

	blkBuf    []byte
	lfMap     []uint32
	blkLen    int
	bwtOrigin int

	outPos int
	bwtIdx int

	randomized bool
	randTi     int
	randNext   int

	rlePrev   int
	rleStreak int
	rleRepeat int

	eos bool
}

func (s *arsenicState) decodeSym(m *probModel) int {
	if m.total == 0 {
		peelerr.Abort(component, "sit15: model total frequency is zero")
	}
	scale := s.ac.rangeV / m.total
	if scale == 0 {
		peelerr.Abort(component, "sit15: arithmetic decoder scale is zero")
	}
	target := s.ac.code / scale

	cum := 0
	k := 0
	for ; k < m.nsyms-1; k++ {
		if cum+m.freq[k] > target {
			break
		}
		cum += m.freq[k]
	}

	lo := cum
	hi := cum + m.freq[k]
	w := m.freq[k]

	baseOff := scale * lo
	s.ac.code -= baseOff
	if hi == m.total {
		s.ac.rangeV -= baseOff
	} else {
		s.ac.rangeV = w * scale
	}

	for s.ac.rangeV <= acHalf {
		s.ac.rangeV <<= 1
		s.ac.code = (s.ac.code << 1) | int(s.bits.read(1))
	}

	m.bump(k)
	return m.baseSym + k
}

func (s *arsenicState) decodeField(m *probModel, n int) int {
	val := 0
	for i := 0; i < n; i++ {
		if s.decodeSym(m) != 0 {
			val |= 1 << uint(i)
		}
	}
	return val
}

func buildLFMap(lfMap []uint32, buf []byte, length int) {
	var freq, base, seen [256]int
	for i := 0; i < length; i++ {
		freq[buf[i]]++
	}
	acc := 0
	for c := 0; c < 256; c++ {
		base[c] = acc
		acc += freq[c]
	}
	for i := 0; i < length; i++ {
		c := buf[i]
		lfMap[base[c]+seen[c]] = uint32(i)
		seen[c]++
	}
}

func (s *arsenicState) emitBWTByte() byte {
	s.bwtIdx = int(s.lfMap[s.bwtIdx])
	if s.bwtIdx < 0 || s.bwtIdx >= s.blkLen {
		peelerr.Abort(component, "sit15: BWT index out of bounds")
	}
	b := s.blkBuf[s.bwtIdx]

	if s.randomized && s.randNext == s.outPos {
		b ^= 1
		s.randTi = (s.randTi + 1) & 0xFF
		s.randNext += int(randTable[s.randTi])
	}
	s.outPos++
	return b
}

// consumeZeroRun decodes a zero-run length from the selector stream using
// bijective positional accumulation: selector token t at ordinal position
// p contributes (t+1)<<p to the total. The first non-run selector (>= 2)
// that terminates the run is returned via the result's second value.
func (s *arsenicState) consumeZeroRun(firstTok int) (int, int) {
	total := 0
	bitPos := 0
	tok := firstTok
	for {
		total += (tok + 1) << uint(bitPos)
		bitPos++
		tok = s.decodeSym(&s.mSel)
		if tok >= 2 {
			break
		}
	}
	return total, tok
}

func (s *arsenicState) decodeBlock() {
	s.mSel.setup(0, 10, 8, 1024)
	for g := 0; g < 7; g++ {
		s.mGrp[g].setup(grpLo[g], grpHi[g], grpStep[g], 1024)
	}

	var mtf mtfTable
	mtf.init()

	s.randomized = s.decodeSym(&s.mPrimary) != 0
	s.bwtOrigin = s.decodeField(&s.mPrimary, s.blockExp+9)
	s.blkLen = 0

	sel := s.decodeSym(&s.mSel)
	for sel != 10 {
		if sel < 2 {
			runLen, trailing := s.consumeZeroRun(sel)

			if s.blkLen+runLen > s.blkCap {
				peelerr.Abort(component, "sit15: block buffer overflow (zero run)")
			}
			fill := mtf.decode(0)
			for i := 0; i < runLen; i++ {
				s.blkBuf[s.blkLen+i] = fill
			}
			s.blkLen += runLen

			sel = trailing
			continue
		}

		var mtfIdx int
		if sel == 2 {
			mtfIdx = 1
		} else {
			mtfIdx = s.decodeSym(&s.mGrp[sel-3])
		}

		if s.blkLen >= s.blkCap {
			peelerr.Abort(component, "sit15: block buffer overflow")
		}
		s.blkBuf[s.blkLen] = mtf.decode(mtfIdx)
		s.blkLen++

		sel = s.decodeSym(&s.mSel)
	}

	if s.blkLen > 0 && s.bwtOrigin >= s.blkLen {
		peelerr.Abort(component, "sit15: BWT primary index >= block length")
	}

	s.mSel.reset()
	for g := 0; g < 7; g++ {
		s.mGrp[g].reset()
	}

	if s.decodeSym(&s.mPrimary) != 0 {
		s.decodeField(&s.mPrimary, 32)
		s.eos = true
	}

	if s.blkLen > 0 {
		buildLFMap(s.lfMap, s.blkBuf, s.blkLen)
	}

	s.outPos = 0
	s.bwtIdx = s.bwtOrigin
	s.randTi = 0
	s.randNext = int(randTable[0])
	s.rlePrev = 0
	s.rleStreak = 0
	s.rleRepeat = 0
}

// produceByte runs the final RLE expansion stage: after 4 identical bytes,
// the next upstream byte K encodes K additional copies (K == 0 means the
// run was exactly 4; the extension byte is consumed and discarded).
func (s *arsenicState) produceByte() byte {
	for {
		if s.rleRepeat > 0 {
			s.rleRepeat--
			return byte(s.rlePrev)
		}

		if s.outPos >= s.blkLen {
			if s.eos {
				peelerr.Abort(component, "sit15: unexpected end of stream")
			}
			s.decodeBlock()
		}

		b := s.emitBWTByte()

		if s.rleStreak == 4 {
			s.rleStreak = 0
			if b > 0 {
				s.rleRepeat = int(b) - 1
				return byte(s.rlePrev)
			}
			continue
		}

		if int(b) != s.rlePrev {
			s.rlePrev = int(b)
			s.rleStreak = 1
		} else {
			s.rleStreak++
		}
		return b
	}
}

func (s *arsenicState) parseHeader() {
	s.ac.rangeV = acOne
	s.ac.code = int(s.bits.readLong(acPrec))

	s.mPrimary.setup(0, 1, 1, 256)

	if s.decodeField(&s.mPrimary, 8) != 'A' {
		peelerr.Abort(component, "sit15: invalid signature (expected 'A')")
	}
	if s.decodeField(&s.mPrimary, 8) != 's' {
		peelerr.Abort(component, "sit15: invalid signature (expected 's')")
	}

	s.blockExp = s.decodeField(&s.mPrimary, 4)
	bsz := 1 << uint(s.blockExp+9)
	s.blkCap = bsz

	s.eos = s.decodeSym(&s.mPrimary) != 0

	s.blkBuf = make([]byte, s.blkCap)
	s.lfMap = make([]uint32, s.blkCap)
}

// decodeArsenic decompresses a method-15 fork into exactly n bytes.
func decodeArsenic(src []byte, n int) []byte {
	if n == 0 {
		return nil
	}
	s := &arsenicState{bits: arsenicBitReader{data: src}}
	s.parseHeader()

	out := make([]byte, n)
	for i := range out {
		out[i] = s.produceByte()
	}
	return out
}
