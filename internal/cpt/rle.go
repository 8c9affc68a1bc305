// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package cpt

// rleDecoder implements Compact Pro's stateful RLE variant: escape byte
// 0x81, with a "half-escape" state for a literal 0x81 0x81 pair (the
// second 0x81 re-enters escape classification as a phantom byte, without
// consuming a new input byte) and an N-2 run-length rule.
type rleDecoder struct {
	src func() (byte, bool)

	prev          byte
	runLeft       int
	escapePending bool
}

// next produces the next decompressed byte, or ok=false at end of input.
func (r *rleDecoder) next() (byte, bool) {
	if r.runLeft > 0 {
		r.runLeft--
		return r.prev, true
	}

	var b byte
	if r.escapePending {
		b = 0x81
		r.escapePending = false
	} else {
		v, ok := r.src()
		if !ok {
			return 0, false
		}
		b = v
	}

	if b != 0x81 {
		r.prev = b
		return b, true
	}

	next, ok := r.src()
	if !ok {
		return 0, false
	}

	switch {
	case next == 0x82:
		count, ok := r.src()
		if !ok {
			return 0, false
		}
		if count == 0 {
			r.prev = 0x82
			r.runLeft = 1
			return 0x81, true
		}
		out := r.prev
		if count >= 2 {
			r.runLeft = int(count) - 2
		} else {
			r.runLeft = 0
		}
		return out, true
	case next == 0x81:
		r.prev = 0x81
		r.escapePending = true
		return 0x81, true
	default:
		r.prev = next
		r.runLeft = 1
		return 0x81, true
	}
}
