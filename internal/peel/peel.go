// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package peel is the top-level peeling driver: format detection, the
// wrapper/archive handler table, the bounded main loop that strips wrapper
// layers until an archive or unknown blob is reached, and the recursive
// re-peel pass over extracted archive members.
package peel

import (
	"os"

	"github.com/pappadf/peeler/internal/cpt"
	"github.com/pappadf/peeler/internal/entry"
	"github.com/pappadf/peeler/internal/hqx"
	"github.com/pappadf/peeler/internal/macbinary"
	"github.com/pappadf/peeler/internal/peelerr"
	"github.com/pappadf/peeler/internal/sit"
)

const component = "peel"

// maxDepth bounds both the wrapper-stripping main loop and the recursive
// re-peel pass, guarding against inputs that detect as a wrapper forever.
const maxDepth = 32

// Kind classifies a detected format as either a wrapper (peels to exactly
// one buffer, chained by the main loop) or an archive (peels to a file
// list, terminal for the main loop).
type Kind int

const (
	KindNone Kind = iota
	KindWrapper
	KindArchive
)

// File is a fully decoded archive member: metadata plus both forks.
type File = entry.File

// List is an ordered sequence of extracted files.
type List = entry.List

type format struct {
	name        string
	kind        Kind
	detect      func([]byte) bool
	peelWrapper func([]byte) ([]byte, error)
	peelArchive func([]byte) (entry.List, error)
}

// formats is the fixed handler table. Order matters: wrappers are probed
// before archives so outer text/binary envelopes are stripped before an
// archive signature is searched for.
var formats = []format{
	{name: "hqx", kind: KindWrapper, detect: hqx.Detect, peelWrapper: hqx.Peel},
	{name: "bin", kind: KindWrapper, detect: macbinary.Detect, peelWrapper: macbinary.Peel},
	{name: "sit", kind: KindArchive, detect: sit.Detect, peelArchive: sit.Peel},
	{name: "cpt", kind: KindArchive, detect: cpt.Detect, peelArchive: cpt.Peel},
}

func detectFormat(src []byte) *format {
	for i := range formats {
		if formats[i].detect(src) {
			return &formats[i]
		}
	}
	return nil
}

// Detect probes the handler table in order and reports the first matching
// format's name and whether it is a wrapper or an archive. It reports
// KindNone and an empty name when nothing matches.
func Detect(src []byte) (name string, kind Kind) {
	form := detectFormat(src)
	if form == nil {
		return "", KindNone
	}
	return form.name, form.kind
}

func wrapSingleFile(src []byte) List {
	return List{{Data: append([]byte(nil), src...)}}
}

// Warning reports a non-fatal event during peeling that the caller may
// want to surface (e.g. log) without it affecting the returned List. The
// only source of these today is a swallowed recursive sub-peel failure.
type Warning struct {
	Name string
	Err  error
}

// Peel chains wrapper layers and terminates in an archive file list or a
// single-file wrap of unrecognized input.
func Peel(src []byte) (List, []Warning, error) {
	return peelDepth(src, 0)
}

func peelDepth(src []byte, depth int) (List, []Warning, error) {
	if depth >= maxDepth {
		return wrapSingleFile(src), nil, nil
	}

	cur := src
	for layer := 0; layer < maxDepth; layer++ {
		form := detectFormat(cur)
		if form == nil {
			break
		}

		switch form.kind {
		case KindWrapper:
			next, err := form.peelWrapper(cur)
			if err != nil {
				return nil, nil, err
			}
			cur = next
		case KindArchive:
			list, err := form.peelArchive(cur)
			if err != nil {
				return nil, nil, err
			}
			out, warnings := recursiveRepeel(list, depth)
			return out, warnings, nil
		}
	}

	return wrapSingleFile(cur), nil, nil
}

// recursiveRepeel splices recursively-peeled results in place of any
// extracted file whose data fork itself detects as a wrapper format.
// Archive detection inside extracted forks is deliberately not followed,
// to avoid false positives on binary payloads that happen to contain
// archive signatures. Sub-peel failures are swallowed: the original
// extracted file is kept as-is, and a Warning is returned so a caller that
// cares (the CLI) can still log it.
func recursiveRepeel(list List, depth int) (List, []Warning) {
	out := make(List, 0, len(list))
	var warnings []Warning
	for _, f := range list {
		if len(f.Data) == 0 {
			out = append(out, f)
			continue
		}
		form := detectFormat(f.Data)
		if form == nil || form.kind != KindWrapper {
			out = append(out, f)
			continue
		}
		sub, subWarnings, err := peelDepth(f.Data, depth+1)
		if err != nil {
			warnings = append(warnings, Warning{Name: f.Metadata.Name, Err: err})
			out = append(out, f)
			continue
		}
		warnings = append(warnings, subWarnings...)
		out = append(out, sub...)
	}
	return out, warnings
}

// PeelPath reads path into memory and peels it. It is the only operation
// in this library that performs I/O.
func PeelPath(path string) (List, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, peelerr.Tag(component, "cannot read %q: %w", path, err)
	}
	return Peel(data)
}
