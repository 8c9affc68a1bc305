// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package entry

import "testing"

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	f := File{
		Metadata: Metadata{Name: "orig"},
		Data:     []byte{1, 2, 3},
		Rsrc:     []byte{4, 5, 6},
	}
	c := f.Clone()

	c.Data[0] = 0xFF
	c.Rsrc[0] = 0xFF
	if f.Data[0] != 1 {
		t.Fatalf("mutating clone's data fork affected the original: %v", f.Data)
	}
	if f.Rsrc[0] != 4 {
		t.Fatalf("mutating clone's resource fork affected the original: %v", f.Rsrc)
	}

	f.Data[0] = 0xAA
	if c.Data[0] != 0xFF {
		t.Fatalf("mutating the original's data fork affected the clone: %v", c.Data)
	}
}

func TestCloneHandlesNilForks(t *testing.T) {
	f := File{Metadata: Metadata{Name: "nildata"}}
	c := f.Clone()
	if c.Data != nil || c.Rsrc != nil {
		t.Fatalf("cloning a file with nil forks should keep them nil, got %#v", c)
	}
	if c.Name != "nildata" {
		t.Fatalf("clone lost metadata: %#v", c)
	}
}

func TestTruncateName(t *testing.T) {
	short := "short.txt"
	if got := TruncateName(short); got != short {
		t.Fatalf("short name was altered: %q", got)
	}

	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	got := TruncateName(string(long))
	if len(got) != 255 {
		t.Fatalf("got length %d, want 255", len(got))
	}
}
