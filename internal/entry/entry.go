// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

// Package entry defines the extracted-file value shared by every archive
// decoder (Compact Pro, StuffIt classic, SIT5) and the peeling driver: a
// classic Mac filename plus type/creator/finder-flags metadata and the two
// forks.
package entry

// Metadata is a classic Mac filename plus the three metadata fields a
// format can supply. Any field a format cannot provide is zero.
type Metadata struct {
	Name        string
	Type        uint32
	Creator     uint32
	FinderFlags uint16
}

// File is a fully decoded archive member: metadata plus both forks. At
// least one fork must be nonempty for a File to belong in a List.
type File struct {
	Metadata
	Data []byte
	Rsrc []byte
}

// Clone deep-copies both forks, for callers that must outlive the buffer
// the File's forks were decoded into.
func (f File) Clone() File {
	c := f
	if f.Data != nil {
		c.Data = append([]byte(nil), f.Data...)
	}
	if f.Rsrc != nil {
		c.Rsrc = append([]byte(nil), f.Rsrc...)
	}
	return c
}

// List is an ordered sequence of extracted files, in the archive's natural
// serialization order.
type List []File

// TruncateName enforces the 255-byte classic Mac filename limit.
func TruncateName(name string) string {
	if len(name) > 255 {
		return name[:255]
	}
	return name
}
