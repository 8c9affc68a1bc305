// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package main

import (
	"encoding/binary"

	"golang.org/x/sys/unix"

	"github.com/pappadf/peeler/internal/entry"
)

// setFinderXattrs best-effort mirrors a written file's Finder metadata and
// resource fork into the native com.apple.FinderInfo / com.apple.ResourceFork
// extended attributes, alongside the mandatory AppleDouble sidecar. Darwin
// filesystems that honor these xattrs (e.g. when the data fork itself is
// later copied with ditto/cp -p) pick up the metadata without needing the
// sidecar; filesystems that don't just ignore the call.
func setFinderXattrs(path string, meta entry.Metadata, rsrc []byte) error {
	var finder [32]byte
	binary.BigEndian.PutUint32(finder[0:], meta.Type)
	binary.BigEndian.PutUint32(finder[4:], meta.Creator)
	binary.BigEndian.PutUint16(finder[8:], meta.FinderFlags)

	if err := unix.Setxattr(path, "com.apple.FinderInfo", finder[:], 0); err != nil {
		return err
	}
	if len(rsrc) == 0 {
		return nil
	}
	return unix.Setxattr(path, "com.apple.ResourceFork", rsrc, 0)
}
