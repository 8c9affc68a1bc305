// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

//go:build !darwin

package main

import "github.com/pappadf/peeler/internal/entry"

// setFinderXattrs is a no-op off Darwin: com.apple.FinderInfo/ResourceFork
// xattrs have no equivalent on other filesystems, and the AppleDouble
// sidecar written alongside every call site already carries the same data.
func setFinderXattrs(path string, meta entry.Metadata, rsrc []byte) error {
	return nil
}
