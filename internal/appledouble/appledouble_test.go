// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package appledouble

import (
	"testing"

	"github.com/pappadf/peeler/internal/entry"
	"github.com/stretchr/testify/require"
)

func TestNeedsSidecar(t *testing.T) {
	require.False(t, NeedsSidecar(entry.Metadata{}, nil))
	require.True(t, NeedsSidecar(entry.Metadata{Type: 0x54455854}, nil))
	require.True(t, NeedsSidecar(entry.Metadata{}, []byte("x")))
}

func TestWriteParseRoundTripNoResource(t *testing.T) {
	meta := entry.Metadata{Type: 0x54455854, Creator: 0x74747874, FinderFlags: 0x1234}
	buf := Write(meta, nil)

	p, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, meta, p.Meta)
	require.Empty(t, p.Resource)
	require.Len(t, p.Descriptors, 1)
	require.Equal(t, uint32(entryIDFinderInfo), p.Descriptors[0].ID)
}

func TestWriteParseRoundTripWithResource(t *testing.T) {
	meta := entry.Metadata{Type: 0x4150504c, Creator: 0x6d6f6f76, FinderFlags: 0}
	rsrc := []byte("resource fork bytes go here")
	buf := Write(meta, rsrc)

	p, err := Parse(buf)
	require.NoError(t, err)
	require.Equal(t, meta, p.Meta)
	require.Equal(t, rsrc, p.Resource)
	require.Len(t, p.Descriptors, 2)
}

func TestParseRejectsBadMagic(t *testing.T) {
	buf := Write(entry.Metadata{}, nil)
	buf[0] = 0xFF
	_, err := Parse(buf)
	require.Error(t, err)
}

func TestParseRejectsTruncated(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})
	require.Error(t, err)
}
