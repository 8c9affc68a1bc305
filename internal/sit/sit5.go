// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package sit

import (
	"github.com/pappadf/peeler/internal/crc16"
	"github.com/pappadf/peeler/internal/peelerr"
)

type sit5Dir struct {
	offset int
	path   string
}

// parseSIT5 walks a SIT5 archive's linked-list entry headers starting at
// archiveOff. Folder entries are recorded in a directory map (capped at
// sit5MaxDirs) so later entries can resolve their parent path by offset.
func parseSIT5(blob []byte, archiveOff int) []fileEntry {
	base := blob[archiveOff:]
	avail := len(base)

	if avail < sit5MinSize {
		peelerr.Abort(component, "archive too small (%d bytes)", avail)
	}

	entryCount := int(rd16(base[92:]))
	cursor := int(rd32(base[94:]))
	remaining := entryCount

	var dmap []sit5Dir

	var out []fileEntry

	for remaining > 0 && cursor != 0 && cursor+48 <= avail {
		h1 := base[cursor:]

		if rd32(h1) != sit5EntryMagic {
			peelerr.Abort(component, "invalid entry magic at offset %d", cursor)
		}
		if h1[4] != 1 {
			peelerr.Abort(component, "unsupported entry version %d", h1[4])
		}

		h1Len := int(rd16(h1[6:]))
		if cursor+h1Len > avail {
			peelerr.Abort(component, "header1 extends past archive end")
		}

		{
			tmp := make([]byte, h1Len)
			copy(tmp, h1[:h1Len])
			tmp[32], tmp[33] = 0, 0
			computed := crc16.Reflected(tmp)
			stored := rd16(h1[32:])
			if computed != stored {
				peelerr.Abort(component, "header CRC mismatch at offset %d", cursor)
			}
		}

		h2Off := cursor + h1Len
		flags := h1[9]
		parentOff := int(rd32(h1[26:]))
		namelen := int(rd16(h1[30:]))
		dRawLen := rd32(h1[34:])
		dPackedLen := rd32(h1[38:])
		dCRC := rd16(h1[42:])

		cl := namelen
		if cl > 255 {
			cl = 255
		}
		if cursor+48+cl > avail {
			cl = avail - cursor - 48
		}
		namebuf := string(h1[48 : 48+cl])

		if h2Off+32 > avail {
			peelerr.Abort(component, "header2 extends past archive end")
		}
		h2 := base[h2Off:]
		flags2 := rd16(h2[0:])
		ftype := rd32(h2[4:])
		fcreator := rd32(h2[8:])
		fflags := rd16(h2[12:])

		skipExtra := 18
		if h1[4] == 1 {
			skipExtra = 22
		}
		rsrcPresent := flags2&0x01 != 0
		afterPrefix := h2Off + 14 + skipExtra
		payloadPtr := afterPrefix

		var rRawLen, rPackedLen uint32
		var rCRC uint16
		var rAlgo uint8
		if rsrcPresent {
			if afterPrefix+14 > len(blob)-archiveOff {
				peelerr.Abort(component, "resource info past archive end")
			}
			rRawLen = rd32(base[afterPrefix:])
			rPackedLen = rd32(base[afterPrefix+4:])
			rCRC = rd16(base[afterPrefix+8:])
			rAlgo = base[afterPrefix+12]
			rpass := base[afterPrefix+13]
			payloadPtr = afterPrefix + 14 + int(rpass)
		}

		if flags&0x40 != 0 {
			childCount := int(rd16(h1[46:]))

			if dRawLen == 0xFFFFFFFF {
				cursor = h2Off
				continue
			}

			ppath := ""
			for _, d := range dmap {
				if d.offset == parentOff {
					ppath = d.path
					break
				}
			}

			folderFull := buildPath(ppath, namebuf)
			if len(dmap) < sit5MaxDirs {
				dmap = append(dmap, sit5Dir{offset: cursor, path: folderFull})
			}

			remaining += childCount
			cursor = payloadPtr
			continue
		}

		if dRawLen == 0xFFFFFFFF {
			cursor = h2Off
			continue
		}

		dAlgo := h1[46]
		dPassLen := h1[47]

		if flags&0x20 != 0 && dRawLen != 0 && dPassLen != 0 {
			peelerr.Abort(component, "encrypted entries are not supported")
		}

		ppath := ""
		for _, d := range dmap {
			if d.offset == parentOff {
				ppath = d.path
				break
			}
		}
		fullName := buildPath(ppath, namebuf)

		rBase := payloadPtr
		dBase := payloadPtr
		if rsrcPresent {
			dBase += int(rPackedLen)
		}
		if dBase+int(dPackedLen) > len(blob)-archiveOff {
			peelerr.Abort(component, "data fork extends past archive end")
		}

		fe := fileEntry{
			name:        fullName,
			macType:     ftype,
			macCreator:  fcreator,
			finderFlags: fflags,
			data: forkInfo{
				rawLen:    dRawLen,
				packedLen: dPackedLen,
				crc:       dCRC,
				method:    dAlgo & 0x0F,
				data:      base[dBase : dBase+int(dPackedLen)],
			},
		}
		if rsrcPresent && rRawLen > 0 {
			fe.hasRsrc = true
			fe.rsrc = forkInfo{
				rawLen:    rRawLen,
				packedLen: rPackedLen,
				crc:       rCRC,
				method:    rAlgo & 0x0F,
				data:      base[rBase : rBase+int(rPackedLen)],
			}
		}
		out = append(out, fe)

		cursor = dBase + int(dPackedLen)
		remaining--
	}

	return out
}

// buildPath joins a parent directory path with a name, either of which may
// be empty.
func buildPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
