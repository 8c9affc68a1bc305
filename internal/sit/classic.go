// SPDX-License-Identifier: MIT
// Copyright (c) pappadf

package sit

import "github.com/pappadf/peeler/internal/peelerr"

// parseClassic walks a classic StuffIt archive's sequential 112-byte entry
// headers starting at archiveOff, tracking a folder-name stack (depth <=
// maxDepth) to build full paths, and returns the flat list of file entries.
func parseClassic(blob []byte, archiveOff int) []fileEntry {
	base := blob[archiveOff:]
	avail := len(base)

	if avail < classicHdrSize {
		peelerr.Abort(component, "classic archive too small")
	}

	fileCount := int(rd16(base[4:]))
	cursor := classicHdrSize
	done := 0

	var dirs [maxDepth]string
	depth := 0

	var out []fileEntry

	for done < fileCount {
		if cursor+entryHdrSize > avail {
			break
		}
		hdr := base[cursor:]
		rm := hdr[0]
		dm := hdr[1]

		if rm == folderStart || dm == folderStart {
			nlen := int(hdr[2])
			if depth < maxDepth && nlen < 64 {
				dirs[depth] = string(hdr[3 : 3+nlen])
				depth++
			}
			cursor += entryHdrSize
			done++
			continue
		}

		if rm == folderEnd || dm == folderEnd {
			if depth > 0 {
				depth--
			}
			cursor += entryHdrSize
			done++
			continue
		}

		if rm&0x10 != 0 || dm&0x10 != 0 {
			nlen := int(hdr[2])
			if nlen > 63 {
				nlen = 63
			}
			peelerr.Abort(component, "file %q is encrypted (unsupported)", string(hdr[3:3+nlen]))
		}

		if rm&0xE0 != 0 || dm&0xE0 != 0 {
			cursor += entryHdrSize
			done++
			continue
		}

		nlen := int(hdr[2])
		if nlen > 63 {
			nlen = 63
		}
		fname := string(hdr[3 : 3+nlen])

		path := ""
		for d := 0; d < depth; d++ {
			path += dirs[d] + "/"
		}
		path += fname

		ftype := rd32(hdr[66:])
		fcreator := rd32(hdr[70:])
		fflags := rd16(hdr[74:])

		rulen := rd32(hdr[84:])
		dulen := rd32(hdr[88:])
		rclen := rd32(hdr[92:])
		dclen := rd32(hdr[96:])
		rcrc := rd16(hdr[100:])
		dcrc := rd16(hdr[102:])

		rsrcPtr := cursor + entryHdrSize
		dataPtr := rsrcPtr + int(rclen)

		if dataPtr+int(dclen) > avail {
			peelerr.Abort(component, "classic: fork data extends past archive end")
		}

		out = append(out, fileEntry{
			name:        path,
			macType:     ftype,
			macCreator:  fcreator,
			finderFlags: fflags,
			data: forkInfo{
				rawLen:    dulen,
				packedLen: dclen,
				crc:       dcrc,
				method:    dm & 0x0F,
				data:      base[dataPtr : dataPtr+int(dclen)],
			},
			rsrc: forkInfo{
				rawLen:    rulen,
				packedLen: rclen,
				crc:       rcrc,
				method:    rm & 0x0F,
				data:      base[rsrcPtr : rsrcPtr+int(rclen)],
			},
			hasRsrc: rulen > 0,
		})

		cursor = dataPtr + int(dclen)
		done++
	}

	return out
}
