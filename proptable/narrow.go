package proptable

import "encoding/binary"

// narrowIndex is a slice of table indices packed at the narrowest width
// (1, 2, or 4 bytes) that can represent every value it holds, chosen once
// when the slice is finalized (spec §3: stage1/stage2 entries are "a narrow
// index -- uint8 or uint16 -- chosen at build time so all used values
// fit"). Block deduplication keeps the number of distinct blocks and
// properties small, so this routinely collapses a table that would
// otherwise be hundreds of KiB of uint32 down to the size spec §9 expects.
type narrowIndex struct {
	width byte // 1, 2, or 4
	data  []byte
}

// newNarrowIndex packs values at the narrowest width that fits the largest
// value present.
func newNarrowIndex(values []uint32) narrowIndex {
	var max uint32
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	switch {
	case max <= 0xFF:
		data := make([]byte, len(values))
		for i, v := range values {
			data[i] = byte(v)
		}
		return narrowIndex{width: 1, data: data}
	case max <= 0xFFFF:
		data := make([]byte, len(values)*2)
		for i, v := range values {
			binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
		}
		return narrowIndex{width: 2, data: data}
	default:
		data := make([]byte, len(values)*4)
		for i, v := range values {
			binary.LittleEndian.PutUint32(data[i*4:], v)
		}
		return narrowIndex{width: 4, data: data}
	}
}

// get returns the value at i.
func (n narrowIndex) get(i uint32) uint32 {
	switch n.width {
	case 1:
		return uint32(n.data[i])
	case 2:
		return uint32(binary.LittleEndian.Uint16(n.data[i*2:]))
	default:
		return binary.LittleEndian.Uint32(n.data[i*4:])
	}
}

// len reports the number of packed values.
func (n narrowIndex) len() int {
	if n.width == 0 {
		return 0
	}
	return len(n.data) / int(n.width)
}
