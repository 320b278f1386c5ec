package proptable

import (
	"fmt"

	"github.com/tidwall/btree"
)

// Table is the two-stage codepoint property table (spec §3). It is
// immutable after Build returns and safe for concurrent lookups without any
// synchronization (spec §5).
type Table struct {
	blockSize  int
	stage1     narrowIndex // index into stage2, in block_size-sized strides
	stage2     narrowIndex // index into properties
	properties []Properties
}

// BlockSize returns the block size the table was built with.
func (t *Table) BlockSize() int { return t.blockSize }

// Stage1Len, Stage2Len and PropertiesLen expose table shape for diagnostics
// and tests; they are not part of the lookup hot path.
func (t *Table) Stage1Len() int     { return t.stage1.len() }
func (t *Table) Stage2Len() int     { return t.stage2.len() }
func (t *Table) PropertiesLen() int { return len(t.properties) }

// Lookup returns the properties for codepoint cp. Codepoints outside
// [0, MaxCodepoint) return the zero Properties value.
//
// properties[stage2[stage1[cp/block_size]*block_size + (cp%block_size)]]
func (t *Table) Lookup(cp rune) Properties {
	if cp < 0 || int(cp) >= MaxCodepoint {
		return Properties{}
	}
	block := int(cp) / t.blockSize
	offset := int(cp) % t.blockSize
	stage2Index := t.stage1.get(uint32(block))*uint32(t.blockSize) + uint32(offset)
	propIndex := t.stage2.get(stage2Index)
	return t.properties[propIndex]
}

// blockEntry records one already-placed block's content digest and the
// stage1 value blocks equal to it should reuse. Entries are ordered by
// (hash, seq) in the de-dup tree below so every block sharing a hash bucket
// can be found with an Ascend scan instead of a full linear re-scan of every
// earlier block (spec §4.A step 4 explicitly allows the linear scan since n
// is small; the tree is a faithful, faster substitute for the same check).
type blockEntry struct {
	hash    uint64
	seq     uint32
	content []Properties
	stage1  uint32
}

func blockEntryLess(a, b blockEntry) bool {
	if a.hash != b.hash {
		return a.hash < b.hash
	}
	return a.seq < b.seq
}

func fnvBlock(block []Properties) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, p := range block {
		h ^= uint64(p.GeneralCategory)
		h *= prime64
		h ^= uint64(p.Script)
		h *= prime64
		h ^= uint64(p.EastAsianWidth)
		h *= prime64
		h ^= uint64(p.GraphemeBreak)
		h *= prime64
		h ^= uint64(p.Flags)
		h *= prime64
		h ^= uint64(p.EmojiCategory)
		h *= prime64
	}
	return h
}

func blocksEqual(a, b []Properties) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Build implements spec §4.A steps 4-5: it partitions raw (one Properties
// value per codepoint, length MaxCodepoint) into blockSize-wide blocks,
// de-duplicates identical blocks into stage2, and de-duplicates identical
// Properties records into the properties array.
//
// blockSize must be a power of two dividing MaxCodepoint evenly; 128 and 256
// are the values the spec suggests.
func Build(raw []Properties, blockSize int) (*Table, error) {
	if len(raw) != MaxCodepoint {
		return nil, fmt.Errorf("proptable: raw table must have %d entries, got %d", MaxCodepoint, len(raw))
	}
	if blockSize <= 0 || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("proptable: blockSize must be a power of two, got %d", blockSize)
	}
	if MaxCodepoint%blockSize != 0 {
		return nil, fmt.Errorf("proptable: blockSize %d does not divide %d evenly", blockSize, MaxCodepoint)
	}

	numBlocks := MaxCodepoint / blockSize
	stage1 := make([]uint32, numBlocks)
	stage2 := make([]uint32, 0, numBlocks*blockSize/4)
	properties := make([]Properties, 0, 4096)

	// propIndex de-duplicates individual Properties records (step 5).
	propIndex := make(map[Properties]uint32, 4096)
	getOrCreatePropertyIndex := func(p Properties) uint32 {
		if idx, ok := propIndex[p]; ok {
			return idx
		}
		idx := uint32(len(properties))
		properties = append(properties, p)
		propIndex[p] = idx
		return idx
	}

	dedup := btree.NewBTreeG(blockEntryLess)
	var seqCounter uint32

	for b := 0; b < numBlocks; b++ {
		block := raw[b*blockSize : (b+1)*blockSize]
		hash := fnvBlock(block)

		found := false
		var foundStage1 uint32
		pivot := blockEntry{hash: hash}
		dedup.Ascend(pivot, func(entry blockEntry) bool {
			if entry.hash != hash {
				return false // past this hash bucket, stop
			}
			if blocksEqual(entry.content, block) {
				found = true
				foundStage1 = entry.stage1
				return false
			}
			return true
		})

		if found {
			stage1[b] = foundStage1
			continue
		}

		newStage1 := uint32(len(stage2) / blockSize)
		contentCopy := make([]Properties, blockSize)
		copy(contentCopy, block)
		for _, p := range block {
			stage2 = append(stage2, getOrCreatePropertyIndex(p))
		}
		dedup.Set(blockEntry{
			hash:    hash,
			seq:     seqCounter,
			content: contentCopy,
			stage1:  newStage1,
		})
		seqCounter++
		stage1[b] = newStage1
	}

	return &Table{
		blockSize:  blockSize,
		stage1:     newNarrowIndex(stage1),
		stage2:     newNarrowIndex(stage2),
		properties: properties,
	}, nil
}
