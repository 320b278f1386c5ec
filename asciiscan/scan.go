// Package asciiscan implements the scanner's ASCII bulk-scan fast path
// (spec §4.D): given a byte slice and a column budget, return the count of
// leading bytes that are printable ASCII (0x20..0x7F).
//
// The original C++ implementation this scanner is derived from dispatches
// to hand-written AVX-512/AVX2/SSE2 intrinsics, probed once at process
// start, with a 128-bit generic path as the portable fallback (spec §9,
// "SIMD dispatch"). Go has no portable way to emit those instructions
// without cgo or a dedicated assembly file per architecture, so this
// package reproduces the same shape — load a fixed-width lane, classify
// every byte in the lane in parallel, jump to the first stopping byte — in
// pure Go using the classic SWAR ("SIMD within a register") bit tricks over
// a uint64 word, with a byte-at-a-time scalar path for the tail and for
// inputs shorter than one word. See DESIGN.md for why this, and not a
// third-party SIMD library, is the substitute used here.
package asciiscan

import (
	"encoding/binary"
	"math/bits"
)

// wordBytes is the lane width in bytes. A real hardware-SIMD build would
// widen this to 32 or 64 under runtime CPU-feature dispatch; a uint64 word
// is the widest lane pure Go can classify branch-free without intrinsics.
const wordBytes = 8

const (
	loPattern = 0x0101010101010101
	hiPattern = 0x8080808080808080
	// controlThreshold is 0x20 broadcast into every byte lane, used by the
	// "hasless" bit trick below.
	controlThreshold = 0x20 * loPattern
)

// Scan returns n in [0, min(len(s), budget)] such that s[0:n] are all
// printable ASCII bytes (>= 0x20 and < 0x80), and either n == min(len(s),
// budget) or s[n] is a control byte (< 0x20) or a complex (non-ASCII, >=
// 0x80) byte.
func Scan(s []byte, budget int) int {
	if budget < 0 {
		budget = 0
	}
	limit := len(s)
	if budget < limit {
		limit = budget
	}
	window := s[:limit]

	i := 0
	for i+wordBytes <= len(window) {
		word := binary.LittleEndian.Uint64(window[i : i+wordBytes])
		if offset, stopped := firstStopByte(word); stopped {
			return i + offset
		}
		i += wordBytes
	}

	for i < len(window) && isPrintableASCII(window[i]) {
		i++
	}
	return i
}

func isPrintableASCII(b byte) bool {
	return b >= 0x20 && b < 0x80
}

// firstStopByte classifies all 8 bytes of word in parallel and returns the
// byte offset (0..7, in the word's memory order) of the first one that is
// either a control byte or a complex (non-ASCII) byte. ok is false if every
// byte in the word is printable ASCII.
func firstStopByte(word uint64) (offset int, ok bool) {
	// Any byte with its high bit set is >= 0x80 ("complex").
	complexMask := word & hiPattern

	// The classic hasless(x, n) trick finds bytes < n, but it only works
	// when every byte's high bit is already 0. Clearing the high bits
	// aliases complex bytes (0x80-0xFF) down into 0x00-0x7F, which can
	// make a complex byte look like a spurious control byte too — but
	// that byte is already marked a stop via complexMask, so the
	// aliasing never produces a wrong answer, only a redundant one.
	low7 := word &^ hiPattern
	controlMask := (low7 - controlThreshold) &^ low7 & hiPattern

	stop := complexMask | controlMask
	if stop == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(stop) / 8, true
}
