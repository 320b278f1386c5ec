// Package ucdtables holds the module's embedded, already-parsed Unicode
// Character Database assignments: the "raw[cp]" source of truth that
// proptable.Build partitions into the two-stage lookup table.
//
// The assignments are represented as *unicode.RangeTable values, the same
// data shape the standard unicode package and golang.org/x/text use for
// Unicode properties, and combined with golang.org/x/text/unicode/rangetable
// (rangetable.New, rangetable.Merge) rather than ad hoc slices of [lo,hi]
// pairs.
//
// This is a representative subset of the UCD, not the full 17.0 database:
// it covers every script/category/width/grapheme-break/emoji combination
// the scanner's test scenarios and common terminal workloads exercise
// (ASCII, CJK ideographs, Hiragana/Katakana, Hangul, combining marks,
// regional indicators, the core emoji ranges, variation selectors, tag
// characters). A production deployment would instead run the generator in
// gen_tables.go (build tag "generate") against a real UCD checkout. See
// DESIGN.md for the scope decision.
package ucdtables

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

func rt(lo, hi rune) *unicode.RangeTable {
	return &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}},
	}
}

func single(r rune) *unicode.RangeTable {
	return rangetable.New(r)
}

func runes(rs ...rune) *unicode.RangeTable {
	return rangetable.New(rs...)
}

// --- General Category -------------------------------------------------

var (
	GCUppercaseLetter = rangetable.Merge(rt('A', 'Z'), rt(0x00C0, 0x00DE))
	GCLowercaseLetter = rangetable.Merge(rt('a', 'z'), rt(0x00DF, 0x00FF))
	GCDecimalNumber   = rt('0', '9')
	GCControl         = rangetable.Merge(rt(0x0000, 0x001F), single(0x007F), rt(0x0080, 0x009F))
	GCSpaceSeparator  = runes(0x0020, 0x00A0)
	GCOtherLetter     = rangetable.Merge(
		rt(0x3040, 0x309F), // Hiragana
		rt(0x30A0, 0x30FF), // Katakana
		rt(0x3400, 0x4DBF), // CJK Ext A
		rt(0x4E00, 0x9FFF), // CJK Unified Ideographs
		rt(0xAC00, 0xD7A3), // Hangul syllables
		rt(0x1100, 0x11FF), // Hangul Jamo
	)
	GCNonspacingMark = rt(0x0300, 0x036F) // combining diacritical marks
	GCOtherSymbol    = rangetable.Merge(
		single(0x2764),     // HEAVY BLACK HEART
		rt(0x2600, 0x27BF), // misc symbols / dingbats
		rt(0x1F300, 0x1FAFF),
	)
	GCFormat = rangetable.Merge(
		single(0x200D), // ZWJ
		rt(0xFE00, 0xFE0F),
		rt(0xE0000, 0xE007F), // tag characters
	)
)

// --- Script -------------------------------------------------------------

var (
	ScriptLatin    = rangetable.Merge(rt('A', 'Z'), rt('a', 'z'), rt(0x00C0, 0x00FF))
	ScriptHan      = rangetable.Merge(rt(0x3400, 0x4DBF), rt(0x4E00, 0x9FFF))
	ScriptHiragana = rt(0x3040, 0x309F)
	ScriptKatakana = rt(0x30A0, 0x30FF)
	ScriptHangul   = rangetable.Merge(rt(0x1100, 0x11FF), rt(0xAC00, 0xD7A3))
)

// --- East Asian Width (UAX #11) -----------------------------------------

var (
	EAWNarrow = rt(0x0020, 0x007E)
	EAWWide   = rangetable.Merge(
		rt(0x1100, 0x115F), // Hangul Jamo (leading consonants render wide)
		rt(0x2E80, 0x303E), // CJK radicals, symbols and punctuation
		rt(0x3041, 0x33FF), // Hiragana .. CJK compat
		rt(0x3400, 0x4DBF),
		rt(0x4E00, 0x9FFF),
		rt(0xAC00, 0xD7A3), // Hangul syllables
		rt(0xF900, 0xFAFF), // CJK compatibility ideographs
		rt(0xFF01, 0xFF60), // fullwidth forms
		rt(0x1F300, 0x1F64F),
		rt(0x1F900, 0x1FAFF),
		rt(0x1F1E6, 0x1F1FF), // regional indicators (rendered as half of a 2-column flag)
	)
	EAWHalfwidth = rt(0xFF61, 0xFFDC)
	EAWAmbiguous = runes(0x00B1, 0x2018, 0x2019, 0x2022)
)

// --- Grapheme_Cluster_Break (UAX #29) ------------------------------------

var (
	GBExtend = rangetable.Merge(
		rt(0x0300, 0x036F), // combining diacritical marks
		rt(0xFE00, 0xFE0F), // variation selectors (incl. VS15/VS16)
		rt(0x1F3FB, 0x1F3FF), // emoji skin tone modifiers
		rt(0xE0020, 0xE007E), // tag characters (not the terminator)
	)
	GBRegionalIndicator = rt(0x1F1E6, 0x1F1FF)
	GBPrepend            = runes() // none in this representative subset
	GBSpacingMark        = runes() // none in this representative subset
)

// --- Emoji properties (emoji-data.txt) ------------------------------------

var (
	EmojiEmoji = rangetable.Merge(
		single(0x2764),
		rt(0x2600, 0x27BF),
		rt(0x1F300, 0x1FAFF),
		rt('0', '9'), single('#'), single('*'), // keycap bases
	)
	EmojiPresentation = rangetable.Merge(
		rt(0x1F300, 0x1F64F),
		rt(0x1F900, 0x1FAFF),
	)
	EmojiModifier     = rt(0x1F3FB, 0x1F3FF)
	EmojiModifierBase = runes(0x1F466, 0x1F467, 0x1F468, 0x1F469, 0x1F6B6, 0x1F9D1)
	EmojiComponent    = rangetable.Merge(
		single(0x200D), // ZWJ
		rt(0xFE00, 0xFE0F),
		rt(0x1F1E6, 0x1F1FF),
		rt(0x1F3FB, 0x1F3FF),
		rt('0', '9'), single('#'), single('*'),
		rt(0xE0020, 0xE007F),
	)
	ExtendedPictographic = rangetable.Merge(
		single(0x2764),
		rt(0x2600, 0x27BF),
		rt(0x1F300, 0x1FAFF),
	)
)
