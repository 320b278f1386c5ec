package ucdtables

import (
	"unicode"

	"github.com/scalecode-solutions/colscan/emoji"
	"github.com/scalecode-solutions/colscan/proptable"
)

// hangulSBase, hangulTCount etc. implement the Hangul Syllable Type
// derivation formula (the same arithmetic UCD's own DerivedHangulSyllableType
// generation uses instead of listing all 11,172 syllables by hand): a
// syllable block index divisible by hangulTCount is an LV block (an LV
// sound with no trailing consonant), anything else in the block is LVT.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulTCount = 28
	hangulVCount = 21
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = 19 * hangulNCount
)

func forEachRange(table *unicode.RangeTable, f func(lo, hi, stride uint32)) {
	for _, r := range table.R16 {
		f(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
	}
	for _, r := range table.R32 {
		f(r.Lo, r.Hi, r.Stride)
	}
}

func applyRange(raw []proptable.Properties, table *unicode.RangeTable, set func(*proptable.Properties)) {
	forEachRange(table, func(lo, hi, stride uint32) {
		for cp := lo; cp <= hi; cp += stride {
			if int(cp) >= proptable.MaxCodepoint {
				continue
			}
			set(&raw[cp])
		}
	})
}

// Populate fills raw (length proptable.MaxCodepoint) with this package's
// embedded property assignments, following the same layering spec §4.A step
// 2 describes for real UCD files: scalar fields overwrite, flags OR-merge.
// It then derives Hangul Syllable Type analytically and, last, the emoji
// segmentation category for every codepoint (spec §4.A step 3).
func Populate(raw []proptable.Properties) {
	if len(raw) != proptable.MaxCodepoint {
		panic("ucdtables: Populate requires a raw slice of length proptable.MaxCodepoint")
	}

	applyGeneralCategory(raw)
	applyScripts(raw)
	applyEastAsianWidth(raw)
	applyGraphemeBreak(raw)
	applyEmojiFlags(raw)
	applyHangulSyllableType(raw)
	applyEmojiCategory(raw)
}

func applyGeneralCategory(raw []proptable.Properties) {
	set := func(gc proptable.GeneralCategory) func(*proptable.Properties) {
		return func(p *proptable.Properties) { p.GeneralCategory = gc }
	}
	applyRange(raw, GCUppercaseLetter, set(proptable.GCUppercaseLetter))
	applyRange(raw, GCLowercaseLetter, set(proptable.GCLowercaseLetter))
	applyRange(raw, GCOtherLetter, set(proptable.GCOtherLetter))
	applyRange(raw, GCDecimalNumber, set(proptable.GCDecimalNumber))
	applyRange(raw, GCNonspacingMark, set(proptable.GCNonspacingMark))
	applyRange(raw, GCOtherSymbol, set(proptable.GCOtherSymbol))
	applyRange(raw, GCSpaceSeparator, set(proptable.GCSpaceSeparator))
	applyRange(raw, GCFormat, set(proptable.GCFormat))
	applyRange(raw, GCControl, set(proptable.GCControl)) // applied last: controls win over any stray overlap
}

func applyScripts(raw []proptable.Properties) {
	set := func(s proptable.Script) func(*proptable.Properties) {
		return func(p *proptable.Properties) { p.Script = s }
	}
	applyRange(raw, ScriptLatin, set(proptable.ScriptLatin))
	applyRange(raw, ScriptHan, set(proptable.ScriptHan))
	applyRange(raw, ScriptHiragana, set(proptable.ScriptHiragana))
	applyRange(raw, ScriptKatakana, set(proptable.ScriptKatakana))
	applyRange(raw, ScriptHangul, set(proptable.ScriptHangul))
}

func applyEastAsianWidth(raw []proptable.Properties) {
	set := func(w proptable.EastAsianWidth) func(*proptable.Properties) {
		return func(p *proptable.Properties) { p.EastAsianWidth = w }
	}
	// Narrow first: where ranges overlap, later calls win.
	applyRange(raw, EAWNarrow, set(proptable.EAWNarrow))
	applyRange(raw, EAWAmbiguous, set(proptable.EAWAmbiguous))
	applyRange(raw, EAWHalfwidth, set(proptable.EAWHalfwidth))
	applyRange(raw, EAWWide, set(proptable.EAWWide))
}

func applyGraphemeBreak(raw []proptable.Properties) {
	set := func(gb proptable.GraphemeBreak) func(*proptable.Properties) {
		return func(p *proptable.Properties) { p.GraphemeBreak = gb }
	}
	applyRange(raw, GBExtend, set(proptable.GBExtend))
	applyRange(raw, GBRegionalIndicator, set(proptable.GBRegionalIndicator))
	applyRange(raw, GBPrepend, set(proptable.GBPrepend))
	applyRange(raw, GBSpacingMark, set(proptable.GBSpacingMark))

	// CR, LF and Control are derived directly rather than via a range
	// table: they are exactly the C0 controls, DEL and the C1 controls, a
	// fixed, tiny set not worth a RangeTable indirection for.
	raw[0x0D].GraphemeBreak = proptable.GBCR
	raw[0x0A].GraphemeBreak = proptable.GBLF
	for cp := 0; cp <= 0x1F; cp++ {
		if cp == 0x0D || cp == 0x0A {
			continue
		}
		raw[cp].GraphemeBreak = proptable.GBControl
	}
	raw[0x7F].GraphemeBreak = proptable.GBControl
	for cp := 0x80; cp <= 0x9F; cp++ {
		raw[cp].GraphemeBreak = proptable.GBControl
	}
}

func applyEmojiFlags(raw []proptable.Properties) {
	or := func(flag proptable.Flags) func(*proptable.Properties) {
		return func(p *proptable.Properties) { p.Flags |= flag }
	}
	applyRange(raw, EmojiEmoji, or(proptable.FlagEmoji))
	applyRange(raw, EmojiPresentation, or(proptable.FlagEmojiPresentation))
	applyRange(raw, EmojiModifier, or(proptable.FlagEmojiModifier))
	applyRange(raw, EmojiModifierBase, or(proptable.FlagEmojiModifierBase))
	applyRange(raw, EmojiComponent, or(proptable.FlagEmojiComponent))
	applyRange(raw, ExtendedPictographic, or(proptable.FlagExtendedPictographic))
	applyRange(raw, GBExtend, or(proptable.FlagGraphemeExtend))
}

// applyHangulSyllableType classifies AC00..D7A3 into L/V/T/LV/LVT
// analytically: sIndex = cp - hangulSBase; a syllable starting a new block
// of hangulTCount (sIndex % hangulTCount == 0) has no trailing consonant
// (LV); every other syllable in the block does (LVT). Jamo L/V/T come from
// three contiguous ranges starting at fixed bases.
func applyHangulSyllableType(raw []proptable.Properties) {
	for cp := hangulLBase; cp < hangulLBase+19; cp++ {
		raw[cp].GraphemeBreak = proptable.GBL
	}
	for cp := hangulVBase; cp < hangulVBase+hangulVCount; cp++ {
		raw[cp].GraphemeBreak = proptable.GBV
	}
	for cp := hangulTBase + 1; cp < hangulTBase+hangulTCount; cp++ {
		raw[cp].GraphemeBreak = proptable.GBT
	}
	for cp := hangulSBase; cp < hangulSBase+hangulSCount; cp++ {
		sIndex := cp - hangulSBase
		if sIndex%hangulTCount == 0 {
			raw[cp].GraphemeBreak = proptable.GBLV
		} else {
			raw[cp].GraphemeBreak = proptable.GBLVT
		}
	}
}

func applyEmojiCategory(raw []proptable.Properties) {
	for cp := 0; cp < proptable.MaxCodepoint; cp++ {
		raw[cp].EmojiCategory = emoji.Category(rune(cp), raw[cp])
	}
}
