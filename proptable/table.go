// Package proptable implements the compact two-stage codepoint property
// table described by the scanner's data model: a dense, immutable map from
// Unicode codepoint to a small value record, built once by de-duplicating
// repeated blocks of the codepoint space.
package proptable

// GeneralCategory is one of the Unicode General_Category values relevant to
// segmentation and scanning decisions.
type GeneralCategory uint8

// General categories. Cn (Unassigned) is the zero value so a
// zero-initialized Properties looks like "nothing is known about this
// codepoint" rather than some specific assigned category.
const (
	GCUnassigned GeneralCategory = iota
	GCUppercaseLetter
	GCLowercaseLetter
	GCTitlecaseLetter
	GCModifierLetter
	GCOtherLetter
	GCNonspacingMark
	GCSpacingMark
	GCEnclosingMark
	GCDecimalNumber
	GCLetterNumber
	GCOtherNumber
	GCConnectorPunctuation
	GCDashPunctuation
	GCOpenPunctuation
	GCClosePunctuation
	GCInitialPunctuation
	GCFinalPunctuation
	GCOtherPunctuation
	GCMathSymbol
	GCCurrencySymbol
	GCModifierSymbol
	GCOtherSymbol
	GCSpaceSeparator
	GCLineSeparator
	GCParagraphSeparator
	GCControl
	GCFormat
	GCSurrogate
	GCPrivateUse
)

// Script is one of the ISO 15924 script identifiers, plus the three
// pseudo-scripts Unicode reserves for unassigned/shared/inherited code
// points. Common is the zero value.
type Script uint16

const (
	ScriptCommon Script = iota
	ScriptInherited
	ScriptInvalid
	ScriptLatin
	ScriptHan
	ScriptHiragana
	ScriptKatakana
	ScriptHangul
	ScriptCyrillic
	ScriptGreek
	ScriptArabic
	ScriptHebrew
	ScriptDevanagari
	ScriptThai
	ScriptArmenian
	ScriptGeorgian
	ScriptBopomofo
	// The remainder of the ~160 ISO 15924 scripts are not individually
	// enumerated here; unrecognized or not-yet-modeled scripts collapse to
	// ScriptCommon at table-build time. A full enumeration is mechanical
	// and omitted deliberately (see DESIGN.md).
)

// EastAsianWidth is the Unicode East Asian Width property (UAX #11).
type EastAsianWidth uint8

const (
	EAWNeutral EastAsianWidth = iota
	EAWAmbiguous
	EAWFullwidth
	EAWHalfwidth
	EAWNarrow
	EAWWide
)

// GraphemeBreak is the UAX #29 Grapheme_Cluster_Break class of a codepoint.
type GraphemeBreak uint8

const (
	GBOther GraphemeBreak = iota
	GBUndefined
	GBCR
	GBLF
	GBControl
	GBExtend
	GBZWJ
	GBRegionalIndicator
	GBPrepend
	GBSpacingMark
	GBL
	GBV
	GBT
	GBLV
	GBLVT
	GBEBase
	GBEModifier
	GBGlueAfterZwj
	GBEBaseGAZ
)

// Flags is a bitset over the emoji-related boolean properties used by the
// emoji segmentation category derivation (spec §4.B) and by the grapheme
// break rules (Extended_Pictographic).
type Flags uint8

const (
	FlagEmoji Flags = 1 << iota
	FlagEmojiPresentation
	FlagEmojiModifier
	FlagEmojiModifierBase
	FlagEmojiComponent
	FlagExtendedPictographic
	FlagGraphemeExtend
)

// EmojiSegmentationCategory is the derived category from spec §4.B.
type EmojiSegmentationCategory uint8

const (
	EmojiInvalid EmojiSegmentationCategory = iota
	EmojiCombiningEnclosingKeyCap
	EmojiCombiningEnclosingCircleBackslash
	EmojiZWJ
	EmojiVS15
	EmojiVS16
	EmojiTagBase
	EmojiTagSequence
	EmojiTagTerm
	EmojiModifierBase
	EmojiModifier
	EmojiRegionalIndicator
	EmojiKeyCapBase
	EmojiEmojiPresentation
	EmojiTextPresentation
	EmojiEmoji
)

// Properties is the per-codepoint value record (spec §3
// codepoint_properties). Equality is structural over all fields; this
// equality is what the table builder uses to de-duplicate entries.
type Properties struct {
	GeneralCategory GeneralCategory
	Script          Script
	EastAsianWidth  EastAsianWidth
	GraphemeBreak   GraphemeBreak
	Flags           Flags
	EmojiCategory   EmojiSegmentationCategory
}

// MaxCodepoint is one past the highest representable Unicode scalar value.
const MaxCodepoint = 0x110000

// Width returns the column width (1 or 2) the scanner attributes to a
// codepoint carrying these properties, treating Ambiguous as narrow (1) per
// spec §4.E and the open question in §9.
func (p Properties) Width() int {
	switch p.EastAsianWidth {
	case EAWWide, EAWFullwidth:
		return 2
	default:
		return 1
	}
}
