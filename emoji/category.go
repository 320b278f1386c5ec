// Package emoji implements the emoji segmentation category derivation from
// spec §4.B: a pure function from a codepoint and its already-populated
// properties to one category value, evaluated in a fixed priority order.
package emoji

import "github.com/scalecode-solutions/colscan/proptable"

// Category derives the emoji segmentation category for cp given its
// properties. It is pure and stateless: calling it twice with the same
// arguments always returns the same result. The priority order below is
// part of the spec contract — do not reorder these checks.
func Category(cp rune, p proptable.Properties) proptable.EmojiSegmentationCategory {
	switch {
	case cp == 0x20E3:
		return proptable.EmojiCombiningEnclosingKeyCap
	case cp == 0x20E0:
		return proptable.EmojiCombiningEnclosingCircleBackslash
	case cp == 0x200D:
		return proptable.EmojiZWJ
	case cp == 0xFE0E:
		return proptable.EmojiVS15
	case cp == 0xFE0F:
		return proptable.EmojiVS16
	case cp == 0x1F3F4:
		return proptable.EmojiTagBase
	case cp >= 0xE0030 && cp <= 0xE0039, cp >= 0xE0061 && cp <= 0xE007A:
		return proptable.EmojiTagSequence
	case cp == 0xE007F:
		return proptable.EmojiTagTerm
	case p.Flags&proptable.FlagEmojiModifierBase != 0:
		return proptable.EmojiModifierBase
	case p.Flags&proptable.FlagEmojiModifier != 0:
		return proptable.EmojiModifier
	case p.GraphemeBreak == proptable.GBRegionalIndicator:
		return proptable.EmojiRegionalIndicator
	case cp >= '0' && cp <= '9', cp == '#', cp == '*':
		return proptable.EmojiKeyCapBase
	case p.Flags&proptable.FlagEmojiPresentation != 0:
		return proptable.EmojiEmojiPresentation
	case p.Flags&proptable.FlagEmoji != 0 && p.Flags&proptable.FlagEmojiPresentation == 0:
		return proptable.EmojiTextPresentation
	case p.Flags&proptable.FlagEmoji != 0:
		return proptable.EmojiEmoji
	default:
		return proptable.EmojiInvalid
	}
}
