// Package graphemebreak implements the UAX #29 grapheme cluster boundary
// predicate described in spec §4.G: breakable(prev_cp, next_cp) -> bool,
// built on the grapheme-break class and emoji flags looked up from
// proptable.Properties.
//
// The predicate is stateless across most pairs, as the spec allows, except
// for two UAX #29 rules that inherently need more than one codepoint of
// lookback: GB11 (an Extended_Pictographic ZWJ sequence) and GB12/GB13
// (Regional Indicator parity). Both are carried in the small State value the
// caller threads alongside scan_state across calls — see DESIGN.md's Open
// Questions entry on why this is a deliberate, spec-sanctioned deviation
// from pure (prev, next) statelessness ("minimal implementation may pair
// greedily").
package graphemebreak

import "github.com/scalecode-solutions/colscan/proptable"

// class is the effective grapheme-break class used by the boundary rules
// below. It folds proptable.GraphemeBreak together with the
// Extended_Pictographic flag, the same way UAX #29 treats
// Extended_Pictographic as a class-like property for GB11 even though UCD
// stores it as a separate boolean.
type class uint8

const (
	clsOther class = iota
	clsCR
	clsLF
	clsControl
	clsExtend
	clsZWJ
	clsRegionalIndicator
	clsPrepend
	clsSpacingMark
	clsL
	clsV
	clsT
	clsLV
	clsLVT
	clsExtendedPictographic
)

func effectiveClass(p proptable.Properties) class {
	if p.Flags&proptable.FlagExtendedPictographic != 0 && p.GraphemeBreak == proptable.GBOther {
		return clsExtendedPictographic
	}
	switch p.GraphemeBreak {
	case proptable.GBCR:
		return clsCR
	case proptable.GBLF:
		return clsLF
	case proptable.GBControl:
		return clsControl
	case proptable.GBExtend:
		return clsExtend
	case proptable.GBZWJ:
		return clsZWJ
	case proptable.GBRegionalIndicator:
		return clsRegionalIndicator
	case proptable.GBPrepend:
		return clsPrepend
	case proptable.GBSpacingMark:
		return clsSpacingMark
	case proptable.GBL:
		return clsL
	case proptable.GBV:
		return clsV
	case proptable.GBT:
		return clsT
	case proptable.GBLV:
		return clsLV
	case proptable.GBLVT:
		return clsLVT
	default:
		return clsOther
	}
}

// pictographicRun tracks progress through an Extended_Pictographic Extend*
// ZWJ sequence for GB11.
type pictographicRun uint8

const (
	runNone pictographicRun = iota
	runPictographic
	runPictographicZWJ
)

// State is the cross-call auxiliary state the Regional Indicator and
// Extended_Pictographic+ZWJ rules need beyond a bare (prev, next) pair. The
// zero value is the correct initial state (no run in progress, RI count
// even).
type State struct {
	riOdd bool
	run   pictographicRun
}

// Reset returns the state to its zero value, used whenever the scanner
// resets last_codepoint_hint (e.g. after an invalid cluster or a control
// byte) so a stale run doesn't leak across it.
func (s *State) Reset() {
	*s = State{}
}

// Breakable reports whether a grapheme cluster boundary lies before next,
// given prev was the immediately preceding codepoint (or 0 as the stream
// start sentinel, which always breaks per GB1). prevProps/nextProps are
// their looked-up properties; st is updated in place to reflect next having
// been consumed.
func Breakable(prev, next rune, prevProps, nextProps proptable.Properties, st *State) bool {
	if prev == 0 {
		st.Reset()
		st.advance(effectiveClass(nextProps))
		return true
	}

	pc := effectiveClass(prevProps)
	nc := effectiveClass(nextProps)

	boundary := classBoundary(pc, nc, st)
	st.advance(nc)
	return boundary
}

func classBoundary(pc, nc class, st *State) bool {
	switch {
	// GB3: CR x LF
	case pc == clsCR && nc == clsLF:
		return false

	// GB4: (Control | CR | LF) ÷
	case pc == clsCR, pc == clsLF, pc == clsControl:
		return true

	// GB5: ÷ (Control | CR | LF)
	case nc == clsCR, nc == clsLF, nc == clsControl:
		return true

	// GB6: L x (L | V | LV | LVT)
	case pc == clsL && (nc == clsL || nc == clsV || nc == clsLV || nc == clsLVT):
		return false

	// GB7: (LV | V) x (V | T)
	case (pc == clsLV || pc == clsV) && (nc == clsV || nc == clsT):
		return false

	// GB8: (LVT | T) x T
	case (pc == clsLVT || pc == clsT) && nc == clsT:
		return false

	// GB9: x (Extend | ZWJ)
	case nc == clsExtend, nc == clsZWJ:
		return false

	// GB9a: x SpacingMark
	case nc == clsSpacingMark:
		return false

	// GB9b: Prepend x
	case pc == clsPrepend:
		return false

	// GB11: \p{Extended_Pictographic} Extend* ZWJ x \p{Extended_Pictographic}
	case nc == clsExtendedPictographic && st.run == runPictographicZWJ:
		return false

	// GB12/GB13: sot (RI RI)* RI x RI ; [^RI] (RI RI)* RI x RI
	//
	// st.riOdd reflects whether the run of consecutive RIs ending at prev
	// has odd length. An odd-length run ends on an unpaired RI, which
	// pairs with next (no boundary); an even-length run has already
	// completed its last pair, so next starts a fresh one (boundary).
	case pc == clsRegionalIndicator && nc == clsRegionalIndicator:
		return !st.riOdd

	// GB999: any ÷ any
	default:
		return true
	}
}

// advance updates the Extended_Pictographic/ZWJ run tracker and the
// Regional Indicator parity counter after next (of class nc) has been
// appended to the current cluster (or started a new one).
func (s *State) advance(nc class) {
	switch {
	case nc == clsExtendedPictographic:
		s.run = runPictographic
	case nc == clsExtend && s.run == runPictographic:
		// stays runPictographic: Extended_Pictographic Extend* ...
	case nc == clsZWJ && s.run == runPictographic:
		s.run = runPictographicZWJ
	default:
		s.run = runNone
	}

	if nc == clsRegionalIndicator {
		s.riOdd = !s.riOdd
	} else {
		s.riOdd = false
	}
}
