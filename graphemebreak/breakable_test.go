package graphemebreak

import (
	"testing"

	"github.com/scalecode-solutions/colscan/proptable"
	"github.com/stretchr/testify/require"
)

func TestStreamStartAlwaysBreaks(t *testing.T) {
	var st State
	require.True(t, Breakable(0, 'a', proptable.Properties{}, proptable.Properties{}, &st))
}

func TestCRLFDoesNotBreak(t *testing.T) {
	var st State
	cr := proptable.Properties{GraphemeBreak: proptable.GBCR}
	lf := proptable.Properties{GraphemeBreak: proptable.GBLF}
	require.False(t, Breakable('\r', '\n', cr, lf, &st))
}

func TestExtendDoesNotBreak(t *testing.T) {
	var st State
	base := proptable.Properties{}
	extend := proptable.Properties{GraphemeBreak: proptable.GBExtend}
	require.False(t, Breakable('e', 0x0301, base, extend, &st))
}

func TestHangulLVT(t *testing.T) {
	var st State
	l := proptable.Properties{GraphemeBreak: proptable.GBL}
	v := proptable.Properties{GraphemeBreak: proptable.GBV}
	tProp := proptable.Properties{GraphemeBreak: proptable.GBT}
	require.False(t, Breakable('L', 'V', l, v, &st))
	require.False(t, Breakable('V', 'T', v, tProp, &st))
}

func TestRegionalIndicatorPairing(t *testing.T) {
	var st State
	ri := proptable.Properties{GraphemeBreak: proptable.GBRegionalIndicator}

	// Four consecutive RIs: (RI1 RI2) pair, break, (RI3 RI4) pair.
	require.True(t, Breakable(0, 0x1F1E9, proptable.Properties{}, ri, &st)) // start -> RI1 (DE's D)
	require.False(t, Breakable(0x1F1E9, 0x1F1EA, ri, ri, &st))              // RI1 x RI2 (DE's E): pair
	require.True(t, Breakable(0x1F1EA, 0x1F1FA, ri, ri, &st))               // RI2 / RI3: break, new pair
	require.False(t, Breakable(0x1F1FA, 0x1F1F8, ri, ri, &st))              // RI3 x RI4: pair
}

func TestExtendedPictographicZWJSequenceDoesNotBreak(t *testing.T) {
	var st State
	pictographic := proptable.Properties{Flags: proptable.FlagExtendedPictographic}
	zwj := proptable.Properties{GraphemeBreak: proptable.GBZWJ}

	require.True(t, Breakable(0, 0x2764, proptable.Properties{}, pictographic, &st))
	require.False(t, Breakable(0x2764, 0x200D, pictographic, zwj, &st))
	require.False(t, Breakable(0x200D, 0x2764, zwj, pictographic, &st))
}

func TestUnrelatedCodepointsBreak(t *testing.T) {
	var st State
	a := proptable.Properties{}
	b := proptable.Properties{}
	require.True(t, Breakable('a', 'b', a, b, &st))
}
