package proptable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(make([]Properties, 10), 128)
	require.Error(t, err)

	_, err = Build(make([]Properties, MaxCodepoint), 100)
	require.Error(t, err, "100 is not a power of two")

	_, err = Build(make([]Properties, MaxCodepoint), 1024*1024)
	require.Error(t, err, "must divide MaxCodepoint evenly")
}

func TestBuildDeduplicatesBlocksAndProperties(t *testing.T) {
	raw := make([]Properties, MaxCodepoint)
	// Every codepoint defaults to the zero Properties, so every block
	// should collapse to a single stage2 block and a single properties
	// entry.
	table, err := Build(raw, 256)
	require.NoError(t, err)

	require.Equal(t, MaxCodepoint/256, table.Stage1Len())
	require.Equal(t, 256, table.Stage2Len())
	require.Equal(t, 1, table.PropertiesLen())

	for i := 0; i < table.stage1.len(); i++ {
		require.Equal(t, uint32(0), table.stage1.get(uint32(i)))
	}
}

func TestBuildPreservesPerCodepointLookup(t *testing.T) {
	raw := make([]Properties, MaxCodepoint)
	raw['A'] = Properties{GeneralCategory: GCUppercaseLetter, EastAsianWidth: EAWNarrow}
	raw['漢'] = Properties{GeneralCategory: GCOtherLetter, Script: ScriptHan, EastAsianWidth: EAWWide}
	raw[0x1F600] = Properties{Flags: FlagEmoji | FlagEmojiPresentation, EmojiCategory: EmojiEmojiPresentation}

	table, err := Build(raw, 128)
	require.NoError(t, err)

	for _, cp := range []rune{'A', '漢', 0x1F600, 'z', 0} {
		got := table.Lookup(cp)
		want := raw[cp]
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Lookup(%#x) mismatch (-want +got):\n%s", cp, diff)
		}
	}
}

func TestBuildOutOfRangeLookupIsZeroValue(t *testing.T) {
	raw := make([]Properties, MaxCodepoint)
	table, err := Build(raw, 128)
	require.NoError(t, err)

	require.Equal(t, Properties{}, table.Lookup(-1))
	require.Equal(t, Properties{}, table.Lookup(MaxCodepoint))
	require.Equal(t, Properties{}, table.Lookup(MaxCodepoint+1000))
}

func TestWidthPolicy(t *testing.T) {
	cases := []struct {
		eaw  EastAsianWidth
		want int
	}{
		{EAWNarrow, 1},
		{EAWNeutral, 1},
		{EAWHalfwidth, 1},
		{EAWAmbiguous, 1}, // spec §4.E / §9: Ambiguous treated as 1 (narrow)
		{EAWWide, 2},
		{EAWFullwidth, 2},
	}
	for _, c := range cases {
		p := Properties{EastAsianWidth: c.eaw}
		require.Equal(t, c.want, p.Width())
	}
}
