package asciiscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanAllPrintable(t *testing.T) {
	require.Equal(t, 5, Scan([]byte("hello"), 10))
}

func TestScanBudgetCutsMidRun(t *testing.T) {
	require.Equal(t, 5, Scan([]byte("hello world"), 5))
}

func TestScanStopsAtControlByte(t *testing.T) {
	require.Equal(t, 2, Scan([]byte("hi\nthere"), 100))
}

func TestScanStopsAtComplexByte(t *testing.T) {
	require.Equal(t, 1, Scan([]byte("a\xE6\xBC\xA2"), 100))
}

func TestScanEmptyInput(t *testing.T) {
	require.Equal(t, 0, Scan(nil, 10))
	require.Equal(t, 0, Scan([]byte("hello"), 0))
}

func TestScanSpansMultipleWords(t *testing.T) {
	s := strings.Repeat("x", 100)
	require.Equal(t, 100, Scan([]byte(s), 1000))
}

func TestScanControlByteAtWordBoundary(t *testing.T) {
	for pos := 0; pos < 20; pos++ {
		s := []byte(strings.Repeat("a", pos) + "\x01" + strings.Repeat("b", 20))
		got := Scan(s, 1000)
		require.Equal(t, pos, got, "control byte at position %d", pos)
	}
}

func TestScanDELCountsAsPrintable(t *testing.T) {
	// 0x7F (DEL) is neither in [0x20,0x7E] nor >= 0x80; spec defines
	// printable ASCII as >= 0x20 AND < 0x80, so DEL (0x7F) counts as
	// printable by the letter of the contract even though it is the
	// control character often special-cased elsewhere.
	require.Equal(t, 1, Scan([]byte{0x7F}, 10))
}

func TestScanTailShorterThanWord(t *testing.T) {
	require.Equal(t, 3, Scan([]byte("abc"), 10))
}
