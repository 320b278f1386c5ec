package ucdloader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleFile = `# Scripts-17.0.0.txt
# Comment line, ignored

0041          ; Latin # L&  LATIN CAPITAL LETTER A
0061..007A    ; Latin # L&  [26] LATIN SMALL LETTER A..LATIN SMALL LETTER Z
this is not a valid line at all
1F1E6..1F1FF  ; Common ; extra ; fields # REGIONAL INDICATOR SYMBOL LETTER A..Z
`

func TestLoadFileParsesSingleAndRangeLines(t *testing.T) {
	var got []Assignment
	err := LoadFile(strings.NewReader(sampleFile), func(a Assignment) error {
		got = append(got, a)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, Assignment{Lo: 0x0041, Hi: 0x0041, Fields: []string{"Latin"}}, got[0])
	require.Equal(t, Assignment{Lo: 0x0061, Hi: 0x007A, Fields: []string{"Latin"}}, got[1])
	require.Equal(t, rune(0x1F1E6), got[2].Lo)
	require.Equal(t, rune(0x1F1FF), got[2].Hi)
	require.Equal(t, []string{"Common", "extra", "fields"}, got[2].Fields)
}

func TestLoadFileSkipsMalformedLinesSilently(t *testing.T) {
	err := LoadFile(strings.NewReader("garbage\n\n# comment only\n"), func(Assignment) error {
		t.Fatal("apply should not be called for any line here")
		return nil
	})
	require.NoError(t, err)
}

func TestLoadPathMissingFileIsFatal(t *testing.T) {
	err := LoadPath(filepath.Join(t.TempDir(), "does-not-exist.txt"), func(Assignment) error { return nil })
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingUCDFile))
}

func TestDiscoverFilesGlobsNestedLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "extracted"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "emoji"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extracted", "DerivedGeneralCategory.txt"), []byte(sampleFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "emoji", "emoji-data.txt"), []byte(sampleFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Scripts.txt"), []byte(sampleFile), 0o644))

	files, err := DiscoverFiles(dir, "Scripts.txt", "extracted/**/*.txt", "emoji/**/*.txt")
	require.NoError(t, err)
	require.Len(t, files, 3)
}
