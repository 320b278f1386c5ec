// Package ucdloader implements the external-UCD-file ingestion half of
// the property table builder (spec §4.A "Inputs", §6 "UCD input file
// format", §7 error taxonomy).
//
// The line grammar is semicolon-delimited, comment- and blank-line-tolerant,
// and forgiving of extra trailing fields:
//
//	HHHH        ; Name            (single codepoint assignment)
//	HHHH..HHHH  ; Name             (inclusive range)
//
// A directory holding a UCD release's text files is discovered with
// recursive glob patterns (via doublestar, spec §6's files live under
// nested subdirectories like extracted/ and emoji/), each file is parsed
// line by line, and a caller-supplied Apply callback receives every
// (codepoint, value) pair so it can update its own raw property array.
package ucdloader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrMissingUCDFile is wrapped into the error returned by LoadFile when the
// requested file does not exist. Per spec §7 this is the one fatal error
// kind in the taxonomy — every other malformed-input case is skipped
// silently instead of aborting the load.
var ErrMissingUCDFile = errors.New("ucdloader: missing UCD file")

// Assignment is one parsed data line: an inclusive codepoint range (Lo==Hi
// for a single-codepoint line) and the field value(s) after the first
// semicolon, split on ';' and trimmed. The loader itself does not know
// which UCD file it is reading, so it hands back every field rather than
// guessing which one the caller wants (spec §6: "tolerant of files with
// extra semicolon-separated fields").
type Assignment struct {
	Lo, Hi rune
	Fields []string
}

// Apply is called once per parsed data line. Returning a non-nil error does
// not stop the load (spec: MalformedUcdLine and UnknownUcdProperty are
// skip-silently kinds); LoadFile itself never returns an error from a
// rejected line. Apply only reports malformed/unknown values to a caller
// that wants to know, e.g. for logging in the generator tool.
type Apply func(a Assignment) error

// LoadFile parses a single UCD file from r, calling apply for every data
// line it recognizes. Lines that don't match the grammar, or whose
// codepoint range is inverted or out of range, are skipped without error
// (MalformedUcdLine). apply's own errors are likewise swallowed — it exists
// so callers can log, not so they can abort.
func LoadFile(r io.Reader, apply Apply) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if a, ok := parseLine(line); ok {
			_ = apply(a)
		}
	}
	return scanner.Err()
}

// LoadPath opens path and parses it, wrapping ErrMissingUCDFile if the file
// does not exist (the loader's one fatal error kind).
func LoadPath(path string, apply Apply) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingUCDFile, path)
		}
		return fmt.Errorf("ucdloader: opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadFile(f, apply)
}

// parseLine implements the grammar: blank lines and '#'-comments are
// ignored, then "HHHH ; value..." or "HHHH..HHHH ; value...".
func parseLine(line string) (Assignment, bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Assignment{}, false
	}

	parts := strings.Split(line, ";")
	if len(parts) < 2 {
		return Assignment{}, false
	}
	cpField := strings.TrimSpace(parts[0])
	fields := make([]string, 0, len(parts)-1)
	for _, f := range parts[1:] {
		fields = append(fields, strings.TrimSpace(f))
	}

	lo, hi, ok := parseCodepointOrRange(cpField)
	if !ok || hi < lo || hi >= 0x110000 {
		return Assignment{}, false
	}
	return Assignment{Lo: lo, Hi: hi, Fields: fields}, true
}

func parseCodepointOrRange(field string) (lo, hi rune, ok bool) {
	if dots := strings.Index(field, ".."); dots >= 0 {
		loVal, err1 := strconv.ParseUint(field[:dots], 16, 32)
		hiVal, err2 := strconv.ParseUint(field[dots+2:], 16, 32)
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return rune(loVal), rune(hiVal), true
	}
	val, err := strconv.ParseUint(field, 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(val), rune(val), true
}

// DiscoverFiles returns every file under root matching any of patterns
// (doublestar glob syntax, e.g. "extracted/**/*.txt"), sorted for
// deterministic load order. This lets callers point LoadPath at a UCD
// release's nested layout (auxiliary/, extracted/, emoji/) without hard
// coding each file's relative path.
func DiscoverFiles(root string, patterns ...string) ([]string, error) {
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("ucdloader: bad glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, filepath.Join(root, m))
		}
	}
	sort.Strings(out)
	return out, nil
}
