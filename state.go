package colscan

import (
	"github.com/scalecode-solutions/colscan/graphemebreak"
	"github.com/scalecode-solutions/colscan/utf8dec"
)

// State is the scanner's cross-call cursor (spec §3 scan_state). A State
// must not be shared across goroutines while a scan using it is in
// progress; the zero value is a valid starting state for a fresh stream.
type State struct {
	utf8              utf8dec.State
	lastCodepointHint rune
	ri                graphemebreak.State

	// pending holds the bytes of the grapheme cluster currently being
	// accumulated but not yet flushed to the receiver. Because Scan may be
	// called again with an entirely different backing array for text, these
	// bytes are copied rather than aliased, unlike the slices handed to
	// Receiver.ReceiveGraphemeCluster for a cluster completed within a
	// single call.
	pending      []byte
	pendingWidth int
	hasPending   bool

	// codepointBuf accumulates the raw bytes of the codepoint currently
	// being decoded, so a column-budget overflow discovered only once the
	// codepoint completes can still rewind past all of that codepoint's own
	// bytes, not just the one that happened to trigger Success.
	codepointBuf []byte
}

// NewState returns a ready-to-use State for a fresh stream.
func NewState() *State {
	return &State{}
}

// Reset returns the state to its zero value, as if scanning a brand new
// stream. Any not-yet-flushed cluster is discarded without being emitted.
func (s *State) Reset() {
	s.utf8.Reset()
	s.lastCodepointHint = 0
	s.ri.Reset()
	s.pending = s.pending[:0]
	s.pendingWidth = 0
	s.hasPending = false
	s.codepointBuf = s.codepointBuf[:0]
}
