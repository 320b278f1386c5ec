// Package colscan implements a column-bounded Unicode text scanner: given a
// byte slice and a maximum column budget, it walks grapheme clusters (UAX
// #29) and reports each one's East Asian Width column cost, stopping
// cleanly at a cluster boundary once the budget would be exceeded. It is
// built for terminal emulators and similar fixed-grid renderers that need
// to know how much of a line fits in N columns without splitting a
// character in half.
//
// The scanner alternates between a bulk ASCII fast path (asciiscan) and a
// UAX #29-aware complex path (utf8dec, graphemebreak, proptable) as the
// input dictates, persisting decode and grapheme-break state in a State
// value so callers can feed it independently-sized chunks (stdin reads,
// network buffers) across many calls.
package colscan

import (
	"github.com/scalecode-solutions/colscan/asciiscan"
	"github.com/scalecode-solutions/colscan/graphemebreak"
	"github.com/scalecode-solutions/colscan/proptable"
	"github.com/scalecode-solutions/colscan/ucdtables"
	"github.com/scalecode-solutions/colscan/utf8dec"
)

// DefaultTable returns the process-wide shared property table, built once
// and safe for concurrent use by any number of scans.
func DefaultTable() *proptable.Table {
	return ucdtables.MustDefault()
}

func isTrivialByte(b byte) bool {
	return b >= 0x20 && b < 0x80
}

// isControlOrTrivial reports whether a leading byte is either a control
// byte (< 0x20) or not complex (< 0x80) -- spec §4.E clause 1's test for
// ending the complex scan, which is broader than isTrivialByte above: a
// bare control byte like '\n' must halt scanning here even though it isn't
// part of the D-path's printable-ASCII run.
func isControlOrTrivial(b byte) bool {
	return b < 0x80
}

// Scan advances through text, emitting events to receiver until either the
// budget is spent or text is exhausted. state carries decode and
// grapheme-break continuation across calls; pass the same state for
// consecutive chunks of one logical stream, and a fresh state for a new one.
//
// Scan never fails: malformed UTF-8 is always representable as an
// ReceiveInvalidGraphemeCluster event (spec §7). It does not implicitly
// flush a cluster still being accumulated when text runs out — call Flush
// once the stream itself has ended to obtain that final cluster.
func Scan(state *State, table *proptable.Table, text []byte, budget int, receiver Receiver) Result {
	if receiver == nil {
		receiver = NullReceiver{}
	}
	if table == nil {
		table = DefaultTable()
	}

	pos := 0
	count := 0

	// A sequence left Incomplete by the previous call must be finished
	// before the trivial/complex dispatch loop below can inspect a leading
	// byte again.
	if state.utf8.Pending() {
		consumed, n := scanComplex(state, table, text, budget, receiver)
		pos += consumed
		count += n
	}

	for count < budget && pos < len(text) {
		b := text[pos]
		if isTrivialByte(b) {
			n := asciiscan.Scan(text[pos:], budget-count)
			if n == 0 {
				break
			}
			receiver.ReceiveASCIISequence(text[pos : pos+n])
			pos += n
			count += n
			continue
		}

		consumed, n := scanComplex(state, table, text[pos:], budget-count, receiver)
		if consumed == 0 && n == 0 {
			break
		}
		pos += consumed
		count += n
	}

	return Result{Count: count, Start: 0, End: pos}
}

// Flush emits the grapheme cluster state is still accumulating, if any,
// without waiting for a subsequent boundary to be observed. Its width was
// already reflected in a prior Scan call's Result.Count; Flush only
// delivers the bytes to receiver. It returns the cluster's width, or 0 if
// nothing was pending.
func Flush(state *State, receiver Receiver) int {
	if receiver == nil {
		receiver = NullReceiver{}
	}
	if !state.hasPending {
		return 0
	}
	receiver.ReceiveGraphemeCluster(state.pending, state.pendingWidth)
	width := state.pendingWidth
	state.pending = state.pending[:0]
	state.pendingWidth = 0
	state.hasPending = false
	return width
}

// scanComplex implements the grapheme-aware path (spec §4.E): it decodes
// UTF-8 one byte at a time, groups codepoints into clusters via the
// grapheme break predicate, and tracks each cluster's column width,
// rewinding to the last safe boundary if the next cluster would overflow
// budget. It returns the number of bytes of text it consumed and the
// number of columns it added to the caller's running count.
func scanComplex(state *State, table *proptable.Table, text []byte, budget int, receiver Receiver) (consumed, count int) {
	pos := 0

	// cpStartThisCall/clusterStartThisCall record, in this call's own byte
	// offsets, where the in-flight codepoint/cluster began -- but only if
	// it began during this call. A value of -1 means it began in an
	// earlier call, so the furthest this call can rewind is position 0;
	// bytes already handed back to a previous caller cannot be
	// un-consumed. See DESIGN.md for why this is an accepted limitation of
	// a slice-oriented (rather than single persistent buffer) Go API.
	cpStartThisCall := -1
	if !state.utf8.Pending() {
		cpStartThisCall = 0
	}
	clusterStartThisCall := -1
	var clusterStartRI graphemebreak.State
	var clusterStartHint rune

	// A cluster still pending from an earlier call already had its width
	// added to that call's count; only the difference is added here.
	counted := state.pendingWidth

	for count <= budget && pos < len(text) {
		b := text[pos]

		if isControlOrTrivial(b) {
			if state.utf8.Pending() {
				// A trivial or control byte arrived while a multi-byte
				// sequence was still open: the sequence is malformed. The
				// byte itself is not consumed here; control returns to the
				// caller's trivial/complex dispatch loop to handle it.
				receiver.ReceiveInvalidGraphemeCluster()
				count++
				state.utf8.Reset()
				state.lastCodepointHint = 0
				state.codepointBuf = state.codepointBuf[:0]
			}
			// A bare control byte (no sequence pending) ends the complex
			// scan here too, unconsumed -- terminal semantics treat a
			// control byte as the end of scannable text.
			break
		}

		if cpStartThisCall < 0 && !state.utf8.Pending() {
			cpStartThisCall = pos
		}
		wasPending := state.utf8.Pending()
		if !wasPending {
			state.codepointBuf = state.codepointBuf[:0]
		}
		res, cp := state.utf8.Feed(b)
		state.codepointBuf = append(state.codepointBuf, b)
		pos++

		switch res {
		case utf8dec.Incomplete:
			continue

		case utf8dec.Success:
			prev := state.lastCodepointHint
			prevProps := table.Lookup(prev)
			props := table.Lookup(cp)
			width := props.Width()

			savedRI := state.ri
			savedHint := state.lastCodepointHint
			breakable := graphemebreak.Breakable(prev, cp, prevProps, props, &state.ri)
			state.lastCodepointHint = cp

			if breakable {
				count += state.pendingWidth - counted
				counted = 0
				if state.hasPending {
					receiver.ReceiveGraphemeCluster(state.pending, state.pendingWidth)
				}
				state.pending = state.pending[:0]
				state.pendingWidth = 0
				state.hasPending = false

				if count+width > budget {
					// The new cluster's own starter doesn't fit: reject
					// just this one codepoint and stop.
					state.ri = savedRI
					state.lastCodepointHint = savedHint
					rewindTo := cpStartThisCall
					if rewindTo < 0 {
						rewindTo = 0
					}
					pos = rewindTo
					state.codepointBuf = state.codepointBuf[:0]
					goto doneComplex
				}

				state.pending = append(state.pending, state.codepointBuf...)
				state.pendingWidth = width
				state.hasPending = true
				clusterStartThisCall = cpStartThisCall
				clusterStartRI = savedRI
				clusterStartHint = savedHint
			} else {
				if cp == 0xFE0F { // VS-16: force the cluster to wide.
					state.pendingWidth = 2
				}
				if cp == 0xFE0F && count+state.pendingWidth-counted > budget {
					// The whole cluster, not just this codepoint, is
					// rejected: rewind to wherever it started.
					state.ri = clusterStartRI
					state.lastCodepointHint = clusterStartHint
					state.pending = state.pending[:0]
					state.pendingWidth = 0
					state.hasPending = false
					rewindTo := clusterStartThisCall
					if rewindTo < 0 {
						rewindTo = 0
					}
					pos = rewindTo
					state.codepointBuf = state.codepointBuf[:0]
					goto doneComplex
				}
				state.pending = append(state.pending, state.codepointBuf...)
			}
			state.codepointBuf = state.codepointBuf[:0]
			cpStartThisCall = -1

		case utf8dec.Invalid:
			count++
			receiver.ReceiveInvalidGraphemeCluster()
			state.pending = state.pending[:0]
			state.pendingWidth = 0
			state.hasPending = false
			counted = 0
			state.lastCodepointHint = 0
			state.ri.Reset()
			state.codepointBuf = state.codepointBuf[:0]
			cpStartThisCall = -1
			clusterStartThisCall = -1
		}
	}

	count += state.pendingWidth - counted

doneComplex:
	return pos, count
}
