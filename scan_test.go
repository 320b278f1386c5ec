package colscan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingReceiver struct {
	asciiRuns       [][]byte
	clusters        [][]byte
	clusterWidths   []int
	invalidClusters int
}

func (r *recordingReceiver) ReceiveASCIISequence(b []byte) {
	r.asciiRuns = append(r.asciiRuns, append([]byte(nil), b...))
}

func (r *recordingReceiver) ReceiveGraphemeCluster(b []byte, width int) {
	r.clusters = append(r.clusters, append([]byte(nil), b...))
	r.clusterWidths = append(r.clusterWidths, width)
}

func (r *recordingReceiver) ReceiveInvalidGraphemeCluster() {
	r.invalidClusters++
}

func TestScanASCIIOnly(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	result := Scan(state, DefaultTable(), []byte("hello"), 10, rec)

	require.Equal(t, 5, result.Count)
	require.Equal(t, [][]byte{[]byte("hello")}, rec.asciiRuns)
}

func TestScanBudgetCutsMidASCII(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	result := Scan(state, DefaultTable(), []byte("hello world"), 5, rec)

	require.Equal(t, 5, result.Count)
	require.Equal(t, 5, result.End)
	require.Equal(t, [][]byte{[]byte("hello")}, rec.asciiRuns)
}

func TestScanWideCharacterFits(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	text := []byte("a\xE6\xBC\xA2") // "a漢"
	result := Scan(state, DefaultTable(), text, 3, rec)

	require.Equal(t, 3, result.Count)
	require.Equal(t, 4, result.End)
	require.Equal(t, [][]byte{[]byte("a")}, rec.asciiRuns)
	require.Empty(t, rec.clusters, "the trailing cluster is not emitted until a break or Flush")

	Flush(state, rec)
	require.Equal(t, [][]byte{text[1:4]}, rec.clusters)
	require.Equal(t, []int{2}, rec.clusterWidths)
}

func TestScanWideCharacterDoesNotFit(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	text := []byte("a\xE6\xBC\xA2")
	result := Scan(state, DefaultTable(), text, 2, rec)

	require.Equal(t, 1, result.Count)
	require.Equal(t, 1, result.End, "the wide cluster was not consumed")
	require.Empty(t, rec.clusters)
}

func TestScanEmojiWithVS16Fits(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	text := []byte{0xE2, 0x9D, 0xA4, 0xEF, 0xB8, 0x8F} // U+2764 U+FE0F
	result := Scan(state, DefaultTable(), text, 2, rec)

	require.Equal(t, 2, result.Count)
	Flush(state, rec)
	require.Equal(t, [][]byte{text}, rec.clusters)
	require.Equal(t, []int{2}, rec.clusterWidths)
}

func TestScanEmojiWithVS16Overflows(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	text := []byte{0xE2, 0x9D, 0xA4, 0xEF, 0xB8, 0x8F}
	result := Scan(state, DefaultTable(), text, 1, rec)

	require.Equal(t, 0, result.Count)
	require.Equal(t, 0, result.End, "rewound to the cluster start")
	require.Empty(t, rec.clusters)
}

func TestScanInvalidUTF8(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	text := []byte{0xFF, 'x'}
	result := Scan(state, DefaultTable(), text, 5, rec)

	require.Equal(t, 2, result.Count)
	require.Equal(t, 1, rec.invalidClusters)
	require.Equal(t, [][]byte{[]byte("x")}, rec.asciiRuns)
}

func TestScanSplitPartialUTF8AcrossCalls(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}

	result1 := Scan(state, DefaultTable(), []byte{0xE6, 0xBC}, 5, rec)
	require.Equal(t, 0, result1.Count)
	require.Empty(t, rec.clusters)

	result2 := Scan(state, DefaultTable(), []byte{0xA2}, 5, rec)
	require.Equal(t, 2, result2.Count)

	Flush(state, rec)
	require.Equal(t, [][]byte{{0xE6, 0xBC, 0xA2}}, rec.clusters)
	require.Equal(t, []int{2}, rec.clusterWidths)
}

func TestScanControlByteEndsScan(t *testing.T) {
	state := NewState()
	rec := &recordingReceiver{}
	result := Scan(state, DefaultTable(), []byte("a\n"), 10, rec)

	require.Equal(t, 1, result.Count)
	require.Equal(t, 1, result.End, "the control byte is left unconsumed")
	require.Empty(t, rec.clusters)
	require.Equal(t, 0, rec.invalidClusters)
}

func TestScanNullReceiverNoPanic(t *testing.T) {
	state := NewState()
	result := Scan(state, DefaultTable(), []byte("hello \xE6\xBC\xA2"), 20, nil)
	require.Equal(t, 8, result.Count)
}

func TestScanDefaultTableWhenNil(t *testing.T) {
	state := NewState()
	result := Scan(state, nil, []byte("abc"), 10, NullReceiver{})
	require.Equal(t, 3, result.Count)
}
