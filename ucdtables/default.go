package ucdtables

import (
	"sync"

	"github.com/scalecode-solutions/colscan/proptable"
)

// DefaultBlockSize is the stage1/stage2 block size used to build the
// package-level default table. 256 codepoints per block keeps stage1 at
// proptable.MaxCodepoint/256 (4352) narrow-index entries while still giving
// dense scripts (Latin, CJK, Hangul) blocks worth deduplicating.
const DefaultBlockSize = 256

var (
	defaultOnce  sync.Once
	defaultTable *proptable.Table
	defaultErr   error
)

// Default returns the shared, read-only property table built from this
// package's embedded range tables (spec §9: "built once... handed out as a
// shared, read-only reference"). The table is built lazily on first call
// and cached for the lifetime of the process.
func Default() (*proptable.Table, error) {
	defaultOnce.Do(func() {
		raw := make([]proptable.Properties, proptable.MaxCodepoint)
		Populate(raw)
		defaultTable, defaultErr = proptable.Build(raw, DefaultBlockSize)
	})
	return defaultTable, defaultErr
}

// MustDefault is Default, panicking on error. The embedded data is fixed at
// compile time, so a failure here means a bug in this package, not a
// recoverable runtime condition — callers that would otherwise immediately
// panic on Default's error can use this instead.
func MustDefault() *proptable.Table {
	t, err := Default()
	if err != nil {
		panic(err)
	}
	return t
}
