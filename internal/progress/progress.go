// Package progress carries scan progress snapshots from the pipelines to
// whatever is rendering them.
package progress

import "time"

// Snapshot is the state of a scan after a matched file was recorded.
type Snapshot struct {
	Matched   int
	TotalSize int64
	Totals    map[string]int64
}

// Func receives scan progress snapshots.
type Func func(Snapshot)

// Throttle wraps fn so it fires at most once per interval. The caller is
// expected to deliver a final update itself once the scan completes.
func Throttle(interval time.Duration, fn Func) Func {
	if fn == nil {
		return nil
	}
	var last time.Time
	return func(s Snapshot) {
		now := time.Now()
		if now.Sub(last) < interval {
			return
		}
		last = now
		fn(s)
	}
}
