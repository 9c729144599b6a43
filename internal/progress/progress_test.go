package progress

import (
	"testing"
	"time"
)

func TestThrottleNilFunc(t *testing.T) {
	if Throttle(time.Second, nil) != nil {
		t.Error("throttling a nil func should stay nil so callers can skip the call")
	}
}

func TestThrottleRateLimits(t *testing.T) {
	var calls int
	fn := Throttle(time.Hour, func(Snapshot) { calls++ })

	for i := 0; i < 100; i++ {
		fn(Snapshot{Matched: i})
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 within a single interval", calls)
	}
}

func TestThrottlePassesThroughAfterInterval(t *testing.T) {
	var got []int
	fn := Throttle(time.Millisecond, func(s Snapshot) { got = append(got, s.Matched) })

	fn(Snapshot{Matched: 1})
	time.Sleep(5 * time.Millisecond)
	fn(Snapshot{Matched: 2})

	if len(got) != 2 || got[1] != 2 {
		t.Errorf("got %v, want both snapshots delivered", got)
	}
}
