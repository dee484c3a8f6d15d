// Package ratelimit implements the sliding-window quota checks that gate
// outbound chat requests. Decisions are pure functions of a user's window
// of prior access timestamps; the caller owns loading and persisting it.
package ratelimit

// Reason identifies which quota denied a request.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonBurstLimit Reason = "burst_limit"
	ReasonDailyLimit Reason = "daily_limit"
)

// Limits holds the two nested quotas. Window spans are in seconds. The
// daily count doubles as the retention cap on the stored window.
type Limits struct {
	BurstCount  int
	BurstWindow int64
	DailyCount  int
	DailyWindow int64
}

// DefaultLimits returns the production quotas: 3 messages per rolling
// 30 seconds and 20 messages per rolling 24 hours.
func DefaultLimits() Limits {
	return Limits{
		BurstCount:  3,
		BurstWindow: 30,
		DailyCount:  20,
		DailyWindow: 86400,
	}
}

// Decision is the outcome of evaluating one access against a window.
type Decision struct {
	Allowed bool
	Reason  Reason
	// Window is the updated window to persist when Allowed, or the input
	// window unchanged when denied.
	Window []int64
}

// Evaluate decides whether an access at now is allowed given the window of
// prior access timestamps (ascending unix seconds). The input slice is
// never mutated; on allow, the returned window has now appended and is
// capped at DailyCount entries, dropping the oldest first.
//
// Both comparisons are strict: an access exactly BurstWindow (or
// DailyWindow) seconds after the reference entry is allowed.
func (l Limits) Evaluate(window []int64, now int64) Decision {
	if n := len(window); n >= l.BurstCount && now-window[n-l.BurstCount] < l.BurstWindow {
		return Decision{Reason: ReasonBurstLimit, Window: window}
	}
	if n := len(window); n >= l.DailyCount && now-window[n-l.DailyCount] < l.DailyWindow {
		return Decision{Reason: ReasonDailyLimit, Window: window}
	}

	updated := make([]int64, 0, len(window)+1)
	updated = append(updated, window...)
	if len(updated) >= l.DailyCount {
		updated = updated[len(updated)-l.DailyCount+1:]
	}
	return Decision{Allowed: true, Window: append(updated, now)}
}
