package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEmptyWindow(t *testing.T) {
	d := DefaultLimits().Evaluate(nil, 1000)

	assert.True(t, d.Allowed)
	assert.Equal(t, ReasonNone, d.Reason)
	assert.Equal(t, []int64{1000}, d.Window)
}

func TestEvaluateShortWindowAlwaysPassesBurst(t *testing.T) {
	limits := DefaultLimits()

	for _, window := range [][]int64{
		{1000},
		{1000, 1001},
	} {
		d := limits.Evaluate(window, 1001)
		assert.True(t, d.Allowed, "window of length %d must pass", len(window))
	}
}

func TestEvaluateBurstLimit(t *testing.T) {
	limits := DefaultLimits()

	tests := []struct {
		name   string
		window []int64
		now    int64
		allow  bool
		reason Reason
	}{
		{"third message 30s after first", []int64{100, 110, 120}, 130, true, ReasonNone},
		{"exactly at boundary allows", []int64{100, 110, 125}, 130, true, ReasonNone},
		{"one second inside denies", []int64{100, 110, 125}, 129, false, ReasonBurstLimit},
		{"measured from 3rd-most-recent", []int64{5, 100, 110, 125}, 129, true, ReasonNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := limits.Evaluate(tt.window, tt.now)
			assert.Equal(t, tt.allow, d.Allowed)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestEvaluateBurstAppendsToWindow(t *testing.T) {
	d := DefaultLimits().Evaluate([]int64{100, 110, 120}, 130)

	assert.True(t, d.Allowed)
	assert.Equal(t, []int64{100, 110, 120, 130}, d.Window)
}

// fullDay builds a 20-entry window spaced widely enough to clear the burst
// quota at any later instant.
func fullDay(start int64) []int64 {
	window := make([]int64, 20)
	for i := range window {
		window[i] = start + int64(i)*100
	}
	return window
}

func TestEvaluateDailyLimit(t *testing.T) {
	limits := DefaultLimits()
	window := fullDay(0) // oldest entry at t=0, newest at t=1900

	denied := limits.Evaluate(window, 2000)
	assert.False(t, denied.Allowed)
	assert.Equal(t, ReasonDailyLimit, denied.Reason)
	assert.Equal(t, window, denied.Window)

	// Exactly one day after the 20th-most-recent entry is allowed again.
	allowed := limits.Evaluate(window, 86400)
	assert.True(t, allowed.Allowed)
}

func TestEvaluateDailyIndependentOfBurst(t *testing.T) {
	// A user who never trips the burst quota can still hit the daily one.
	window := fullDay(0)
	d := DefaultLimits().Evaluate(window, 2000)

	assert.Equal(t, ReasonDailyLimit, d.Reason)
}

func TestEvaluateWindowStaysCapped(t *testing.T) {
	limits := DefaultLimits()
	window := fullDay(0)

	d := limits.Evaluate(window, 86400)
	assert.True(t, d.Allowed)
	assert.Len(t, d.Window, 20)
	// Oldest entry dropped, newest appended.
	assert.Equal(t, int64(100), d.Window[0])
	assert.Equal(t, int64(86400), d.Window[19])
}

func TestEvaluateCapRepeatedAppends(t *testing.T) {
	limits := DefaultLimits()
	var window []int64
	now := int64(0)

	for i := 0; i < 40; i++ {
		// Space each allowed access a day apart so neither quota denies.
		now += 86400
		d := limits.Evaluate(window, now)
		assert.True(t, d.Allowed)
		window = d.Window
		assert.LessOrEqual(t, len(window), 20)
	}
	assert.Len(t, window, 20)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	window := []int64{100, 110, 120}
	snapshot := append([]int64(nil), window...)

	DefaultLimits().Evaluate(window, 130)

	assert.Equal(t, snapshot, window)
}

func TestEvaluateOversizedSeedWindow(t *testing.T) {
	// A registration may seed more than 20 entries; the first allowed
	// append trims the excess.
	window := make([]int64, 30)
	for i := range window {
		window[i] = int64(i)
	}

	d := DefaultLimits().Evaluate(window, 200000)
	assert.True(t, d.Allowed)
	assert.Len(t, d.Window, 20)
}
