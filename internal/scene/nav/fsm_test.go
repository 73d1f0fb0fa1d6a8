package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	cfg := NewConfig()
	cfg.SegmentDurationMS = 1000
	cfg.MinSegmentDurationMS = 400
	cfg.MaxSegmentDurationMS = 1000
	cfg.SpeedUpStepMS = 200
	cfg.DurationDecayMS = 50
	cfg.MinIntentIntervalMS = 80
	return cfg
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name   string
		from   FlightState
		intent Intent
		want   FlightState
		ok     bool
	}{
		{"hovering forward", HOVERING, GO_FORWARD, FORWARD, true},
		{"hovering backward", HOVERING, GO_BACKWARD, BACKWARD, true},
		{"hovering hover is noop", HOVERING, GO_HOVER, HOVERING, false},
		{"forward backward reverses", FORWARD, GO_BACKWARD, BACKWARD, true},
		{"forward hover completes", FORWARD, GO_HOVER, HOVERING, true},
		{"forward forward is noop", FORWARD, GO_FORWARD, FORWARD, false},
		{"backward forward reverses", BACKWARD, GO_FORWARD, FORWARD, true},
		{"backward hover completes", BACKWARD, GO_HOVER, HOVERING, true},
		{"backward backward is noop", BACKWARD, GO_BACKWARD, BACKWARD, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Transition(tt.from, tt.intent)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestEntryIndices_Forward(t *testing.T) {
	n := NewNavigator(testConfig(), 80)
	n.targetIndex = 5

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)

	assert.Equal(t, FORWARD, n.State())
	assert.Equal(t, 5, n.SegmentStartIndex())
	assert.Equal(t, 6, n.SegmentEndIndex())
	assert.Equal(t, 6, n.LookaheadStartIndex())
	assert.Equal(t, 7, n.LookaheadEndIndex())
	assert.Equal(t, 0.0, n.SegmentStartMS())
}

func TestEntryIndices_ClampAtBounds(t *testing.T) {
	n := NewNavigator(testConfig(), 80)
	n.targetIndex = 79

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)

	assert.Equal(t, 80, n.SegmentEndIndex())
	assert.Equal(t, 80, n.LookaheadStartIndex())
	assert.Equal(t, 80, n.LookaheadEndIndex())
}

func TestGuard_ForwardAtFinalPoint(t *testing.T) {
	n := NewNavigator(testConfig(), 80)
	n.targetIndex = 80

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)

	assert.Equal(t, HOVERING, n.State())
	assert.Equal(t, 80, n.TargetIndex())
}

func TestGuard_BackwardAtFirstPoint(t *testing.T) {
	n := NewNavigator(testConfig(), 80)

	require.True(t, n.Submit(GO_BACKWARD, 0))
	n.UpdateState(0)

	assert.Equal(t, HOVERING, n.State())
	assert.Equal(t, 0, n.TargetIndex())
}

// Reversal 40% into a forward segment must leave 60% of the duration already
// consumed in the backward direction, so the drone resumes from the exact
// interpolated position.
func TestReversal_TimeCompensation(t *testing.T) {
	cfg := testConfig()
	n := NewNavigator(cfg, 80)
	n.targetIndex = 5

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)
	require.Equal(t, FORWARD, n.State())

	require.True(t, n.Submit(GO_BACKWARD, 400))
	n.UpdateState(400)

	assert.Equal(t, BACKWARD, n.State())
	assert.Equal(t, 6, n.TargetIndex())
	assert.Equal(t, 6, n.SegmentStartIndex())
	assert.Equal(t, 5, n.SegmentEndIndex())
	assert.InDelta(t, 600.0, 400.0-n.SegmentStartMS(), 1e-9)
}

// A reversal immediately reversed again restores the target index.
func TestReversal_RoundTrip(t *testing.T) {
	n := NewNavigator(testConfig(), 80)
	n.targetIndex = 5

	n.apply(GO_FORWARD, 0)
	require.Equal(t, FORWARD, n.State())
	require.Equal(t, 5, n.TargetIndex())

	n.apply(GO_BACKWARD, 300)
	require.Equal(t, 6, n.TargetIndex())

	n.apply(GO_FORWARD, 300)
	assert.Equal(t, FORWARD, n.State())
	assert.Equal(t, 5, n.TargetIndex())
	assert.Equal(t, 5, n.SegmentStartIndex())
	assert.Equal(t, 6, n.SegmentEndIndex())
}

func TestSpeedUp_SameDirectionIntent(t *testing.T) {
	cfg := testConfig()
	n := NewNavigator(cfg, 80)

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)
	require.Equal(t, FORWARD, n.State())

	require.True(t, n.Submit(GO_FORWARD, 100))
	n.UpdateState(100)

	assert.Equal(t, FORWARD, n.State(), "same-direction intent must not transition")
	assert.Equal(t, 800.0, cfg.SegmentDurationMS)
}

func TestSpeedUp_ClampedAtMinimum(t *testing.T) {
	cfg := testConfig()
	cfg.SegmentDurationMS = cfg.MinSegmentDurationMS
	n := NewNavigator(cfg, 80)

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)

	for i := 0; i < 5; i++ {
		now := float64(100 * (i + 1))
		require.True(t, n.Submit(GO_FORWARD, now))
		n.UpdateState(now)
	}

	assert.Equal(t, cfg.MinSegmentDurationMS, cfg.SegmentDurationMS)
}

func TestHover_DurationDecaysTowardMaximum(t *testing.T) {
	cfg := testConfig()
	cfg.SegmentDurationMS = 850
	n := NewNavigator(cfg, 80)

	n.UpdateState(0)
	assert.Equal(t, 900.0, cfg.SegmentDurationMS)

	for i := 0; i < 10; i++ {
		n.UpdateState(float64(i + 1))
	}
	assert.Equal(t, cfg.MaxSegmentDurationMS, cfg.SegmentDurationMS)
}

func TestSubmit_SamplingPolicy(t *testing.T) {
	n := NewNavigator(testConfig(), 80)

	assert.True(t, n.Submit(GO_FORWARD, 0))
	assert.False(t, n.Submit(GO_FORWARD, 10), "pending intent must block new ones")

	n.UpdateState(10)

	assert.False(t, n.Submit(GO_FORWARD, 50), "minimum interval not yet elapsed")
	assert.True(t, n.Submit(GO_FORWARD, 90))
}

func TestCompleteSegment_AdvancesAndHovers(t *testing.T) {
	n := NewNavigator(testConfig(), 80)

	require.True(t, n.Submit(GO_FORWARD, 0))
	n.UpdateState(0)

	n.CompleteSegment(1000)
	assert.Equal(t, HOVERING, n.State())
	assert.Equal(t, 1, n.TargetIndex())

	// Completion while hovering is a no-op.
	n.CompleteSegment(1100)
	assert.Equal(t, 1, n.TargetIndex())
}
