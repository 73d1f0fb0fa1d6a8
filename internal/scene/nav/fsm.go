package nav

import "log"

// Navigator is the movement state machine. It owns the drone's position on
// the sampled path as indices plus the timestamp the active segment started
// at; the drone driver derives the continuous position from these each frame.
//
// TargetIndex always names the path point the drone occupies or is departing
// from. While moving, SegmentStartIndex == TargetIndex and SegmentEndIndex is
// the adjacent index in the travel direction, clamped to path bounds. The
// lookahead indices sit one segment further out and feed the facing
// computation.
type Navigator struct {
	cfg       *Config
	lastIndex int

	state       FlightState
	targetIndex int

	segmentStartIndex   int
	segmentEndIndex     int
	lookaheadStartIndex int
	lookaheadEndIndex   int
	segmentStartMS      float64

	pending      Intent
	lastAcceptMS float64
}

func NewNavigator(cfg *Config, lastIndex int) *Navigator {
	return &Navigator{
		cfg:          cfg,
		lastIndex:    lastIndex,
		state:        HOVERING,
		targetIndex:  0,
		pending:      NO_INTENT,
		lastAcceptMS: -cfg.MinIntentIntervalMS,
	}
}

func (n *Navigator) State() FlightState     { return n.state }
func (n *Navigator) TargetIndex() int       { return n.targetIndex }
func (n *Navigator) SegmentStartIndex() int { return n.segmentStartIndex }
func (n *Navigator) SegmentEndIndex() int   { return n.segmentEndIndex }
func (n *Navigator) LookaheadStartIndex() int {
	return n.lookaheadStartIndex
}
func (n *Navigator) LookaheadEndIndex() int  { return n.lookaheadEndIndex }
func (n *Navigator) SegmentStartMS() float64 { return n.segmentStartMS }
func (n *Navigator) LastIndex() int          { return n.lastIndex }

func (n *Navigator) Moving() bool {
	return n.state == FORWARD || n.state == BACKWARD
}

// Submit offers an input intent to the navigator. At most one intent is held
// at a time: a new one is only accepted once the previous one has been
// consumed by UpdateState, and only after the minimum sampling interval has
// elapsed. Bursts of input are dropped, not queued.
func (n *Navigator) Submit(intent Intent, nowMS float64) bool {
	if intent == NO_INTENT {
		return false
	}
	if n.pending != NO_INTENT {
		return false
	}
	if nowMS-n.lastAcceptMS < n.cfg.MinIntentIntervalMS {
		return false
	}
	n.pending = intent
	n.lastAcceptMS = nowMS
	return true
}

// UpdateState runs once per rendered frame: applies the hovering idle policy
// and consumes at most one pending intent.
func (n *Navigator) UpdateState(nowMS float64) {
	if n.state == HOVERING {
		n.cfg.Relax()
	}

	intent := n.pending
	n.pending = NO_INTENT
	if intent == NO_INTENT {
		return
	}

	// Same-direction intent while already moving is a speed-up request, not
	// a transition.
	if (n.state == FORWARD && intent == GO_FORWARD) ||
		(n.state == BACKWARD && intent == GO_BACKWARD) {
		n.cfg.SpeedUp()
		return
	}

	n.apply(intent, nowMS)
}

// CompleteSegment is called by the drone driver when the interpolation factor
// reaches 1.0: the target index advances one point in the travel direction
// and the machine returns to hovering, from which a re-sent intent can enter
// the next segment on the following frame.
func (n *Navigator) CompleteSegment(nowMS float64) {
	switch n.state {
	case FORWARD:
		if n.targetIndex < n.lastIndex {
			n.targetIndex++
		}
	case BACKWARD:
		if n.targetIndex > 0 {
			n.targetIndex--
		}
	default:
		return
	}
	n.apply(GO_HOVER, nowMS)
}

// apply attempts a table transition subject to the boundary guards, then runs
// the entry action for the (previous, new) state pair.
func (n *Navigator) apply(intent Intent, nowMS float64) {
	if intent == GO_FORWARD && n.targetIndex == n.lastIndex {
		log.Printf("nav: %s rejected at final point %d", IntentStringMap[intent], n.targetIndex)
		return
	}
	if intent == GO_BACKWARD && n.targetIndex == 0 {
		log.Printf("nav: %s rejected at first point", IntentStringMap[intent])
		return
	}

	next, ok := Transition(n.state, intent)
	if !ok {
		log.Printf("nav: %s rejected in state %s", IntentStringMap[intent], StateStringMap[n.state])
		return
	}

	prev := n.state
	n.state = next
	n.enter(prev, next, nowMS)
}

// enter runs the entry action keyed by the (previous, new) state pair.
func (n *Navigator) enter(prev, next FlightState, nowMS float64) {
	switch {
	case prev == HOVERING && next == FORWARD:
		n.assignForward()
		n.segmentStartMS = nowMS

	case prev == HOVERING && next == BACKWARD:
		n.assignBackward()
		n.segmentStartMS = nowMS

	case prev == FORWARD && next == BACKWARD:
		// Mid-flight reversal: the drone is now departing from the point it
		// was approaching. The new segment's start timestamp is shifted back
		// by the time already travelled so the reversed motion picks up from
		// the exact interpolated position instead of snapping.
		elapsed := n.clampElapsed(nowMS)
		n.targetIndex++
		n.assignBackward()
		n.segmentStartMS = nowMS - (n.cfg.SegmentDurationMS - elapsed)

	case prev == BACKWARD && next == FORWARD:
		elapsed := n.clampElapsed(nowMS)
		n.targetIndex--
		n.assignForward()
		n.segmentStartMS = nowMS - (n.cfg.SegmentDurationMS - elapsed)

	case next == HOVERING:
		// No index mutation on completion.
	}
}

func (n *Navigator) assignForward() {
	n.segmentStartIndex = n.targetIndex
	n.segmentEndIndex = min(n.targetIndex+1, n.lastIndex)
	n.lookaheadStartIndex = n.segmentEndIndex
	n.lookaheadEndIndex = min(n.segmentEndIndex+1, n.lastIndex)
}

func (n *Navigator) assignBackward() {
	n.segmentStartIndex = n.targetIndex
	n.segmentEndIndex = max(n.targetIndex-1, 0)
	n.lookaheadStartIndex = n.segmentEndIndex
	n.lookaheadEndIndex = max(n.segmentEndIndex-1, 0)
}

func (n *Navigator) clampElapsed(nowMS float64) float64 {
	elapsed := nowMS - n.segmentStartMS
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > n.cfg.SegmentDurationMS {
		elapsed = n.cfg.SegmentDurationMS
	}
	return elapsed
}
