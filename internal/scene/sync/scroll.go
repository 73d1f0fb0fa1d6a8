package sync

import "drone-portfolio/internal/scene/nav"

// ScrollSync maps curve progress to a page scroll position. The target is
// recomputed from the navigator each frame and the published position eases
// toward it exponentially, with a faster rate while the drone moves and a
// slower one while it hovers so the scroll settles after motion stops.
type ScrollSync struct {
	viewportHeight   float64
	totalPoints      int
	pixelsPerSegment float64

	position float64
	moveRate float64
	idleRate float64
}

func NewScrollSync(viewportHeight float64, totalPoints int) *ScrollSync {
	return &ScrollSync{
		viewportHeight:   viewportHeight,
		totalPoints:      totalPoints,
		pixelsPerSegment: viewportHeight / float64(totalPoints),
		moveRate:         0.12,
		idleRate:         0.05,
	}
}

// Target computes the scroll position matching the navigator's progress: the
// fraction of points travelled scaled to the scrollable height, plus (or
// minus, backward) the in-segment fraction in pixels.
func (s *ScrollSync) Target(targetIndex int, factor float64, state nav.FlightState) float64 {
	base := float64(targetIndex) / float64(s.totalPoints) * s.viewportHeight
	section := factor * s.pixelsPerSegment

	switch state {
	case nav.FORWARD:
		return base + section
	case nav.BACKWARD:
		return base - section
	default:
		return base
	}
}

// Step eases the published position toward target and returns it.
func (s *ScrollSync) Step(target float64, moving bool) float64 {
	rate := s.idleRate
	if moving {
		rate = s.moveRate
	}
	s.position += (target - s.position) * rate
	return s.position
}

func (s *ScrollSync) Position() float64 {
	return s.position
}

func (s *ScrollSync) PixelsPerSegment() float64 {
	return s.pixelsPerSegment
}
