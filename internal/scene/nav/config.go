package nav

// Config carries the shared movement tuning for one scene. It replaces what
// would otherwise be module-level mutable speed state: the scene owns one
// Config and hands the same pointer to the navigator and the drone driver.
// SegmentDurationMS is the only field mutated after construction; it shortens
// on repeated same-direction intents and decays back toward the maximum on
// every hovering frame.
type Config struct {
	SegmentsPerWaypoint int
	GroundHeight        float64
	AltitudeHeight      float64

	SegmentDurationMS    float64
	MinSegmentDurationMS float64
	MaxSegmentDurationMS float64
	SpeedUpStepMS        float64
	DurationDecayMS      float64

	// Minimum interval between accepted input intents.
	MinIntentIntervalMS float64

	ViewportScrollableHeight float64
}

func NewConfig() *Config {
	return &Config{
		SegmentsPerWaypoint:      20,
		GroundHeight:             0.0,
		AltitudeHeight:           14.0,
		SegmentDurationMS:        900.0,
		MinSegmentDurationMS:     300.0,
		MaxSegmentDurationMS:     900.0,
		SpeedUpStepMS:            150.0,
		DurationDecayMS:          25.0,
		MinIntentIntervalMS:      80.0,
		ViewportScrollableHeight: 8100.0,
	}
}

// SpeedUp shortens the segment duration, clamped at the minimum bound.
func (c *Config) SpeedUp() {
	c.SegmentDurationMS -= c.SpeedUpStepMS
	if c.SegmentDurationMS < c.MinSegmentDurationMS {
		c.SegmentDurationMS = c.MinSegmentDurationMS
	}
}

// Relax moves the segment duration back toward the maximum bound. Called once
// per hovering frame.
func (c *Config) Relax() {
	c.SegmentDurationMS += c.DurationDecayMS
	if c.SegmentDurationMS > c.MaxSegmentDurationMS {
		c.SegmentDurationMS = c.MaxSegmentDurationMS
	}
}
