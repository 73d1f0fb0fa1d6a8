package nav

// FlightState is the drone movement state.
type FlightState int

const (
	HOVERING FlightState = iota
	FORWARD
	BACKWARD
)

var StateStringMap = map[FlightState]string{
	HOVERING: "HOVERING",
	FORWARD:  "FORWARD",
	BACKWARD: "BACKWARD",
}

// Intent is a direction event. GO_FORWARD and GO_BACKWARD come from the
// input layer; GO_HOVER is raised internally on segment completion.
type Intent int

const (
	NO_INTENT Intent = iota
	GO_FORWARD
	GO_BACKWARD
	GO_HOVER
)

var IntentStringMap = map[Intent]string{
	NO_INTENT:   "NONE",
	GO_FORWARD:  "GO_FORWARD",
	GO_BACKWARD: "GO_BACKWARD",
	GO_HOVER:    "GO_HOVER",
}

// Transition is the pure state table. The second return reports whether the
// (state, intent) pair is listed; unlisted pairs are no-ops for the caller.
func Transition(from FlightState, intent Intent) (FlightState, bool) {
	switch from {
	case HOVERING:
		switch intent {
		case GO_FORWARD:
			return FORWARD, true
		case GO_BACKWARD:
			return BACKWARD, true
		}
	case FORWARD:
		switch intent {
		case GO_BACKWARD:
			return BACKWARD, true
		case GO_HOVER:
			return HOVERING, true
		}
	case BACKWARD:
		switch intent {
		case GO_FORWARD:
			return FORWARD, true
		case GO_HOVER:
			return HOVERING, true
		}
	}
	return from, false
}
