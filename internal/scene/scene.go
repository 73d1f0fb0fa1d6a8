package scene

import (
	"fmt"
	"log"

	"drone-portfolio/internal/scene/asset"
	"drone-portfolio/internal/scene/curve"
	"drone-portfolio/internal/scene/drone"
	"drone-portfolio/internal/scene/nav"
	"drone-portfolio/internal/scene/sync"
	"drone-portfolio/internal/scene/world"
)

// Scene wires the navigation core together and runs it one tick per rendered
// frame. All state lives for the lifetime of the scene; there is exactly one
// logical thread of control, so no locking anywhere below.
type Scene struct {
	World  *world.World
	Path   *curve.Path
	Cfg    *nav.Config
	Nav    *nav.Navigator
	Drone  *drone.Drone
	Scroll *sync.ScrollSync

	Billboard *sync.Display
	Arcade    *sync.Display
	UFO       *sync.UFO
	Camera    *sync.FollowCamera

	// Index of the waypoint segment the drone currently traverses, refreshed
	// each frame for prop placement and HUD labels.
	WaypointIndex int

	FlightLog        []LogEntry
	maxFlightLogSize int

	nowMS float64
}

// NewScene builds the full scene. mesh may be nil for callers that have no
// asynchronous asset to wait on (tests); otherwise the drone stays inert
// until the handle finishes.
func NewScene(mesh *asset.Handle) (*Scene, error) {
	w := world.NewWorld()
	cfg := nav.NewConfig()

	path, err := curve.Build(w.Waypoints, cfg.SegmentsPerWaypoint, cfg.GroundHeight, cfg.AltitudeHeight)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	navigator := nav.NewNavigator(cfg, path.LastIndex())

	s := &Scene{
		World:            w,
		Path:             path,
		Cfg:              cfg,
		Nav:              navigator,
		Drone:            drone.NewDrone(cfg, navigator, path, mesh),
		Scroll:           sync.NewScrollSync(cfg.ViewportScrollableHeight, path.TotalPoints()),
		Billboard:        sync.NewDisplay("BILLBOARD"),
		Arcade:           sync.NewDisplay("ARCADE"),
		UFO:              sync.NewUFO(),
		Camera:           sync.NewFollowCamera(),
		maxFlightLogSize: 50,
	}
	s.AddLogEntry("scene ready, drone on pad", false)
	return s, nil
}

// NowMS is the scene clock in milliseconds, advanced by Update.
func (s *Scene) NowMS() float64 {
	return s.nowMS
}

// SubmitForward offers a forward intent to the navigator, subject to the
// accept-when-idle sampling policy.
func (s *Scene) SubmitForward() bool {
	return s.Nav.Submit(nav.GO_FORWARD, s.nowMS)
}

func (s *Scene) SubmitBackward() bool {
	return s.Nav.Submit(nav.GO_BACKWARD, s.nowMS)
}

// Update runs one frame: consume input, drive interpolation, then push the
// results to the scroll sync and the props. dt is in seconds.
func (s *Scene) Update(dt float64) {
	s.nowMS += dt * 1000.0

	prevState := s.Nav.State()
	s.Nav.UpdateState(s.nowMS)
	if s.Nav.State() != prevState {
		s.AddLogEntry(fmt.Sprintf("drone %s -> %s at point %d",
			nav.StateStringMap[prevState], nav.StateStringMap[s.Nav.State()], s.Nav.TargetIndex()), false)
	}

	completed := s.Drone.Update(s.nowMS)

	s.WaypointIndex = sync.WaypointSegmentIndex(s.Nav.TargetIndex(), s.Cfg.SegmentsPerWaypoint, s.World.Count())
	wp := s.World.Waypoint(s.WaypointIndex)

	if completed {
		if s.Nav.TargetIndex()%s.Cfg.SegmentsPerWaypoint == 0 {
			log.Printf("ARRIVAL: drone reached %s (point %d)", wp.Name, s.Nav.TargetIndex())
			s.AddLogEntry(fmt.Sprintf("arrived over %s", wp.Name), true)
		}
	}

	target := s.Scroll.Target(s.Nav.TargetIndex(), s.Drone.Factor(), s.Nav.State())
	s.Scroll.Step(target, s.Nav.Moving())

	s.Billboard.Update(wp, s.Cfg.GroundHeight, s.Drone)
	s.Arcade.Update(wp, s.Cfg.GroundHeight, s.Drone)
	s.UFO.Update(wp, s.Drone, dt)
	s.Camera.Update(s.Drone)
}
