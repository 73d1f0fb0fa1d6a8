package sync

import (
	"math"

	"drone-portfolio/internal/scene/drone"
	"drone-portfolio/pkg/types"
)

const (
	ACTIVATION_RADIUS = 80.0
	UFO_ORBIT_RADIUS  = 30.0
	UFO_ORBIT_HEIGHT  = 26.0
	UFO_ORBIT_RATE    = 1.2 // radians per second
)

// WaypointSegmentIndex maps a curve-point index to the logical waypoint index
// used to name and place props. Monotonic in targetIndex, clamped to the
// waypoint table.
func WaypointSegmentIndex(targetIndex, segmentsPerWaypoint, waypointCount int) int {
	if segmentsPerWaypoint < 1 {
		return 0
	}
	idx := targetIndex / segmentsPerWaypoint
	if idx >= waypointCount {
		idx = waypointCount - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// WithinActivation reports whether the drone is close enough to a prop to
// light it up.
func WithinActivation(dronePos types.Vec3, propPos types.Vec3, radius float64) bool {
	dx := dronePos.X - propPos.X
	dz := dronePos.Z - propPos.Z
	return dx*dx+dz*dz < radius*radius
}

// Display is a waypoint-anchored prop (billboard, arcade screen) that shows
// the name and date of the waypoint segment the drone currently traverses and
// lights up when the drone is within the activation radius.
type Display struct {
	Label    string
	Position types.Vec3
	Name     string
	Date     string
	Active   bool
}

func NewDisplay(label string) *Display {
	return &Display{Label: label}
}

// Update pulls placement from the current waypoint and activation from the
// drone position.
func (p *Display) Update(wp types.Waypoint, groundHeight float64, m drone.Movable) {
	p.Position = types.NewVec3(wp.Position.X, groundHeight, wp.Position.Y)
	p.Name = wp.Name
	p.Date = wp.Date
	p.Active = WithinActivation(m.Position(), p.Position, ACTIVATION_RADIUS)
}

// UFO circles above the waypoint the drone is currently traversing and keeps
// facing the drone.
type UFO struct {
	Position types.Vec3
	Yaw      float64
	angle    float64
}

func NewUFO() *UFO {
	return &UFO{}
}

func (u *UFO) Update(wp types.Waypoint, m drone.Movable, dt float64) {
	u.angle += UFO_ORBIT_RATE * dt
	u.Position = types.NewVec3(
		wp.Position.X+UFO_ORBIT_RADIUS*math.Cos(u.angle),
		UFO_ORBIT_HEIGHT,
		wp.Position.Y+UFO_ORBIT_RADIUS*math.Sin(u.angle),
	)
	toDrone := m.Position().Sub(u.Position)
	u.Yaw = math.Atan2(toDrone.X, toDrone.Z)
}

// FollowCamera trails the drone from behind and above, easing toward its
// chase position each frame and looking at the drone itself.
type FollowCamera struct {
	Position types.Vec3
	LookAt   types.Vec3

	BackDistance float64
	Height       float64
	rate         float64
}

func NewFollowCamera() *FollowCamera {
	return &FollowCamera{
		BackDistance: 40.0,
		Height:       18.0,
		rate:         0.08,
	}
}

func (c *FollowCamera) Update(m drone.Movable) {
	pos := m.Position()
	yaw := m.Yaw()
	target := types.NewVec3(
		pos.X-c.BackDistance*math.Sin(yaw),
		pos.Y+c.Height,
		pos.Z-c.BackDistance*math.Cos(yaw),
	)
	c.Position = c.Position.Lerp(target, c.rate)
	c.LookAt = pos
}
