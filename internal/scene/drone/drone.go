package drone

import (
	"math"

	"drone-portfolio/internal/scene/asset"
	"drone-portfolio/internal/scene/curve"
	"drone-portfolio/internal/scene/nav"
	"drone-portfolio/pkg/types"
)

// Movable is the capability the camera and prop adapters consume: a position,
// a look-at target and a yaw, updated once per frame.
type Movable interface {
	Position() types.Vec3
	LookTarget() types.Vec3
	Yaw() float64
	Ready() bool
}

// Drone drives the continuous interpolation along the path. Each frame,
// while the navigator is moving, it derives the interpolation factor from
// elapsed segment time, lerps position and facing, and reports segment
// completion back to the navigator.
type Drone struct {
	cfg  *nav.Config
	nav  *nav.Navigator
	path *curve.Path

	mesh *asset.Handle

	pos    types.Vec3
	look   types.Vec3
	yaw    float64
	factor float64
}

func NewDrone(cfg *nav.Config, navigator *nav.Navigator, path *curve.Path, mesh *asset.Handle) *Drone {
	start := path.Point(0)
	return &Drone{
		cfg:  cfg,
		nav:  navigator,
		path: path,
		mesh: mesh,
		pos:  start,
		look: path.Point(min(1, path.LastIndex())),
	}
}

func (d *Drone) Position() types.Vec3   { return d.pos }
func (d *Drone) LookTarget() types.Vec3 { return d.look }
func (d *Drone) Yaw() float64           { return d.yaw }
func (d *Drone) Factor() float64        { return d.factor }

func (d *Drone) Ready() bool {
	return d.mesh == nil || d.mesh.Ready()
}

// factorAt computes the interpolation factor for the active segment at
// nowMS, clamped to [0,1].
func (d *Drone) factorAt(nowMS float64) float64 {
	elapsed := nowMS - d.nav.SegmentStartMS()
	if elapsed <= 0 {
		return 0
	}
	f := elapsed / d.cfg.SegmentDurationMS
	if f > 1 {
		f = 1
	}
	return f
}

// Update advances the drone one frame. Returns true when the active segment
// completed on this frame (the navigator has already been returned to
// hovering and its target index advanced).
func (d *Drone) Update(nowMS float64) bool {
	if !d.Ready() {
		return false
	}
	if !d.nav.Moving() {
		return false
	}

	d.factor = d.factorAt(nowMS)

	from := d.path.Point(d.nav.SegmentStartIndex())
	to := d.path.Point(d.nav.SegmentEndIndex())
	d.pos = from.Lerp(to, d.factor)

	lookFrom := d.path.Point(d.nav.LookaheadStartIndex())
	lookTo := d.path.Point(d.nav.LookaheadEndIndex())
	d.look = lookFrom.Lerp(lookTo, d.factor)

	d.yaw = d.faceYaw()

	if d.factor >= 1 {
		d.nav.CompleteSegment(nowMS)
		return true
	}
	return false
}

// faceYaw derives the heading from the look-ahead target. Forward motion
// applies a 180 degree flip because the mesh's nose points opposite the curve
// tangent; backward motion keeps the nose, so the drone reverses like a car.
// When the look target sits vertically above the position the direction is
// degenerate and the yaw may flip abruptly; accepted artifact.
func (d *Drone) faceYaw() float64 {
	dir := d.look.Sub(d.pos)
	yaw := math.Atan2(dir.X, dir.Z)
	if d.nav.State() == nav.FORWARD {
		yaw += math.Pi
	}
	return yaw
}
