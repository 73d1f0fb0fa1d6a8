package curve

import (
	"fmt"

	"drone-portfolio/pkg/types"

	"gonum.org/v1/gonum/interp"
)

// Path is the sampled flight path. Points are computed once at scene
// construction and never mutated; indices stay stable for the scene lifetime.
type Path struct {
	Points              []types.Vec3
	SegmentsPerWaypoint int
	WaypointCount       int
}

func (p *Path) Point(i int) types.Vec3 {
	if i < 0 {
		i = 0
	}
	if i > p.LastIndex() {
		i = p.LastIndex()
	}
	return p.Points[i]
}

func (p *Path) LastIndex() int {
	return len(p.Points) - 1
}

// TotalPoints returns the number of sampled points (segment count + 1).
func (p *Path) TotalPoints() int {
	return len(p.Points)
}

func (p *Path) SegmentCount() int {
	return len(p.Points) - 1
}

// Build samples a smooth path through control points derived from the
// waypoints. Control-point policy: every interior waypoint contributes
// altitude-approach, ground-touch and altitude-depart points (land and take
// off again); the first waypoint contributes only ground + altitude-depart
// and the last only altitude-approach + ground, so the sampled path starts
// and ends on the ground at the first and last waypoint.
//
// The spline is a natural cubic fit per axis over the control-point ordinal,
// evaluated at waypointCount*segmentsPerWaypoint + 1 evenly spaced parameters.
func Build(waypoints []types.Waypoint, segmentsPerWaypoint int, groundHeight, altitudeHeight float64) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("curve: need at least 2 waypoints, got %d", len(waypoints))
	}
	if segmentsPerWaypoint < 1 {
		return nil, fmt.Errorf("curve: segments per waypoint must be >= 1, got %d", segmentsPerWaypoint)
	}

	control := controlPoints(waypoints, groundHeight, altitudeHeight)

	ts := make([]float64, len(control))
	xs := make([]float64, len(control))
	ys := make([]float64, len(control))
	zs := make([]float64, len(control))
	for i, cp := range control {
		ts[i] = float64(i)
		xs[i] = cp.X
		ys[i] = cp.Y
		zs[i] = cp.Z
	}

	var splineX, splineY, splineZ interp.NaturalCubic
	if err := splineX.Fit(ts, xs); err != nil {
		return nil, fmt.Errorf("curve: fitting x axis: %w", err)
	}
	if err := splineY.Fit(ts, ys); err != nil {
		return nil, fmt.Errorf("curve: fitting y axis: %w", err)
	}
	if err := splineZ.Fit(ts, zs); err != nil {
		return nil, fmt.Errorf("curve: fitting z axis: %w", err)
	}

	total := len(waypoints) * segmentsPerWaypoint
	span := float64(len(control) - 1)
	points := make([]types.Vec3, total+1)
	for i := 0; i <= total; i++ {
		t := float64(i) / float64(total) * span
		points[i] = types.Vec3{
			X: splineX.Predict(t),
			Y: splineY.Predict(t),
			Z: splineZ.Predict(t),
		}
	}

	return &Path{
		Points:              points,
		SegmentsPerWaypoint: segmentsPerWaypoint,
		WaypointCount:       len(waypoints),
	}, nil
}

// controlPoints lifts 2D map waypoints into scene space. Map Y becomes scene
// Z; scene Y carries the ground/altitude height.
func controlPoints(waypoints []types.Waypoint, groundHeight, altitudeHeight float64) []types.Vec3 {
	last := len(waypoints) - 1
	control := make([]types.Vec3, 0, len(waypoints)*3)
	for i, wp := range waypoints {
		ground := types.NewVec3(wp.Position.X, groundHeight, wp.Position.Y)
		altitude := types.NewVec3(wp.Position.X, altitudeHeight, wp.Position.Y)

		if i > 0 {
			control = append(control, altitude) // approach
		}
		control = append(control, ground)
		if i < last {
			control = append(control, altitude) // depart
		}
	}
	return control
}
