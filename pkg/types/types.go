package types

import "math"

type Vec2 struct {
	X float64
	Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v1 Vec2) DistanceTo(v2 Vec2) float64 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Vec3 is a point in scene space: X/Z span the map plane, Y is altitude.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v1 Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v1.X + v2.X, v1.Y + v2.Y, v1.Z + v2.Z}
}

func (v1 Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v1.X - v2.X, v1.Y - v2.Y, v1.Z - v2.Z}
}

func (v1 Vec3) Scale(k float64) Vec3 {
	return Vec3{v1.X * k, v1.Y * k, v1.Z * k}
}

func (v1 Vec3) DistanceTo(v2 Vec3) float64 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	dz := v1.Z - v2.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp interpolates per-axis between v1 and v2, t in [0,1].
func (v1 Vec3) Lerp(v2 Vec3, t float64) Vec3 {
	return Vec3{
		X: v1.X + (v2.X-v1.X)*t,
		Y: v1.Y + (v2.Y-v1.Y)*t,
		Z: v1.Z + (v2.Z-v1.Z)*t,
	}
}

// Waypoint is a named station on the map. Position is in map space (the
// curve builder lifts it into scene space), Date labels the billboard and
// arcade displays.
type Waypoint struct {
	Name     string
	Position Vec2
	Date     string
}
