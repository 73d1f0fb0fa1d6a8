package world

import "drone-portfolio/pkg/types"

const (
	MAP_WIDTH  = 1024.0
	MAP_HEIGHT = 768.0
)

// World holds the ordered waypoint table and the map bounds. Waypoint order
// is the travel order; the synthetic INIT entry places the drone's starting
// pad off the first real station.
type World struct {
	Waypoints []types.Waypoint
	Bounds    []types.Vec2
}

func NewWorld() *World {
	return &World{
		Waypoints: []types.Waypoint{
			{Name: "INIT", Position: types.NewVec2(MAP_WIDTH*0.08, MAP_HEIGHT*0.88), Date: ""},
			{Name: "HELLO", Position: types.NewVec2(MAP_WIDTH*0.18, MAP_HEIGHT*0.72), Date: "1994"},
			{Name: "EDUCATION", Position: types.NewVec2(MAP_WIDTH*0.38, MAP_HEIGHT*0.55), Date: "2013"},
			{Name: "FIRST-JOB", Position: types.NewVec2(MAP_WIDTH*0.55, MAP_HEIGHT*0.68), Date: "2017"},
			{Name: "PROJECTS", Position: types.NewVec2(MAP_WIDTH*0.70, MAP_HEIGHT*0.42), Date: "2020"},
			{Name: "ARCADE", Position: types.NewVec2(MAP_WIDTH*0.58, MAP_HEIGHT*0.20), Date: "2022"},
			{Name: "CONTACT", Position: types.NewVec2(MAP_WIDTH*0.85, MAP_HEIGHT*0.15), Date: "2024"},
		},
		Bounds: []types.Vec2{
			types.NewVec2(0, 0),
			types.NewVec2(MAP_WIDTH, 0),
			types.NewVec2(MAP_WIDTH, MAP_HEIGHT),
			types.NewVec2(0, MAP_HEIGHT),
		},
	}
}

// Waypoint returns the entry at index, clamped to the table.
func (w *World) Waypoint(i int) types.Waypoint {
	if i < 0 {
		i = 0
	}
	if i >= len(w.Waypoints) {
		i = len(w.Waypoints) - 1
	}
	return w.Waypoints[i]
}

func (w *World) Count() int {
	return len(w.Waypoints)
}
