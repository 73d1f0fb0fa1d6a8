package scene

import (
	"testing"

	"drone-portfolio/internal/scene/asset"
	"drone-portfolio/internal/scene/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene_Defaults(t *testing.T) {
	s, err := NewScene(nil)
	require.NoError(t, err)

	wantPoints := s.World.Count()*s.Cfg.SegmentsPerWaypoint + 1
	assert.Equal(t, wantPoints, s.Path.TotalPoints())
	assert.Equal(t, nav.HOVERING, s.Nav.State())
	assert.Equal(t, 0, s.Nav.TargetIndex())
	assert.Equal(t, 0, s.WaypointIndex)
	assert.NotEmpty(t, s.FlightLog)
}

func TestScene_ForwardTravel(t *testing.T) {
	s, err := NewScene(nil)
	require.NoError(t, err)

	dt := 1.0 / 60.0
	for i := 0; i < 600; i++ {
		s.SubmitForward()
		s.Update(dt)
	}

	assert.Greater(t, s.Nav.TargetIndex(), 3, "continuously held intent should cross several segments")
	assert.Greater(t, s.Scroll.Position(), 0.0)
	assert.NotEqual(t, s.Path.Point(0), s.Drone.Position())
}

func TestScene_BackwardGuardAtOrigin(t *testing.T) {
	s, err := NewScene(nil)
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		s.SubmitBackward()
		s.Update(1.0 / 60.0)
	}

	assert.Equal(t, nav.HOVERING, s.Nav.State())
	assert.Equal(t, 0, s.Nav.TargetIndex())
}

func TestScene_UnreadyMeshHoldsDrone(t *testing.T) {
	mesh := asset.NewHandle()
	s, err := NewScene(mesh)
	require.NoError(t, err)

	start := s.Drone.Position()
	for i := 0; i < 120; i++ {
		s.SubmitForward()
		s.Update(1.0 / 60.0)
	}
	assert.Equal(t, start, s.Drone.Position())

	mesh.Finish(nil)
	for i := 0; i < 120; i++ {
		s.SubmitForward()
		s.Update(1.0 / 60.0)
	}
	assert.NotEqual(t, start, s.Drone.Position())
}

func TestScene_PropsFollowWaypointIndex(t *testing.T) {
	s, err := NewScene(nil)
	require.NoError(t, err)

	dt := 1.0 / 60.0
	for i := 0; i < 3000 && s.WaypointIndex < 1; i++ {
		s.SubmitForward()
		s.Update(dt)
	}

	require.GreaterOrEqual(t, s.WaypointIndex, 1)
	wp := s.World.Waypoint(s.WaypointIndex)
	assert.Equal(t, wp.Name, s.Billboard.Name)
	assert.Equal(t, wp.Date, s.Arcade.Date)
}
