package main

import (
	"fmt"
	"image/color"
	"strconv"

	"drone-portfolio/internal/scene"
	"drone-portfolio/internal/scene/asset"
	"drone-portfolio/internal/scene/nav"
	"drone-portfolio/internal/scene/sync"
	"drone-portfolio/internal/ui"
	"drone-portfolio/pkg/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"
)

type Camera struct {
	X, Y                 float64
	PanStartX, PanStartY int
	Scale                float64
}

type Game struct {
	width, height int
	camera        *Camera
	scn           *scene.Scene
	droneImage    *ebiten.Image
	droneMesh     *asset.Handle

	hud       *ui.Panel
	scrollBar *ui.ScrollBar
}

func NewGame(screenWidth, screenHeight int) *Game {
	mesh := asset.NewHandle()

	scn, err := scene.NewScene(mesh)
	if err != nil {
		log.Fatal(err)
	}

	game := &Game{
		scn:       scn,
		camera:    &Camera{0, 0, 0, 0, 1.0},
		width:     screenWidth,
		height:    screenHeight,
		droneMesh: mesh,
		hud:       ui.NewPanel(10, screenHeight-140, 360, 130),
		scrollBar: ui.NewScrollBar(screenWidth-24, 10, 14, screenHeight-20, scn.Cfg.ViewportScrollableHeight),
	}

	// The full scene streams a GLB mesh; the demo stands in a generated
	// sprite but keeps the asynchronous ready handshake.
	go func() {
		game.droneImage = buildDroneSprite()
		mesh.Finish(nil)
	}()

	return game
}

func buildDroneSprite() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	vector.DrawFilledCircle(img, 8, 8, 6, color.RGBA{240, 200, 40, 255}, false)
	vector.DrawFilledRect(img, 7, 0, 2, 8, color.RGBA{240, 200, 40, 255}, false)
	return img
}

func (g *Game) Update() error {
	dt := 1.0 / 60.0

	g.handleInput()
	g.scn.Update(dt)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{8, 10, 18, 255})

	g.drawMap(screen)
	g.drawPath(screen)
	g.drawProps(screen)
	g.drawDrone(screen)
	g.drawUI(screen)

	ebitenutil.DebugPrint(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) handleInput() {
	// Wheel scroll is the primary direction intent; held keys resend the
	// same intent every frame, which the navigator samples at its own rate.
	_, wy := ebiten.Wheel()
	if wy < 0 {
		g.scn.SubmitForward()
	} else if wy > 0 {
		g.scn.SubmitBackward()
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.scn.SubmitForward()
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.scn.SubmitBackward()
	}

	// Z/X zoom
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		newScale := g.camera.Scale
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			newScale *= 1.1
		} else {
			newScale /= 1.1
		}
		if newScale < 0.5 {
			newScale = 0.5
		}
		if newScale > 3.0 {
			newScale = 3.0
		}
		g.camera.Scale = newScale
	}

	// Right mouse button for pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		dx, dy := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.camera.PanStartX, g.camera.PanStartY = dx, dy
		} else {
			g.camera.X -= float64(dx-g.camera.PanStartX) / g.camera.Scale
			g.camera.Y -= float64(dy-g.camera.PanStartY) / g.camera.Scale
			g.camera.PanStartX, g.camera.PanStartY = dx, dy
		}
	}
}

// Helper: Convert world coordinates to screen coordinates
func (g *Game) worldToScreen(wx, wy float64) (sx, sy float64) {
	sx = (wx - g.camera.X) * g.camera.Scale
	sy = (wy - g.camera.Y) * g.camera.Scale
	return
}

// project flattens a scene-space point onto the top-down map view.
func (g *Game) project(p types.Vec3) (sx, sy float64) {
	return g.worldToScreen(p.X, p.Z)
}

func (g *Game) drawMap(screen *ebiten.Image) {
	bounds := g.scn.World.Bounds
	for i := 0; i < len(bounds); i++ {
		p1 := bounds[i]
		p2 := bounds[(i+1)%len(bounds)]
		x1, y1 := g.worldToScreen(p1.X, p1.Y)
		x2, y2 := g.worldToScreen(p2.X, p2.Y)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), float32(1*g.camera.Scale), color.RGBA{0, 100, 0, 255}, false)
	}

	for i, wp := range g.scn.World.Waypoints {
		screenX, screenY := g.worldToScreen(wp.Position.X, wp.Position.Y)
		col := color.RGBA{0, 255, 255, 255}
		if i == g.scn.WaypointIndex {
			col = color.RGBA{255, 255, 0, 255}
		}
		vector.DrawFilledCircle(screen, float32(screenX), float32(screenY), float32(4*g.camera.Scale), col, false)
		label := wp.Name
		if wp.Date != "" {
			label += " (" + wp.Date + ")"
		}
		ebitenutil.DebugPrintAt(screen, label, int(screenX)+6, int(screenY)+6)
	}
}

func (g *Game) drawPath(screen *ebiten.Image) {
	pts := g.scn.Path.Points
	for i := 0; i < len(pts)-1; i++ {
		x1, y1 := g.project(pts[i])
		x2, y2 := g.project(pts[i+1])
		// Higher segments render brighter so altitude reads on the flat map.
		shade := uint8(70 + pts[i].Y/g.scn.Cfg.AltitudeHeight*120)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, color.RGBA{shade, shade, 255, 255}, false)
	}
}

func (g *Game) drawDisplay(screen *ebiten.Image, d *sync.Display, offsetY int) {
	sx, sy := g.worldToScreen(d.Position.X, d.Position.Z)
	col := color.RGBA{120, 120, 120, 255}
	if d.Active {
		col = color.RGBA{255, 120, 255, 255}
	}
	vector.StrokeRect(screen, float32(sx-8), float32(sy-8)+float32(offsetY), 16, 16, 1, col, false)
	if d.Active {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s %s", d.Label, d.Name, d.Date), int(sx)+12, int(sy)+offsetY)
	}
}

func (g *Game) drawProps(screen *ebiten.Image) {
	g.drawDisplay(screen, g.scn.Billboard, -20)
	g.drawDisplay(screen, g.scn.Arcade, 20)

	ux, uy := g.project(g.scn.UFO.Position)
	vector.StrokeCircle(screen, float32(ux), float32(uy), float32(6*g.camera.Scale), 1, color.RGBA{140, 255, 140, 255}, false)

	cx, cy := g.project(g.scn.Camera.Position)
	lx, ly := g.project(g.scn.Camera.LookAt)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(lx), float32(ly), 1, color.RGBA{90, 90, 90, 255}, false)
}

func (g *Game) drawDrone(screen *ebiten.Image) {
	sx, sy := g.project(g.scn.Drone.Position())

	if !g.scn.Drone.Ready() || g.droneImage == nil {
		ebitenutil.DebugPrintAt(screen, "loading...", int(sx), int(sy))
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(g.droneImage.Bounds().Dx()/2), -float64(g.droneImage.Bounds().Dy()/2))
	op.GeoM.Rotate(g.scn.Drone.Yaw())
	op.GeoM.Scale(g.camera.Scale, g.camera.Scale)
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(g.droneImage, op)

	// facing line toward the look-ahead target
	lx, ly := g.project(g.scn.Drone.LookTarget())
	vector.StrokeLine(screen, float32(sx), float32(sy), float32(lx), float32(ly), 1, color.RGBA{100, 100, 255, 255}, false)
}

func (g *Game) drawUI(screen *ebiten.Image) {
	scn := g.scn
	wp := scn.World.Waypoint(scn.WaypointIndex)

	text := fmt.Sprintf("STATE: %s\nPOINT: %d/%d\nFACTOR: %.2f\nSEGMENT MS: %.0f\nSECTION: %s %s\nSCROLL: %.0f px",
		nav.StateStringMap[scn.Nav.State()], scn.Nav.TargetIndex(), scn.Path.LastIndex(),
		scn.Drone.Factor(), scn.Cfg.SegmentDurationMS,
		wp.Name, wp.Date, scn.Scroll.Position())
	if n := len(scn.FlightLog); n > 0 {
		text += "\n> " + scn.FlightLog[n-1].Message
	}
	g.hud.Text = text
	g.hud.Draw(screen)

	g.scrollBar.Draw(screen, scn.Scroll.Position())
}

func main() {
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowTitle("Drone Portfolio")
	ebiten.SetVsyncEnabled(true)

	game := NewGame(1024, 768)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
