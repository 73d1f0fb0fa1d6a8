package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel is a bordered HUD box with debug text inside.
type Panel struct {
	X, Y   int
	Width  int
	Height int
	Text   string
}

func NewPanel(x, y, width, height int) *Panel {
	return &Panel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{50, 50, 50, 200}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), bgColor, false)

	// Draw border
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y+p.Height-1), float32(p.Width), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), 1, float32(p.Height), color.White, false)
	vector.DrawFilledRect(screen, float32(p.X+p.Width-1), float32(p.Y), 1, float32(p.Height), color.White, false)

	ebitenutil.DebugPrintAt(screen, p.Text, p.X+5, p.Y+5)
}

// ScrollBar visualizes the synchronized scroll position along the right edge.
type ScrollBar struct {
	X, Y        int
	Width       int
	Height      int
	TotalPixels float64
}

func NewScrollBar(x, y, width, height int, totalPixels float64) *ScrollBar {
	return &ScrollBar{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		TotalPixels: totalPixels,
	}
}

func (sb *ScrollBar) Draw(screen *ebiten.Image, scrollPos float64) {
	trackColor := color.RGBA{50, 50, 50, 255}
	vector.DrawFilledRect(screen, float32(sb.X), float32(sb.Y), float32(sb.Width), float32(sb.Height), trackColor, false)

	frac := scrollPos / sb.TotalPixels
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	thumbH := 24.0
	thumbY := float64(sb.Y) + frac*(float64(sb.Height)-thumbH)
	vector.DrawFilledRect(screen, float32(sb.X+1), float32(thumbY), float32(sb.Width-2), float32(thumbH), color.RGBA{0, 255, 255, 255}, false)

	vector.DrawFilledRect(screen, float32(sb.X), float32(sb.Y), float32(sb.Width), 1, color.White, false)
	vector.DrawFilledRect(screen, float32(sb.X), float32(sb.Y+sb.Height-1), float32(sb.Width), 1, color.White, false)
}
