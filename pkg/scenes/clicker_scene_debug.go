package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawDebug 绘制点击区域边框和效果计数（-verbose 时启用）
func (s *ClickerScene) drawDebug(screen *ebiten.Image) {
	hitColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	strokeRect(screen, s.ObjectRect(), hitColor)
	strokeRect(screen, s.renderer.AchievementsButton(), hitColor)
	if s.state == StateAchievementsOpen {
		strokeRect(screen, s.renderer.CloseButton(), hitColor)
	}

	_, h := s.renderer.Size()
	ebitenutil.DebugPrintAt(screen, s.debugStats(), 10, h-60)
}

func (s *ClickerScene) debugStats() string {
	return fmt.Sprintf("TPS: %.1f FPS: %.1f\nstate=%s texts=%d particles=%d scale=%.2f",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.state, len(s.effects.FloatingTexts()), len(s.effects.Particles()), s.effects.Scale())
}

func strokeRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, clr, false)
}
