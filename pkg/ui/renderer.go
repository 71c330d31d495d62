// Package ui 负责把一局游戏的状态投影为一帧画面
//
// Renderer 只持有字体和按钮点击区域，其余输入都通过 Frame 传入。
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/achievement"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/effects"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/game"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fonts 界面使用的三种字号
//
// 任一字体为 nil 时，该字号的文字退化为调试字体绘制。
type Fonts struct {
	Regular *text.GoTextFace
	Large   *text.GoTextFace
	Small   *text.GoTextFace
}

// LoadFonts 从内置 Go 字体加载界面字体（支持西里尔字母）
func LoadFonts(rm *game.ResourceManager) (Fonts, error) {
	regular, err := rm.LoadBuiltinFont(game.FontRegular, config.FontSize)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to load regular font: %w", err)
	}
	large, err := rm.LoadBuiltinFont(game.FontBold, config.LargeFontSize)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to load large font: %w", err)
	}
	small, err := rm.LoadBuiltinFont(game.FontRegular, config.SmallFontSize)
	if err != nil {
		return Fonts{}, fmt.Errorf("failed to load small font: %w", err)
	}
	return Fonts{Regular: regular, Large: large, Small: small}, nil
}

// Frame 一帧画面所需的全部输入
type Frame struct {
	LeftClicks  int
	RightClicks int
	Records     []achievement.Record
	Banner      achievement.Banner
	Effects     *effects.System // 可为 nil
	Object      *ebiten.Image   // 可点击对象（图片或占位图）
	ModalOpen   bool
	Cursor      image.Point // 指针位置，用于按钮悬停
}

// Renderer 界面渲染器
type Renderer struct {
	texts *i18n.Table
	fonts Fonts

	width  int
	height int

	achievementsButton image.Rectangle
	closeButton        image.Rectangle
}

// NewRenderer 创建渲染器并按初始窗口尺寸计算布局
func NewRenderer(texts *i18n.Table, fonts Fonts, width, height int) *Renderer {
	r := &Renderer{texts: texts, fonts: fonts}
	r.Resize(width, height)
	return r
}

// Resize 窗口尺寸变化时重新计算按钮点击区域
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	r.achievementsButton = AchievementsButtonRect(width, height)
	r.closeButton = ComputeModalLayout(width, height).Close
	log.Printf("[Renderer] Layout updated: %dx%d", width, height)
}

// Size 返回当前逻辑屏幕尺寸
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// AchievementsButton 返回“成就”按钮点击区域
func (r *Renderer) AchievementsButton() image.Rectangle {
	return r.achievementsButton
}

// CloseButton 返回面板关闭按钮点击区域（每次绘制面板时更新）
func (r *Renderer) CloseButton() image.Rectangle {
	return r.closeButton
}

// ObjectRect 返回可点击对象在当前屏幕上按 scale 缩放后的区域
func (r *Renderer) ObjectRect(size image.Point, scale float64) image.Rectangle {
	return ObjectRect(r.width, r.height, size, scale)
}

// Draw 绘制一帧
//
// 绘制顺序：背景、可点击对象、粒子、浮动文字、HUD、横幅、成就面板。
func (r *Renderer) Draw(screen *ebiten.Image, f Frame) {
	screen.Fill(config.BackgroundColor)

	scale := 1.0
	if f.Effects != nil {
		scale = f.Effects.Scale()
	}
	r.drawObject(screen, f.Object, scale)
	if f.Effects != nil {
		r.drawParticles(screen, f.Effects.Particles())
		r.drawFloatingTexts(screen, f.Effects.FloatingTexts())
	}

	r.drawScore(screen, f.LeftClicks, f.RightClicks)
	r.drawProgress(screen, ComputeProgress(f.LeftClicks+f.RightClicks, f.Records))
	r.drawHelpText(screen)
	hover := !f.ModalOpen && utils.HitTest(r.achievementsButton, f.Cursor.X, f.Cursor.Y)
	r.drawButton(screen, r.achievementsButton, r.texts.Text(i18n.AchievementsButton), hover)
	r.drawBanner(screen, f.Banner)

	if f.ModalOpen {
		r.drawModal(screen, f.Records, f.Cursor)
	}
}

func (r *Renderer) drawObject(screen, img *ebiten.Image, scale float64) {
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(r.width/2), float64(r.height/2))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (r *Renderer) drawParticles(screen *ebiten.Image, particles []effects.Particle) {
	for _, p := range particles {
		clr := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Alpha()}
		vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), float32(p.Size), clr, false)
	}
}

func (r *Renderer) drawFloatingTexts(screen *ebiten.Image, texts []effects.FloatingText) {
	for _, ft := range texts {
		r.drawText(screen, ft.Content, r.fonts.Regular, ft.Pos.X, ft.Pos.Y, config.FloatingTextColor, ft.Alpha, text.AlignCenter)
	}
}

func (r *Renderer) drawScore(screen *ebiten.Image, left, right int) {
	r.drawText(screen, ScoreLine(r.texts, left, right), r.fonts.Regular, config.UIMargin, config.UIMargin, config.TextColor, 255, text.AlignStart)
}

func (r *Renderer) drawProgress(screen *ebiten.Image, p Progress) {
	x := float32(config.ProgressBarX)
	y := float32(config.ProgressBarY)
	vector.DrawFilledRect(screen, x, y, config.ProgressBarWidth, config.ProgressBarHeight, config.ProgressBarBgColor, false)
	if fill := float32(config.ProgressBarWidth * p.Fraction); fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, config.ProgressBarHeight, config.ProgressBarFillColor, false)
	}

	label := fmt.Sprintf("%d/%d", p.Total, p.Next)
	r.drawText(screen, label, r.fonts.Regular, config.ProgressBarX+config.ProgressBarWidth+config.UIMargin, config.ProgressBarY, config.TextColor, 255, text.AlignStart)

	if p.NextName != "" {
		r.drawText(screen, p.NextName, r.fonts.Small, config.ProgressBarX, config.ProgressBarY+config.ProgressBarHeight+5, config.TextColor, 255, text.AlignStart)
	}
}

// drawHelpText 底部居中的操作提示，窗口过窄时自动换行并向上堆叠
func (r *Renderer) drawHelpText(screen *ebiten.Image) {
	lines := utils.WrapText(r.texts.Text(i18n.HelpText), r.fonts.Regular, float64(r.width-2*config.UIMargin))
	lineHeight := r.lineHeight(r.fonts.Regular)

	y := float64(r.height-config.HelpTextBottomOffset) - float64(len(lines)-1)*lineHeight
	for _, line := range lines {
		r.drawText(screen, line, r.fonts.Regular, float64(r.width)/2, y, config.TextColor, 255, text.AlignCenter)
		y += lineHeight
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, hover bool) {
	clr := config.ButtonColor
	if hover {
		clr = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), clr, false)

	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	r.drawCenteredText(screen, label, r.fonts.Regular, cx, cy, config.ButtonTextColor)
}

// drawBanner 成就横幅：半透明底框加金色文字，随 Banner.Alpha 淡出
func (r *Renderer) drawBanner(screen *ebiten.Image, b achievement.Banner) {
	if !b.Visible() {
		return
	}

	alpha := b.Alpha()
	w, h := r.measure(b.Message, r.fonts.Large)
	cx := float64(r.width) / 2
	y := float64(config.BannerY)

	bg := color.NRGBA{A: min(128, alpha/2)}
	vector.DrawFilledRect(screen, float32(cx-w/2-10), float32(y-5), float32(w+20), float32(h+10), bg, false)
	r.drawText(screen, b.Message, r.fonts.Large, cx, y, config.AchievementColor, alpha, text.AlignCenter)
}

// drawModal 成就面板
//
// 已解锁成就在分隔线上方显示名称；未解锁的只显示解锁阈值。
// 一个成就都没有解锁时只显示提示文字。
func (r *Renderer) drawModal(screen *ebiten.Image, records []achievement.Record, cursor image.Point) {
	layout := ComputeModalLayout(r.width, r.height)
	r.closeButton = layout.Close
	panel := layout.Panel

	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), config.ModalDimColor, false)
	vector.DrawFilledRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), config.ModalPanelColor, false)
	vector.StrokeRect(screen, float32(panel.Min.X), float32(panel.Min.Y), float32(panel.Dx()), float32(panel.Dy()), 2, config.ModalBorderColor, false)

	panelCX := float64(panel.Min.X+panel.Max.X) / 2
	r.drawText(screen, r.texts.Text(i18n.AchievementsTitle), r.fonts.Large, panelCX, float64(panel.Min.Y+config.ModalPadding), config.AchievementColor, 255, text.AlignCenter)

	entries := ComputeModalEntries(records, r.texts)
	if entries.Message != "" {
		lines := utils.WrapText(entries.Message, r.fonts.Regular, float64(panel.Dx()-2*config.ModalPadding))
		lineHeight := r.lineHeight(r.fonts.Regular)
		y := float64(panel.Min.Y+panel.Max.Y)/2 - float64(len(lines))*lineHeight/2
		for _, line := range lines {
			r.drawText(screen, line, r.fonts.Regular, panelCX, y, config.TextColor, 255, text.AlignCenter)
			y += lineHeight
		}
	} else {
		x := float64(panel.Min.X + config.ModalPadding)
		bottom := layout.Close.Min.Y - config.UIMargin
		y := panel.Min.Y + config.ModalListTop

		for _, name := range entries.Unlocked {
			if y+config.ModalRowHeight > bottom {
				break
			}
			r.drawText(screen, name, r.fonts.Regular, x, float64(y), config.AchievementColor, 255, text.AlignStart)
			y += config.ModalRowHeight
		}

		dividerY := float32(y + config.ModalDividerGap/2)
		vector.StrokeLine(screen, float32(x), dividerY, float32(panel.Max.X-config.ModalPadding), dividerY, 1, config.ModalBorderColor, false)
		y += config.ModalDividerGap

		for _, line := range entries.Locked {
			if y+config.ModalLockedRow > bottom {
				break
			}
			r.drawText(screen, line, r.fonts.Small, x, float64(y), config.LockedAchievementText, 255, text.AlignStart)
			y += config.ModalLockedRow
		}
	}

	hover := utils.HitTest(layout.Close, cursor.X, cursor.Y)
	r.drawButton(screen, layout.Close, r.texts.Text(i18n.CloseButton), hover)
}

// drawText 绘制单行文字，(x, y) 为对齐点与行顶
func (r *Renderer) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color, alpha uint8, align text.Align) {
	if face == nil {
		drawDebugText(screen, s, x, y, align)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha) / 255)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字
func (r *Renderer) drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, clr color.Color) {
	if face == nil {
		drawDebugText(screen, s, cx, cy-debugLineHeight/2, text.AlignCenter)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

func (r *Renderer) measure(s string, face *text.GoTextFace) (float64, float64) {
	if face == nil {
		return float64(len([]rune(s)) * debugCharWidth), debugLineHeight
	}
	return text.Measure(s, face, 0)
}

func (r *Renderer) lineHeight(face *text.GoTextFace) float64 {
	if face == nil {
		return debugLineHeight
	}
	return face.Metrics().HAscent + face.Metrics().HDescent + face.Metrics().HLineGap
}

// 调试字体为 6x16 等宽点阵
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

func drawDebugText(screen *ebiten.Image, s string, x, y float64, align text.Align) {
	switch align {
	case text.AlignCenter:
		x -= float64(len([]rune(s))*debugCharWidth) / 2
	case text.AlignEnd:
		x -= float64(len([]rune(s)) * debugCharWidth)
	}
	ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
}
