package ui

import (
	"image"
	"math"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
)

// AchievementsButtonRect 右上角“成就”按钮的点击区域
func AchievementsButtonRect(screenW, screenH int) image.Rectangle {
	x := screenW - config.ButtonWidth - config.UIMargin
	return image.Rect(x, config.UIMargin, x+config.ButtonWidth, config.UIMargin+config.ButtonHeight)
}

// ModalLayout 成就面板布局
type ModalLayout struct {
	Panel image.Rectangle
	Close image.Rectangle // 关闭按钮（面板右下角）
}

// ComputeModalLayout 计算成就面板布局
//
// 面板居中，尺寸不超过 ModalMaxWidth x ModalMaxHeight，且四周至少留出 ModalInset/2。
func ComputeModalLayout(screenW, screenH int) ModalLayout {
	w := max(min(screenW-config.ModalInset, config.ModalMaxWidth), 0)
	h := max(min(screenH-config.ModalInset, config.ModalMaxHeight), 0)
	x := (screenW - w) / 2
	y := (screenH - h) / 2
	panel := image.Rect(x, y, x+w, y+h)

	closeX := panel.Max.X - config.ButtonWidth - config.UIMargin
	closeY := panel.Max.Y - config.ButtonHeight - config.UIMargin
	return ModalLayout{
		Panel: panel,
		Close: image.Rect(closeX, closeY, closeX+config.ButtonWidth, closeY+config.ButtonHeight),
	}
}

// ObjectRect 可点击对象在屏幕中央按 scale 缩放后的区域
func ObjectRect(screenW, screenH int, size image.Point, scale float64) image.Rectangle {
	w := int(math.Round(float64(size.X) * scale))
	h := int(math.Round(float64(size.Y) * scale))
	x := screenW/2 - w/2
	y := screenH/2 - h/2
	return image.Rect(x, y, x+w, y+h)
}
