// Package utils 提供通用工具函数
package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerButton 指针按键
type PointerButton int

const (
	// PointerPrimary 主键（鼠标左键或触摸）
	PointerPrimary PointerButton = iota
	// PointerSecondary 副键（鼠标右键）
	PointerSecondary
)

// String 返回按键名称（日志用）
func (b PointerButton) String() string {
	switch b {
	case PointerPrimary:
		return "primary"
	case PointerSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// PointerEvent 一次指针按下事件
type PointerEvent struct {
	Button PointerButton
	X, Y   int
}

// PollPointerEvents 收集当前帧刚刚按下的指针事件
// 触摸视为主键；同一帧内左右键同时按下会产生两个事件
func PollPointerEvents() []PointerEvent {
	var events []PointerEvent

	// 首先检查触摸输入（移动设备）
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{Button: PointerPrimary, X: x, Y: y})
	}

	// 其次检查鼠标输入（桌面设备）
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, PointerEvent{Button: PointerPrimary, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		events = append(events, PointerEvent{Button: PointerSecondary, X: x, Y: y})
	}

	return events
}

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// HitTest 检查点是否落在矩形内（右、下边界不包含）
func HitTest(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}
