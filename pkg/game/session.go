package game

import "github.com/BlackPencil-69/eggplant-game-v1/pkg/utils"

// Session 本局游戏的点击计数器
//
// 计数器只增不减，总数始终等于左键与右键点击数之和。
// 由 ClickerScene 独占持有，通过引用传给需要读取的系统。
type Session struct {
	leftClicks  int
	rightClicks int
}

// NewSession 以存档中的计数创建会话，负数按 0 处理
func NewSession(leftClicks, rightClicks int) *Session {
	return &Session{
		leftClicks:  max(leftClicks, 0),
		rightClicks: max(rightClicks, 0),
	}
}

// Click 记录一次被接受的点击
//
// 返回：
//   - int: 点击后的总数
func (s *Session) Click(button utils.PointerButton) int {
	switch button {
	case utils.PointerPrimary:
		s.leftClicks++
	case utils.PointerSecondary:
		s.rightClicks++
	}
	return s.Total()
}

// LeftClicks 返回左键点击数
func (s *Session) LeftClicks() int {
	return s.leftClicks
}

// RightClicks 返回右键点击数
func (s *Session) RightClicks() int {
	return s.rightClicks
}

// Total 返回总点击数
func (s *Session) Total() int {
	return s.leftClicks + s.rightClicks
}
