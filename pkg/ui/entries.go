package ui

import (
	"fmt"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/achievement"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
)

// ModalEntries 成就面板的文本内容
//
// Message 非空时面板只显示这条提示，Unlocked 与 Locked 均为空。
type ModalEntries struct {
	Message  string
	Unlocked []string // 已解锁成就名称，分隔线上方
	Locked   []string // 未解锁成就，只含阈值提示，不含名称
}

// ComputeModalEntries 按阈值顺序生成成就面板文本（纯函数）
//
// 未解锁的成就只显示 "??? (доступно на N)"，不泄露名称。
// 一个成就都没有解锁时只返回提示文字。
func ComputeModalEntries(records []achievement.Record, texts *i18n.Table) ModalEntries {
	var e ModalEntries
	for _, r := range records {
		if r.Unlocked {
			e.Unlocked = append(e.Unlocked, r.Name)
		} else {
			e.Locked = append(e.Locked, texts.Format(i18n.LockedAchievement, r.Threshold))
		}
	}

	if len(e.Unlocked) == 0 {
		return ModalEntries{Message: texts.Text(i18n.NoAchievements)}
	}
	return e
}

// ScoreLine 左上角计分行："<左键>: L | <右键>: R | <总计>: L+R"
func ScoreLine(texts *i18n.Table, left, right int) string {
	return fmt.Sprintf("%s: %d | %s: %d | %s: %d",
		texts.Text(i18n.LeftClicks), left,
		texts.Text(i18n.RightClicks), right,
		texts.Text(i18n.Total), left+right)
}

// ClickLabel 点击后的浮动文字："+1 (<总计>: N)"
func ClickLabel(texts *i18n.Table, total int) string {
	return fmt.Sprintf("+1 (%s: %d)", texts.Text(i18n.Total), total)
}
