// Package achievement 跟踪基于点击阈值的成就以及解锁横幅
package achievement

import (
	"fmt"
	"log"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
)

// Record 单个成就的运行时记录
//
// Unlocked 只会从 false 变为 true，一局游戏内不会回退。
type Record struct {
	ID        string // 稳定标识（存档使用）
	Name      string // 显示名称（来自语言表）
	Threshold int    // 解锁所需的总点击数
	Unlocked  bool
}

// Banner 成就解锁横幅状态
//
// Ticks 归零后横幅不再绘制，Message 无需显式清空。
type Banner struct {
	Message string
	Ticks   int
}

// Visible 返回横幅是否需要绘制
func (b Banner) Visible() bool {
	return b.Ticks > 0 && b.Message != ""
}

// Alpha 返回横幅当前透明度（0~255），最后 BannerFadeTicks 帧线性淡出
func (b Banner) Alpha() uint8 {
	if b.Ticks <= 0 {
		return 0
	}
	if b.Ticks >= config.BannerFadeTicks {
		return 255
	}
	return uint8(255 * b.Ticks / config.BannerFadeTicks)
}

// Tracker 成就跟踪器
//
// 职责：
//   - 持有按阈值升序排列的成就列表
//   - 根据总点击数解锁成就并触发横幅
//   - 维护横幅倒计时
type Tracker struct {
	records []Record
	banner  Banner
	texts   *i18n.Table
}

// NewTracker 根据静态成就表和语言表创建跟踪器
//
// 参数：
//   - defs: 按阈值升序排列的成就定义
//   - texts: 语言表（提供成就名称和横幅文本）
func NewTracker(defs []config.AchievementDef, texts *i18n.Table) *Tracker {
	if n := texts.AchievementCount(); n != len(defs) {
		log.Printf("[Achievement] Warning: %d achievement names for %d achievements", n, len(defs))
	}

	records := make([]Record, len(defs))
	for i, def := range defs {
		records[i] = Record{
			ID:        def.ID,
			Name:      texts.AchievementName(i),
			Threshold: def.Threshold,
		}
	}

	return &Tracker{
		records: records,
		texts:   texts,
	}
}

// Check 按阈值升序检查所有成就
//
// 总点击数达到阈值且尚未解锁的成就会被解锁，并各自触发一次横幅；
// 同一次调用解锁多个成就时只有最后一个横幅可见。
//
// 返回：
//   - []Record: 本次新解锁的成就（可能为空）
func (t *Tracker) Check(totalClicks int) []Record {
	var unlocked []Record
	for i := range t.records {
		r := &t.records[i]
		if r.Unlocked || totalClicks < r.Threshold {
			continue
		}
		r.Unlocked = true
		t.showBanner(r.Name)
		unlocked = append(unlocked, *r)
		log.Printf("[Achievement] Unlocked %q (%s) at %d clicks", r.ID, r.Name, totalClicks)
	}
	return unlocked
}

// showBanner 显示解锁横幅，覆盖之前的横幅
func (t *Tracker) showBanner(name string) {
	t.banner = Banner{
		Message: fmt.Sprintf("%s: %s!", t.texts.Text(i18n.AchievementUnlocked), name),
		Ticks:   config.BannerTicks,
	}
}

// Tick 横幅倒计时减一，最小为 0
func (t *Tracker) Tick() {
	if t.banner.Ticks > 0 {
		t.banner.Ticks--
	}
}

// Restore 从存档恢复解锁状态（不触发横幅）
//
// 优先按稳定 ID 匹配；ID 为空或不存在时按显示名称匹配，
// 以兼容只保存了名称的旧存档。
//
// 返回：
//   - bool: 是否找到匹配的成就
func (t *Tracker) Restore(id, name string) bool {
	if id != "" {
		for i := range t.records {
			if t.records[i].ID == id {
				t.records[i].Unlocked = true
				return true
			}
		}
	}
	if name != "" {
		for i := range t.records {
			if t.records[i].Name == name {
				t.records[i].Unlocked = true
				return true
			}
		}
	}
	return false
}

// Records 返回成就列表的副本，按阈值升序
func (t *Tracker) Records() []Record {
	return append([]Record(nil), t.records...)
}

// Unlocked 返回已解锁成就的副本
func (t *Tracker) Unlocked() []Record {
	var out []Record
	for _, r := range t.records {
		if r.Unlocked {
			out = append(out, r)
		}
	}
	return out
}

// Banner 返回当前横幅状态
func (t *Tracker) Banner() Banner {
	return t.banner
}
