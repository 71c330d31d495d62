package ui

import (
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/achievement"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
)

// Progress 进度条数据
type Progress struct {
	Total    int
	Fraction float64 // 填充比例 [0, 1]
	Previous int     // 区间起点
	Next     int     // 区间终点（下一个里程碑）
	NextName string  // 下一个成就名称；全部解锁后为空
}

// ComputeProgress 计算进度条数据（纯函数）
//
// 规则：
//   - Next 为最小的未解锁阈值；全部解锁后为 total 之上的下一个整百
//   - Previous 为低于 Next 的最大阈值，没有则为 0
//   - Fraction = (total - Previous) / (Next - Previous)，限制在 [0, 1]，
//     total 恰好等于尚未标记解锁的阈值时为 1.0
//
// 参数：
//   - total: 总点击数（负数按 0 处理）
//   - records: 按阈值升序排列的成就记录
func ComputeProgress(total int, records []achievement.Record) Progress {
	total = max(total, 0)

	p := Progress{Total: total}
	found := false
	for _, r := range records {
		if !r.Unlocked {
			p.Next = r.Threshold
			p.NextName = r.Name
			found = true
			break
		}
	}
	if !found {
		p.Next = (total/config.ProgressFallbackStep + 1) * config.ProgressFallbackStep
	}

	for _, r := range records {
		if r.Threshold < p.Next && r.Threshold > p.Previous {
			p.Previous = r.Threshold
		}
	}

	if total >= p.Next {
		p.Fraction = 1.0
		return p
	}
	if span := p.Next - p.Previous; span > 0 {
		p.Fraction = float64(total-p.Previous) / float64(span)
	}
	p.Fraction = min(max(p.Fraction, 0), 1)
	return p
}
