package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed achievements.yaml
var achievementsYAML []byte

// AchievementDef 单个成就的静态定义
type AchievementDef struct {
	ID        string `yaml:"id"`        // 稳定标识（存档使用）
	Threshold int    `yaml:"threshold"` // 解锁所需的总点击数
}

// AchievementTable 成就定义表
type AchievementTable struct {
	Achievements []AchievementDef `yaml:"achievements"`
}

// LoadAchievements 解析编译进程序的成就表
//
// 返回：
//   - []AchievementDef: 按阈值升序排列的成就定义
//   - error: 如果表格式错误或不满足约束返回错误
func LoadAchievements() ([]AchievementDef, error) {
	return ParseAchievements(achievementsYAML)
}

// ParseAchievements 从 YAML 数据解析并校验成就表
func ParseAchievements(data []byte) ([]AchievementDef, error) {
	var table AchievementTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse achievements YAML: %w", err)
	}

	if err := validateAchievements(table.Achievements); err != nil {
		return nil, fmt.Errorf("invalid achievements table: %w", err)
	}

	return table.Achievements, nil
}

// validateAchievements 校验成就表
//
// 规则：
//   - 至少一条
//   - ID 非空且唯一
//   - 阈值 >= 1 且严格升序
func validateAchievements(defs []AchievementDef) error {
	if len(defs) == 0 {
		return fmt.Errorf("achievements cannot be empty")
	}

	seen := make(map[string]bool, len(defs))
	prev := 0
	for i, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("achievement #%d has empty id", i)
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true

		if def.Threshold < 1 {
			return fmt.Errorf("achievement %q: threshold must be >= 1, got %d", def.ID, def.Threshold)
		}
		if def.Threshold <= prev {
			return fmt.Errorf("achievement %q: threshold %d is not above previous %d", def.ID, def.Threshold, prev)
		}
		prev = def.Threshold
	}

	return nil
}
