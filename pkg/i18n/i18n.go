// Package i18n 提供编译进程序的静态文本表
//
// 文本键是枚举类型 Key，加载语言表时会检查每个键都有译文，
// 缺少译文在启动时（以及测试中）直接报错，而不是在运行时退化为显示键名。
package i18n

import (
	"embed"
	"fmt"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// DefaultLanguage 默认语言
const DefaultLanguage = "uk"

// Key 界面文本键
type Key int

const (
	LeftClicks Key = iota
	RightClicks
	Total
	HelpText
	AchievementUnlocked
	AchievementsButton
	CloseButton
	AchievementsTitle
	NoAchievements
	LockedAchievement // 格式串，参数为解锁阈值

	keyCount
)

// keyNames 键在 YAML 文件中的名称
var keyNames = [keyCount]string{
	LeftClicks:          "left_clicks",
	RightClicks:         "right_clicks",
	Total:               "total",
	HelpText:            "help_text",
	AchievementUnlocked: "achievement_unlocked",
	AchievementsButton:  "achievements_button",
	CloseButton:         "close_button",
	AchievementsTitle:   "achievements_title",
	NoAchievements:      "no_achievements",
	LockedAchievement:   "locked_achievement",
}

// String 返回键名
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// localeFile 语言文件结构
type localeFile struct {
	Strings      map[string]string `yaml:"strings"`
	Achievements []string          `yaml:"achievements"`
}

// Table 单一语言的文本表
type Table struct {
	language     string
	strings      [keyCount]string
	achievements []string
}

// Load 加载指定语言的文本表
//
// 参数：
//   - language: 语言代码，如 "uk"
//
// 返回：
//   - *Table: 文本表
//   - error: 语言不存在、YAML 错误、缺少译文或成就名称数量与成就表不符时返回错误
func Load(language string) (*Table, error) {
	data, err := localesFS.ReadFile("locales/" + language + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("unknown language %q: %w", language, err)
	}

	defs, err := config.LoadAchievements()
	if err != nil {
		return nil, err
	}
	return Parse(language, data, len(defs))
}

// Parse 从 YAML 数据构建文本表
//
// achievementCount 为成就表的条目数，语言文件必须为每个成就提供一个名称。
func Parse(language string, data []byte, achievementCount int) (*Table, error) {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", language, err)
	}

	t := &Table{
		language:     language,
		achievements: file.Achievements,
	}

	for k := Key(0); k < keyCount; k++ {
		text, ok := file.Strings[keyNames[k]]
		if !ok || text == "" {
			return nil, fmt.Errorf("locale %q: missing translation for %s", language, k)
		}
		t.strings[k] = text
	}

	if len(file.Achievements) != achievementCount {
		return nil, fmt.Errorf("locale %q: %d achievement names, want %d",
			language, len(file.Achievements), achievementCount)
	}
	for i, name := range file.Achievements {
		if name == "" {
			return nil, fmt.Errorf("locale %q: empty name for achievement #%d", language, i)
		}
	}

	return t, nil
}

// Language 返回语言代码
func (t *Table) Language() string {
	return t.language
}

// Text 返回键对应的译文
func (t *Table) Text(k Key) string {
	if k < 0 || k >= keyCount {
		return k.String()
	}
	return t.strings[k]
}

// Format 以译文为格式串格式化参数
func (t *Table) Format(k Key, args ...any) string {
	return fmt.Sprintf(t.Text(k), args...)
}

// AchievementName 返回第 index 个成就的显示名称，越界时返回空字符串
//
// Load 已保证名称数量与成就表一致。
func (t *Table) AchievementName(index int) string {
	if index >= 0 && index < len(t.achievements) {
		return t.achievements[index]
	}
	return ""
}

// AchievementCount 返回语言表中的成就名称数量
func (t *Table) AchievementCount() int {
	return len(t.achievements)
}
