package i18n

import (
	"fmt"
	"strings"
	"testing"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
)

// TestLoad_Ukrainian 验证默认语言表完整
func TestLoad_Ukrainian(t *testing.T) {
	table, err := Load(DefaultLanguage)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", DefaultLanguage, err)
	}

	for k := Key(0); k < keyCount; k++ {
		if table.Text(k) == "" {
			t.Errorf("Empty translation for %s", k)
		}
	}

	if got := table.Text(Total); got != "Всього" {
		t.Errorf("Text(Total) = %q, want %q", got, "Всього")
	}
}

// TestLoad_AchievementNamesMatchTable 成就名称必须与成就表一一对应
func TestLoad_AchievementNamesMatchTable(t *testing.T) {
	table, err := Load(DefaultLanguage)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	defs, err := config.LoadAchievements()
	if err != nil {
		t.Fatalf("LoadAchievements error: %v", err)
	}

	if table.AchievementCount() != len(defs) {
		t.Fatalf("Achievement names: got %d, want %d", table.AchievementCount(), len(defs))
	}

	if got := table.AchievementName(0); got != "Ласкаво просимо до гри" {
		t.Errorf("AchievementName(0) = %q", got)
	}
}

func TestLoad_UnknownLanguage(t *testing.T) {
	if _, err := Load("xx"); err == nil {
		t.Error("Expected error for unknown language")
	}
}

func TestParse_MissingKey(t *testing.T) {
	data := []byte("strings:\n  left_clicks: \"L\"\n")
	_, err := Parse("test", data, 0)
	if err == nil {
		t.Fatal("Expected error for incomplete locale")
	}
	if !strings.Contains(err.Error(), "right_clicks") {
		t.Errorf("Error should name the missing key, got: %v", err)
	}
}

func TestTable_Format(t *testing.T) {
	table, err := Load(DefaultLanguage)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	got := table.Format(LockedAchievement, 500)
	if got != "??? (доступно на 500)" {
		t.Errorf("Format(LockedAchievement, 500) = %q", got)
	}
}

func TestTable_AchievementNameOutOfRange(t *testing.T) {
	table, err := Load(DefaultLanguage)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := table.AchievementName(99); got != "" {
		t.Errorf("AchievementName(99) = %q", got)
	}
}

func TestKey_String(t *testing.T) {
	if HelpText.String() != "help_text" {
		t.Errorf("HelpText.String() = %q", HelpText.String())
	}
	if Key(-1).String() != "Key(-1)" {
		t.Errorf("Key(-1).String() = %q", Key(-1).String())
	}
}

// TestLoad_AllLocalesComplete 所有内置语言的成就名称数量一致
func TestLoad_AllLocalesComplete(t *testing.T) {
	for _, lang := range []string{"uk", "en"} {
		t.Run(lang, func(t *testing.T) {
			table, err := Load(lang)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", lang, err)
			}
			if table.Language() != lang {
				t.Errorf("Language() = %q, want %q", table.Language(), lang)
			}
			if table.AchievementCount() != 11 {
				t.Errorf("AchievementCount() = %d, want 11", table.AchievementCount())
			}
		})
	}
}

// completeStrings 返回包含所有键的 strings 段
func completeStrings() string {
	var b strings.Builder
	b.WriteString("strings:\n")
	for k := Key(0); k < keyCount; k++ {
		fmt.Fprintf(&b, "  %s: \"x\"\n", k)
	}
	return b.String()
}

// TestParse_AchievementNameCount 成就名称数量必须与成就表一致
func TestParse_AchievementNameCount(t *testing.T) {
	tests := []struct {
		name    string
		names   string
		count   int
		wantErr bool
	}{
		{"Exact", "achievements: [\"a\", \"b\"]\n", 2, false},
		{"Too few", "achievements: [\"a\"]\n", 2, true},
		{"Too many", "achievements: [\"a\", \"b\", \"c\"]\n", 2, true},
		{"Missing section", "", 2, true},
		{"Empty name", "achievements: [\"a\", \"\"]\n", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse("test", []byte(completeStrings()+tt.names), tt.count)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got table with %d names", table.AchievementCount())
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if table.AchievementName(1) != "b" {
				t.Errorf("AchievementName(1) = %q, want b", table.AchievementName(1))
			}
		})
	}
}
