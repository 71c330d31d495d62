package ui

import (
	"fmt"
	"strings"
	"testing"
)

// TestComputeModalEntries 已解锁在前按阈值顺序，未解锁只显示阈值
func TestComputeModalEntries(t *testing.T) {
	texts := loadTestTexts(t)

	tests := []struct {
		name         string
		unlocked     int
		wantMessage  bool
		wantUnlocked []string
		wantLocked   int
	}{
		{"Nothing unlocked", 0, true, nil, 0},
		{"First unlocked", 1, false, []string{"Ласкаво просимо до гри"}, 10},
		{"Three unlocked", 3, false, []string{"Ласкаво просимо до гри", "Початківець", "Ентузіаст"}, 8},
		{"All unlocked", 11, false, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := recordsWithUnlocked(t, tt.unlocked)
			got := ComputeModalEntries(records, texts)

			if tt.wantMessage {
				if got.Message != "Досягнень поки немає. Продовжуйте клікати!" {
					t.Errorf("Message = %q", got.Message)
				}
				if len(got.Unlocked) != 0 || len(got.Locked) != 0 {
					t.Errorf("Empty panel must list nothing, got %+v", got)
				}
				return
			}

			if got.Message != "" {
				t.Errorf("Message = %q, want empty", got.Message)
			}
			if tt.wantUnlocked != nil && strings.Join(got.Unlocked, "|") != strings.Join(tt.wantUnlocked, "|") {
				t.Errorf("Unlocked = %q, want %q", got.Unlocked, tt.wantUnlocked)
			}
			if len(got.Unlocked) != tt.unlocked {
				t.Errorf("Unlocked count = %d, want %d", len(got.Unlocked), tt.unlocked)
			}
			if len(got.Locked) != tt.wantLocked {
				t.Fatalf("Locked count = %d, want %d", len(got.Locked), tt.wantLocked)
			}

			// 未解锁条目按阈值升序，且不含任何成就名称
			for i, line := range got.Locked {
				rec := records[tt.unlocked+i]
				if want := fmt.Sprintf("??? (доступно на %d)", rec.Threshold); line != want {
					t.Errorf("Locked[%d] = %q, want %q", i, line, want)
				}
				for _, r := range records {
					if strings.Contains(line, r.Name) {
						t.Errorf("Locked[%d] = %q reveals name %q", i, line, r.Name)
					}
				}
			}
		})
	}
}

func TestComputeModalEntries_NoRecords(t *testing.T) {
	got := ComputeModalEntries(nil, loadTestTexts(t))
	if got.Message == "" || got.Unlocked != nil || got.Locked != nil {
		t.Errorf("ComputeModalEntries(nil) = %+v, want only the message", got)
	}
}

func TestScoreLine(t *testing.T) {
	texts := loadTestTexts(t)

	tests := []struct {
		left, right int
		want        string
	}{
		{0, 0, "Ліві кліки: 0 | Праві кліки: 0 | Всього: 0"},
		{3, 0, "Ліві кліки: 3 | Праві кліки: 0 | Всього: 3"},
		{42, 7, "Ліві кліки: 42 | Праві кліки: 7 | Всього: 49"},
	}
	for _, tt := range tests {
		if got := ScoreLine(texts, tt.left, tt.right); got != tt.want {
			t.Errorf("ScoreLine(%d, %d) = %q, want %q", tt.left, tt.right, got, tt.want)
		}
	}
}

func TestClickLabel(t *testing.T) {
	texts := loadTestTexts(t)

	tests := []struct {
		total int
		want  string
	}{
		{1, "+1 (Всього: 1)"},
		{10, "+1 (Всього: 10)"},
		{1000000, "+1 (Всього: 1000000)"},
	}
	for _, tt := range tests {
		if got := ClickLabel(texts, tt.total); got != tt.want {
			t.Errorf("ClickLabel(%d) = %q, want %q", tt.total, got, tt.want)
		}
	}
}
