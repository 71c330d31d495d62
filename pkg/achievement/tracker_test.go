package achievement

import (
	"strings"
	"testing"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
)

// newTestTracker 使用真实的成就表和语言表创建跟踪器
func newTestTracker(t *testing.T) *Tracker {
	t.Helper()

	defs, err := config.LoadAchievements()
	if err != nil {
		t.Fatalf("LoadAchievements error: %v", err)
	}
	texts, err := i18n.Load(i18n.DefaultLanguage)
	if err != nil {
		t.Fatalf("i18n.Load error: %v", err)
	}
	return NewTracker(defs, texts)
}

func TestTracker_InitialState(t *testing.T) {
	tr := newTestTracker(t)

	if len(tr.Records()) != 11 {
		t.Fatalf("Expected 11 records, got %d", len(tr.Records()))
	}
	if len(tr.Unlocked()) != 0 {
		t.Errorf("Expected no unlocked achievements, got %d", len(tr.Unlocked()))
	}
	if tr.Banner().Visible() {
		t.Error("Banner should not be visible initially")
	}
	if tr.Records()[0].Name != "Ласкаво просимо до гри" {
		t.Errorf("First record name = %q", tr.Records()[0].Name)
	}
}

func TestTracker_CheckBelowThreshold(t *testing.T) {
	tr := newTestTracker(t)

	if got := tr.Check(9); len(got) != 0 {
		t.Errorf("Check(9) unlocked %d achievements, want 0", len(got))
	}
	if tr.Banner().Visible() {
		t.Error("Banner should not be visible below first threshold")
	}
}

func TestTracker_CheckExactThreshold(t *testing.T) {
	tr := newTestTracker(t)

	got := tr.Check(10)
	if len(got) != 1 || got[0].ID != "welcome" {
		t.Fatalf("Check(10) = %+v, want [welcome]", got)
	}

	banner := tr.Banner()
	if !banner.Visible() {
		t.Fatal("Banner should be visible after unlock")
	}
	if banner.Ticks != config.BannerTicks {
		t.Errorf("Banner ticks = %d, want %d", banner.Ticks, config.BannerTicks)
	}
	want := "Досягнення отримано: Ласкаво просимо до гри!"
	if banner.Message != want {
		t.Errorf("Banner message = %q, want %q", banner.Message, want)
	}
}

// TestTracker_MultipleUnlocksLastBannerWins 一次跨越多个阈值时最后一个横幅可见
func TestTracker_MultipleUnlocksLastBannerWins(t *testing.T) {
	tr := newTestTracker(t)

	got := tr.Check(150)
	if len(got) != 3 {
		t.Fatalf("Check(150) unlocked %d, want 3", len(got))
	}
	for i, id := range []string{"welcome", "beginner", "enthusiast"} {
		if got[i].ID != id {
			t.Errorf("unlocked[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
	if !strings.Contains(tr.Banner().Message, "Ентузіаст") {
		t.Errorf("Banner should show last unlock, got %q", tr.Banner().Message)
	}
}

// TestTracker_Monotonic 解锁后不会回退，也不会再次触发
func TestTracker_Monotonic(t *testing.T) {
	tr := newTestTracker(t)

	tr.Check(10)
	for total := 11; total < 50; total++ {
		if got := tr.Check(total); len(got) != 0 {
			t.Fatalf("Check(%d) re-unlocked %+v", total, got)
		}
		if !tr.Records()[0].Unlocked {
			t.Fatalf("Record reverted at total=%d", total)
		}
	}

	// 总数即使变小（不会发生，但验证不回退）
	tr.Check(0)
	if !tr.Records()[0].Unlocked {
		t.Error("Unlocked flag must never revert")
	}
}

func TestTracker_TickBanner(t *testing.T) {
	tr := newTestTracker(t)
	tr.Check(10)

	for i := 0; i < config.BannerTicks; i++ {
		tr.Tick()
	}
	if tr.Banner().Visible() {
		t.Error("Banner should be hidden after BannerTicks ticks")
	}

	// 继续 tick 不会变成负数
	tr.Tick()
	if tr.Banner().Ticks != 0 {
		t.Errorf("Banner ticks = %d, want 0", tr.Banner().Ticks)
	}
}

func TestBanner_Alpha(t *testing.T) {
	tests := []struct {
		ticks int
		want  uint8
	}{
		{0, 0},
		{config.BannerTicks, 255},
		{config.BannerFadeTicks, 255},
		{config.BannerFadeTicks / 2, 127},
		{1, 8},
	}
	for _, tt := range tests {
		b := Banner{Message: "x", Ticks: tt.ticks}
		if got := b.Alpha(); got != tt.want {
			t.Errorf("Banner{Ticks:%d}.Alpha() = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}

func TestTracker_Restore(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		rname  string
		found  bool
		wantID string
	}{
		{"By id", "beginner", "", true, "beginner"},
		{"By name fallback", "", "Ласкаво просимо до гри", true, "welcome"},
		{"Unknown id falls back to name", "renamed", "Ентузіаст", true, "enthusiast"},
		{"Unknown", "nope", "Невідоме", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(t)
			if got := tr.Restore(tt.id, tt.rname); got != tt.found {
				t.Fatalf("Restore(%q, %q) = %v, want %v", tt.id, tt.rname, got, tt.found)
			}

			unlocked := tr.Unlocked()
			if !tt.found {
				if len(unlocked) != 0 {
					t.Errorf("Expected nothing unlocked, got %+v", unlocked)
				}
				return
			}
			if len(unlocked) != 1 || unlocked[0].ID != tt.wantID {
				t.Errorf("Unlocked = %+v, want only %q", unlocked, tt.wantID)
			}
			if tr.Banner().Visible() {
				t.Error("Restore must not trigger a banner")
			}
		})
	}
}

// TestTracker_RecordsIsCopy 修改返回的切片不影响跟踪器
func TestTracker_RecordsIsCopy(t *testing.T) {
	tr := newTestTracker(t)

	records := tr.Records()
	records[0].Unlocked = true
	records[1].Threshold = 1

	if tr.Records()[0].Unlocked {
		t.Error("Mutating Records() must not unlock the achievement")
	}
	if tr.Records()[1].Threshold != 50 {
		t.Errorf("Threshold changed through Records(): %d", tr.Records()[1].Threshold)
	}
	if got := tr.Check(10); len(got) != 1 || got[0].ID != "welcome" {
		t.Errorf("Check(10) = %+v, want [welcome]", got)
	}
}
