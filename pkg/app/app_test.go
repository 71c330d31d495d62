package app

import (
	"testing"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 记录调用的场景
type stubScene struct {
	width, height int
	resizes       int
	saves         int
}

func (s *stubScene) Update() error             { return nil }
func (s *stubScene) Draw(screen *ebiten.Image) {}
func (s *stubScene) Resize(w, h int)           { s.width, s.height = w, h; s.resizes++ }
func (s *stubScene) SaveOnExit() bool          { s.saves++; return true }

func newTestApp(scene game.Scene) *App {
	sm := game.NewSceneManager()
	sm.SwitchTo(scene)
	return &App{
		sceneManager:    sm,
		settingsManager: game.NewSettingsManager(nil),
	}
}

func TestApp_Layout(t *testing.T) {
	scene := &stubScene{}
	a := newTestApp(scene)

	tests := []struct {
		name         string
		inW, inH     int
		wantW, wantH int
	}{
		{"Window size", 1024, 768, 1024, 768},
		{"Same size again", 1024, 768, 1024, 768},
		{"Zero size falls back", 0, 0, config.ScreenWidth, config.ScreenHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := a.Layout(tt.inW, tt.inH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Layout(%d, %d) = %d, %d, want %d, %d", tt.inW, tt.inH, w, h, tt.wantW, tt.wantH)
			}
			if scene.width != tt.wantW || scene.height != tt.wantH {
				t.Errorf("Scene size = %dx%d", scene.width, scene.height)
			}
		})
	}

	// 尺寸不变时不重复通知场景
	if scene.resizes != 2 {
		t.Errorf("Scene resized %d times, want 2", scene.resizes)
	}
}

// TestApp_ShutdownOnce 退出时只保存一次
func TestApp_ShutdownOnce(t *testing.T) {
	scene := &stubScene{}
	a := newTestApp(scene)

	a.Shutdown()
	a.Shutdown()

	if scene.saves != 1 {
		t.Errorf("Scene saved %d times, want 1", scene.saves)
	}
}

func TestApp_ToggleSound(t *testing.T) {
	a := newTestApp(&stubScene{})

	a.toggleSound()
	if a.settingsManager.GetSettings().SoundEnabled {
		t.Error("Sound should be disabled after toggle")
	}
}

func TestLoadTexts(t *testing.T) {
	texts, err := loadTexts("xx")
	if err != nil {
		t.Fatalf("loadTexts fallback error: %v", err)
	}
	if texts.Language() != "uk" {
		t.Errorf("Language = %q, want fallback uk", texts.Language())
	}
}

func TestLoadTexts_English(t *testing.T) {
	texts, err := loadTexts("en")
	if err != nil {
		t.Fatalf("loadTexts(en) error: %v", err)
	}
	if texts.Language() != "en" {
		t.Errorf("Language = %q, want en", texts.Language())
	}
}
