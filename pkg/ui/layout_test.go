package ui

import (
	"image"
	"testing"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
)

func TestAchievementsButtonRect(t *testing.T) {
	tests := []struct {
		w, h int
		want image.Rectangle
	}{
		{800, 600, image.Rect(640, 10, 790, 50)},
		{1024, 768, image.Rect(864, 10, 1014, 50)},
	}
	for _, tt := range tests {
		if got := AchievementsButtonRect(tt.w, tt.h); got != tt.want {
			t.Errorf("AchievementsButtonRect(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestComputeModalLayout(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantPanel image.Rectangle
	}{
		{"Default window", 800, 600, image.Rect(100, 100, 700, 500)},
		{"Large window caps size", 1920, 1080, image.Rect(660, 340, 1260, 740)},
		{"Small window keeps inset", 500, 400, image.Rect(50, 50, 450, 350)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ComputeModalLayout(tt.w, tt.h)
			if layout.Panel != tt.wantPanel {
				t.Errorf("Panel = %v, want %v", layout.Panel, tt.wantPanel)
			}
			if !layout.Close.In(layout.Panel) {
				t.Errorf("Close %v not inside panel %v", layout.Close, layout.Panel)
			}
			if layout.Close.Dx() != config.ButtonWidth || layout.Close.Dy() != config.ButtonHeight {
				t.Errorf("Close size = %v", layout.Close.Size())
			}
			if layout.Close.Max.X != layout.Panel.Max.X-config.UIMargin || layout.Close.Max.Y != layout.Panel.Max.Y-config.UIMargin {
				t.Errorf("Close %v not anchored to panel corner %v", layout.Close, layout.Panel)
			}
		})
	}
}

func TestObjectRect(t *testing.T) {
	size := image.Pt(100, 150)

	tests := []struct {
		name  string
		w, h  int
		scale float64
		want  image.Rectangle
	}{
		{"Centered", 800, 600, 1.0, image.Rect(350, 225, 450, 375)},
		{"Pulse scale", 800, 600, 1.2, image.Rect(340, 210, 460, 390)},
		{"After resize", 1000, 800, 1.0, image.Rect(450, 325, 550, 475)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ObjectRect(tt.w, tt.h, size, tt.scale); got != tt.want {
				t.Errorf("ObjectRect = %v, want %v", got, tt.want)
			}
		})
	}
}
