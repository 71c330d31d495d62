//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 构建 Android 包：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.blackpencil.eggplant -o build/eggplant.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/app"
)

func init() {
	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，让 ebitenmobile 识别此包
func Dummy() {}
