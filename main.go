package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/app"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出和调试信息")
	saveApp := flag.String("save-app", config.DefaultSaveAppName, "存档应用名（决定存档目录）")
	lang := flag.String("lang", "", "界面语言（uk、en），为空使用已保存的设置")
	flag.Parse()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond)

	game, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		SaveAppName: *saveApp,
		Language:    *lang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	// 窗口关闭时 App.Update 保存进度并返回 ebiten.Termination，RunGame 返回 nil
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
