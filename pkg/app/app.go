// Package app 提供游戏应用的核心包装器
//
// 该包负责组装存储、设置、音频、资源和场景，并实现 ebiten.Game 接口，
// main 包只负责解析参数和设置窗口。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/game"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出和调试信息
	Verbose bool
	// SaveAppName gdata 应用名（决定存档目录），为空使用默认值
	SaveAppName string
	// Language 界面语言（如 "uk"、"en"），非空时覆盖并保存到设置
	Language string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	shutDown                 bool
}

// NewApp 创建并初始化游戏应用
//
// 存储不可用时进入降级模式（进度和设置只保存在内存中）；
// 只有编译进程序的静态表损坏才会返回错误。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appName := cfg.SaveAppName
	if appName == "" {
		appName = config.DefaultSaveAppName
	}
	store, err := game.OpenStorage(appName)
	if err != nil {
		log.Printf("[App] Warning: %v (progress will not be saved)", err)
	}

	settingsManager := game.NewSettingsManager(store)
	if cfg.Language != "" {
		settingsManager.SetLanguage(cfg.Language)
	}
	settings := settingsManager.GetSettings()

	texts, err := loadTexts(settings.Language)
	if err != nil {
		return nil, err
	}
	if texts.Language() != settings.Language || cfg.Language != "" {
		settingsManager.SetLanguage(texts.Language())
		if err := settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	achievements, err := config.LoadAchievements()
	if err != nil {
		return nil, fmt.Errorf("成就表加载失败: %w", err)
	}

	audioContext := audio.NewContext(config.AudioSampleRate)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	resourceManager := game.NewResourceManager()
	audioManager.LoadClickSound(resourceManager, config.ClickSoundPath)
	log.Printf("[App] AudioManager initialized (sound enabled: %v)", settings.SoundEnabled)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewClickerScene(scenes.ClickerSceneOptions{
		ResourceManager: resourceManager,
		SaveManager:     game.NewSaveManager(store),
		AudioManager:    audioManager,
		Texts:           texts,
		Achievements:    achievements,
		Width:           config.ScreenWidth,
		Height:          config.ScreenHeight,
		Debug:           cfg.Verbose,
	}))

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadTexts 加载设置中的语言，失败时回退到默认语言
func loadTexts(lang string) (*i18n.Table, error) {
	texts, err := i18n.Load(lang)
	if err == nil {
		return texts, nil
	}
	if lang == i18n.DefaultLanguage {
		return nil, fmt.Errorf("语言表加载失败: %w", err)
	}

	log.Printf("[App] Warning: %v (falling back to %q)", err, i18n.DefaultLanguage)
	texts, err = i18n.Load(i18n.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("语言表加载失败: %w", err)
	}
	return texts, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.TicksPerSecond 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleSound()
	}

	err := a.sceneManager.Update()
	if errors.Is(err, ebiten.Termination) {
		a.Shutdown()
	}
	return err
}

// toggleFullscreen F11 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	a.saveSettings()
}

// toggleSound M 键切换音效并保存设置
func (a *App) toggleSound() {
	enabled := a.settingsManager.ToggleSound()
	log.Printf("[App] Sound enabled: %v", enabled)
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Shutdown 处理退出信号：保存当前场景和设置（只执行一次）
func (a *App) Shutdown() {
	if a.shutDown {
		return
	}
	a.shutDown = true

	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Progress was not saved")
	}
	a.saveSettings()
	log.Printf("[App] Shutdown complete")
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏或窗口比例不同时用背景色填充边缘，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(config.BackgroundColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，变化时通知场景重新布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = config.ScreenWidth, config.ScreenHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
