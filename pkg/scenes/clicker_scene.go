package scenes

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/achievement"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/effects"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/game"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/i18n"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/ui"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneState 点击场景的状态
type SceneState int

const (
	// StateRunning 正常游戏，点击对象计数
	StateRunning SceneState = iota
	// StateAchievementsOpen 成就面板打开，只响应关闭按钮
	StateAchievementsOpen
	// StateTerminating 已收到退出信号，进度已保存
	StateTerminating
)

func (s SceneState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateAchievementsOpen:
		return "AchievementsOpen"
	case StateTerminating:
		return "Terminating"
	}
	return fmt.Sprintf("SceneState(%d)", int(s))
}

// ClickerSceneOptions 创建点击场景所需的依赖
type ClickerSceneOptions struct {
	ResourceManager *game.ResourceManager // 可为 nil（使用占位图和调试字体）
	SaveManager     *game.SaveManager     // 可为 nil（不持久化）
	AudioManager    *game.AudioManager    // 可为 nil（静音）
	Texts           *i18n.Table
	Achievements    []config.AchievementDef

	Width  int
	Height int

	// Rand 效果系统随机源，nil 时使用当前时间作为种子
	Rand *rand.Rand
	// Debug 绘制调试信息（点击区域和效果计数）
	Debug bool
}

// ClickerScene 唯一的游戏场景（会话控制器）
//
// 职责：
//   - 按状态分发指针输入
//   - 被接受的点击：计数、脉冲、粒子、成就检查、浮动文字、音效
//   - 每 tick 推进效果系统和成就横幅
//   - 启动时恢复进度，退出时和定期自动保存
//
// 场景独占持有会话、成就跟踪器、效果系统和渲染器，没有全局状态。
type ClickerScene struct {
	session  *game.Session
	tracker  *achievement.Tracker
	effects  *effects.System
	renderer *ui.Renderer
	texts    *i18n.Table

	saveManager  *game.SaveManager
	audioManager *game.AudioManager

	object     *ebiten.Image
	objectSize image.Point

	state          SceneState
	cursor         image.Point
	ticksSinceSave int
	holdSaves      bool // 存档不可读：第一次被接受的点击之前不写入，避免零进度覆盖原存档
	debug          bool
}

// NewClickerScene 创建点击场景并从存档恢复进度
//
// 图片或字体加载失败、存档读取失败都不是致命错误：
// 记录日志后分别使用占位图、调试字体和零进度。
func NewClickerScene(opts ClickerSceneOptions) *ClickerScene {
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = config.ScreenWidth, config.ScreenHeight
	}

	s := &ClickerScene{
		tracker:      achievement.NewTracker(opts.Achievements, opts.Texts),
		texts:        opts.Texts,
		saveManager:  opts.SaveManager,
		audioManager: opts.AudioManager,
		state:        StateRunning,
		debug:        opts.Debug,
	}

	if opts.Rand != nil {
		s.effects = effects.NewSystemWithRand(opts.Rand)
	} else {
		s.effects = effects.NewSystem()
	}

	var fonts ui.Fonts
	if rm := opts.ResourceManager; rm != nil {
		s.object, _ = rm.LoadImageOrPlaceholder(config.ClickableImagePath,
			config.PlaceholderWidth, config.PlaceholderHeight, config.PlaceholderColor)

		var err error
		if fonts, err = ui.LoadFonts(rm); err != nil {
			log.Printf("[ClickerScene] Warning: %v (using debug font)", err)
		}
	} else {
		s.object = game.NewPlaceholderImage(config.PlaceholderWidth, config.PlaceholderHeight, config.PlaceholderColor)
	}
	s.objectSize = s.object.Bounds().Size()
	s.renderer = ui.NewRenderer(opts.Texts, fonts, width, height)

	s.restoreProgress()
	return s
}

// restoreProgress 读取存档并恢复计数和成就
func (s *ClickerScene) restoreProgress() {
	var progress game.ProgressData
	if s.saveManager != nil {
		var err error
		progress, err = s.saveManager.Load()
		if err != nil {
			log.Printf("[ClickerScene] Warning: %v (starting from scratch)", err)
		}
		if errors.Is(err, game.ErrSaveUnreadable) {
			s.holdSaves = true
		}
	}

	s.session = game.NewSession(progress.LeftClicks, progress.RightClicks)
	for _, saved := range progress.Achievements {
		if !s.tracker.Restore(saved.ID, saved.Name) {
			log.Printf("[ClickerScene] Unknown saved achievement: id=%q name=%q", saved.ID, saved.Name)
		}
	}

	// 存档中的计数可能已越过未记录的阈值
	s.tracker.Check(s.session.Total())

	log.Printf("[ClickerScene] Session started: left=%d right=%d unlocked=%d",
		s.session.LeftClicks(), s.session.RightClicks(), len(s.tracker.Unlocked()))
}

// Update 每 tick 调用一次：轮询输入、分发、推进效果
//
// 进入 StateTerminating 后返回 ebiten.Termination。
func (s *ClickerScene) Update() error {
	if s.state == StateTerminating {
		return ebiten.Termination
	}

	x, y := utils.GetPointerPosition()
	s.cursor = image.Pt(x, y)
	for _, ev := range utils.PollPointerEvents() {
		s.HandlePointer(ev)
	}

	s.Tick()
	return nil
}

// Tick 推进效果系统、成就横幅和自动保存计时
func (s *ClickerScene) Tick() {
	s.effects.Tick()
	s.tracker.Tick()

	if s.state == StateTerminating {
		return
	}
	s.ticksSinceSave++
	if s.ticksSinceSave >= config.AutosaveIntervalTicks {
		s.ticksSinceSave = 0
		s.save()
	}
}

// HandlePointer 按当前状态处理一次指针按下
//
// 返回：
//   - bool: 是否作为一次对象点击被计数
func (s *ClickerScene) HandlePointer(ev utils.PointerEvent) bool {
	switch s.state {
	case StateRunning:
		if ev.Button == utils.PointerPrimary && utils.HitTest(s.renderer.AchievementsButton(), ev.X, ev.Y) {
			s.state = StateAchievementsOpen
			log.Printf("[ClickerScene] Achievements panel opened")
			return false
		}
		if utils.HitTest(s.ObjectRect(), ev.X, ev.Y) {
			s.registerClick(ev)
			return true
		}

	case StateAchievementsOpen:
		// 面板拦截所有输入
		if ev.Button == utils.PointerPrimary && utils.HitTest(s.renderer.CloseButton(), ev.X, ev.Y) {
			s.state = StateRunning
			log.Printf("[ClickerScene] Achievements panel closed")
		}
	}
	return false
}

func (s *ClickerScene) registerClick(ev utils.PointerEvent) {
	total := s.session.Click(ev.Button)
	s.holdSaves = false

	s.effects.TriggerClickPulse()
	s.effects.SpawnParticles(effects.Vec2{X: float64(ev.X), Y: float64(ev.Y)}, config.ParticleCount)
	if unlocked := s.tracker.Check(total); len(unlocked) > 0 {
		s.save()
	}
	s.effects.SpawnFloatingText(ui.ClickLabel(s.texts, total), s.ObjectRect())

	if s.audioManager != nil {
		s.audioManager.PlayClick()
	}
}

// Resize 重新计算点击区域，对象始终保持居中
func (s *ClickerScene) Resize(width, height int) {
	s.renderer.Resize(width, height)
}

// SaveOnExit 处理退出信号：进入 StateTerminating 并保存进度
//
// 实现 game.Saveable 接口。
func (s *ClickerScene) SaveOnExit() bool {
	s.state = StateTerminating
	return s.save()
}

// save 保存当前进度并重置自动保存计时，失败只记录日志
func (s *ClickerScene) save() bool {
	if s.saveManager == nil {
		return true
	}
	if s.holdSaves {
		log.Printf("[ClickerScene] Save skipped: stored progress was unreadable and nothing changed")
		return true
	}

	s.ticksSinceSave = 0

	if err := s.saveManager.Save(s.Progress()); err != nil {
		log.Printf("[ClickerScene] Warning: failed to save progress: %v", err)
		return false
	}
	return true
}

// Progress 返回当前进度的存档形式
func (s *ClickerScene) Progress() game.ProgressData {
	unlocked := s.tracker.Unlocked()
	saved := make([]game.SavedAchievement, len(unlocked))
	for i, r := range unlocked {
		saved[i] = game.SavedAchievement{ID: r.ID, Name: r.Name}
	}

	return game.ProgressData{
		LeftClicks:   s.session.LeftClicks(),
		RightClicks:  s.session.RightClicks(),
		Achievements: saved,
	}
}

// Draw 绘制当前状态
func (s *ClickerScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, ui.Frame{
		LeftClicks:  s.session.LeftClicks(),
		RightClicks: s.session.RightClicks(),
		Records:     s.tracker.Records(),
		Banner:      s.tracker.Banner(),
		Effects:     s.effects,
		Object:      s.object,
		ModalOpen:   s.state == StateAchievementsOpen,
		Cursor:      s.cursor,
	})

	if s.debug {
		s.drawDebug(screen)
	}
}

// ObjectRect 返回可点击对象当前（含脉冲缩放）的屏幕区域
func (s *ClickerScene) ObjectRect() image.Rectangle {
	return s.renderer.ObjectRect(s.objectSize, s.effects.Scale())
}

// State 返回当前状态
func (s *ClickerScene) State() SceneState {
	return s.state
}

// Session 返回点击计数器
func (s *ClickerScene) Session() *game.Session {
	return s.session
}

// Tracker 返回成就跟踪器
func (s *ClickerScene) Tracker() *achievement.Tracker {
	return s.tracker
}

// Effects 返回效果系统
func (s *ClickerScene) Effects() *effects.System {
	return s.effects
}

// Renderer 返回渲染器（按钮点击区域）
func (s *ClickerScene) Renderer() *ui.Renderer {
	return s.renderer
}
