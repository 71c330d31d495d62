package config

import "image/color"

// 窗口与循环配置
const (
	// ScreenWidth 默认窗口宽度（像素）
	ScreenWidth = 800
	// ScreenHeight 默认窗口高度（像素）
	ScreenHeight = 600
	// TicksPerSecond 固定逻辑帧率
	TicksPerSecond = 60
	// WindowTitle 窗口标题
	WindowTitle = "Гра з Баклажаном"
)

// 资源路径
const (
	// ClickableImagePath 可点击对象（茄子）图片路径，相对于工作目录
	ClickableImagePath = "assets/images/eggplant.png"
	// PlaceholderWidth 图片加载失败时占位矩形的宽度
	PlaceholderWidth = 100
	// PlaceholderHeight 图片加载失败时占位矩形的高度
	PlaceholderHeight = 150
)

// 颜色配置
var (
	BackgroundColor       = color.RGBA{R: 230, G: 230, B: 250, A: 255} // 淡紫色背景
	TextColor             = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	FloatingTextColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PlaceholderColor      = color.RGBA{R: 138, G: 43, B: 226, A: 255} // 紫色占位图
	ProgressBarBgColor    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ProgressBarFillColor  = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	AchievementColor      = color.RGBA{R: 255, G: 215, B: 0, A: 255} // 金色
	ButtonColor           = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	ButtonHoverColor      = color.RGBA{R: 80, G: 80, B: 200, A: 255}
	ButtonTextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ModalDimColor         = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	ModalPanelColor       = color.RGBA{R: 50, G: 50, B: 70, A: 200}
	ModalBorderColor      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	LockedAchievementText = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// ParticlePalette 粒子颜色表（红、绿、蓝、黄）
var ParticlePalette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
}

// 点击动画配置（单位：tick）
const (
	ClickPulseMaxScale = 1.2
	ClickPulseTicks    = 10
)

// 浮动文字配置
const (
	FloatingTextTicks     = 30
	FloatingTextFadeTicks = 15
	FloatingTextOffsetY   = 30 // 文字出现在对象顶部上方的距离
	FloatingTextJitterX   = 20
	FloatingTextJitterY   = 10
	FloatingTextRiseSpeed = 1.0
)

// 粒子配置
const (
	ParticleCount       = 13
	ParticleMinSize     = 3
	ParticleMaxSize     = 7
	ParticleMinSpeed    = 2.0
	ParticleMaxSpeed    = 5.0
	ParticleMinLifetime = 20
	ParticleMaxLifetime = 40
	ParticleGravity     = 0.1
)

// 成就横幅配置
const (
	BannerTicks     = 180
	BannerFadeTicks = 30
	BannerY         = 80
)

// 界面布局配置
const (
	FontSize      = 18.0
	LargeFontSize = 26.0
	SmallFontSize = 14.0

	UIMargin          = 10
	ProgressBarX      = 10
	ProgressBarY      = 40
	ProgressBarWidth  = 200
	ProgressBarHeight = 20

	ButtonWidth  = 150
	ButtonHeight = 40

	ModalMaxWidth   = 600
	ModalMaxHeight  = 400
	ModalInset      = 100
	ModalPadding    = 20
	ModalListTop    = 70
	ModalRowHeight  = 30
	ModalLockedRow  = 25
	ModalDividerGap = 20

	HelpTextBottomOffset = 30
)

// ProgressFallbackStep 所有成就完成后进度条使用的步长
const ProgressFallbackStep = 100

// 存档配置
const (
	// DefaultSaveAppName gdata 应用名（决定存档目录）
	DefaultSaveAppName = "eggplant_clicker"
	// AutosaveIntervalTicks 自动保存间隔（10 秒）
	AutosaveIntervalTicks = 10 * TicksPerSecond
)

// 音频配置
const (
	AudioSampleRate   = 48000
	ClickSoundFreqHz  = 660.0
	ClickSoundSeconds = 0.06
	// ClickSoundPath 可选的点击音效文件（.ogg/.mp3/.wav/.au），不存在时使用合成音
	ClickSoundPath = "assets/audio/click.ogg"
)
