package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 播放点击音效
//   - 与 SettingsManager 联动（开关与音量）
//
// 点击音效默认在启动时合成为 PCM 数据；存在音效文件时可用 LoadClickSound 替换。
type AudioManager struct {
	context         *audio.Context   // 可为 nil（无音频设备或测试）
	settingsManager *SettingsManager // 可为 nil（使用默认设置）
	clickPCM        []byte           // 16 位小端立体声 PCM
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - ctx: 音频上下文，可为 nil（静音模式）
//   - sm: 设置管理器，可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	sampleRate := config.AudioSampleRate
	if ctx != nil {
		sampleRate = ctx.SampleRate()
	}

	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		clickPCM:        SynthesizeTone(sampleRate, config.ClickSoundFreqHz, config.ClickSoundSeconds),
	}
}

// LoadClickSound 从文件加载点击音效，替换合成音
//
// 文件缺失或无法解码时保留合成音并记录日志。
//
// 返回：
//   - bool: 是否使用了文件中的音效
func (am *AudioManager) LoadClickSound(rm *ResourceManager, path string) bool {
	sampleRate := config.AudioSampleRate
	if am.context != nil {
		sampleRate = am.context.SampleRate()
	}

	pcm, err := rm.LoadSoundPCM(path, sampleRate)
	if err != nil {
		log.Printf("[AudioManager] Using synthesized click sound: %v", err)
		return false
	}
	if len(pcm) == 0 {
		log.Printf("[AudioManager] Sound file %s is empty, using synthesized click sound", path)
		return false
	}

	am.clickPCM = pcm
	return true
}

// ClickPCM 返回当前点击音效的 PCM 数据
func (am *AudioManager) ClickPCM() []byte {
	return am.clickPCM
}

// PlayClick 播放点击音效
//
// 返回：
//   - bool: 是否真正开始播放（音效关闭或没有音频上下文时为 false）
func (am *AudioManager) PlayClick() bool {
	if !am.SoundEnabled() || am.context == nil {
		return false
	}

	player := am.context.NewPlayerFromBytes(am.clickPCM)
	player.SetVolume(am.soundVolume())
	player.Play()
	return true
}

// SoundEnabled 返回音效开关状态
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return DefaultSettings().SoundEnabled
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}

// SynthesizeTone 合成一段带线性衰减包络的正弦波
//
// 输出格式与 audio.Context 默认格式一致：16 位有符号小端、双声道。
// 包络从满幅线性衰减到 0，结尾不会产生爆音。
func SynthesizeTone(sampleRate int, freqHz, seconds float64) []byte {
	samples := int(float64(sampleRate) * seconds)
	if samples <= 0 {
		return nil
	}

	const amplitude = 0.3 * math.MaxInt16
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1 - float64(i)/float64(samples)
		v := int16(amplitude * envelope * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate)))
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}

	log.Printf("[AudioManager] Synthesized %d samples at %.0f Hz", samples, freqHz)
	return buf
}
