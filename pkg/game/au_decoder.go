package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sun/NeXT .au header (big-endian, 24 bytes minimum)
type auHeader struct {
	Magic      uint32 // ".snd"
	DataOffset uint32
	DataSize   uint32 // 0xFFFFFFFF 表示未知
	Encoding   uint32
	SampleRate uint32
	Channels   uint32
}

const (
	auMagic         = 0x2e736e64
	auHeaderSize    = 24
	auUnknownSize   = 0xFFFFFFFF
	auEncodingULaw  = 1 // 8 位 μ-law
	auEncodingPCM16 = 3 // 16 位线性 PCM（大端）
)

// decodeAU 把 .au 文件解码为 16 位小端立体声 PCM
//
// 支持 μ-law 和 16 位线性编码，单声道会复制到两个声道。
//
// 返回：
//   - []byte: PCM 数据（原始采样率）
//   - int: 原始采样率
//   - error: 文件头非法或编码不受支持
func decodeAU(r io.Reader) ([]byte, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read AU data: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, 0, fmt.Errorf("AU data too short: %d bytes", len(data))
	}

	var h auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &h); err != nil {
		return nil, 0, fmt.Errorf("failed to read AU header: %w", err)
	}
	if h.Magic != auMagic {
		return nil, 0, fmt.Errorf("invalid AU magic 0x%08x", h.Magic)
	}
	if h.Channels < 1 || h.Channels > 2 {
		return nil, 0, fmt.Errorf("unsupported AU channel count: %d", h.Channels)
	}
	if h.SampleRate == 0 {
		return nil, 0, fmt.Errorf("invalid AU sample rate: 0")
	}
	if h.DataOffset < auHeaderSize || int(h.DataOffset) > len(data) {
		return nil, 0, fmt.Errorf("invalid AU data offset %d (size %d)", h.DataOffset, len(data))
	}

	body := data[h.DataOffset:]
	if h.DataSize != auUnknownSize && int(h.DataSize) < len(body) {
		body = body[:h.DataSize]
	}

	var samples []int16
	switch h.Encoding {
	case auEncodingULaw:
		samples = make([]int16, len(body))
		for i, b := range body {
			samples[i] = ulawToLinear(b)
		}
	case auEncodingPCM16:
		samples = make([]int16, len(body)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(body[i*2:]))
		}
	default:
		return nil, 0, fmt.Errorf("unsupported AU encoding: %d", h.Encoding)
	}

	return interleaveStereo(samples, int(h.Channels)), int(h.SampleRate), nil
}

// ulawToLinear 按 G.711 解码一个 μ-law 字节
func ulawToLinear(b byte) int16 {
	u := ^b
	exponent := (u >> 4) & 0x07
	mantissa := int32(u & 0x0F)
	sample := ((mantissa << 3) + 0x84) << exponent
	sample -= 0x84
	if u&0x80 != 0 {
		return int16(-sample)
	}
	return int16(sample)
}

// interleaveStereo 输出 16 位小端立体声，不完整的尾帧被丢弃
func interleaveStereo(samples []int16, channels int) []byte {
	frames := len(samples) / channels
	out := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		left := samples[i*channels]
		right := left
		if channels == 2 {
			right = samples[i*channels+1]
		}
		binary.LittleEndian.PutUint16(out[i*4:], uint16(left))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(right))
	}
	return out
}

// decodeAUWithSampleRate 解码 .au 并重采样到目标采样率
func decodeAUWithSampleRate(sampleRate int, r io.Reader) (io.Reader, error) {
	pcm, rate, err := decodeAU(r)
	if err != nil {
		return nil, err
	}
	src := bytes.NewReader(pcm)
	if rate == sampleRate {
		return src, nil
	}
	return audio.Resample(src, int64(len(pcm)), rate, sampleRate), nil
}
