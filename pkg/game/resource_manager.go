package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in font names accepted by LoadBuiltinFont.
const (
	FontRegular = "goregular"
	FontBold    = "gobold"
)

var builtinFonts = map[string][]byte{
	FontRegular: goregular.TTF,
	FontBold:    gobold.TTF,
}

// ResourceManager loads and caches images, font faces and decoded sounds.
//
// Images are read from disk at runtime so a missing asset degrades to a
// placeholder instead of failing the build. Fonts come either from a file
// or from the Go font family bundled with golang.org/x/image, which covers
// Cyrillic.
//
// Not thread-safe: the caches are plain maps used from the game loop only.
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> Image
	fontSourceCache map[string]*text.GoTextFaceSource // font name or path -> source
	fontFaceCache   map[string]*text.GoTextFace       // "name:size" -> face
	soundCache      map[string][]byte                 // "path@rate" -> PCM
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		soundCache:      make(map[string][]byte),
	}
}

// LoadImage loads an image file and caches it.
//
// Returns an error if the file cannot be opened or decoded. Never panics.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageOrPlaceholder loads an image, falling back to a solid w x h
// rectangle of the given color when loading fails.
//
// The second return value reports whether the real image was loaded.
func (rm *ResourceManager) LoadImageOrPlaceholder(path string, w, h int, clr color.Color) (*ebiten.Image, bool) {
	img, err := rm.LoadImage(path)
	if err == nil {
		return img, true
	}

	log.Printf("[ResourceManager] Warning: %v (using %dx%d placeholder)", err, w, h)
	return NewPlaceholderImage(w, h, clr), false
}

// NewPlaceholderImage returns a solid-color image.
func NewPlaceholderImage(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return img
}

// GetImage returns a cached image or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont loads a TrueType/OpenType font file and returns a face of the
// given size. Faces are cached by path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	return rm.loadFace(path, size, func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		return data, nil
	})
}

// LoadBuiltinFont returns a face of one of the bundled Go fonts.
func (rm *ResourceManager) LoadBuiltinFont(name string, size float64) (*text.GoTextFace, error) {
	return rm.loadFace(name, size, func() ([]byte, error) {
		data, ok := builtinFonts[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin font %q", name)
		}
		return data, nil
	})
}

// GetFont returns a cached face or nil.
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fontCacheKey(name, size)]
}

func (rm *ResourceManager) loadFace(name string, size float64, read func() ([]byte, error)) (*text.GoTextFace, error) {
	cacheKey := fontCacheKey(name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, exists := rm.fontSourceCache[name]
	if !exists {
		data, err := read()
		if err != nil {
			return nil, err
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
		}
		rm.fontSourceCache[name] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

func fontCacheKey(name string, size float64) string {
	return fmt.Sprintf("%s:%.1f", name, size)
}

// LoadSoundPCM decodes an .mp3, .ogg, .wav or .au file into 16-bit little-endian
// stereo PCM resampled to sampleRate, and caches the result.
//
// The decoded bytes can be fed to audio.Context.NewPlayerFromBytes as many
// times as needed, which suits short effects replayed on every click.
func (rm *ResourceManager) LoadSoundPCM(path string, sampleRate int) ([]byte, error) {
	key := fmt.Sprintf("%s@%d", path, sampleRate)
	if pcm, exists := rm.soundCache[key]; exists {
		return pcm, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}

	pcm, err := DecodeSound(filepath.Ext(path), bytes.NewReader(data), sampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound file %s: %w", path, err)
	}

	rm.soundCache[key] = pcm
	log.Printf("[ResourceManager] Loaded sound: %s (%d bytes PCM)", path, len(pcm))
	return pcm, nil
}

// DecodeSound decodes an encoded stream chosen by file extension.
func DecodeSound(ext string, src io.ReadSeeker, sampleRate int) ([]byte, error) {
	var stream io.Reader
	switch strings.ToLower(ext) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("ogg: %w", err)
		}
		stream = s
	case ".au":
		s, err := decodeAUWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("au: %w", err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, src)
		if err != nil {
			return nil, fmt.Errorf("wav: %w", err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %q (supported: .mp3, .ogg, .wav, .au)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded stream: %w", err)
	}
	return pcm, nil
}
