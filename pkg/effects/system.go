// Package effects owns the transient visual effects triggered by clicks:
// the click pulse of the clickable object, rising floating texts and
// gravity-affected particles.
//
// All state advances in fixed ticks. The package does no drawing; the
// presentation layer reads the collections each frame.
package effects

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/BlackPencil-69/eggplant-game-v1/pkg/config"
	"github.com/BlackPencil-69/eggplant-game-v1/pkg/utils"
)

// Vec2 is a 2D point or velocity in screen space.
type Vec2 struct {
	X, Y float64
}

// Pulse is the click scale envelope of the clickable object.
type Pulse struct {
	Active bool
	Ticks  int     // remaining ticks
	Scale  float64 // current scale, 1.0 when idle
}

// FloatingText is a label that rises and fades out.
type FloatingText struct {
	Content string
	Pos     Vec2
	Ticks   int // remaining ticks
	Alpha   uint8
}

// Particle is a single physics-lite particle.
type Particle struct {
	Pos      Vec2
	Vel      Vec2
	Lifetime int // remaining ticks
	Color    color.RGBA
	Size     int
}

// Alpha returns the particle opacity, proportional to its remaining lifetime.
func (p Particle) Alpha() uint8 {
	if p.Lifetime <= 0 {
		return 0
	}
	if p.Lifetime >= config.ParticleMaxLifetime {
		return 255
	}
	return uint8(255 * p.Lifetime / config.ParticleMaxLifetime)
}

// System manages the pulse, floating texts and particles.
//
// Collections are advanced and pruned in a single pass by compacting the
// live entries to the front of the backing slice.
type System struct {
	pulse     Pulse
	texts     []FloatingText
	particles []Particle
	rng       *rand.Rand
}

// NewSystem creates an effect system seeded from the current time.
func NewSystem() *System {
	return NewSystemWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSystemWithRand creates an effect system using the given random source.
// Tests pass a fixed seed to get reproducible spawns.
func NewSystemWithRand(rng *rand.Rand) *System {
	return &System{
		pulse: Pulse{Scale: 1.0},
		rng:   rng,
	}
}

// TriggerClickPulse (re)starts the pulse envelope from its full duration.
// Overlapping clicks restart the envelope rather than stacking.
func (s *System) TriggerClickPulse() {
	s.pulse.Active = true
	s.pulse.Ticks = config.ClickPulseTicks
}

// SpawnFloatingText appends a label above the clickable object's bounds,
// jittered so that rapid clicks do not stack on one spot.
func (s *System) SpawnFloatingText(content string, bounds image.Rectangle) {
	centerX := float64(bounds.Min.X+bounds.Max.X) / 2
	x := centerX + float64(s.randInt(-config.FloatingTextJitterX, config.FloatingTextJitterX))
	y := float64(bounds.Min.Y) - config.FloatingTextOffsetY +
		float64(s.randInt(-config.FloatingTextJitterY, config.FloatingTextJitterY))

	s.texts = append(s.texts, FloatingText{
		Content: content,
		Pos:     Vec2{X: x, Y: y},
		Ticks:   config.FloatingTextTicks,
		Alpha:   255,
	})
}

// SpawnParticles appends count particles at origin, each with a random
// direction, speed, lifetime, size and palette color.
func (s *System) SpawnParticles(origin Vec2, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := utils.Lerp(config.ParticleMinSpeed, config.ParticleMaxSpeed, s.rng.Float64())

		s.particles = append(s.particles, Particle{
			Pos:      origin,
			Vel:      Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Lifetime: s.randInt(config.ParticleMinLifetime, config.ParticleMaxLifetime),
			Color:    config.ParticlePalette[s.rng.Intn(len(config.ParticlePalette))],
			Size:     s.randInt(config.ParticleMinSize, config.ParticleMaxSize),
		})
	}
}

// Tick advances every effect by one tick: pulse, then floating texts,
// then particles.
func (s *System) Tick() {
	s.tickPulse()
	s.tickTexts()
	s.tickParticles()
}

func (s *System) tickPulse() {
	if !s.pulse.Active {
		return
	}

	progress := 1 - float64(s.pulse.Ticks)/config.ClickPulseTicks
	s.pulse.Scale = utils.Lerp(1.0, config.ClickPulseMaxScale, utils.HalfSine(progress))
	s.pulse.Ticks--
	if s.pulse.Ticks <= 0 {
		s.pulse = Pulse{Scale: 1.0}
	}
}

func (s *System) tickTexts() {
	alive := s.texts[:0]
	for _, ft := range s.texts {
		ft.Ticks--
		if ft.Ticks <= 0 {
			continue
		}
		ft.Pos.Y -= config.FloatingTextRiseSpeed
		if ft.Ticks < config.FloatingTextFadeTicks {
			ft.Alpha = uint8(255 * ft.Ticks / config.FloatingTextFadeTicks)
		}
		alive = append(alive, ft)
	}
	clear(s.texts[len(alive):])
	s.texts = alive
}

func (s *System) tickParticles() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Lifetime--
		if p.Lifetime <= 0 {
			continue
		}
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Vel.Y += config.ParticleGravity
		alive = append(alive, p)
	}
	s.particles = alive
}

// randInt returns a uniform integer in [lo, hi].
func (s *System) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Pulse returns the current pulse state.
func (s *System) Pulse() Pulse {
	return s.pulse
}

// Scale returns the current scale of the clickable object.
func (s *System) Scale() float64 {
	return s.pulse.Scale
}

// FloatingTexts returns the live floating texts. The slice is only valid
// until the next Tick or spawn.
func (s *System) FloatingTexts() []FloatingText {
	return s.texts
}

// Particles returns the live particles. The slice is only valid until the
// next Tick or spawn.
func (s *System) Particles() []Particle {
	return s.particles
}

// Idle reports whether no effect is active.
func (s *System) Idle() bool {
	return !s.pulse.Active && len(s.texts) == 0 && len(s.particles) == 0
}
