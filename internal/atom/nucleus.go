package atom

import "math"

// ParticleKind tags a nucleon.
type ParticleKind int

const (
	Proton ParticleKind = iota
	Neutron
)

func (k ParticleKind) String() string {
	if k == Proton {
		return "proton"
	}
	return "neutron"
}

// MarshalText encodes the kind by name.
func (k ParticleKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Point is a 2D offset from the nucleus center, in diagram pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Particle is a positioned nucleon.
type Particle struct {
	Kind ParticleKind `json:"kind"`
	Pos  Point        `json:"pos"`
}

// Shuffler permutes n items through swap. *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type noShuffle struct{}

func (noShuffle) Shuffle(int, func(i, j int)) {}

// NoShuffle keeps protons before neutrons. Useful for deterministic output.
var NoShuffle Shuffler = noShuffle{}

// LayoutConfig sizes the nucleus and its electron orbits.
type LayoutConfig struct {
	ParticleSize    float64
	SizePerParticle float64
	BaseSize        float64
	MinSize         float64
	MaxSize         float64
	RingFactor      float64
	OrbitOffset     float64
	OrbitSpacing    float64
}

// DefaultLayoutConfig matches the proportions of the web diagram.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		ParticleSize:    16,
		SizePerParticle: 1.5,
		BaseSize:        60,
		MinSize:         80,
		MaxSize:         200,
		RingFactor:      0.7,
		OrbitOffset:     32,
		OrbitSpacing:    44,
	}
}

// NucleusSize returns the nucleus diameter for the given particle count.
func (c LayoutConfig) NucleusSize(particles int) float64 {
	size := float64(max(particles, 0))*c.SizePerParticle + c.BaseSize
	return math.Max(c.MinSize, math.Min(c.MaxSize, size))
}

// Layouter places nucleus particles with a fixed config and shuffle source.
type Layouter struct {
	cfg     LayoutConfig
	shuffle Shuffler
}

// NewLayouter returns a Layouter. A nil shuffler means NoShuffle.
func NewLayouter(cfg LayoutConfig, shuffler Shuffler) *Layouter {
	if shuffler == nil {
		shuffler = NoShuffle
	}
	return &Layouter{cfg: cfg, shuffle: shuffler}
}

// Config returns the layout configuration.
func (l *Layouter) Config() LayoutConfig {
	return l.cfg
}

// ComputeNucleusLayout lays out protons and neutrons with the default
// config.
func ComputeNucleusLayout(protons, neutrons int, shuffler Shuffler) []Particle {
	return NewLayouter(DefaultLayoutConfig(), shuffler).Nucleus(protons, neutrons)
}

// Nucleus mixes the nucleons and assigns coordinates by count tier:
// one particle sits at the origin, two to four fill the corners of a small
// square, and five or more are spread evenly around a ring.
func (l *Layouter) Nucleus(protons, neutrons int) []Particle {
	protons, neutrons = max(protons, 0), max(neutrons, 0)
	total := protons + neutrons

	particles := make([]Particle, 0, total)
	for range protons {
		particles = append(particles, Particle{Kind: Proton})
	}
	for range neutrons {
		particles = append(particles, Particle{Kind: Neutron})
	}
	l.shuffle.Shuffle(total, func(i, j int) {
		particles[i], particles[j] = particles[j], particles[i]
	})

	switch {
	case total == 0:
		return particles
	case total == 1:
		particles[0].Pos = Point{}
	case total <= 4:
		half := l.cfg.ParticleSize / 2
		corners := [4]Point{
			{X: -half, Y: -half},
			{X: half, Y: -half},
			{X: -half, Y: half},
			{X: half, Y: half},
		}
		for i := range particles {
			particles[i].Pos = corners[i]
		}
	default:
		r := l.RingRadius(total)
		for i := range particles {
			angle := float64(i) / float64(total) * 2 * math.Pi
			particles[i].Pos = Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
		}
	}
	return particles
}

// RingRadius is the radius of the ring used for five or more particles.
func (l *Layouter) RingRadius(total int) float64 {
	return l.cfg.RingFactor * (l.cfg.NucleusSize(total)/2 - l.cfg.ParticleSize)
}
