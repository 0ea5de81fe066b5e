package atom

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKinds(ps []Particle) (protons, neutrons int) {
	for _, p := range ps {
		if p.Kind == Proton {
			protons++
		} else {
			neutrons++
		}
	}
	return protons, neutrons
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 42))
}

func TestNucleusLayoutCounts(t *testing.T) {
	rng := seeded()
	for p := 0; p <= 12; p++ {
		for n := 0; n <= 12; n++ {
			layout := ComputeNucleusLayout(p, n, rng)
			require.Len(t, layout, p+n)
			gotP, gotN := countKinds(layout)
			assert.Equal(t, p, gotP, "p=%d n=%d", p, n)
			assert.Equal(t, n, gotN, "p=%d n=%d", p, n)
		}
	}
}

func TestNucleusLayoutEmptyAndSingle(t *testing.T) {
	assert.Empty(t, ComputeNucleusLayout(0, 0, NoShuffle))

	single := ComputeNucleusLayout(1, 0, NoShuffle)
	require.Len(t, single, 1)
	assert.Equal(t, Point{}, single[0].Pos)

	single = ComputeNucleusLayout(0, 1, seeded())
	require.Len(t, single, 1)
	assert.Equal(t, Neutron, single[0].Kind)
	assert.Equal(t, Point{}, single[0].Pos)
}

func TestNucleusLayoutSmallClusterIsDistinct(t *testing.T) {
	for total := 2; total <= 4; total++ {
		for p := 0; p <= total; p++ {
			layout := ComputeNucleusLayout(p, total-p, seeded())
			seen := map[Point]bool{}
			for _, particle := range layout {
				assert.False(t, seen[particle.Pos], "duplicate position %v for p=%d n=%d", particle.Pos, p, total-p)
				seen[particle.Pos] = true
			}
		}
	}
}

func TestNucleusLayoutRingSpacing(t *testing.T) {
	for _, total := range []int{5, 6, 13, 50, 300} {
		layout := ComputeNucleusLayout(total/2, total-total/2, seeded())
		require.Len(t, layout, total)

		step := 2 * math.Pi / float64(total)
		for i := 1; i < total; i++ {
			a := math.Atan2(layout[i-1].Pos.Y, layout[i-1].Pos.X)
			b := math.Atan2(layout[i].Pos.Y, layout[i].Pos.X)
			diff := math.Mod(b-a+2*math.Pi, 2*math.Pi)
			assert.InDelta(t, step, diff, 1e-9, "total=%d index=%d", total, i)
		}
	}
}

func TestNucleusLayoutStaysInsideNucleus(t *testing.T) {
	cfg := DefaultLayoutConfig()
	for total := 1; total <= 250; total += 7 {
		bound := cfg.NucleusSize(total) / 2
		for _, particle := range ComputeNucleusLayout(total, 0, NoShuffle) {
			r := math.Hypot(particle.Pos.X, particle.Pos.Y)
			assert.Less(t, r, bound, "total=%d", total)
		}
	}
}

func TestNucleusSizeClamped(t *testing.T) {
	cfg := DefaultLayoutConfig()
	assert.Equal(t, 80.0, cfg.NucleusSize(0))
	assert.Equal(t, 90.0, cfg.NucleusSize(20))
	assert.Equal(t, 200.0, cfg.NucleusSize(1000))
}

func TestNucleusLayoutNoShuffleKeepsOrder(t *testing.T) {
	layout := ComputeNucleusLayout(3, 2, NoShuffle)
	kinds := make([]ParticleKind, len(layout))
	for i, p := range layout {
		kinds[i] = p.Kind
	}
	assert.Equal(t, []ParticleKind{Proton, Proton, Proton, Neutron, Neutron}, kinds)
}

func TestNucleusLayoutRepeatCallsMatchAsMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	first := ComputeNucleusLayout(6, 7, rng)
	second := ComputeNucleusLayout(6, 7, rng)
	require.Equal(t, len(first), len(second))

	p1, n1 := countKinds(first)
	p2, n2 := countKinds(second)
	assert.Equal(t, p1, p2)
	assert.Equal(t, n1, n2)
}

func TestNucleusLayoutNegativeCounts(t *testing.T) {
	assert.Empty(t, ComputeNucleusLayout(-1, -5, seeded()))
	assert.Len(t, ComputeNucleusLayout(-1, 2, seeded()), 2)
}

func TestNewLayouterNilShuffler(t *testing.T) {
	l := NewLayouter(DefaultLayoutConfig(), nil)
	assert.Len(t, l.Nucleus(2, 2), 4)
}

func TestElectronLayout(t *testing.T) {
	cfg := DefaultLayoutConfig()
	shells := ComputeShells(11)
	electrons := ComputeElectronLayout(shells, 100, cfg)
	require.Len(t, electrons, 11)

	for _, e := range electrons {
		r := math.Hypot(e.Pos.X, e.Pos.Y)
		assert.InDelta(t, cfg.OrbitRadius(e.Shell, 100), r, 1e-9)
	}
	assert.Equal(t, 50.0+32, cfg.OrbitRadius(0, 100))
	assert.Equal(t, 50.0+32+44*2, cfg.OrbitRadius(2, 100))
}

func TestParticleJSONUsesKindNames(t *testing.T) {
	b, err := json.Marshal([]Particle{
		{Kind: Proton},
		{Kind: Neutron, Pos: Point{X: 8, Y: -8}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"kind": "proton", "pos": {"x": 0, "y": 0}},
		{"kind": "neutron", "pos": {"x": 8, "y": -8}}
	]`, string(b))
}
