package atom

import "math"

// Electron is a positioned electron on one of the shells.
type Electron struct {
	Shell int   `json:"shell"`
	Pos   Point `json:"pos"`
}

// OrbitRadius returns the radius of shell (0-based) around a nucleus of
// the given diameter.
func (c LayoutConfig) OrbitRadius(shell int, nucleusSize float64) float64 {
	return nucleusSize/2 + c.OrbitOffset + float64(shell)*c.OrbitSpacing
}

// ComputeElectronLayout spreads each shell's electrons evenly around its
// orbit, starting at angle 0.
func ComputeElectronLayout(shells []int, nucleusSize float64, cfg LayoutConfig) []Electron {
	var out []Electron
	for s, count := range shells {
		r := cfg.OrbitRadius(s, nucleusSize)
		for i := range count {
			angle := float64(i) / float64(count) * 2 * math.Pi
			out = append(out, Electron{
				Shell: s,
				Pos:   Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
			})
		}
	}
	return out
}
