package atom

import "github.com/Mr-Dark-debug/atomic-explorer/internal/element"

// MaxCount bounds every builder counter.
const MaxCount = 200

// Field selects one of the builder counters.
type Field int

const (
	FieldProtons Field = iota
	FieldElectrons
	FieldNeutrons
)

// Fields lists the counters in display order.
var Fields = []Field{FieldProtons, FieldElectrons, FieldNeutrons}

func (f Field) String() string {
	switch f {
	case FieldProtons:
		return "Protons"
	case FieldElectrons:
		return "Electrons"
	default:
		return "Neutrons"
	}
}

// Min returns the lowest value the builder accepts for f.
func (f Field) Min() int {
	if f == FieldProtons {
		return 1
	}
	return 0
}

// Atom is the builder's (protons, electrons, neutrons) triple.
type Atom struct {
	Protons   int `json:"protons"`
	Electrons int `json:"electrons"`
	Neutrons  int `json:"neutrons"`
}

// Hydrogen is the builder's reset state.
func Hydrogen() Atom {
	return Atom{Protons: 1, Electrons: 1, Neutrons: 0}
}

// FromElement copies the particle counts of a reference element.
func FromElement(el element.Element) Atom {
	return Atom{Protons: el.Protons, Electrons: el.Electrons, Neutrons: el.Neutrons}
}

// Mass is the mass number in atomic mass units.
func (a Atom) Mass() int { return a.Protons + a.Neutrons }

// Charge is the net charge.
func (a Atom) Charge() int { return a.Protons - a.Electrons }

// Get returns the value of f.
func (a Atom) Get(f Field) int {
	switch f {
	case FieldProtons:
		return a.Protons
	case FieldElectrons:
		return a.Electrons
	default:
		return a.Neutrons
	}
}

// With sets f to v, clamped to the field's range.
func (a Atom) With(f Field, v int) Atom {
	v = clampCount(v, f.Min())
	switch f {
	case FieldProtons:
		a.Protons = v
	case FieldElectrons:
		a.Electrons = v
	default:
		a.Neutrons = v
	}
	return a
}

// Adjust adds delta to f, clamped to the field's range.
func (a Atom) Adjust(f Field, delta int) Atom {
	return a.With(f, a.Get(f)+delta)
}

// WithProtons, WithElectrons and WithNeutrons are shorthands for With.
func (a Atom) WithProtons(v int) Atom   { return a.With(FieldProtons, v) }
func (a Atom) WithElectrons(v int) Atom { return a.With(FieldElectrons, v) }
func (a Atom) WithNeutrons(v int) Atom  { return a.With(FieldNeutrons, v) }

// Classify classifies a against table.
func (a Atom) Classify(table element.Table) Classification {
	return Classify(a.Protons, a.Electrons, a.Neutrons, table)
}

// Shells returns a's electron shell partition.
func (a Atom) Shells() []int {
	return ComputeShells(a.Electrons)
}

func clampCount(v, lo int) int {
	return max(lo, min(MaxCount, v))
}

// Preset is a named starting configuration.
type Preset struct {
	Name string
	Atom Atom
}

// Presets are the quick-start configurations offered by the builder.
var Presets = []Preset{
	{Name: "Hydrogen", Atom: Atom{Protons: 1, Electrons: 1, Neutrons: 0}},
	{Name: "Helium", Atom: Atom{Protons: 2, Electrons: 2, Neutrons: 2}},
	{Name: "Carbon", Atom: Atom{Protons: 6, Electrons: 6, Neutrons: 6}},
	{Name: "Oxygen", Atom: Atom{Protons: 8, Electrons: 8, Neutrons: 8}},
}
