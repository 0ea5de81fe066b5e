package atom

import (
	"fmt"
	"strconv"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

// Kind names a classification outcome.
type Kind string

const (
	KindKnown        Kind = "Known Element"
	KindIon          Kind = "Ion"
	KindIsotope      Kind = "Isotope"
	KindVariant      Kind = "Variant"
	KindHypothetical Kind = "Hypothetical Element"
)

// Color is the display tag attached to each outcome.
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Classification is the closed set of outcomes returned by Classify:
// KnownElement, Ion, Isotope, Variant and Hypothetical. Only types in this
// package implement it.
type Classification interface {
	Kind() Kind
	Color() Color
	Description() string
	// Reference is the matching table entry; ok is false for Hypothetical.
	Reference() (element.Element, bool)
	isClassification()
}

// KnownElement is the neutral reference state of an element.
type KnownElement struct{ Element element.Element }

// Ion has the reference proton count but a different electron count.
type Ion struct {
	Element element.Element
	Charge  int
}

// Isotope has the reference electron count but a different neutron count.
type Isotope struct {
	Element  element.Element
	Neutrons int
}

// Variant is any other configuration of a known element.
type Variant struct{ Element element.Element }

// Hypothetical has a proton count that matches no known element.
type Hypothetical struct{ Protons int }

func (KnownElement) Kind() Kind { return KindKnown }
func (Ion) Kind() Kind          { return KindIon }
func (Isotope) Kind() Kind      { return KindIsotope }
func (Variant) Kind() Kind      { return KindVariant }
func (Hypothetical) Kind() Kind { return KindHypothetical }

func (KnownElement) Color() Color { return ColorGreen }
func (Ion) Color() Color          { return ColorBlue }
func (Isotope) Color() Color      { return ColorPurple }
func (Variant) Color() Color      { return ColorOrange }
func (Hypothetical) Color() Color { return ColorRed }

func (c KnownElement) Description() string {
	return fmt.Sprintf("This is %s (%s) in its neutral state.", c.Element.Name, c.Element.Symbol)
}

func (c Ion) Description() string {
	return fmt.Sprintf("This is a %s ion with a %s charge.", c.Element.Name, FormatCharge(c.Charge))
}

func (c Isotope) Description() string {
	return fmt.Sprintf("This is an isotope of %s with %d neutrons.", c.Element.Name, c.Neutrons)
}

func (c Variant) Description() string {
	return fmt.Sprintf("This is a variant of %s with different electron/neutron configuration.", c.Element.Name)
}

func (Hypothetical) Description() string {
	return "This element does not exist in nature or has not been discovered yet."
}

func (c KnownElement) Reference() (element.Element, bool) { return c.Element, true }
func (c Ion) Reference() (element.Element, bool)          { return c.Element, true }
func (c Isotope) Reference() (element.Element, bool)      { return c.Element, true }
func (c Variant) Reference() (element.Element, bool)      { return c.Element, true }
func (Hypothetical) Reference() (element.Element, bool)   { return element.Element{}, false }

func (KnownElement) isClassification() {}
func (Ion) isClassification()          {}
func (Isotope) isClassification()      {}
func (Variant) isClassification()      {}
func (Hypothetical) isClassification() {}

// Classify identifies a triple against table. An electron mismatch is
// checked before a neutron mismatch, so a configuration that differs in
// both is an Ion.
func Classify(protons, electrons, neutrons int, table element.Table) Classification {
	known, ok := table.Lookup(protons)
	if !ok {
		return Hypothetical{Protons: protons}
	}

	switch {
	case known.Neutrons == neutrons && known.Electrons == electrons:
		return KnownElement{Element: known}
	case known.Electrons != electrons:
		return Ion{Element: known, Charge: protons - electrons}
	case known.Neutrons != neutrons:
		return Isotope{Element: known, Neutrons: neutrons}
	default:
		return Variant{Element: known}
	}
}

// FormatCharge renders a net charge with an explicit sign for positive
// values: "+2", "-1", "0".
func FormatCharge(charge int) string {
	if charge > 0 {
		return "+" + strconv.Itoa(charge)
	}
	return strconv.Itoa(charge)
}
