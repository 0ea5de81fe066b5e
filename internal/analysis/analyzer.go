// Package analysis derives reports about built atoms and reference
// elements. Everything here is deterministic: the same particle counts
// and reference table always produce the same report.
//
// Key capabilities:
//   - Atom reports: classification, charge, shells and diagram sizing
//   - Element reports: reference properties plus the neutral shell layout
//   - Markdown rendering for the CLI
package analysis

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
	"github.com/Mr-Dark-debug/atomic-explorer/pkg/timeutil"
)

// Analyzer builds reports from the reference table and saved atoms.
type Analyzer struct {
	store  database.Store
	table  element.Table
	layout atom.LayoutConfig
	lang   language.Tag
}

// NewAnalyzer creates a report builder. table is used for classification;
// store serves element and saved-atom lookups.
func NewAnalyzer(store database.Store, table element.Table, layout atom.LayoutConfig, lang language.Tag) *Analyzer {
	return &Analyzer{store: store, table: table, layout: layout, lang: lang}
}

// ============================================================
// Atom Reports
// ============================================================

// ReferenceSummary is the subset of a reference element shown alongside
// a classification.
type ReferenceSummary struct {
	AtomicNumber int     `json:"atomic_number"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	AtomicMass   float64 `json:"atomic_mass"`
	Neutrons     int     `json:"neutrons"`
}

// AtomReport describes one (protons, electrons, neutrons) triple.
type AtomReport struct {
	Label       string            `json:"label,omitempty"`
	Protons     int               `json:"protons"`
	Electrons   int               `json:"electrons"`
	Neutrons    int               `json:"neutrons"`
	Kind        atom.Kind         `json:"kind"`
	KindLabel   string            `json:"kind_label"`
	Color       atom.Color        `json:"color"`
	Description string            `json:"description"`
	Charge      string            `json:"charge"`
	Mass        int               `json:"mass"`
	Shells      []int             `json:"shells"`
	Overflow    int               `json:"overflow"`
	NucleusSize float64           `json:"nucleus_size"`
	OuterOrbit  float64           `json:"outer_orbit,omitempty"`
	Reference   *ReferenceSummary `json:"reference,omitempty"`
	SavedAt     string            `json:"saved_at,omitempty"`
}

// AnalyzeAtom classifies a and computes its display geometry.
func (a *Analyzer) AnalyzeAtom(at atom.Atom) *AtomReport {
	c := at.Classify(a.table)
	shells := at.Shells()
	nucleus := a.layout.NucleusSize(at.Protons + at.Neutrons)

	report := &AtomReport{
		Protons:     at.Protons,
		Electrons:   at.Electrons,
		Neutrons:    at.Neutrons,
		Kind:        c.Kind(),
		KindLabel:   locale.KindLabel(c.Kind(), a.lang),
		Color:       c.Color(),
		Description: locale.Describe(c, a.lang),
		Charge:      atom.FormatCharge(at.Charge()),
		Mass:        at.Mass(),
		Shells:      shells,
		Overflow:    atom.ShellOverflow(at.Electrons),
		NucleusSize: nucleus,
	}
	if len(shells) > 0 {
		report.OuterOrbit = a.layout.OrbitRadius(len(shells)-1, nucleus)
	}
	if ref, ok := c.Reference(); ok {
		report.Reference = &ReferenceSummary{
			AtomicNumber: ref.AtomicNumber,
			Symbol:       ref.Symbol,
			Name:         locale.ElementName(ref, a.lang),
			AtomicMass:   ref.AtomicMass,
			Neutrons:     ref.Neutrons,
		}
	}
	return report
}

// AnalyzeSaved loads a saved atom and reports on it.
func (a *Analyzer) AnalyzeSaved(id int64) (*AtomReport, error) {
	saved, err := a.store.GetSavedAtom(id)
	if err != nil {
		return nil, fmt.Errorf("loading saved atom for report: %w", err)
	}
	report := a.AnalyzeAtom(saved.Atom)
	report.Label = saved.Label
	report.SavedAt = timeutil.FormatTimestampFull(saved.CreatedAt)
	return report, nil
}

// ============================================================
// Element Reports
// ============================================================

// ElementReport describes one reference element in its neutral state.
type ElementReport struct {
	AtomicNumber      int      `json:"atomic_number"`
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Group             int      `json:"group,omitempty"`
	Period            int      `json:"period,omitempty"`
	AtomicMass        float64  `json:"atomic_mass"`
	Protons           int      `json:"protons"`
	Electrons         int      `json:"electrons"`
	Neutrons          int      `json:"neutrons"`
	Shells            []int    `json:"shells"`
	Electronegativity *float64 `json:"electronegativity,omitempty"`
	IonizationEnergy  *float64 `json:"ionization_energy,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// AnalyzeElement reports on the reference element with the given atomic number.
func (a *Analyzer) AnalyzeElement(atomicNumber int) (*ElementReport, error) {
	el, err := a.store.GetElement(atomicNumber)
	if err != nil {
		return nil, fmt.Errorf("loading element for report: %w", err)
	}
	return a.elementReport(*el), nil
}

// AnalyzeSymbol is AnalyzeElement keyed by symbol.
func (a *Analyzer) AnalyzeSymbol(symbol string) (*ElementReport, error) {
	el, err := a.store.GetElementBySymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("loading element for report: %w", err)
	}
	return a.elementReport(*el), nil
}

func (a *Analyzer) elementReport(el element.Element) *ElementReport {
	return &ElementReport{
		AtomicNumber:      el.AtomicNumber,
		Symbol:            el.Symbol,
		Name:              locale.ElementName(el, a.lang),
		Category:          locale.CategoryLabel(el.Category, a.lang),
		Group:             el.Group,
		Period:            el.Period,
		AtomicMass:        el.AtomicMass,
		Protons:           el.Protons,
		Electrons:         el.Electrons,
		Neutrons:          el.Neutrons,
		Shells:            atom.ComputeShells(el.Electrons),
		Electronegativity: el.Electronegativity,
		IonizationEnergy:  el.IonizationEnergy,
		Description:       el.Description,
	}
}

// ============================================================
// Report Formatting
// ============================================================

// FormatReport renders an atom report as markdown.
func (a *Analyzer) FormatReport(report *AtomReport) string {
	var b strings.Builder

	title := report.KindLabel
	if report.Label != "" {
		title = report.Label
	}
	b.WriteString(fmt.Sprintf("# %s\n\n", title))
	b.WriteString(fmt.Sprintf("%s\n\n", report.Description))

	b.WriteString("| Property | Value |\n")
	b.WriteString("|----------|-------|\n")
	b.WriteString(fmt.Sprintf("| Protons | %d |\n", report.Protons))
	b.WriteString(fmt.Sprintf("| Electrons | %d |\n", report.Electrons))
	b.WriteString(fmt.Sprintf("| Neutrons | %d |\n", report.Neutrons))
	b.WriteString(fmt.Sprintf("| Mass | %d u |\n", report.Mass))
	b.WriteString(fmt.Sprintf("| Charge | %s |\n", report.Charge))
	b.WriteString(fmt.Sprintf("| Classification | %s |\n", report.KindLabel))
	if report.SavedAt != "" {
		b.WriteString(fmt.Sprintf("| Saved | %s |\n", report.SavedAt))
	}
	b.WriteString("\n")

	if ref := report.Reference; ref != nil {
		b.WriteString("## Reference Element\n\n")
		b.WriteString(fmt.Sprintf("- **%s** (%s), Z = %d\n", ref.Name, ref.Symbol, ref.AtomicNumber))
		b.WriteString(fmt.Sprintf("- **Atomic mass:** %.3f u\n", ref.AtomicMass))
		b.WriteString(fmt.Sprintf("- **Common neutrons:** %d\n\n", ref.Neutrons))
	}

	b.WriteString("## Electron Shells\n\n")
	b.WriteString(formatShells(report.Shells))
	if report.Overflow > 0 {
		b.WriteString(fmt.Sprintf("- **Not drawn:** %d electrons beyond the fourth shell\n", report.Overflow))
	}
	b.WriteString(fmt.Sprintf("- **Nucleus size:** %.0f px\n", report.NucleusSize))
	if report.OuterOrbit > 0 {
		b.WriteString(fmt.Sprintf("- **Outer orbit radius:** %.0f px\n", report.OuterOrbit))
	}

	return b.String()
}

// FormatElementReport renders an element report as markdown.
func (a *Analyzer) FormatElementReport(report *ElementReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s (%s)\n\n", report.Name, report.Symbol))
	if report.Description != "" {
		b.WriteString(fmt.Sprintf("%s\n\n", report.Description))
	}

	b.WriteString("| Property | Value |\n")
	b.WriteString("|----------|-------|\n")
	b.WriteString(fmt.Sprintf("| Atomic number | %d |\n", report.AtomicNumber))
	b.WriteString(fmt.Sprintf("| Atomic mass | %.3f u |\n", report.AtomicMass))
	b.WriteString(fmt.Sprintf("| Category | %s |\n", report.Category))
	if report.Group > 0 {
		b.WriteString(fmt.Sprintf("| Group | %d |\n", report.Group))
	}
	if report.Period > 0 {
		b.WriteString(fmt.Sprintf("| Period | %d |\n", report.Period))
	}
	b.WriteString(fmt.Sprintf("| Protons | %d |\n", report.Protons))
	b.WriteString(fmt.Sprintf("| Electrons | %d |\n", report.Electrons))
	b.WriteString(fmt.Sprintf("| Neutrons | %d |\n", report.Neutrons))
	if report.Electronegativity != nil {
		b.WriteString(fmt.Sprintf("| Electronegativity | %.2f |\n", *report.Electronegativity))
	}
	if report.IonizationEnergy != nil {
		b.WriteString(fmt.Sprintf("| Ionization energy | %.1f kJ/mol |\n", *report.IonizationEnergy))
	}
	b.WriteString("\n## Electron Shells\n\n")
	b.WriteString(formatShells(report.Shells))

	return b.String()
}

func formatShells(shells []int) string {
	if len(shells) == 0 {
		return "- none\n"
	}
	parts := make([]string, len(shells))
	for i, n := range shells {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("- **Occupancy:** %s\n", strings.Join(parts, " / "))
}
