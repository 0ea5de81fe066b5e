// Package element holds the periodic table reference data for Atomic Explorer.
//
// The Catalog is built once at startup and never mutated, so it can be
// shared freely between goroutines. The embedded elements.json carries all
// 118 known elements in their neutral, most common isotope state.
package element

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed elements.json
var dataFS embed.FS

// Category groups elements the way the periodic table legend does.
type Category string

const (
	CategoryAlkaliMetal     Category = "alkali-metal"
	CategoryAlkalineEarth   Category = "alkaline-earth"
	CategoryTransitionMetal Category = "transition-metal"
	CategoryPostTransition  Category = "post-transition"
	CategoryMetalloid       Category = "metalloid"
	CategoryNonmetal        Category = "nonmetal"
	CategoryHalogen         Category = "halogen"
	CategoryNobleGas        Category = "noble-gas"
	CategoryLanthanide      Category = "lanthanide"
	CategoryActinide        Category = "actinide"
	CategoryUnknown         Category = "unknown"
)

// Categories lists every category in legend order.
var Categories = []Category{
	CategoryAlkaliMetal,
	CategoryAlkalineEarth,
	CategoryTransitionMetal,
	CategoryPostTransition,
	CategoryMetalloid,
	CategoryNonmetal,
	CategoryHalogen,
	CategoryNobleGas,
	CategoryLanthanide,
	CategoryActinide,
	CategoryUnknown,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsSeries reports whether the category is drawn in the f-block rows
// below the main grid.
func (c Category) IsSeries() bool {
	return c == CategoryLanthanide || c == CategoryActinide
}

// Element is one reference record. Group and period are 0 when they do
// not apply.
type Element struct {
	AtomicNumber      int      `json:"atomicNumber"`
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	NameNB            string   `json:"nameNb,omitempty"`
	AtomicMass        float64  `json:"atomicMass"`
	Group             int      `json:"group"`
	Period            int      `json:"period"`
	Category          Category `json:"category"`
	Protons           int      `json:"protons"`
	Electrons         int      `json:"electrons"`
	Neutrons          int      `json:"neutrons"`
	Electronegativity *float64 `json:"electronegativity,omitempty"`
	IonizationEnergy  *float64 `json:"ionizationEnergy,omitempty"` // kJ/mol
	Description       string   `json:"description,omitempty"`
}

// Table is a read-only lookup by atomic number.
type Table interface {
	Lookup(atomicNumber int) (Element, bool)
}

// LoadEmbedded decodes the bundled reference data into a Catalog.
func LoadEmbedded() (*Catalog, error) {
	raw, err := dataFS.ReadFile("elements.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded elements: %w", err)
	}
	var elements []Element
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, fmt.Errorf("decoding embedded elements: %w", err)
	}
	return NewCatalog(elements)
}
