package element

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is an immutable Table built from a validated element list.
type Catalog struct {
	ordered  []Element
	byNumber map[int]int
	bySymbol map[string]int
}

var _ Table = (*Catalog)(nil)

// NewCatalog validates elements and indexes them. Atomic numbers must be
// positive and unique, and every entry must be neutral: as many protons
// and electrons as its atomic number.
func NewCatalog(elements []Element) (*Catalog, error) {
	ordered := make([]Element, len(elements))
	copy(ordered, elements)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].AtomicNumber < ordered[j].AtomicNumber
	})

	c := &Catalog{
		ordered:  ordered,
		byNumber: make(map[int]int, len(ordered)),
		bySymbol: make(map[string]int, len(ordered)),
	}
	for i, el := range ordered {
		if el.AtomicNumber <= 0 {
			return nil, fmt.Errorf("element %q: atomic number must be positive, got %d", el.Symbol, el.AtomicNumber)
		}
		if el.Protons != el.AtomicNumber {
			return nil, fmt.Errorf("element %d: protons %d do not match atomic number", el.AtomicNumber, el.Protons)
		}
		if el.Electrons != el.AtomicNumber {
			return nil, fmt.Errorf("element %d: electrons %d do not match atomic number", el.AtomicNumber, el.Electrons)
		}
		if !el.Category.Valid() {
			return nil, fmt.Errorf("element %d: unknown category %q", el.AtomicNumber, el.Category)
		}
		if _, dup := c.byNumber[el.AtomicNumber]; dup {
			return nil, fmt.Errorf("element %d: duplicate atomic number", el.AtomicNumber)
		}
		c.byNumber[el.AtomicNumber] = i

		if el.Symbol != "" {
			key := strings.ToLower(el.Symbol)
			if _, dup := c.bySymbol[key]; dup {
				return nil, fmt.Errorf("element %d: duplicate symbol %q", el.AtomicNumber, el.Symbol)
			}
			c.bySymbol[key] = i
		}
	}
	return c, nil
}

// Lookup returns the element with the given atomic number.
func (c *Catalog) Lookup(atomicNumber int) (Element, bool) {
	i, ok := c.byNumber[atomicNumber]
	if !ok {
		return Element{}, false
	}
	return c.ordered[i], true
}

// BySymbol finds an element by its symbol, ignoring case.
func (c *Catalog) BySymbol(symbol string) (Element, bool) {
	i, ok := c.bySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return Element{}, false
	}
	return c.ordered[i], true
}

// All returns a copy of every element ordered by atomic number.
func (c *Catalog) All() []Element {
	out := make([]Element, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len returns the number of elements.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
