package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

func testTable(t *testing.T) element.Table {
	t.Helper()
	cat, err := element.NewCatalog([]element.Element{
		{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", Category: element.CategoryNonmetal, Protons: 1, Electrons: 1, Neutrons: 0},
		{AtomicNumber: 6, Symbol: "C", Name: "Carbon", Category: element.CategoryNonmetal, Protons: 6, Electrons: 6, Neutrons: 6},
	})
	require.NoError(t, err)
	return cat
}

// mapTable lets tests describe reference entries that a Catalog would reject.
type mapTable map[int]element.Element

func (m mapTable) Lookup(n int) (element.Element, bool) {
	el, ok := m[n]
	return el, ok
}

func TestClassifyKnownElement(t *testing.T) {
	c := Classify(1, 1, 0, testTable(t))
	require.IsType(t, KnownElement{}, c)
	assert.Equal(t, KindKnown, c.Kind())
	assert.Equal(t, ColorGreen, c.Color())
	assert.Equal(t, "This is Hydrogen (H) in its neutral state.", c.Description())

	ref, ok := c.Reference()
	assert.True(t, ok)
	assert.Equal(t, "H", ref.Symbol)
}

func TestClassifyIon(t *testing.T) {
	c := Classify(1, 0, 0, testTable(t))
	ion, ok := c.(Ion)
	require.True(t, ok, "expected Ion, got %T", c)
	assert.Equal(t, 1, ion.Charge)
	assert.Equal(t, ColorBlue, c.Color())
	assert.Equal(t, "This is a Hydrogen ion with a +1 charge.", c.Description())

	anion := Classify(6, 8, 6, testTable(t))
	assert.Equal(t, "This is a Carbon ion with a -2 charge.", anion.Description())
}

func TestClassifyIsotope(t *testing.T) {
	c := Classify(1, 1, 1, testTable(t))
	iso, ok := c.(Isotope)
	require.True(t, ok, "expected Isotope, got %T", c)
	assert.Equal(t, 1, iso.Neutrons)
	assert.Equal(t, ColorPurple, c.Color())
	assert.Equal(t, "This is an isotope of Hydrogen with 1 neutrons.", c.Description())
}

func TestClassifyIonTakesPrecedenceOverIsotope(t *testing.T) {
	c := Classify(6, 5, 8, testTable(t))
	assert.Equal(t, KindIon, c.Kind())
}

func TestClassifyHypothetical(t *testing.T) {
	c := Classify(999, 0, 0, testTable(t))
	assert.Equal(t, KindHypothetical, c.Kind())
	assert.Equal(t, ColorRed, c.Color())
	assert.Equal(t, "This element does not exist in nature or has not been discovered yet.", c.Description())

	_, ok := c.Reference()
	assert.False(t, ok)

	assert.Equal(t, KindHypothetical, Classify(0, 0, 0, testTable(t)).Kind())
}

func TestClassifyIonWhenReferenceIsCharged(t *testing.T) {
	// A reference entry that is not neutral: protons == electrons is still
	// an electron mismatch against the table.
	table := mapTable{3: {AtomicNumber: 3, Name: "Oddium", Protons: 3, Electrons: 2, Neutrons: 4}}
	c := Classify(3, 3, 4, table)
	ion, ok := c.(Ion)
	require.True(t, ok, "expected Ion, got %T", c)
	assert.Equal(t, 0, ion.Charge)
	assert.Equal(t, "This is a Oddium ion with a 0 charge.", c.Description())
}

func TestClassifyIsIdempotent(t *testing.T) {
	table := testTable(t)
	for _, triple := range [][3]int{{1, 1, 0}, {1, 0, 0}, {1, 1, 1}, {999, 0, 0}} {
		a := Classify(triple[0], triple[1], triple[2], table)
		b := Classify(triple[0], triple[1], triple[2], table)
		assert.Equal(t, a, b)
	}
}

func TestClassifyEveryKindIsExhaustive(t *testing.T) {
	outcomes := []Classification{
		KnownElement{}, Ion{}, Isotope{}, Variant{}, Hypothetical{},
	}
	seen := map[Kind]bool{}
	for _, c := range outcomes {
		switch c.(type) {
		case KnownElement, Ion, Isotope, Variant, Hypothetical:
		default:
			t.Fatalf("unexpected classification type %T", c)
		}
		seen[c.Kind()] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, ColorOrange, Variant{}.Color())
}

func TestClassifyWithEmbeddedTable(t *testing.T) {
	cat, err := element.LoadEmbedded()
	require.NoError(t, err)

	for _, p := range Presets {
		c := p.Atom.Classify(cat)
		assert.Equal(t, KindKnown, c.Kind(), "preset %s", p.Name)
	}
	assert.Equal(t, KindIsotope, Classify(6, 6, 8, cat).Kind())
}

func TestFormatCharge(t *testing.T) {
	assert.Equal(t, "+1", FormatCharge(1))
	assert.Equal(t, "+12", FormatCharge(12))
	assert.Equal(t, "-3", FormatCharge(-3))
	assert.Equal(t, "0", FormatCharge(0))
}
