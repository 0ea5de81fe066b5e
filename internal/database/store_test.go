package database

import (
	"errors"
	"testing"
	"time"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

// newSeededStore returns an in-memory store populated with the embedded
// element list.
func newSeededStore(t *testing.T) *DBService {
	t.Helper()
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	cat, err := element.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	if err := svc.SeedElements(cat.All()); err != nil {
		t.Fatalf("SeedElements failed: %v", err)
	}
	return svc
}

// TestNewDBService verifies that the database initializes correctly
// with the embedded schema using an in-memory SQLite instance.
func TestNewDBService(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService(:memory:) failed: %v", err)
	}
	defer svc.Close()

	n, err := svc.CountElements()
	if err != nil {
		t.Fatalf("CountElements failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty elements table, got %d rows", n)
	}
}

// TestOpenSeedsEmptyDatabase verifies Open fills the reference table.
func TestOpenSeedsEmptyDatabase(t *testing.T) {
	svc, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer svc.Close()

	n, err := svc.CountElements()
	if err != nil {
		t.Fatalf("CountElements failed: %v", err)
	}
	if n != 118 {
		t.Errorf("expected 118 seeded elements, got %d", n)
	}
}

// TestSeedIsIdempotent verifies that seeding twice upserts rather than
// duplicating rows.
func TestSeedIsIdempotent(t *testing.T) {
	svc := newSeededStore(t)

	cat, _ := element.LoadEmbedded()
	if err := svc.SeedElements(cat.All()); err != nil {
		t.Fatalf("second SeedElements failed: %v", err)
	}
	n, _ := svc.CountElements()
	if n != 118 {
		t.Errorf("expected 118 elements after reseed, got %d", n)
	}
}

func TestGetElement(t *testing.T) {
	svc := newSeededStore(t)

	fe, err := svc.GetElement(26)
	if err != nil {
		t.Fatalf("GetElement(26) failed: %v", err)
	}
	if fe.Symbol != "Fe" || fe.NameNB != "Jern" {
		t.Errorf("unexpected iron row: %+v", fe)
	}
	if fe.Electronegativity == nil {
		t.Error("expected iron electronegativity to round-trip")
	}

	og, err := svc.GetElement(118)
	if err != nil {
		t.Fatalf("GetElement(118) failed: %v", err)
	}
	if og.Category != element.CategoryUnknown {
		t.Errorf("expected oganesson category unknown, got %s", og.Category)
	}

	if _, err := svc.GetElement(500); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for Z=500, got %v", err)
	}
}

func TestGetElementBySymbolIgnoresCase(t *testing.T) {
	svc := newSeededStore(t)

	for _, sym := range []string{"Na", "na", "NA", " na "} {
		el, err := svc.GetElementBySymbol(sym)
		if err != nil {
			t.Fatalf("GetElementBySymbol(%q) failed: %v", sym, err)
		}
		if el.AtomicNumber != 11 {
			t.Errorf("GetElementBySymbol(%q) = %d, want 11", sym, el.AtomicNumber)
		}
	}

	if _, err := svc.GetElementBySymbol("Xx"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestQueryElementsWithFilters verifies category, period and paging filters.
func TestQueryElementsWithFilters(t *testing.T) {
	svc := newSeededStore(t)

	noble := element.CategoryNobleGas
	gases, err := svc.QueryElements(ElementFilter{Category: &noble})
	if err != nil {
		t.Fatalf("QueryElements failed: %v", err)
	}
	// He, Ne, Ar, Kr, Xe, Rn. Og is stored as unknown.
	if len(gases) != 6 {
		t.Errorf("expected 6 noble gases, got %d", len(gases))
	}
	for i := 1; i < len(gases); i++ {
		if gases[i-1].AtomicNumber >= gases[i].AtomicNumber {
			t.Error("expected results ordered by atomic number")
		}
	}

	period := 2
	second, err := svc.QueryElements(ElementFilter{Period: &period})
	if err != nil {
		t.Fatalf("QueryElements failed: %v", err)
	}
	if len(second) != 8 {
		t.Errorf("expected 8 period-2 elements, got %d", len(second))
	}

	page, err := svc.QueryElements(ElementFilter{Limit: 5, Offset: 10})
	if err != nil {
		t.Fatalf("QueryElements failed: %v", err)
	}
	if len(page) != 5 || page[0].AtomicNumber != 11 {
		t.Errorf("unexpected page: len=%d first=%v", len(page), page)
	}

	all, _ := svc.QueryElements(ElementFilter{Offset: 100})
	if len(all) != 18 {
		t.Errorf("expected 18 elements past offset 100, got %d", len(all))
	}
}

// TestSearchElements verifies ranking and localized name matching.
func TestSearchElements(t *testing.T) {
	svc := newSeededStore(t)

	results, err := svc.SearchElements("he", 10)
	if err != nil {
		t.Fatalf("SearchElements failed: %v", err)
	}
	if len(results) == 0 || results[0].Symbol != "He" {
		t.Fatalf("expected He first for exact symbol match, got %v", results)
	}

	results, err = svc.SearchElements("jern", 10)
	if err != nil {
		t.Fatalf("SearchElements failed: %v", err)
	}
	if len(results) != 1 || results[0].Symbol != "Fe" {
		t.Errorf("expected localized match on Fe, got %v", results)
	}

	results, _ = svc.SearchElements("%", 10)
	if len(results) != 0 {
		t.Errorf("expected LIKE wildcards to be escaped, got %d results", len(results))
	}

	results, _ = svc.SearchElements("   ", 10)
	if results != nil {
		t.Errorf("expected nil for blank query, got %v", results)
	}
}

func TestLoadCatalog(t *testing.T) {
	svc := newSeededStore(t)

	cat, err := svc.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if cat.Len() != 118 {
		t.Errorf("expected 118 catalog entries, got %d", cat.Len())
	}
	c, ok := cat.Lookup(6)
	if !ok || c.Symbol != "C" || c.Neutrons != 6 {
		t.Errorf("unexpected carbon entry: %+v", c)
	}
}

// TestSavedAtomLifecycle verifies save → list → get → delete.
func TestSavedAtomLifecycle(t *testing.T) {
	svc := newSeededStore(t)

	now := time.Now().UnixNano()
	first := &SavedAtom{
		Label:     "carbon-14",
		Atom:      atom.Atom{Protons: 6, Electrons: 6, Neutrons: 8},
		Kind:      atom.KindIsotope,
		CreatedAt: now,
	}
	id, err := svc.SaveAtom(first)
	if err != nil {
		t.Fatalf("SaveAtom failed: %v", err)
	}
	if id == 0 || first.ID != id {
		t.Errorf("expected ID to be assigned, got %d / %d", id, first.ID)
	}

	second := &SavedAtom{
		Label: "sodium ion",
		Atom:  atom.Atom{Protons: 11, Electrons: 10, Neutrons: 12},
		Kind:  atom.KindIon,
	}
	if _, err := svc.SaveAtom(second); err != nil {
		t.Fatalf("SaveAtom failed: %v", err)
	}
	if second.CreatedAt == 0 {
		t.Error("expected CreatedAt to default to now")
	}

	list, err := svc.ListSavedAtoms(10)
	if err != nil {
		t.Fatalf("ListSavedAtoms failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 saved atoms, got %d", len(list))
	}
	if list[0].Label != "sodium ion" {
		t.Errorf("expected newest first, got %s", list[0].Label)
	}

	got, err := svc.GetSavedAtom(id)
	if err != nil {
		t.Fatalf("GetSavedAtom failed: %v", err)
	}
	if got.Atom != first.Atom || got.Kind != atom.KindIsotope || got.CreatedAt != now {
		t.Errorf("saved atom did not round-trip: %+v", got)
	}

	if err := svc.DeleteSavedAtom(id); err != nil {
		t.Fatalf("DeleteSavedAtom failed: %v", err)
	}
	if _, err := svc.GetSavedAtom(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteSavedAtom(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSaveAtomRejectsNegativeCounts(t *testing.T) {
	svc := newSeededStore(t)

	_, err := svc.SaveAtom(&SavedAtom{
		Label: "bad",
		Atom:  atom.Atom{Protons: -1},
		Kind:  atom.KindHypothetical,
	})
	if err == nil {
		t.Error("expected CHECK constraint to reject negative protons")
	}
}
