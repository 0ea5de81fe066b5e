package ingestion

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

func newStore(t *testing.T) *database.DBService {
	t.Helper()
	svc, err := database.NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

const ndjson = `
{"atomicNumber": 1, "symbol": "H", "name": "Hydrogen", "atomicMass": 1.008, "group": 1, "period": 1, "category": "nonmetal", "neutrons": 0}
{"atomicNumber": 2, "symbol": "He", "name": "Helium", "atomicMass": 4.0026, "group": 18, "period": 1, "category": "noble-gas", "neutrons": 2}
{"atomicNumber": 3, "symbol": "Li", "name": "Lithium", "atomicMass": 6.94, "group": 1, "period": 2, "category": "alkali-metal", "neutrons": 4}
`

// TestImportNDJSON verifies newline-delimited records are batched and
// committed.
func TestImportNDJSON(t *testing.T) {
	store := newStore(t)
	im := NewImporter(Config{BatchSize: 2}, store)

	m, err := im.Import(context.Background(), strings.NewReader(ndjson))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if m.Imported != 3 || m.Rejected != 0 {
		t.Errorf("unexpected metrics: %+v", m)
	}
	if m.BatchesCommitted != 2 {
		t.Errorf("expected 2 batches (2+1), got %d", m.BatchesCommitted)
	}

	he, err := store.GetElement(2)
	if err != nil {
		t.Fatalf("GetElement failed: %v", err)
	}
	if he.Protons != 2 || he.Electrons != 2 {
		t.Errorf("expected particle counts to default to Z, got %+v", he)
	}
}

// TestImportArraySkipsInvalid verifies the array form and that invalid
// records are counted and skipped.
func TestImportArraySkipsInvalid(t *testing.T) {
	store := newStore(t)
	im := NewImporter(DefaultConfig(), store)

	input := `[
		{"atomicNumber": 6, "symbol": "C", "name": "Carbon", "atomicMass": 12.011, "category": "nonmetal", "neutrons": 6},
		{"atomicNumber": 7, "symbol": "N", "name": "Nitrogen", "atomicMass": 14.007, "category": "gas"},
		{"atomicNumber": 0, "symbol": "X", "name": "Nothing", "category": "unknown"}
	]`

	m, err := im.Import(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if m.Imported != 1 || m.Rejected != 2 {
		t.Errorf("unexpected metrics: %+v", m)
	}
	n, _ := store.CountElements()
	if n != 1 {
		t.Errorf("expected 1 stored element, got %d", n)
	}
}

// TestImportRejectsChargedEntry verifies a record whose electrons differ
// from its atomic number never reaches the table, so neutral hydrogen keeps
// classifying as a known element.
func TestImportRejectsChargedEntry(t *testing.T) {
	store, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	input := `{"atomicNumber": 1, "symbol": "H", "name": "Hydrogen", "atomicMass": 1.008, "group": 1, "period": 1, "category": "nonmetal", "electrons": 5, "neutrons": 0}`
	m, err := NewImporter(DefaultConfig(), store).Import(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if m.Imported != 0 || m.Rejected != 1 {
		t.Errorf("expected the record to be rejected, got %+v", m)
	}

	h, err := store.GetElement(1)
	if err != nil {
		t.Fatalf("GetElement failed: %v", err)
	}
	if h.Electrons != 1 {
		t.Errorf("expected stored hydrogen to stay neutral, got %d electrons", h.Electrons)
	}

	cat, err := store.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if got := atom.Classify(1, 1, 0, cat).Kind(); got != atom.KindKnown {
		t.Errorf("expected neutral hydrogen to be %s, got %s", atom.KindKnown, got)
	}
}

// TestImportMetricsPerRun verifies each run reports only its own counts.
func TestImportMetricsPerRun(t *testing.T) {
	store := newStore(t)
	im := NewImporter(DefaultConfig(), store)

	if _, err := im.Import(context.Background(), strings.NewReader(ndjson)); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}

	m, err := im.Import(context.Background(), strings.NewReader("[]"))
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if m != (Metrics{}) {
		t.Errorf("expected empty metrics for an empty run, got %+v", m)
	}
	if got := im.Metrics(); got != (Metrics{}) {
		t.Errorf("expected Metrics to match the last run, got %+v", got)
	}
}

func TestImportStopOnInvalid(t *testing.T) {
	store := newStore(t)
	im := NewImporter(Config{BatchSize: 10, StopOnInvalid: true}, store)

	input := `{"atomicNumber": 8, "symbol": "O", "name": "Oxygen", "protons": 9, "category": "nonmetal"}`
	if _, err := im.Import(context.Background(), strings.NewReader(input)); err == nil {
		t.Fatal("expected error for proton mismatch")
	}
}

func TestImportMalformed(t *testing.T) {
	store := newStore(t)
	im := NewImporter(DefaultConfig(), store)

	if _, err := im.Import(context.Background(), strings.NewReader(`{"atomicNumber": 1,`)); err == nil {
		t.Fatal("expected decode error")
	}

	m, err := im.Import(context.Background(), strings.NewReader("  \n"))
	if err != nil {
		t.Fatalf("empty input should succeed: %v", err)
	}
	if m.Imported != 0 {
		t.Errorf("expected nothing imported, got %d", m.Imported)
	}
}

// TestExportImportRoundTrip exports a seeded store and imports the
// result into an empty one.
func TestExportImportRoundTrip(t *testing.T) {
	src, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { src.Close() })

	var buf bytes.Buffer
	n, err := Export(src, &buf)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if n != 118 {
		t.Errorf("expected 118 exported, got %d", n)
	}

	dst := newStore(t)
	m, err := NewImporter(DefaultConfig(), dst).Import(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if m.Imported != 118 || m.BatchesCommitted != 3 {
		t.Errorf("unexpected metrics: %+v", m)
	}

	fe, err := dst.GetElementBySymbol("Fe")
	if err != nil {
		t.Fatalf("GetElementBySymbol failed: %v", err)
	}
	if fe.NameNB != "Jern" || fe.Neutrons != 30 {
		t.Errorf("unexpected iron record: %+v", fe)
	}
	if _, err := dst.LoadCatalog(); err != nil {
		t.Errorf("imported data should form a valid catalog: %v", err)
	}
}

func TestValidate(t *testing.T) {
	ok := element.Element{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", Protons: 1, Electrons: 1, Category: element.CategoryNonmetal}
	if err := Validate(ok); err != nil {
		t.Errorf("expected valid record, got %v", err)
	}

	bad := ok
	bad.Symbol = ""
	if err := Validate(bad); err == nil {
		t.Error("expected missing symbol to fail")
	}

	bad = ok
	bad.Neutrons = -1
	if err := Validate(bad); err == nil {
		t.Error("expected negative neutrons to fail")
	}

	bad = ok
	bad.Electrons = 5
	if err := Validate(bad); err == nil {
		t.Error("expected a charged reference entry to fail")
	}
}
