package element

import "testing"

func TestLoadEmbedded(t *testing.T) {
	cat, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	if cat.Len() != 118 {
		t.Fatalf("expected 118 elements, got %d", cat.Len())
	}

	for _, el := range cat.All() {
		if el.Protons != el.AtomicNumber {
			t.Errorf("%s: protons=%d, atomic number=%d", el.Symbol, el.Protons, el.AtomicNumber)
		}
		if el.Electrons != el.Protons {
			t.Errorf("%s: reference entry is not neutral (e=%d p=%d)", el.Symbol, el.Electrons, el.Protons)
		}
		if el.Neutrons < 0 {
			t.Errorf("%s: negative neutron count %d", el.Symbol, el.Neutrons)
		}
		if el.AtomicMass <= 0 {
			t.Errorf("%s: atomic mass must be positive", el.Symbol)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	cat, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}

	h, ok := cat.Lookup(1)
	if !ok {
		t.Fatal("expected hydrogen at atomic number 1")
	}
	if h.Symbol != "H" || h.Neutrons != 0 || h.Electrons != 1 {
		t.Errorf("unexpected hydrogen record: %+v", h)
	}

	if _, ok := cat.Lookup(999); ok {
		t.Error("expected no element at atomic number 999")
	}

	fe, ok := cat.BySymbol(" fe ")
	if !ok || fe.AtomicNumber != 26 {
		t.Errorf("BySymbol(fe) = %+v, %v", fe, ok)
	}
	if fe.NameNB != "Jern" {
		t.Errorf("expected localized name Jern, got %q", fe.NameNB)
	}
}

func TestNewCatalogRejectsBadData(t *testing.T) {
	cases := map[string][]Element{
		"duplicate number": {
			{AtomicNumber: 1, Symbol: "H", Protons: 1, Electrons: 1, Category: CategoryNonmetal},
			{AtomicNumber: 1, Symbol: "X", Protons: 1, Electrons: 1, Category: CategoryNonmetal},
		},
		"proton mismatch": {
			{AtomicNumber: 2, Symbol: "He", Protons: 3, Electrons: 2, Category: CategoryNobleGas},
		},
		"charged entry": {
			{AtomicNumber: 3, Symbol: "Li", Protons: 3, Electrons: 2, Category: CategoryAlkaliMetal},
		},
		"missing electrons": {
			{AtomicNumber: 1, Symbol: "H", Protons: 1, Category: CategoryNonmetal},
		},
		"non-positive number": {
			{AtomicNumber: 0, Symbol: "Nn", Protons: 0, Category: CategoryUnknown},
		},
		"bad category": {
			{AtomicNumber: 3, Symbol: "Li", Protons: 3, Electrons: 3, Category: "metal"},
		},
		"duplicate symbol": {
			{AtomicNumber: 1, Symbol: "H", Protons: 1, Electrons: 1, Category: CategoryNonmetal},
			{AtomicNumber: 2, Symbol: "h", Protons: 2, Electrons: 2, Category: CategoryNobleGas},
		},
	}
	for name, elements := range cases {
		if _, err := NewCatalog(elements); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestCatalogAllIsACopy(t *testing.T) {
	cat, err := NewCatalog([]Element{
		{AtomicNumber: 2, Symbol: "He", Protons: 2, Electrons: 2, Category: CategoryNobleGas},
		{AtomicNumber: 1, Symbol: "H", Protons: 1, Electrons: 1, Category: CategoryNonmetal},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	all := cat.All()
	if all[0].AtomicNumber != 1 {
		t.Fatalf("expected ordering by atomic number, got %d first", all[0].AtomicNumber)
	}
	all[0].Name = "mutated"
	if h, _ := cat.Lookup(1); h.Name == "mutated" {
		t.Error("All must not expose the catalog's backing slice")
	}
}
