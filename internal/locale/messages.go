package locale

// bokmalMessages maps English message keys to Norwegian Bokmål.
var bokmalMessages = map[string]string{
	// Navigation
	"Periodic Table":  "Periodesystemet",
	"Element Builder": "Grunnstoffbygger",
	"Saved Atoms":     "Lagrede atomer",

	// Legend
	"Element categories":     "Grunnstoffkategorier",
	"Alkali metals":          "Alkalimetaller",
	"Alkaline earth metals":  "Jordalkalimetaller",
	"Transition metals":      "Overgangsmetaller",
	"Post-transition metals": "Post-overgangsmetaller",
	"Metalloids":             "Halvmetaller",
	"Nonmetals":              "Ikke-metaller",
	"Halogens":               "Halogener",
	"Noble gases":            "Edelgasser",
	"Lanthanides":            "Lantanider",
	"Actinides":              "Aktinider",
	"Unknown":                "Ukjent",

	// Detail
	"Atomic number %d":    "Atomnummer %d",
	"Basic properties":    "Grunnleggende egenskaper",
	"Atomic mass":         "Atommasse",
	"Group":               "Gruppe",
	"Period":              "Periode",
	"Category":            "Kategori",
	"Atomic structure":    "Atomstruktur",
	"Protons":             "Protoner",
	"Electrons":           "Elektroner",
	"Neutrons":            "Nøytroner",
	"Chemical properties": "Kjemiske egenskaper",
	"Electronegativity":   "Elektronegativitet",
	"Ionization energy":   "Ioniseringsenergi",
	"Description":         "Beskrivelse",
	"Atom visualization":  "Atomvisualisering",
	"Shells":              "Skall",

	// Builder
	"Atomic Controls": "Atomkontroller",
	"Net charge":      "Nettoladning",
	"Quick presets":   "Hurtigvalg",
	"Custom Element":  "Egendefinert grunnstoff",
	"Unknown Element": "Ukjent grunnstoff",
	"Hydrogen":        "Hydrogen",
	"Helium":          "Helium",
	"Carbon":          "Karbon",
	"Oxygen":          "Oksygen",

	// Warnings
	"%d electrons beyond shell capacity are not shown": "%d elektroner utover skallkapasiteten vises ikke",

	// Classification
	"Known Element":        "Kjent grunnstoff",
	"Ion":                  "Ion",
	"Isotope":              "Isotop",
	"Variant":              "Variant",
	"Hypothetical Element": "Hypotetisk grunnstoff",

	// Descriptions
	"This is %s (%s) in its neutral state.":                                  "Dette er %s (%s) i nøytral tilstand.",
	"This is a %s ion with a %s charge.":                                     "Dette er et %s-ion med ladning %s.",
	"This is an isotope of %s with %d neutrons.":                             "Dette er en isotop av %s med %d nøytroner.",
	"This is a variant of %s with different electron/neutron configuration.": "Dette er en variant av %s med annen elektron-/nøytronkonfigurasjon.",
	"This element does not exist in nature or has not been discovered yet.":  "Dette grunnstoffet finnes ikke i naturen eller er ennå ikke oppdaget.",

	// Saved atoms
	"Saved %s":   "Lagret %s",
	"Deleted %s": "Slettet %s",

	"No saved atoms yet. Press s in the builder to save one.": "Ingen lagrede atomer ennå. Trykk s i byggeren for å lagre.",
}
