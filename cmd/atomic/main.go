// Atomic CLI: periodic table lookups, atom classification and saved atoms.
//
// Usage:
//
//	atomic <command> [flags]
//
// Commands:
//
//	table     Print the periodic table
//	element   Show one reference element
//	build     Classify a proton/electron/neutron configuration
//	search    Search elements by symbol or name
//	saved     List saved atoms, or report on one
//	save      Save a configuration
//	unsave    Delete a saved atom
//	import    Load element records from a JSON file
//	export    Write the element table as JSON lines
//	version   Print version information
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/analysis"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/config"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/ingestion"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
	"github.com/Mr-Dark-debug/atomic-explorer/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	switch os.Args[1] {
	case "table":
		cmdTable(cfg)
	case "element":
		cmdElement(cfg)
	case "build":
		cmdBuild(cfg)
	case "search":
		cmdSearch(cfg)
	case "saved":
		cmdSaved(cfg)
	case "save":
		cmdSave(cfg)
	case "unsave":
		cmdUnsave(cfg)
	case "import":
		cmdImport(cfg)
	case "export":
		cmdExport(cfg)
	case "version":
		fmt.Printf("Atomic v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Atomic Explorer: the periodic table and a build-your-own-atom lab

Usage:
  atomic <command> [flags]

Commands:
  table      Print the periodic table
  element    Show one reference element (-n <Z> or -s <symbol>)
  build      Classify a configuration (-p, -e, -n)
  search     Search elements by symbol or name (-q)
  saved      List saved atoms, or report on one (-id)
  save       Save a configuration (-p, -e, -n, -label)
  unsave     Delete a saved atom (-id)
  import     Load element records from a JSON or JSON-lines file (-f)
  export     Write the element table as JSON lines (-o)
  version    Print version information

Environment:
  ATOMIC_DB, ATOMIC_LANG, ATOMIC_SEED, ATOMIC_NUCLEUS_MIN,
  ATOMIC_NUCLEUS_MAX, ATOMIC_PARTICLE_SIZE

Run 'atomic <command> --help' for details on each command.`)
}

// commonFlags registers the flags every command shares.
func commonFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Display language: en, nb")
}

// openStore opens the database, creating its directory and seeding the
// reference table on first use.
func openStore(path string) *database.DBService {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}
	store, err := database.Open(path)
	if err != nil {
		log.Fatalf("Failed to open database at %s: %v", path, err)
	}
	return store
}

func newAnalyzer(cfg config.Config, store *database.DBService) *analysis.Analyzer {
	cat, err := store.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load elements: %v", err)
	}
	return analysis.NewAnalyzer(store, cat, cfg.Layout(), locale.Resolve(cfg.Lang))
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Encoding output: %v", err)
	}
	fmt.Println(string(b))
}

// cmdTable prints the periodic grid with the f-block rows underneath.
func cmdTable(cfg config.Config) {
	fs := flag.NewFlagSet("table", flag.ExitOnError)
	commonFlags(fs, &cfg)
	fs.Parse(os.Args[2:])

	store := openStore(cfg.DBPath)
	defer store.Close()

	cat, err := store.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load elements: %v", err)
	}
	grid := element.BuildGrid(cat.All())

	var b strings.Builder
	for r := range grid.Rows() {
		if r == element.LanthanideRow {
			b.WriteString("\n")
		}
		for c := range element.GridColumns {
			z := grid.At(r, c)
			if z == 0 {
				b.WriteString("    ")
				continue
			}
			el, _ := cat.Lookup(z)
			fmt.Fprintf(&b, "%-4s", el.Symbol)
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}

// cmdElement prints one element's report.
func cmdElement(cfg config.Config) {
	fs := flag.NewFlagSet("element", flag.ExitOnError)
	commonFlags(fs, &cfg)
	number := fs.Int("n", 0, "Atomic number")
	symbol := fs.String("s", "", "Element symbol")
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	fs.Parse(os.Args[2:])

	if *number == 0 && *symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -n or -s is required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(cfg.DBPath)
	defer store.Close()
	analyzer := newAnalyzer(cfg, store)

	var (
		report *analysis.ElementReport
		err    error
	)
	if *symbol != "" {
		report, err = analyzer.AnalyzeSymbol(*symbol)
	} else {
		report, err = analyzer.AnalyzeElement(*number)
	}
	if err != nil {
		log.Fatalf("Lookup failed: %v", err)
	}

	switch *outputFormat {
	case "json":
		printJSON(report)
	case "markdown":
		fmt.Print(analyzer.FormatElementReport(report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// atomFlags registers -p, -e and -n and returns a function building the
// clamped atom once the flags are parsed.
func atomFlags(fs *flag.FlagSet) func() atom.Atom {
	p := fs.Int("p", 1, "Protons (1-200)")
	e := fs.Int("e", -1, "Electrons (0-200, default: equal to protons)")
	n := fs.Int("n", 0, "Neutrons (0-200)")
	return func() atom.Atom {
		electrons := *e
		if electrons < 0 {
			electrons = *p
		}
		return atom.Hydrogen().WithProtons(*p).WithElectrons(electrons).WithNeutrons(*n)
	}
}

// cmdBuild classifies a configuration and prints the report.
func cmdBuild(cfg config.Config) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	commonFlags(fs, &cfg)
	build := atomFlags(fs)
	outputFormat := fs.String("format", "markdown", "Output format: markdown, json")
	fs.Parse(os.Args[2:])

	store := openStore(cfg.DBPath)
	defer store.Close()
	analyzer := newAnalyzer(cfg, store)

	report := analyzer.AnalyzeAtom(build())

	switch *outputFormat {
	case "json":
		printJSON(report)
	case "markdown":
		fmt.Print(analyzer.FormatReport(report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdSearch lists elements matching a query.
func cmdSearch(cfg config.Config) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	commonFlags(fs, &cfg)
	query := fs.String("q", "", "Symbol or name fragment (required)")
	limit := fs.Int("limit", 20, "Maximum results")
	fs.Parse(os.Args[2:])

	if strings.TrimSpace(*query) == "" {
		fmt.Fprintln(os.Stderr, "Error: -q is required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(cfg.DBPath)
	defer store.Close()

	results, err := store.SearchElements(*query, *limit)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	if len(results) == 0 {
		fmt.Println("No matching elements.")
		return
	}

	tag := locale.Resolve(cfg.Lang)
	for _, el := range results {
		fmt.Printf("%3d  %-3s  %-16s %s\n",
			el.AtomicNumber, el.Symbol, locale.ElementName(*el, tag), locale.CategoryLabel(el.Category, tag))
	}
}

// cmdSaved lists saved atoms, or prints the report for one.
func cmdSaved(cfg config.Config) {
	fs := flag.NewFlagSet("saved", flag.ExitOnError)
	commonFlags(fs, &cfg)
	id := fs.Int64("id", 0, "Show the report for one saved atom")
	limit := fs.Int("limit", 20, "Maximum results")
	outputFormat := fs.String("format", "markdown", "Output format for -id: markdown, json")
	fs.Parse(os.Args[2:])

	store := openStore(cfg.DBPath)
	defer store.Close()

	if *id != 0 {
		analyzer := newAnalyzer(cfg, store)
		report, err := analyzer.AnalyzeSaved(*id)
		if err != nil {
			log.Fatalf("Report failed: %v", err)
		}
		if *outputFormat == "json" {
			printJSON(report)
		} else {
			fmt.Print(analyzer.FormatReport(report))
		}
		return
	}

	saved, err := store.ListSavedAtoms(*limit)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}
	if len(saved) == 0 {
		fmt.Println("No saved atoms.")
		return
	}

	tag := locale.Resolve(cfg.Lang)
	fmt.Printf("%-5s %-24s %-5s %-5s %-5s %-22s %s\n", "ID", "LABEL", "P", "E", "N", "KIND", "SAVED")
	for _, s := range saved {
		fmt.Printf("%-5d %-24s %-5d %-5d %-5d %-22s %s\n",
			s.ID, s.Label, s.Atom.Protons, s.Atom.Electrons, s.Atom.Neutrons,
			locale.KindLabel(s.Kind, tag), timeutil.FormatDate(s.CreatedAt))
	}
}

// cmdSave stores a configuration.
func cmdSave(cfg config.Config) {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	commonFlags(fs, &cfg)
	build := atomFlags(fs)
	label := fs.String("label", "", "Label (default: derived from the classification)")
	fs.Parse(os.Args[2:])

	store := openStore(cfg.DBPath)
	defer store.Close()
	analyzer := newAnalyzer(cfg, store)

	a := build()
	report := analyzer.AnalyzeAtom(a)

	name := strings.TrimSpace(*label)
	if name == "" {
		name = report.KindLabel
		if report.Reference != nil {
			name = fmt.Sprintf("%s (%s)", report.Reference.Name, report.Charge)
		}
	}

	saved := &database.SavedAtom{Label: name, Atom: a, Kind: report.Kind}
	id, err := store.SaveAtom(saved)
	if err != nil {
		log.Fatalf("Save failed: %v", err)
	}
	log.Printf("[INFO] saved atom %d %q", id, name)
	fmt.Printf("Saved #%d %s: %s\n", id, name, report.Description)
}

// cmdUnsave deletes a saved atom.
func cmdUnsave(cfg config.Config) {
	fs := flag.NewFlagSet("unsave", flag.ExitOnError)
	commonFlags(fs, &cfg)
	id := fs.Int64("id", 0, "Saved atom ID (required)")
	fs.Parse(os.Args[2:])

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		fs.Usage()
		os.Exit(1)
	}

	store := openStore(cfg.DBPath)
	defer store.Close()

	if err := store.DeleteSavedAtom(*id); err != nil {
		log.Fatalf("Delete failed: %v", err)
	}
	fmt.Printf("Deleted #%d\n", *id)
}

// cmdImport loads element records into the reference table.
func cmdImport(cfg config.Config) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	commonFlags(fs, &cfg)
	file := fs.String("f", "", "Input file, JSON array or JSON lines (required, - for stdin)")
	batch := fs.Int("batch", ingestion.DefaultConfig().BatchSize, "Records per transaction")
	strict := fs.Bool("strict", false, "Abort on the first invalid record")
	fs.Parse(os.Args[2:])

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		fs.Usage()
		os.Exit(1)
	}

	in := os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", *file, err)
		}
		defer f.Close()
		in = f
	}

	store := openStore(cfg.DBPath)
	defer store.Close()

	im := ingestion.NewImporter(ingestion.Config{BatchSize: *batch, StopOnInvalid: *strict}, store)
	m, err := im.Import(context.Background(), in)
	if err != nil {
		log.Fatalf("Import failed after %d records: %v", m.Imported, err)
	}

	// A partial import must still leave a usable table.
	if _, err := store.LoadCatalog(); err != nil {
		log.Printf("[WARN] element table is incomplete: %v", err)
	}
	fmt.Printf("Imported %d elements in %d batches (%d rejected)\n", m.Imported, m.BatchesCommitted, m.Rejected)
}

// cmdExport writes the element table as JSON lines.
func cmdExport(cfg config.Config) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	commonFlags(fs, &cfg)
	out := fs.String("o", "", "Output file (default: stdout)")
	fs.Parse(os.Args[2:])

	store := openStore(cfg.DBPath)
	defer store.Close()

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	n, err := ingestion.Export(store, w)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if *out != "" {
		log.Printf("[INFO] exported %d elements to %s", n, *out)
	}
}
