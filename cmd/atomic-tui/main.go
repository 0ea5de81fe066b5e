// Atomic TUI: browse the periodic table and build atoms interactively.
//
// Usage:
//
//	atomic-tui [flags]
//
// Flags:
//
//	--db    Path to SQLite database file (default: ~/.atomic/atomic.db)
//	--lang  Display language: en, nb
//	--seed  Nucleus shuffle seed (0: random)
//	--log   Write debug logs to this file
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/config"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database file")
	flag.StringVar(&cfg.Lang, "lang", cfg.Lang, "Display language: en, nb")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Nucleus shuffle seed (0: random)")
	flag.StringVar(&cfg.DebugLog, "log", cfg.DebugLog, "Write debug logs to this file")
	flag.Parse()

	// The alternate screen owns stdout; logging goes to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "atomic")
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	store, err := database.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database at %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}
	defer store.Close()

	catalog, err := store.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load elements: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[INFO] loaded %d elements from %s", catalog.Len(), cfg.DBPath)

	model := tui.NewModel(tui.Options{
		Store:    store,
		Catalog:  catalog,
		Layouter: atom.NewLayouter(cfg.Layout(), cfg.Rand()),
		Lang:     locale.Resolve(cfg.Lang),
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
