package tui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/database"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
)

// ────────────────────────────────────────────────────────────
// Screens
// ────────────────────────────────────────────────────────────

// Screen is the top-level view currently shown.
type Screen int

const (
	ScreenTable Screen = iota
	ScreenDetail
	ScreenBuilder
	ScreenSaved
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the explorer.
// State is organized by concern; rendering is delegated
// to component functions in separate files.
type Model struct {
	store    database.Store
	catalog  *element.Catalog
	grid     element.Grid
	layouter *atom.Layouter

	lang    language.Tag
	printer *message.Printer

	// Table + detail
	screen   Screen
	cursor   element.Cell
	detail   element.Element
	matches  map[int]bool
	best     int
	search   textinput.Model
	searchOn bool

	// Builder
	built    atom.Atom
	field    atom.Field
	nucleus  []atom.Particle
	editor   textinput.Model
	editOn   bool
	lastSave int64

	// Saved atoms
	saved         []*database.SavedAtom
	selectedSaved int

	keys   keyMap
	help   help.Model
	width  int
	height int

	// Status
	statusMsg string
	err       error
}

// Options configures NewModel.
type Options struct {
	Store    database.Store
	Catalog  *element.Catalog
	Layouter *atom.Layouter
	Lang     language.Tag
}

// NewModel creates a TUI model over a loaded catalog. The builder starts
// at hydrogen and the cursor on the first element.
func NewModel(opts Options) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.CharLimit = 32

	editor := textinput.New()
	editor.Prompt = "= "
	editor.CharLimit = 3
	editor.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := strconv.Atoi(s)
		return err
	}

	layouter := opts.Layouter
	if layouter == nil {
		layouter = atom.NewLayouter(atom.DefaultLayoutConfig(), nil)
	}

	m := Model{
		store:    opts.Store,
		catalog:  opts.Catalog,
		grid:     element.BuildGrid(opts.Catalog.All()),
		layouter: layouter,
		lang:     opts.Lang,
		printer:  locale.Printer(opts.Lang),
		search:   search,
		editor:   editor,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	m.setAtom(atom.Hydrogen())
	return m
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type savedLoadedMsg []*database.SavedAtom
type atomSavedMsg struct{ saved *database.SavedAtom }
type atomDeletedMsg struct{ label string }
type searchResultsMsg struct {
	query   string
	results []*element.Element
}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init / Commands
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return m.loadSaved()
}

func (m Model) loadSaved() tea.Cmd {
	return func() tea.Msg {
		saved, err := m.store.ListSavedAtoms(100)
		if err != nil {
			return errMsg{err}
		}
		return savedLoadedMsg(saved)
	}
}

func (m Model) saveAtom() tea.Cmd {
	a := m.built
	kind := a.Classify(m.catalog).Kind()
	label := m.atomTitle()
	return func() tea.Msg {
		saved := &database.SavedAtom{Label: label, Atom: a, Kind: kind}
		if _, err := m.store.SaveAtom(saved); err != nil {
			return errMsg{err}
		}
		log.Printf("[INFO] saved atom %q (p=%d e=%d n=%d)", label, a.Protons, a.Electrons, a.Neutrons)
		return atomSavedMsg{saved: saved}
	}
}

func (m Model) deleteSaved(s *database.SavedAtom) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.DeleteSavedAtom(s.ID); err != nil {
			return errMsg{err}
		}
		return atomDeletedMsg{label: s.Label}
	}
}

func (m Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.store.SearchElements(query, element.GridColumns*element.MainRows)
		if err != nil {
			return errMsg{err}
		}
		return searchResultsMsg{query: query, results: results}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case savedLoadedMsg:
		m.saved = []*database.SavedAtom(msg)
		m.selectedSaved = clamp(m.selectedSaved, 0, max(len(m.saved)-1, 0))
		return m, nil

	case atomSavedMsg:
		m.lastSave = msg.saved.ID
		m.statusMsg = m.printer.Sprintf("Saved %s", msg.saved.Label)
		return m, m.loadSaved()

	case atomDeletedMsg:
		m.statusMsg = m.printer.Sprintf("Deleted %s", msg.label)
		return m, m.loadSaved()

	case searchResultsMsg:
		// Drop responses for queries the user has already typed past.
		if msg.query != strings.TrimSpace(m.search.Value()) {
			return m, nil
		}
		m.matches = make(map[int]bool, len(msg.results))
		m.best = 0
		if len(msg.results) > 0 {
			m.best = msg.results[0].AtomicNumber
		}
		for _, el := range msg.results {
			m.matches[el.AtomicNumber] = true
		}
		m.statusMsg = fmt.Sprintf("%d matches", len(msg.results))
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		log.Printf("[WARN] %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input based on current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ── Text entry captures everything ──

	if m.searchOn {
		return m.handleSearchKey(msg)
	}
	if m.editOn {
		return m.handleEditKey(msg)
	}

	// ── Global ──

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Lang):
		if locale.IsBokmal(m.lang) {
			m.lang = language.English
		} else {
			m.lang = locale.Bokmal
		}
		m.printer = locale.Printer(m.lang)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.screen = nextScreen(m.screen)
		m.statusMsg = ""
		return m, nil
	}

	switch m.screen {
	case ScreenTable:
		return m.handleTableKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	case ScreenBuilder:
		return m.handleBuilderKey(msg)
	case ScreenSaved:
		return m.handleSavedKey(msg)
	}
	return m, nil
}

// nextScreen cycles table → builder → saved. Detail is reached from the
// table only.
func nextScreen(s Screen) Screen {
	switch s {
	case ScreenTable, ScreenDetail:
		return ScreenBuilder
	case ScreenBuilder:
		return ScreenSaved
	default:
		return ScreenTable
	}
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.grid.Step(m.cursor, -1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.grid.Step(m.cursor, 1, 0)
	case key.Matches(msg, m.keys.Left):
		m.cursor = m.grid.Step(m.cursor, 0, -1)
	case key.Matches(msg, m.keys.Right):
		m.cursor = m.grid.Step(m.cursor, 0, 1)
	case key.Matches(msg, m.keys.Select):
		if el, ok := m.selectedElement(); ok {
			m.detail = el
			m.screen = ScreenDetail
		}
	case key.Matches(msg, m.keys.Build):
		if el, ok := m.selectedElement(); ok {
			m.loadIntoBuilder(atom.FromElement(el))
		}
	case key.Matches(msg, m.keys.Search):
		m.searchOn = true
		m.search.SetValue("")
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		m.matches = nil
		m.statusMsg = ""
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchOn = false
		m.search.Blur()
		m.matches = nil
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.searchOn = false
		m.search.Blur()
		m.jumpToFirstMatch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	query := strings.TrimSpace(m.search.Value())
	if query == strings.TrimSpace(before) {
		return m, cmd
	}
	if query == "" {
		m.matches = nil
		m.best = 0
		return m, cmd
	}
	return m, tea.Batch(cmd, m.runSearch(query))
}

// jumpToFirstMatch moves the cursor to the best-ranked search result.
func (m *Model) jumpToFirstMatch() {
	if cell, ok := m.grid.Find(m.best); ok {
		m.cursor = cell
	}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenTable
	case key.Matches(msg, m.keys.Build):
		m.loadIntoBuilder(atom.FromElement(m.detail))
	}
	return m, nil
}

func (m Model) handleBuilderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.field = atom.Fields[(int(m.field)+len(atom.Fields)-1)%len(atom.Fields)]
	case key.Matches(msg, m.keys.Down):
		m.field = atom.Fields[(int(m.field)+1)%len(atom.Fields)]
	case key.Matches(msg, m.keys.Increment):
		m.setAtom(m.built.Adjust(m.field, 1))
	case key.Matches(msg, m.keys.Decrement):
		m.setAtom(m.built.Adjust(m.field, -1))
	case key.Matches(msg, m.keys.Preset):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(atom.Presets) {
			m.setAtom(atom.Presets[idx].Atom)
		}
	case key.Matches(msg, m.keys.Reset):
		m.setAtom(atom.Hydrogen())
	case key.Matches(msg, m.keys.Shuffle):
		m.nucleus = m.layouter.Nucleus(m.built.Protons, m.built.Neutrons)
	case key.Matches(msg, m.keys.Save):
		return m, m.saveAtom()
	case key.Matches(msg, m.keys.Edit):
		m.editOn = true
		m.editor.SetValue(strconv.Itoa(m.built.Get(m.field)))
		m.editor.CursorEnd()
		cmd := m.editor.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenTable
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editOn = false
		m.editor.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editOn = false
		m.editor.Blur()
		if v, err := strconv.Atoi(strings.TrimSpace(m.editor.Value())); err == nil {
			m.setAtom(m.built.With(m.field, v))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectedSaved > 0 {
			m.selectedSaved--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedSaved < len(m.saved)-1 {
			m.selectedSaved++
		}
	case key.Matches(msg, m.keys.Select):
		if s := m.currentSaved(); s != nil {
			m.loadIntoBuilder(s.Atom)
		}
	case key.Matches(msg, m.keys.Delete):
		if s := m.currentSaved(); s != nil {
			return m, m.deleteSaved(s)
		}
	case key.Matches(msg, m.keys.Back):
		m.screen = ScreenTable
	}
	return m, nil
}

// ────────────────────────────────────────────────────────────
// State helpers
// ────────────────────────────────────────────────────────────

// setAtom replaces the builder atom and re-lays out the nucleus when the
// nucleon counts change.
func (m *Model) setAtom(a atom.Atom) {
	relayout := m.nucleus == nil || a.Protons != m.built.Protons || a.Neutrons != m.built.Neutrons
	m.built = a
	if relayout {
		m.nucleus = m.layouter.Nucleus(a.Protons, a.Neutrons)
	}
}

func (m *Model) loadIntoBuilder(a atom.Atom) {
	m.setAtom(a)
	m.field = atom.FieldProtons
	m.screen = ScreenBuilder
	m.statusMsg = ""
}

func (m Model) selectedElement() (element.Element, bool) {
	z := m.grid.At(m.cursor.Row, m.cursor.Col)
	if z == 0 {
		return element.Element{}, false
	}
	return m.catalog.Lookup(z)
}

func (m Model) currentSaved() *database.SavedAtom {
	if m.selectedSaved < 0 || m.selectedSaved >= len(m.saved) {
		return nil
	}
	return m.saved[m.selectedSaved]
}

// atomTitle names the builder atom: the reference element's localized
// name, or the custom label when no element matches.
func (m Model) atomTitle() string {
	c := m.built.Classify(m.catalog)
	ref, ok := c.Reference()
	if !ok {
		return m.printer.Sprintf("Custom Element")
	}
	name := locale.ElementName(ref, m.lang)
	switch v := c.(type) {
	case atom.Ion:
		return fmt.Sprintf("%s%s", ref.Symbol, chargeSuffix(v.Charge))
	case atom.Isotope:
		return fmt.Sprintf("%s-%d", name, m.built.Mass())
	}
	return name
}

// chargeSuffix renders an ion charge as a superscript-style suffix:
// "+", "2+", "-", "3-".
func chargeSuffix(charge int) string {
	switch {
	case charge == 1:
		return "+"
	case charge == -1:
		return "-"
	case charge > 0:
		return strconv.Itoa(charge) + "+"
	case charge < 0:
		return strconv.Itoa(-charge) + "-"
	}
	return ""
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var body string
	switch m.screen {
	case ScreenDetail:
		body = renderDetail(&m, m.width, bodyHeight)
	case ScreenBuilder:
		body = renderBuilder(&m, m.width, bodyHeight)
	case ScreenSaved:
		body = renderSaved(&m, m.width, bodyHeight)
	default:
		body = renderTable(&m, m.width, bodyHeight)
	}

	body = lipgloss.NewStyle().Height(max(bodyHeight, 0)).MaxHeight(max(bodyHeight, 0)).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
