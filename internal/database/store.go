// Package database provides the storage layer for Atomic Explorer.
//
// It implements the Store interface using SQLite in WAL mode. The
// elements table holds the reference data (seeded from the embedded
// element list on first start); saved_atoms holds builder bookmarks.
// DBService is the primary entry point for all database operations.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Store defines the interface for reference data and saved atoms.
// This abstraction allows for mocking in tests.
type Store interface {
	// SeedElements upserts reference elements in a single transaction.
	SeedElements(elements []element.Element) error
	// CountElements returns the number of stored reference elements.
	CountElements() (int, error)
	// GetElement returns the element with the given atomic number.
	GetElement(atomicNumber int) (*element.Element, error)
	// GetElementBySymbol returns the element with the given symbol, ignoring case.
	GetElementBySymbol(symbol string) (*element.Element, error)
	// QueryElements returns elements matching filter, ordered by atomic number.
	QueryElements(filter ElementFilter) ([]*element.Element, error)
	// SearchElements matches symbol, name or localized name.
	SearchElements(query string, limit int) ([]*element.Element, error)
	// LoadCatalog builds the immutable reference table from stored rows.
	LoadCatalog() (*element.Catalog, error)

	// SaveAtom persists a builder configuration and returns its ID.
	SaveAtom(saved *SavedAtom) (int64, error)
	// ListSavedAtoms returns saved atoms, newest first.
	ListSavedAtoms(limit int) ([]*SavedAtom, error)
	// GetSavedAtom returns one saved atom.
	GetSavedAtom(id int64) (*SavedAtom, error)
	// DeleteSavedAtom removes a saved atom.
	DeleteSavedAtom(id int64) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// ============================================================
// Domain Models
// ============================================================

// SavedAtom is a bookmarked builder configuration.
type SavedAtom struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	Atom      atom.Atom `json:"atom"`
	Kind      atom.Kind `json:"kind"`
	CreatedAt int64     `json:"created_at"` // Unix nanoseconds
}

// ElementFilter defines query parameters for element listing.
type ElementFilter struct {
	Category *element.Category `json:"category,omitempty"`
	Period   *int              `json:"period,omitempty"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite.
// A read-write mutex serializes writers; readers share the lock.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtUpsertElement *sql.Stmt
	stmtInsertSaved   *sql.Stmt
	stmtDeleteSaved   *sql.Stmt
}

const elementColumns = `atomic_number, symbol, name, name_nb, atomic_mass, element_group, period,
	category, protons, electrons, neutrons, electronegativity, ionization_energy, description`

// NewDBService opens the database, initializes the schema and prepares
// frequently-used statements.
//
// Use ":memory:" for an in-memory database (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite only supports one writer at a time, and an in-memory
	// database lives on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

// Open opens the store and seeds the reference table from the embedded
// data when it is empty.
func Open(path string) (*DBService, error) {
	svc, err := NewDBService(path)
	if err != nil {
		return nil, err
	}

	n, err := svc.CountElements()
	if err != nil {
		svc.Close()
		return nil, err
	}
	if n > 0 {
		return svc, nil
	}

	cat, err := element.LoadEmbedded()
	if err != nil {
		svc.Close()
		return nil, err
	}
	if err := svc.SeedElements(cat.All()); err != nil {
		svc.Close()
		return nil, err
	}
	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtUpsertElement, err = s.db.Prepare(`
		INSERT INTO elements (` + elementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(atomic_number) DO UPDATE SET
			symbol = excluded.symbol,
			name = excluded.name,
			name_nb = excluded.name_nb,
			atomic_mass = excluded.atomic_mass,
			element_group = excluded.element_group,
			period = excluded.period,
			category = excluded.category,
			protons = excluded.protons,
			electrons = excluded.electrons,
			neutrons = excluded.neutrons,
			electronegativity = excluded.electronegativity,
			ionization_energy = excluded.ionization_energy,
			description = excluded.description
	`)
	if err != nil {
		return fmt.Errorf("preparing UpsertElement: %w", err)
	}

	s.stmtInsertSaved, err = s.db.Prepare(`
		INSERT INTO saved_atoms (label, protons, electrons, neutrons, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSaved: %w", err)
	}

	s.stmtDeleteSaved, err = s.db.Prepare(`DELETE FROM saved_atoms WHERE atom_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing DeleteSaved: %w", err)
	}

	return nil
}

// SeedElements upserts every element within one transaction.
func (s *DBService) SeedElements(elements []element.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(s.stmtUpsertElement)
	for _, el := range elements {
		_, err := stmt.Exec(
			el.AtomicNumber, el.Symbol, el.Name, nullString(el.NameNB), el.AtomicMass,
			el.Group, el.Period, string(el.Category),
			el.Protons, el.Electrons, el.Neutrons,
			el.Electronegativity, el.IonizationEnergy, nullString(el.Description),
		)
		if err != nil {
			return fmt.Errorf("seeding element %d: %w", el.AtomicNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}

// CountElements returns the number of reference rows.
func (s *DBService) CountElements() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM elements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting elements: %w", err)
	}
	return n, nil
}

// GetElement returns the element with the given atomic number.
func (s *DBService) GetElement(atomicNumber int) (*element.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+elementColumns+` FROM elements WHERE atomic_number = ?`, atomicNumber)
	el, err := scanElement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("element %d: %w", atomicNumber, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying element %d: %w", atomicNumber, err)
	}
	return el, nil
}

// GetElementBySymbol returns the element with the given symbol.
func (s *DBService) GetElementBySymbol(symbol string) (*element.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	symbol = strings.TrimSpace(symbol)
	row := s.db.QueryRow(`SELECT `+elementColumns+` FROM elements WHERE symbol = ? COLLATE NOCASE`, symbol)
	el, err := scanElement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("element %q: %w", symbol, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying element %q: %w", symbol, err)
	}
	return el, nil
}

// QueryElements returns elements matching the filter, ordered by atomic
// number. A zero Limit returns every match.
func (s *DBService) QueryElements(filter ElementFilter) ([]*element.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT ` + elementColumns + ` FROM elements WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.Category != nil {
		query += ` AND category = ?`
		args = append(args, string(*filter.Category))
	}
	if filter.Period != nil {
		query += ` AND period = ?`
		args = append(args, *filter.Period)
	}

	query += ` ORDER BY atomic_number ASC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT -1`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	return scanElements(rows)
}

// SearchElements performs a case-insensitive substring match over symbol,
// name and localized name. Exact symbol matches rank first, then name
// prefixes, then everything else by atomic number.
func (s *DBService) SearchElements(query string, limit int) ([]*element.Element, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	prefix := escapeLike(strings.ToLower(query)) + "%"

	rows, err := s.db.Query(`
		SELECT `+elementColumns+`
		FROM elements
		WHERE lower(symbol) LIKE ? ESCAPE '\'
			OR lower(name) LIKE ? ESCAPE '\'
			OR lower(COALESCE(name_nb, '')) LIKE ? ESCAPE '\'
		ORDER BY
			CASE
				WHEN lower(symbol) = ? THEN 0
				WHEN lower(name) LIKE ? ESCAPE '\' OR lower(COALESCE(name_nb, '')) LIKE ? ESCAPE '\' THEN 1
				ELSE 2
			END,
			atomic_number ASC
		LIMIT ?
	`, pattern, pattern, pattern, strings.ToLower(query), prefix, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("searching elements for %q: %w", query, err)
	}
	defer rows.Close()

	return scanElements(rows)
}

// LoadCatalog reads every stored element into an immutable Catalog.
func (s *DBService) LoadCatalog() (*element.Catalog, error) {
	rows, err := s.QueryElements(ElementFilter{})
	if err != nil {
		return nil, err
	}
	elements := make([]element.Element, len(rows))
	for i, el := range rows {
		elements[i] = *el
	}
	cat, err := element.NewCatalog(elements)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return cat, nil
}

// SaveAtom persists a builder configuration. CreatedAt defaults to now.
func (s *DBService) SaveAtom(saved *SavedAtom) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saved.CreatedAt == 0 {
		saved.CreatedAt = time.Now().UnixNano()
	}

	result, err := s.stmtInsertSaved.Exec(
		saved.Label, saved.Atom.Protons, saved.Atom.Electrons, saved.Atom.Neutrons,
		string(saved.Kind), saved.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("saving atom %q: %w", saved.Label, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading saved atom id: %w", err)
	}
	saved.ID = id
	return id, nil
}

// ListSavedAtoms returns saved atoms, newest first.
func (s *DBService) ListSavedAtoms(limit int) ([]*SavedAtom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT atom_id, label, protons, electrons, neutrons, kind, created_at
		FROM saved_atoms
		ORDER BY created_at DESC, atom_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying saved atoms: %w", err)
	}
	defer rows.Close()

	var out []*SavedAtom
	for rows.Next() {
		sa, err := scanSavedAtom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

// GetSavedAtom returns one saved atom.
func (s *DBService) GetSavedAtom(id int64) (*SavedAtom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT atom_id, label, protons, electrons, neutrons, kind, created_at
		FROM saved_atoms WHERE atom_id = ?
	`, id)
	sa, err := scanSavedAtom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("saved atom %d: %w", id, ErrNotFound)
	}
	return sa, err
}

// DeleteSavedAtom removes a saved atom. Deleting a missing ID returns
// ErrNotFound.
func (s *DBService) DeleteSavedAtom(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.stmtDeleteSaved.Exec(id)
	if err != nil {
		return fmt.Errorf("deleting saved atom %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting saved atom %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("saved atom %d: %w", id, ErrNotFound)
	}
	return nil
}

// Close closes all prepared statements and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{s.stmtUpsertElement, s.stmtInsertSaved, s.stmtDeleteSaved}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanElement(row scanner) (*element.Element, error) {
	el := &element.Element{}
	var (
		nameNB, description sql.NullString
		category            string
	)
	if err := row.Scan(
		&el.AtomicNumber, &el.Symbol, &el.Name, &nameNB, &el.AtomicMass,
		&el.Group, &el.Period, &category,
		&el.Protons, &el.Electrons, &el.Neutrons,
		&el.Electronegativity, &el.IonizationEnergy, &description,
	); err != nil {
		return nil, err
	}
	el.NameNB = nameNB.String
	el.Description = description.String
	el.Category = element.Category(category)
	return el, nil
}

func scanElements(rows *sql.Rows) ([]*element.Element, error) {
	var out []*element.Element
	for rows.Next() {
		el, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning element row: %w", err)
		}
		out = append(out, el)
	}
	return out, rows.Err()
}

func scanSavedAtom(row scanner) (*SavedAtom, error) {
	sa := &SavedAtom{}
	var kind string
	if err := row.Scan(
		&sa.ID, &sa.Label, &sa.Atom.Protons, &sa.Atom.Electrons, &sa.Atom.Neutrons,
		&kind, &sa.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning saved atom row: %w", err)
	}
	sa.Kind = atom.Kind(kind)
	return sa, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
