// Package store provides a SQLite-backed catalog of saved menu items and
// regular diners. Bills themselves are never persisted; the catalog only
// speeds up entry of recurring names, prices, and tip rates.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNoEntry is returned when a catalog lookup finds nothing.
var ErrNoEntry = errors.New("no catalog entry with that name")

// MenuEntry is a saved menu item keyed by name.
type MenuEntry struct {
	Name   string
	Price  float64
	Shared bool
}

// Regular is a saved diner with their usual tip rate.
type Regular struct {
	Name       string
	TipPercent float64
}

// Catalog provides SQLite-backed storage for menu items and regulars.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at the given path.
func Open(dbPath string) (*Catalog, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating catalog dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the catalog database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// SaveMenuEntry inserts or replaces a menu item by name.
func (c *Catalog) SaveMenuEntry(e MenuEntry) error {
	shared := 0
	if e.Shared {
		shared = 1
	}
	_, err := c.db.Exec(`INSERT OR REPLACE INTO menu_items (name, price, shared, updated_at)
		VALUES (?, ?, ?, ?)`,
		e.Name, e.Price, shared, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetMenuEntry looks up a menu item by exact name.
func (c *Catalog) GetMenuEntry(name string) (MenuEntry, error) {
	var e MenuEntry
	var shared int
	err := c.db.QueryRow(
		"SELECT name, price, shared FROM menu_items WHERE name = ?", name,
	).Scan(&e.Name, &e.Price, &shared)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuEntry{}, ErrNoEntry
	}
	if err != nil {
		return MenuEntry{}, err
	}
	e.Shared = shared != 0
	return e, nil
}

// ListMenuEntries returns all saved menu items ordered by name.
func (c *Catalog) ListMenuEntries() ([]MenuEntry, error) {
	rows, err := c.db.Query("SELECT name, price, shared FROM menu_items ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []MenuEntry
	for rows.Next() {
		var e MenuEntry
		var shared int
		if err := rows.Scan(&e.Name, &e.Price, &shared); err != nil {
			return nil, err
		}
		e.Shared = shared != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteMenuEntry removes a menu item by name.
func (c *Catalog) DeleteMenuEntry(name string) error {
	res, err := c.db.Exec("DELETE FROM menu_items WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEntry
	}
	return nil
}

// SaveRegular inserts or replaces a regular diner by name.
func (c *Catalog) SaveRegular(r Regular) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO regulars (name, tip_percent, updated_at)
		VALUES (?, ?, ?)`,
		r.Name, r.TipPercent, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetRegular looks up a regular diner by exact name.
func (c *Catalog) GetRegular(name string) (Regular, error) {
	var r Regular
	err := c.db.QueryRow(
		"SELECT name, tip_percent FROM regulars WHERE name = ?", name,
	).Scan(&r.Name, &r.TipPercent)
	if errors.Is(err, sql.ErrNoRows) {
		return Regular{}, ErrNoEntry
	}
	if err != nil {
		return Regular{}, err
	}
	return r, nil
}

// ListRegulars returns all saved regulars ordered by name.
func (c *Catalog) ListRegulars() ([]Regular, error) {
	rows, err := c.db.Query("SELECT name, tip_percent FROM regulars ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var regulars []Regular
	for rows.Next() {
		var r Regular
		if err := rows.Scan(&r.Name, &r.TipPercent); err != nil {
			return nil, err
		}
		regulars = append(regulars, r)
	}
	return regulars, rows.Err()
}

// DeleteRegular removes a regular diner by name.
func (c *Catalog) DeleteRegular(name string) error {
	res, err := c.db.Exec("DELETE FROM regulars WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoEntry
	}
	return nil
}
