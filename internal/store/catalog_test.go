package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMenuEntry_CRUD(t *testing.T) {
	c := openTestCatalog(t)

	if _, err := c.GetMenuEntry("Pizza"); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("GetMenuEntry on empty catalog = %v, want ErrNoEntry", err)
	}

	if err := c.SaveMenuEntry(MenuEntry{Name: "Pizza", Price: 20, Shared: true}); err != nil {
		t.Fatalf("SaveMenuEntry: %v", err)
	}
	if err := c.SaveMenuEntry(MenuEntry{Name: "Soda", Price: 5}); err != nil {
		t.Fatalf("SaveMenuEntry: %v", err)
	}

	got, err := c.GetMenuEntry("Pizza")
	if err != nil {
		t.Fatalf("GetMenuEntry: %v", err)
	}
	if got.Price != 20 || !got.Shared {
		t.Errorf("GetMenuEntry = %+v", got)
	}

	// Upsert replaces the price.
	if err := c.SaveMenuEntry(MenuEntry{Name: "Pizza", Price: 22, Shared: true}); err != nil {
		t.Fatalf("SaveMenuEntry upsert: %v", err)
	}
	got, err = c.GetMenuEntry("Pizza")
	if err != nil {
		t.Fatalf("GetMenuEntry after upsert: %v", err)
	}
	if got.Price != 22 {
		t.Errorf("price after upsert = %v, want 22", got.Price)
	}

	entries, err := c.ListMenuEntries()
	if err != nil {
		t.Fatalf("ListMenuEntries: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Pizza" || entries[1].Name != "Soda" {
		t.Errorf("ListMenuEntries = %+v", entries)
	}

	if err := c.DeleteMenuEntry("Soda"); err != nil {
		t.Fatalf("DeleteMenuEntry: %v", err)
	}
	if err := c.DeleteMenuEntry("Soda"); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("DeleteMenuEntry twice = %v, want ErrNoEntry", err)
	}
}

func TestRegular_CRUD(t *testing.T) {
	c := openTestCatalog(t)

	if err := c.SaveRegular(Regular{Name: "Alice", TipPercent: 15}); err != nil {
		t.Fatalf("SaveRegular: %v", err)
	}

	got, err := c.GetRegular("Alice")
	if err != nil {
		t.Fatalf("GetRegular: %v", err)
	}
	if got.TipPercent != 15 {
		t.Errorf("TipPercent = %v, want 15", got.TipPercent)
	}

	if _, err := c.GetRegular("Bob"); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("GetRegular(missing) = %v, want ErrNoEntry", err)
	}

	regulars, err := c.ListRegulars()
	if err != nil {
		t.Fatalf("ListRegulars: %v", err)
	}
	if len(regulars) != 1 || regulars[0].Name != "Alice" {
		t.Errorf("ListRegulars = %+v", regulars)
	}

	if err := c.DeleteRegular("Alice"); err != nil {
		t.Fatalf("DeleteRegular: %v", err)
	}
	if err := c.DeleteRegular("Alice"); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("DeleteRegular twice = %v, want ErrNoEntry", err)
	}
}
