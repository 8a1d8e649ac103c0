package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no file: %v", err)
	}
	if cfg.Defaults.ServicePercent != 10 || cfg.Defaults.TipPercent != 10 {
		t.Errorf("defaults = %+v, want service 10 / tip 10", cfg.Defaults)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Defaults.ServicePercent = 12.5
	cfg.Defaults.TipPercent = 18
	cfg.Catalog.Disabled = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Defaults.ServicePercent != 12.5 || got.Defaults.TipPercent != 18 {
		t.Errorf("loaded defaults = %+v", got.Defaults)
	}
	if !got.Catalog.Disabled {
		t.Error("Catalog.Disabled not round-tripped")
	}
}

func TestCatalogPath_Precedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := CatalogPath(cfg); got != filepath.Join("/tmp/xdg-data", "tabsplit", "catalog.db") {
		t.Errorf("CatalogPath = %q", got)
	}

	cfg.Catalog.Path = "/custom/cat.db"
	if got := CatalogPath(cfg); got != "/custom/cat.db" {
		t.Errorf("CatalogPath with override = %q", got)
	}
}
