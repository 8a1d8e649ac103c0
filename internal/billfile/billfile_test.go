package billfile

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tabsplit/tabsplit/internal/bill"
)

const sampleBill = `
service_percent = 10.0

[[items]]
name = "Pizza"
price = 20.0
shared = true

[[items]]
name = "Soda"
price = 5.0

[[diners]]
name = "Alice"
tip_percent = 10.0
items = ["Soda"]

[[diners]]
name = "Bob"
tip_percent = 20.0
`

func writeBill(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bill.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing bill file: %v", err)
	}
	return path
}

func TestLoadBuild_EndToEnd(t *testing.T) {
	f, err := Load(writeBill(t, sampleBill))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s, err := Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	totals, err := s.Totals()
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("totals len = %d, want 2", len(totals))
	}

	wants := map[string]float64{"Alice": 18, "Bob": 13}
	for _, dt := range totals {
		if want := wants[dt.Name]; math.Abs(dt.Total-want) > 1e-9 {
			t.Errorf("%s total = %v, want %v", dt.Name, dt.Total, want)
		}
	}
}

func TestBuild_DuplicateItemNamesClaimDistinctItems(t *testing.T) {
	f := File{
		Items: []Item{
			{Name: "Soda", Price: 3},
			{Name: "Soda", Price: 4},
		},
		Diners: []Diner{
			{Name: "A", Items: []string{"Soda"}},
			{Name: "B", Items: []string{"Soda"}},
		},
	}

	s, err := Build(f)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pending := s.Unassigned(); len(pending) != 0 {
		t.Errorf("unassigned after build = %d, want 0", len(pending))
	}
}

func TestBuild_UnknownItemName(t *testing.T) {
	f := File{
		Diners: []Diner{{Name: "A", Items: []string{"Nachos"}}},
	}
	_, err := Build(f)
	if !errors.Is(err, bill.ErrNotFound) {
		t.Fatalf("Build = %v, want wrapped ErrNotFound", err)
	}
}

func TestBuild_NegativePrice(t *testing.T) {
	f := File{
		Items: []Item{{Name: "Oops", Price: -1}},
	}
	_, err := Build(f)
	if !errors.Is(err, bill.ErrInvalidPrice) {
		t.Fatalf("Build = %v, want wrapped ErrInvalidPrice", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("Load on missing file succeeded")
	}
}
